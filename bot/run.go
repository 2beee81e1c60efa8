package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/byteorem/banshee-bot/commands"
	"github.com/byteorem/banshee-bot/utils"
)

// Run opens the gateway session, registers the application commands and
// blocks until the process receives an interrupt.
func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	cmds := commands.Generate()
	log.Printf("Registering %d application commands...", len(cmds))
	registered, err := b.Session.ApplicationCommandBulkOverwrite(b.Session.State.User.ID, "", cmds)
	if err != nil {
		log.Fatalf("Cannot register application commands: %v", err)
	}
	b.RegisteredCommands = registered

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	if err := utils.LogInfo(b.Session, b.Config.LogChannelID, "System", "Startup", "Bot has started successfully."); err != nil {
		log.Printf("Failed to send startup log: %v", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	log.Println("Gracefully shutting down.")
}
