package handlers

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/handlers/command"
	"github.com/byteorem/banshee-bot/utils"
)

// Register wires all event handlers onto the bot's session.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"newcommand": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireGuild(s, i) {
				return
			}
			command.HandleCommand(s, i, b)
		},
		"settings": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if !requireGuild(s, i) {
				return
			}
			HandleSettings(s, i, b)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			HandleSystemInfo(s, i, b)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
	b.Session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		handleMessageCreate(s, m, b)
	})
}

// requireGuild rejects interactions arriving outside a guild context.
func requireGuild(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.GuildID == "" || i.Member == nil {
		utils.RespondError(s, i, "Guild Only", "This command can only be used in a server.")
		return false
	}
	return true
}
