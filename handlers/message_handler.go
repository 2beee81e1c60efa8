package handlers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/utils"
)

// handleMessageCreate checks every guild message for a "!" custom command
// trigger and replies with the stored content on a match. Misses are silent.
func handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate, b *bot.Bot) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if m.GuildID == "" {
		return
	}

	cmd, err := b.Service.Match(m.GuildID, m.Content)
	if err != nil {
		log.Printf("Error matching custom command in guild %s: %v", m.GuildID, err)
		utils.LogWarn(s, b.Config.LogChannelID, "CustomCommands", "Trigger lookup failed",
			fmt.Sprintf("Guild: `%s`\nError: %v", m.GuildID, err))
		return
	}
	if cmd == nil {
		return
	}

	_, err = s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Content:         cmd.Content,
		Reference:       m.Reference(),
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
	if err != nil {
		log.Printf("Error replying to custom command %q in guild %s: %v", cmd.CommandName, m.GuildID, err)
	}
}
