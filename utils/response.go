package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Embed colors for the three response banners.
const (
	ColorSuccess = 0x57F287 // green
	ColorError   = 0xED4245 // red
	ColorInfo    = 0x5865F2 // blurple
	ColorWarning = 0xE67E22 // orange
)

// RespondSuccess sends an ephemeral green embed.
func RespondSuccess(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorSuccess,
	})
}

// RespondError sends an ephemeral red embed.
func RespondError(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorError,
	})
}

// RespondInfo sends an ephemeral blue embed.
func RespondInfo(s *discordgo.Session, i *discordgo.InteractionCreate, title, description string) {
	RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       ColorInfo,
	})
}

// RespondEmbed sends a single embed as an ephemeral interaction response.
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error sending embed response: %v", err)
	}
}

// UpdateMessageEmbed replaces the message a component interaction came from
// with a single embed and strips its components.
func UpdateMessageEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		log.Printf("Error updating message: %v", err)
	}
}
