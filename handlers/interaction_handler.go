package handlers

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/handlers/command"
)

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if strings.HasPrefix(customID, command.ConfirmDeletePrefix) || strings.HasPrefix(customID, command.CancelDeletePrefix) {
			command.HandleDeleteComponent(s, i, b)
		}
	case discordgo.InteractionModalSubmit:
		customID := i.ModalSubmitData().CustomID
		if customID == command.CreateModalID || strings.HasPrefix(customID, command.EditModalPrefix) {
			command.HandleModalSubmit(s, i, b)
		}
	}
}
