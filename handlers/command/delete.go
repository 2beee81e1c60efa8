package command

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/customcmd"
	"github.com/byteorem/banshee-bot/utils"
)

const (
	ConfirmDeletePrefix = "customcmd_confirm_delete:"
	CancelDeletePrefix  = "customcmd_cancel_delete:"
)

func confirmKey(guildID, name string) string {
	return guildID + ":" + name
}

func handleDelete(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	cmd, err := b.Service.View(i.GuildID, name)
	if err != nil {
		if errors.Is(err, customcmd.ErrNotFound) {
			respondNotFound(s, i, name)
			return
		}
		log.Printf("Error loading custom command %q for delete in guild %s: %v", name, i.GuildID, err)
		respondStoreError(s, i, b)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Confirm Deletion",
		Description: fmt.Sprintf("Are you sure you want to delete the custom command `%s%s`?",
			customcmd.TriggerPrefix, cmd.CommandName),
		Color: utils.ColorWarning,
	}
	respErr := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.Button{
							Label:    "Confirm Delete",
							Style:    discordgo.DangerButton,
							CustomID: ConfirmDeletePrefix + cmd.CommandName,
						},
						discordgo.Button{
							Label:    "Cancel",
							Style:    discordgo.SecondaryButton,
							CustomID: CancelDeletePrefix + cmd.CommandName,
						},
					},
				},
			},
		},
	})
	if respErr != nil {
		log.Printf("Error showing delete confirmation: %v", respErr)
		return
	}

	interaction := i.Interaction
	cmdName := cmd.CommandName
	b.DeleteConfirms.Begin(confirmKey(i.GuildID, cmdName), func() {
		expireDeletePrompt(s, interaction, cmdName)
	})
}

// expireDeletePrompt turns an unanswered prompt into a cancellation.
func expireDeletePrompt(s *discordgo.Session, interaction *discordgo.Interaction, name string) {
	embed := &discordgo.MessageEmbed{
		Title: "Deletion Cancelled",
		Description: fmt.Sprintf("Confirmation timed out. Custom command `%s%s` was not deleted.",
			customcmd.TriggerPrefix, name),
		Color: utils.ColorInfo,
	}
	_, err := s.InteractionResponseEdit(interaction, &discordgo.WebhookEdit{
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &[]discordgo.MessageComponent{},
	})
	if err != nil {
		log.Printf("Error expiring delete confirmation for %q: %v", name, err)
	}
}

// HandleDeleteComponent resolves a confirm or cancel button click.
func HandleDeleteComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	customID := i.MessageComponentData().CustomID
	confirmed := strings.HasPrefix(customID, ConfirmDeletePrefix)
	name := strings.TrimPrefix(strings.TrimPrefix(customID, ConfirmDeletePrefix), CancelDeletePrefix)

	if !b.DeleteConfirms.Resolve(confirmKey(i.GuildID, name)) {
		utils.UpdateMessageEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Confirmation Expired",
			Description: "This confirmation is no longer active. Run `/newcommand delete` again.",
			Color:       utils.ColorInfo,
		})
		return
	}

	if !confirmed {
		utils.UpdateMessageEmbed(s, i, &discordgo.MessageEmbed{
			Title: "Deletion Cancelled",
			Description: fmt.Sprintf("Custom command `%s%s` was not deleted.",
				customcmd.TriggerPrefix, name),
			Color: utils.ColorInfo,
		})
		return
	}

	if err := b.Service.Delete(i.GuildID, name); err != nil {
		if errors.Is(err, customcmd.ErrNotFound) {
			utils.UpdateMessageEmbed(s, i, &discordgo.MessageEmbed{
				Title:       "Command Not Found",
				Description: fmt.Sprintf("No custom command named `%s` exists.", name),
				Color:       utils.ColorError,
			})
			return
		}
		log.Printf("Error deleting custom command %q for guild %s: %v", name, i.GuildID, err)
		utils.UpdateMessageEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "Unexpected Error",
			Description: "Something went wrong. Please try again later.",
			Color:       utils.ColorError,
		})
		return
	}

	utils.UpdateMessageEmbed(s, i, &discordgo.MessageEmbed{
		Title: "Command Deleted",
		Description: fmt.Sprintf("Custom command `%s%s` has been deleted.",
			customcmd.TriggerPrefix, name),
		Color: utils.ColorSuccess,
	})

	if err := utils.LogInfo(s, b.Config.LogChannelID, "CustomCommands", "Delete",
		fmt.Sprintf("Command: `%s`\nGuild: `%s`\nOperator: `%s`", name, i.GuildID, i.Member.User.Username)); err != nil {
		log.Printf("Failed to send delete log: %v", err)
	}
}
