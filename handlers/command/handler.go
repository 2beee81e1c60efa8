// Package command implements the /newcommand management surface: modal
// input for create and edit, list/view embeds and the delete confirmation
// flow.
package command

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/customcmd"
	"github.com/byteorem/banshee-bot/utils"
)

// HandleCommand dispatches a /newcommand subcommand.
func HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	switch sub.Name {
	case "create":
		handleCreate(s, i)
	case "list":
		handleList(s, i, b)
	case "view":
		handleView(s, i, b, subcommandName(sub))
	case "edit":
		handleEdit(s, i, b, subcommandName(sub))
	case "delete":
		handleDelete(s, i, b, subcommandName(sub))
	}
}

func subcommandName(sub *discordgo.ApplicationCommandInteractionDataOption) string {
	for _, opt := range sub.Options {
		if opt.Name == "name" {
			return opt.StringValue()
		}
	}
	return ""
}

func handleList(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	cmds, err := b.Service.List(i.GuildID)
	if err != nil {
		log.Printf("Error listing custom commands for guild %s: %v", i.GuildID, err)
		respondStoreError(s, i, b)
		return
	}

	if len(cmds) == 0 {
		utils.RespondInfo(s, i, "No Custom Commands",
			"No custom commands have been created yet. Use `/newcommand create` to add one.")
		return
	}

	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, fmt.Sprintf("`%s%s`", customcmd.TriggerPrefix, cmd.CommandName))
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Custom Commands (%d)", len(cmds)),
		Description: strings.Join(names, ", "),
		Color:       utils.ColorInfo,
	})
}

func handleView(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	cmd, err := b.Service.View(i.GuildID, name)
	if err != nil {
		if errors.Is(err, customcmd.ErrNotFound) {
			respondNotFound(s, i, name)
			return
		}
		log.Printf("Error viewing custom command %q for guild %s: %v", name, i.GuildID, err)
		respondStoreError(s, i, b)
		return
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Command: %s%s", customcmd.TriggerPrefix, cmd.CommandName),
		Color: utils.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Content", Value: cmd.Content},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Created by ID: %s", cmd.CreatedBy),
		},
		Timestamp: cmd.CreatedAt.Format(time.RFC3339),
	})
}

func respondNotFound(s *discordgo.Session, i *discordgo.InteractionCreate, name string) {
	utils.RespondError(s, i, "Command Not Found",
		fmt.Sprintf("No custom command named `%s` exists.", strings.ToLower(strings.TrimSpace(name))))
}

func respondStoreError(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	utils.RespondError(s, i, "Unexpected Error", "Something went wrong. Please try again later.")
	if err := utils.LogError(s, b.Config.LogChannelID, "CustomCommands", "Store failure",
		fmt.Sprintf("Guild: `%s`", i.GuildID)); err != nil {
		log.Printf("Failed to send error log: %v", err)
	}
}
