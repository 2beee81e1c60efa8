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

// Modal custom IDs. The edit modal carries the target's current name after
// the prefix so the submit handler knows which record to rewrite.
const (
	CreateModalID   = "customcmd_create"
	EditModalPrefix = "customcmd_edit:"

	fieldName    = "command_name"
	fieldContent = "command_content"
)

func handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	showCommandModal(s, i, CreateModalID, "Create Custom Command", "", "")
}

func handleEdit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string) {
	cmd, err := b.Service.View(i.GuildID, name)
	if err != nil {
		if errors.Is(err, customcmd.ErrNotFound) {
			respondNotFound(s, i, name)
			return
		}
		log.Printf("Error loading custom command %q for edit in guild %s: %v", name, i.GuildID, err)
		respondStoreError(s, i, b)
		return
	}

	showCommandModal(s, i, EditModalPrefix+cmd.CommandName, "Edit Custom Command", cmd.CommandName, cmd.Content)
}

// showCommandModal opens the two-field (name, content) input form.
func showCommandModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title, name, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    title,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    fieldName,
							Label:       "Command Name",
							Style:       discordgo.TextInputShort,
							Placeholder: "lootpolicy",
							Value:       name,
							Required:    true,
							MaxLength:   customcmd.MaxNameLength,
						},
					},
				},
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    fieldContent,
							Label:       "Command Content",
							Style:       discordgo.TextInputParagraph,
							Placeholder: "Enter the markdown content for this command...",
							Value:       content,
							Required:    true,
							MaxLength:   customcmd.MaxContentLength,
						},
					},
				},
			},
		},
	})
	if err != nil {
		log.Printf("Error showing command modal: %v", err)
	}
}

// HandleModalSubmit processes a completed create or edit form.
func HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ModalSubmitData()
	name := modalFieldValue(data, fieldName)
	content := modalFieldValue(data, fieldContent)

	if data.CustomID == CreateModalID {
		submitCreate(s, i, b, name, content)
		return
	}
	oldName := strings.TrimPrefix(data.CustomID, EditModalPrefix)
	submitEdit(s, i, b, oldName, name, content)
}

func submitCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name, content string) {
	cmd, err := b.Service.Create(i.GuildID, i.Member.User.ID, name, content)
	if err != nil {
		respondServiceError(s, i, b, name, err)
		return
	}

	utils.RespondSuccess(s, i, "Command Created",
		fmt.Sprintf("Custom command `%s%s` has been created successfully.", customcmd.TriggerPrefix, cmd.CommandName))
}

func submitEdit(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, oldName, newName, content string) {
	cmd, err := b.Service.Edit(i.GuildID, oldName, newName, content)
	if err != nil {
		respondServiceError(s, i, b, newName, err)
		return
	}

	utils.RespondSuccess(s, i, "Command Updated",
		fmt.Sprintf("Custom command `%s%s` has been updated successfully.", customcmd.TriggerPrefix, cmd.CommandName))
}

func respondServiceError(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, name string, err error) {
	switch {
	case errors.Is(err, customcmd.ErrInvalidName):
		utils.RespondError(s, i, "Invalid Command Name",
			"Command names can only contain lowercase letters, numbers, and underscores.")
	case errors.Is(err, customcmd.ErrAlreadyExists):
		utils.RespondError(s, i, "Command Already Exists",
			fmt.Sprintf("A command named `%s` already exists. Use `/newcommand edit` to modify it.",
				strings.ToLower(strings.TrimSpace(name))))
	case errors.Is(err, customcmd.ErrNotFound):
		respondNotFound(s, i, name)
	case errors.Is(err, customcmd.ErrEmptyContent):
		utils.RespondError(s, i, "Missing Content", "Command content cannot be empty.")
	case errors.Is(err, customcmd.ErrContentTooLong):
		utils.RespondError(s, i, "Content Too Long",
			fmt.Sprintf("Command content cannot exceed %d characters.", customcmd.MaxContentLength))
	default:
		log.Printf("Error saving custom command %q for guild %s: %v", name, i.GuildID, err)
		respondStoreError(s, i, b)
	}
}

// modalFieldValue digs a text input value out of the submitted components.
func modalFieldValue(data discordgo.ModalSubmitInteractionData, fieldID string) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok || row == nil {
			continue
		}
		for _, c := range row.Components {
			ti, ok := c.(*discordgo.TextInput)
			if ok && ti.CustomID == fieldID {
				return ti.Value
			}
		}
	}
	return ""
}
