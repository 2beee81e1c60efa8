package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/byteorem/banshee-bot/bot"
	"github.com/byteorem/banshee-bot/utils"
	"github.com/byteorem/banshee-bot/utils/database"
)

// HandleSettings dispatches a /settings subcommand.
func HandleSettings(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]

	switch sub.Name {
	case "show":
		handleSettingsShow(s, i, b)
	case "guild":
		handleSettingsGuild(s, i, b, sub)
	}
}

func handleSettingsShow(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	settings, err := database.GetGuildSettings(b.DB, i.GuildID)
	if err != nil && !errors.Is(err, database.ErrNotFound) {
		log.Printf("Error loading guild settings for guild %s: %v", i.GuildID, err)
		utils.RespondError(s, i, "Unexpected Error", "Something went wrong. Please try again later.")
		return
	}

	if settings == nil || settings.WowGuildName == "" {
		utils.RespondInfo(s, i, "No Settings Found",
			"No guild settings configured yet. Use `/settings guild` to set up.")
		return
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title: "Server Settings",
		Color: utils.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Guild Name", Value: settings.WowGuildName},
			{Name: "Region", Value: strings.ToUpper(settings.WowRegion), Inline: true},
			{Name: "Realm", Value: settings.WowRealm, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Last updated",
		},
		Timestamp: settings.UpdatedAt.Format(time.RFC3339),
	})
}

func handleSettingsGuild(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot, sub *discordgo.ApplicationCommandInteractionDataOption) {
	var guildName, region, realm string
	for _, opt := range sub.Options {
		switch opt.Name {
		case "guild_name":
			guildName = opt.StringValue()
		case "region":
			region = strings.ToLower(opt.StringValue())
		case "realm":
			realm = opt.StringValue()
		}
	}

	created, err := database.UpsertGuildSettings(b.DB, i.GuildID, guildName, region, realm)
	if err != nil {
		log.Printf("Error saving guild settings for guild %s: %v", i.GuildID, err)
		utils.RespondError(s, i, "Unexpected Error", "Something went wrong. Please try again later.")
		return
	}

	action := "Updated"
	if created {
		action = "Created"
	}
	utils.RespondSuccess(s, i, "Guild Settings "+action,
		fmt.Sprintf("**%s** - %s - %s", guildName, strings.ToUpper(region), realm))
}
