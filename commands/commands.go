package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Generate builds the application command set registered on startup.
func Generate() []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)
	guildOnly := false

	return []*discordgo.ApplicationCommand{
		{
			Name:                     "newcommand",
			Description:              "Manage custom commands",
			DefaultMemberPermissions: &adminOnly,
			DMPermission:             &guildOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new custom command",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List all custom commands",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "view",
					Description: "View the content of a custom command",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The name of the command to view",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "edit",
					Description: "Edit an existing custom command",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The name of the command to edit",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "delete",
					Description: "Delete a custom command",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "The name of the command to delete",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:                     "settings",
			Description:              "Manage server settings",
			DefaultMemberPermissions: &adminOnly,
			DMPermission:             &guildOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show current server settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "guild",
					Description: "Set WoW guild information",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "guild_name",
							Description: "The name of your WoW guild",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "region",
							Description: "Region (us, eu, kr, tw, cn)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "realm",
							Description: "Realm name",
							Required:    true,
						},
					},
				},
			},
		},
		{
			Name:                     "botinfo",
			Description:              "Show bot and host system information",
			DefaultMemberPermissions: &adminOnly,
			DMPermission:             &guildOnly,
		},
	}
}
