package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"

	"github.com/byteorem/banshee-bot/customcmd"
	"github.com/byteorem/banshee-bot/model"
)

type Bot struct {
	Session            *discordgo.Session
	Config             *model.Config
	DB                 *sqlx.DB
	Service            *customcmd.Service
	DeleteConfirms     *DeleteConfirmations
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
}

func New(cfg *model.Config, db *sqlx.DB) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent
	dg.StateEnabled = true

	return &Bot{
		Session:        dg,
		Config:         cfg,
		DB:             db,
		Service:        customcmd.NewService(db),
		DeleteConfirms: NewDeleteConfirmations(DeleteConfirmTimeout),
	}, nil
}

func (b *Bot) Close() {
	b.Session.Close()
	b.DB.Close()
}
