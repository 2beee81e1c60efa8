package model

// Config holds the application configuration loaded at startup.
type Config struct {
	BotToken     string
	DatabasePath string
	LogChannelID string
}
