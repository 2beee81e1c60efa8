package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/byteorem/banshee-bot/model"
)

// Load loads the configuration from the environment, reading .env first when present.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("DATABASE_PATH", "data/banshee.db")

	token := viper.GetString("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	logChannelID := viper.GetString("LOG_CHANNEL_ID")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	return &model.Config{
		BotToken:     token,
		DatabasePath: viper.GetString("DATABASE_PATH"),
		LogChannelID: logChannelID,
	}, nil
}
