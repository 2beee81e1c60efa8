package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/byteorem/banshee-bot/model"
)

// GetGuildSettings retrieves the settings row for a guild.
func GetGuildSettings(db *sqlx.DB, guildID string) (*model.GuildSettings, error) {
	var settings model.GuildSettings
	query := "SELECT * FROM guild_settings WHERE guild_id = ?"
	err := db.Get(&settings, query, guildID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get guild settings for guild %s: %w", guildID, err)
	}
	return &settings, nil
}

// UpsertGuildSettings creates or updates the settings row for a guild and
// reports whether a new row was created. The ON CONFLICT clause keeps the
// insert safe against a concurrent create for the same guild.
func UpsertGuildSettings(db *sqlx.DB, guildID, wowGuildName, wowRegion, wowRealm string) (bool, error) {
	_, err := GetGuildSettings(db, guildID)
	created := errors.Is(err, ErrNotFound)
	if err != nil && !created {
		return false, err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`
		INSERT INTO guild_settings (guild_id, wow_guild_name, wow_region, wow_realm, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			wow_guild_name = excluded.wow_guild_name,
			wow_region = excluded.wow_region,
			wow_realm = excluded.wow_realm,
			updated_at = excluded.updated_at`,
		guildID, wowGuildName, wowRegion, wowRealm, now, now)
	if err != nil {
		return false, fmt.Errorf("failed to upsert guild settings for guild %s: %w", guildID, err)
	}
	return created, nil
}
