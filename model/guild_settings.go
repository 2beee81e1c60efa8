package model

import "time"

// GuildSettings stores the World of Warcraft guild metadata for a Discord guild.
type GuildSettings struct {
	ID           int64     `db:"id"`
	GuildID      string    `db:"guild_id"`
	WowGuildName string    `db:"wow_guild_name"`
	WowRegion    string    `db:"wow_region"`
	WowRealm     string    `db:"wow_realm"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
