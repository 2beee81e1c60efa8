package model

import "time"

// CustomCommand is a guild-scoped text command triggered by "!<name>" in chat.
type CustomCommand struct {
	ID          int64     `db:"id"`
	GuildID     string    `db:"guild_id"`
	CommandName string    `db:"command_name"`
	Content     string    `db:"content"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
