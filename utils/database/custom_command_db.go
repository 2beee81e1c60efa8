package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"github.com/byteorem/banshee-bot/model"
)

// GetCustomCommand retrieves a single custom command by guild and name.
func GetCustomCommand(db *sqlx.DB, guildID, name string) (*model.CustomCommand, error) {
	var cmd model.CustomCommand
	query := "SELECT * FROM custom_commands WHERE guild_id = ? AND command_name = ?"
	err := db.Get(&cmd, query, guildID, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get custom command %q for guild %s: %w", name, guildID, err)
	}
	return &cmd, nil
}

// ListCustomCommands retrieves all custom commands for a guild in creation order.
func ListCustomCommands(db *sqlx.DB, guildID string) ([]model.CustomCommand, error) {
	var cmds []model.CustomCommand
	query := "SELECT * FROM custom_commands WHERE guild_id = ? ORDER BY id"
	if err := db.Select(&cmds, query, guildID); err != nil {
		return nil, fmt.Errorf("failed to list custom commands for guild %s: %w", guildID, err)
	}
	return cmds, nil
}

// CreateCustomCommand inserts a new custom command and fills in its ID and
// timestamps. The unique index on (guild_id, command_name) is what rejects
// duplicates, so two concurrent creates cannot both succeed.
func CreateCustomCommand(db *sqlx.DB, cmd *model.CustomCommand) error {
	now := time.Now().UTC()
	cmd.CreatedAt = now
	cmd.UpdatedAt = now

	query := `INSERT INTO custom_commands (guild_id, command_name, content, created_by, created_at, updated_at)
		VALUES (:guild_id, :command_name, :content, :created_by, :created_at, :updated_at)`
	result, err := db.NamedExec(query, cmd)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert custom command %q for guild %s: %w", cmd.CommandName, cmd.GuildID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	cmd.ID = id
	return nil
}

// UpdateCustomCommand persists a new name and content for an existing record.
func UpdateCustomCommand(db *sqlx.DB, id int64, name, content string) error {
	query := "UPDATE custom_commands SET command_name = ?, content = ?, updated_at = ? WHERE id = ?"
	result, err := db.Exec(query, name, content, time.Now().UTC(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to update custom command %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for custom command %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCustomCommand permanently removes a custom command.
func DeleteCustomCommand(db *sqlx.DB, guildID, name string) error {
	query := "DELETE FROM custom_commands WHERE guild_id = ? AND command_name = ?"
	result, err := db.Exec(query, guildID, name)
	if err != nil {
		return fmt.Errorf("failed to delete custom command %q for guild %s: %w", name, guildID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for custom command %q: %w", name, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
