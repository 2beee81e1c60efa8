// Package customcmd implements guild-scoped custom text commands: the
// management operations behind /newcommand and the "!" trigger lookup.
package customcmd

import (
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/byteorem/banshee-bot/model"
	"github.com/byteorem/banshee-bot/utils/database"
)

var (
	// ErrInvalidName rejects names outside ^[a-z0-9_]+$ or longer than 50 chars.
	ErrInvalidName = errors.New("invalid command name")
	// ErrAlreadyExists rejects a create or rename that collides with an
	// existing command in the same guild.
	ErrAlreadyExists = errors.New("command already exists")
	// ErrNotFound is returned when the target command does not exist.
	ErrNotFound = errors.New("command not found")
	// ErrEmptyContent rejects commands with no content.
	ErrEmptyContent = errors.New("command content is empty")
	// ErrContentTooLong rejects content over 4000 characters.
	ErrContentTooLong = errors.New("command content is too long")
)

// Service applies the custom command business rules on top of the store.
type Service struct {
	db *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db}
}

// Create validates and stores a new custom command authored by the given user.
func (s *Service) Create(guildID, authorID, rawName, content string) (*model.CustomCommand, error) {
	name, err := NormalizeName(rawName)
	if err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	cmd := &model.CustomCommand{
		GuildID:     guildID,
		CommandName: name,
		Content:     content,
		CreatedBy:   authorID,
	}
	if err := database.CreateCustomCommand(s.db, cmd); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}
	return cmd, nil
}

// View looks up a command by name, case-insensitively.
func (s *Service) View(guildID, rawName string) (*model.CustomCommand, error) {
	cmd, err := database.GetCustomCommand(s.db, guildID, lookupName(rawName))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cmd, nil
}

// Edit renames and rewrites an existing command. Renaming onto another
// existing command in the same guild fails with ErrAlreadyExists.
func (s *Service) Edit(guildID, rawOldName, rawNewName, content string) (*model.CustomCommand, error) {
	cmd, err := s.View(guildID, rawOldName)
	if err != nil {
		return nil, err
	}

	newName, err := NormalizeName(rawNewName)
	if err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	if err := database.UpdateCustomCommand(s.db, cmd.ID, newName, content); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicate):
			return nil, ErrAlreadyExists
		case errors.Is(err, database.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}

	cmd.CommandName = newName
	cmd.Content = content
	return cmd, nil
}

// Delete removes a command unconditionally. Confirmation is the management
// surface's responsibility; by the time this runs the decision is final.
func (s *Service) Delete(guildID, rawName string) error {
	err := database.DeleteCustomCommand(s.db, guildID, lookupName(rawName))
	if errors.Is(err, database.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// List returns every command in the guild in creation order. An empty guild
// yields an empty slice, not an error.
func (s *Service) List(guildID string) ([]model.CustomCommand, error) {
	return database.ListCustomCommands(s.db, guildID)
}

// lookupName normalizes a name for lookup without rejecting invalid
// characters; an unstorable name simply never matches.
func lookupName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
