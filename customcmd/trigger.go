package customcmd

import (
	"errors"
	"strings"
	"unicode"

	"github.com/byteorem/banshee-bot/model"
)

// TriggerPrefix marks the start of a custom command invocation in chat.
const TriggerPrefix = "!"

// ExtractTrigger pulls the candidate command token out of a chat message:
// everything after a leading "!" up to the first whitespace, lowercased.
// Messages without the prefix at position 0, or with nothing after it,
// yield no token.
func ExtractTrigger(content string) (string, bool) {
	if !strings.HasPrefix(content, TriggerPrefix) {
		return "", false
	}

	rest := content[len(TriggerPrefix):]
	if idx := strings.IndexFunc(rest, unicode.IsSpace); idx >= 0 {
		rest = rest[:idx]
	}
	if rest == "" {
		return "", false
	}
	return strings.ToLower(rest), true
}

// Match resolves a chat message against the guild's stored commands.
// A (nil, nil) return means the message did not trigger anything.
func (s *Service) Match(guildID, content string) (*model.CustomCommand, error) {
	name, ok := ExtractTrigger(content)
	if !ok {
		return nil, nil
	}

	cmd, err := s.View(guildID, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cmd, nil
}
