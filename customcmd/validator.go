package customcmd

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest allowed command name.
const MaxNameLength = 50

// MaxContentLength is the longest allowed command content.
const MaxContentLength = 4000

var namePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// NormalizeName trims and lowercases a proposed command name and validates
// it against the allowed character set. Valid names pass through unchanged
// when already normalized.
func NormalizeName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" || len(name) > MaxNameLength || !namePattern.MatchString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}

func validateContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
