package utils

import (
	"strings"
	"unicode"
)

// IsSeparator reports whether r splits a species name into tokens.
// Names break on whitespace, hyphens and apostrophes
// ("Black-capped Chickadee", "Swainson's Thrush").
func IsSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '\''
}

// Tokenize splits s into its lowercase sub-words on separator runes.
// Empty tokens are dropped, so "Wilson's  Warbler" yields
// ["wilson", "s", "warbler"].
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), IsSeparator)
}

// HasPrefixIgnoreCase checks if string has prefix case-insensitively
func HasPrefixIgnoreCase(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

// ContainsIgnoreCase checks if string contains substring case-insensitively
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// IsOnlyNumbers checks if a string consists entirely of numeric digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsRepetitive checks if a string consists of one repeated character
// (e.g. "aaa", "www"). Two characters or fewer never count.
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}

// IsValidQuery checks if input is worth searching at all.
// Returns false for strings that are only numbers, contain characters
// that never appear in species names, or are repetitive keyboard noise.
// Used by the CLI front door only; the search core itself accepts anything.
func IsValidQuery(s string) bool {
	if len(strings.TrimSpace(s)) == 0 {
		return false
	}
	if IsOnlyNumbers(s) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !IsSeparator(r) {
			return false
		}
	}
	return !IsRepetitive(s)
}
