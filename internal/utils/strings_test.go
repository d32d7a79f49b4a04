package utils

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"Northern Cardinal", []string{"northern", "cardinal"}},
		{"Black-capped Chickadee", []string{"black", "capped", "chickadee"}},
		{"Swainson's Thrush", []string{"swainson", "s", "thrush"}},
		{"Wilson's  Warbler", []string{"wilson", "s", "warbler"}},
		{"  Blue Jay  ", []string{"blue", "jay"}},
		{"", nil},
		{"---", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.input)
		if len(got) == 0 && len(tt.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("Tokenize(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestIsValidQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"northern", true},
		{"blue jay", true},
		{"black-capped", true},
		{"swainson's", true},
		{"", false},
		{"   ", false},
		{"12345", false},
		{"aaaa", false},
		{"bird!!!", false},
		{"w", true},
	}
	for _, tt := range tests {
		if got := IsValidQuery(tt.input); got != tt.expected {
			t.Errorf("IsValidQuery(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestIsRepetitive(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"aaa", true},
		{"wwww", true},
		{"aa", false},
		{"aab", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsRepetitive(tt.input); got != tt.expected {
			t.Errorf("IsRepetitive(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestCaseInsensitiveHelpers(t *testing.T) {
	if !HasPrefixIgnoreCase("Northern Cardinal", "north") {
		t.Error("Expected prefix match ignoring case")
	}
	if HasPrefixIgnoreCase("Great Blue Heron", "blue") {
		t.Error("Substring is not a prefix")
	}
	if !ContainsIgnoreCase("Great Blue Heron", "BLUE") {
		t.Error("Expected substring match ignoring case")
	}
}
