package vocab

import (
	"reflect"
	"testing"
)

func TestNewPreservesOrderAndDedups(t *testing.T) {
	v := New([]string{
		"Blue Jay",
		"  Northern Cardinal ",
		"blue jay",
		"",
		"   ",
		"Wood Thrush",
		"NORTHERN CARDINAL",
	})

	expected := []string{"Blue Jay", "Northern Cardinal", "Wood Thrush"}
	if got := v.Names(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if v.Len() != 3 {
		t.Errorf("Expected 3 terms, got %d", v.Len())
	}
}

func TestTermForms(t *testing.T) {
	v := New([]string{"Swainson's Thrush", "Black-capped Chickadee"})

	tests := []struct {
		pos    int
		lower  string
		tokens []string
	}{
		{0, "swainson's thrush", []string{"swainson", "s", "thrush"}},
		{1, "black-capped chickadee", []string{"black", "capped", "chickadee"}},
	}
	for _, tt := range tests {
		term := v.At(tt.pos)
		if term.Lower != tt.lower {
			t.Errorf("Term %d: expected lower %q, got %q", tt.pos, tt.lower, term.Lower)
		}
		if !reflect.DeepEqual(term.Tokens, tt.tokens) {
			t.Errorf("Term %d: expected tokens %v, got %v", tt.pos, tt.tokens, term.Tokens)
		}
	}
}

func TestContains(t *testing.T) {
	v := New([]string{"Blue Jay", "Northern Cardinal"})

	tests := []struct {
		name     string
		expected bool
	}{
		{"Blue Jay", true},
		{"blue jay", true},
		{"  BLUE JAY  ", true},
		{"Blue", false},
		{"Cardinal", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := v.Contains(tt.name); got != tt.expected {
			t.Errorf("Contains(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

// prefix visits follow vocabulary order even when the trie disagrees
func TestVisitPrefixOrder(t *testing.T) {
	v := New([]string{
		"Blue Jay",
		"Blue Grosbeak",
		"Blue-gray Gnatcatcher",
		"Northern Cardinal",
	})

	var got []string
	v.VisitPrefix("blue", func(i int) {
		got = append(got, v.At(i).Display)
	})

	expected := []string{"Blue Jay", "Blue Grosbeak", "Blue-gray Gnatcatcher"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVisitPrefixNoMatch(t *testing.T) {
	v := New([]string{"Blue Jay"})

	calls := 0
	v.VisitPrefix("zebra", func(int) { calls++ })
	if calls != 0 {
		t.Errorf("Expected no visits, got %d", calls)
	}
}

func TestBuiltin(t *testing.T) {
	v := Builtin()
	if v.Len() == 0 {
		t.Fatal("Builtin vocabulary is empty")
	}
	if !v.Contains("Northern Cardinal") {
		t.Error("Builtin vocabulary missing Northern Cardinal")
	}
	seen := make(map[string]bool, v.Len())
	for i := 0; i < v.Len(); i++ {
		lower := v.At(i).Lower
		if seen[lower] {
			t.Errorf("Duplicate builtin term %q", v.At(i).Display)
		}
		seen[lower] = true
	}
}
