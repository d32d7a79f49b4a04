package picker

import (
	"testing"
	"time"

	"github.com/hmeline/birdserve/pkg/search"
	"github.com/hmeline/birdserve/pkg/vocab"
)

func testSearcher() *search.Searcher {
	return search.NewSearcher(vocab.New([]string{
		"American Robin",
		"Blue Grosbeak",
		"Blue Jay",
		"Eastern Bluebird",
		"Great Blue Heron",
		"Northern Cardinal",
		"Wood Thrush",
	}))
}

func TestTypingOpensDropdown(t *testing.T) {
	p := New(testSearcher())

	if p.IsOpen() {
		t.Error("New picker should start closed")
	}

	p.SetQuery("blue")
	if !p.IsOpen() {
		t.Error("Dropdown should open on a non-blank query")
	}
	if got := len(p.Suggestions()); got != 4 {
		t.Fatalf("Expected 4 suggestions, got %d", got)
	}
	if p.Highlighted() != 0 {
		t.Errorf("Highlight should start at 0, got %d", p.Highlighted())
	}

	p.SetQuery("   ")
	if p.IsOpen() {
		t.Error("Dropdown should close on a blank query")
	}
}

// dropdown stays open on zero matches so the caller can show a notice;
// the typed text remains valid free input
func TestNoMatchesKeepsOpen(t *testing.T) {
	p := New(testSearcher())

	p.SetQuery("zzzzzz")
	if !p.IsOpen() {
		t.Error("Dropdown should stay open with no matches")
	}
	if got := len(p.Suggestions()); got != 0 {
		t.Errorf("Expected no suggestions, got %d", got)
	}
	if _, ok := p.Accept(); ok {
		t.Error("Accept over an empty list should report false")
	}
	if p.Query() != "zzzzzz" {
		t.Errorf("Query should be left as typed, got %q", p.Query())
	}
}

// arrow keys clamp at both ends; Enter takes the highlighted row
func TestNavigateAndAccept(t *testing.T) {
	p := New(testSearcher())
	p.SetQuery("blue")

	p.Navigate(-1)
	if p.Highlighted() != 0 {
		t.Errorf("ArrowUp at the top should clamp to 0, got %d", p.Highlighted())
	}

	p.Navigate(1)
	p.Navigate(1)
	p.Navigate(1)
	if p.Highlighted() != 3 {
		t.Fatalf("Expected highlight at 3, got %d", p.Highlighted())
	}
	p.Navigate(1)
	if p.Highlighted() != 3 {
		t.Errorf("ArrowDown at the bottom should clamp to 3, got %d", p.Highlighted())
	}

	term, ok := p.Accept()
	if !ok || term != "Great Blue Heron" {
		t.Fatalf("Expected to accept Great Blue Heron, got %q, %v", term, ok)
	}
	if p.IsOpen() {
		t.Error("Dropdown should close after accepting")
	}
	if p.Query() != "Great Blue Heron" {
		t.Errorf("Query should show the chosen term, got %q", p.Query())
	}
}

func TestSetQueryResetsHighlight(t *testing.T) {
	p := New(testSearcher())
	p.SetQuery("blue")
	p.Navigate(2)

	p.SetQuery("blu")
	if p.Highlighted() != 0 {
		t.Errorf("Highlight should reset on query change, got %d", p.Highlighted())
	}
}

func TestNavigateWhileClosed(t *testing.T) {
	p := New(testSearcher())
	p.Navigate(1)
	if p.Highlighted() != 0 {
		t.Errorf("Navigate on a closed picker should do nothing, got %d", p.Highlighted())
	}
}

func TestCancelKeepsQuery(t *testing.T) {
	p := New(testSearcher())
	p.SetQuery("north")

	p.Cancel()
	if p.IsOpen() {
		t.Error("Cancel should close the dropdown")
	}
	if p.Query() != "north" {
		t.Errorf("Cancel should leave the query as typed, got %q", p.Query())
	}

	p.Focus()
	if !p.IsOpen() {
		t.Error("Focus should reopen for a non-blank query")
	}
}

func TestClick(t *testing.T) {
	p := New(testSearcher())
	p.SetQuery("blue")

	term, ok := p.Click(1)
	if !ok || term != "Blue Jay" {
		t.Fatalf("Expected to click Blue Jay, got %q, %v", term, ok)
	}
	if p.IsOpen() || p.Query() != "Blue Jay" {
		t.Errorf("Click should close and overwrite the query, got open=%v query=%q", p.IsOpen(), p.Query())
	}

	if _, ok := p.Click(0); ok {
		t.Error("Click on a closed picker should report false")
	}
}

func TestSelectFreeText(t *testing.T) {
	var selected string
	p := New(testSearcher(), WithOnSelect(func(term string) {
		selected = term
	}))
	p.SetQuery("zzz bird")

	p.Select("zzz bird")
	if selected != "zzz bird" {
		t.Errorf("Expected callback with free text, got %q", selected)
	}
	if p.IsOpen() {
		t.Error("Select should close the dropdown")
	}
}

// a click shortly after blur still lands; once the grace passes, it does not
func TestBlurGrace(t *testing.T) {
	p := New(testSearcher(), WithBlurGrace(30*time.Millisecond))
	p.SetQuery("blue")

	p.Blur()
	if _, ok := p.Click(0); !ok {
		t.Fatal("Click inside the blur grace window should land")
	}

	p.SetQuery("blue")
	p.Blur()
	time.Sleep(80 * time.Millisecond)
	if p.IsOpen() {
		t.Error("Dropdown should close after the blur grace elapses")
	}
	if _, ok := p.Click(0); ok {
		t.Error("Click after the grace window should report false")
	}
}

func TestOnSelectFiresOnAccept(t *testing.T) {
	var calls []string
	p := New(testSearcher(), WithOnSelect(func(term string) {
		calls = append(calls, term)
	}))

	p.SetQuery("northern")
	if _, ok := p.Accept(); !ok {
		t.Fatal("Expected an acceptable suggestion")
	}
	if len(calls) != 1 || calls[0] != "Northern Cardinal" {
		t.Errorf("Expected one callback with Northern Cardinal, got %v", calls)
	}
}
