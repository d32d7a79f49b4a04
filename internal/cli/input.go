// Package cli handles cmd line input for DBG and testing the search and
// picker behavior in real time.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/hmeline/birdserve/internal/logger"
	"github.com/hmeline/birdserve/internal/utils"
	"github.com/hmeline/birdserve/pkg/picker"
	"github.com/hmeline/birdserve/pkg/search"
)

var tierStyles = map[search.Tier]lipgloss.Style{
	search.TierPrefix:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	search.TierSubstring: lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
	search.TierFuzzy:     lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
}

// InputHandler reads queries from stdin and drives a live picker.
// Plain lines replace the query; slash commands play the widget events
// (/up, /down, /pick, /esc) so selection flows can be walked through
// by hand.
type InputHandler struct {
	searcher       *search.Searcher
	picker         *picker.Picker
	out            *log.Logger
	minQueryLength int
	maxQueryLength int
	noFilter       bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(searcher *search.Searcher, minLength, maxLength int, noFilter bool) *InputHandler {
	h := &InputHandler{
		searcher:       searcher,
		out:            logger.NewWithConfig("", log.GetLevel(), false, false, log.TextFormatter),
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		noFilter:       noFilter,
	}
	h.picker = picker.New(searcher, picker.WithOnSelect(func(term string) {
		h.out.Printf("Selected: %s", term)
	}))
	return h
}

// Start begins the interface loop. It continuously reads a line from
// stdin and dispatches it as a query or a picker command. The loop
// terminates when stdin errors out.
func (h *InputHandler) Start() error {
	h.out.Print("BirdServe CLI [DBG]")
	h.out.Print("type a species query and press Enter; /down /up /pick /esc drive the picker (Ctrl+C to exit):")
	reader := bufio.NewReader(os.Stdin)

	for {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			h.handleCommand(line)
			continue
		}
		h.handleQuery(line)
	}
}

// handleCommand plays one widget event against the picker.
func (h *InputHandler) handleCommand(cmd string) {
	switch cmd {
	case "/down":
		h.picker.Navigate(1)
		h.render()
	case "/up":
		h.picker.Navigate(-1)
		h.render()
	case "/pick":
		if term, ok := h.picker.Accept(); ok {
			h.out.Printf("Query is now %q", term)
		} else {
			h.out.Warn("Nothing to pick; dropdown is closed or empty")
		}
	case "/esc":
		h.picker.Cancel()
		h.out.Print("Dropdown closed; query unchanged")
	default:
		h.out.Errorf("Unknown command: %s (try /down /up /pick /esc)", cmd)
	}
}

// handleQuery validates a raw query, feeds it to the picker and prints
// the resulting suggestion list.
func (h *InputHandler) handleQuery(query string) {
	if len(query) < h.minQueryLength {
		h.out.Errorf("Query too short: %s", query)
		return
	}
	if len(query) > h.maxQueryLength {
		h.out.Errorf("Query too long: %s", query)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter && !utils.IsValidQuery(query) {
		h.out.Infof("No results for query: %q", query)
		return
	}

	start := time.Now()
	h.picker.SetQuery(query)
	elapsed := time.Since(start)
	h.out.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	h.render()
}

// render prints the current suggestion list with the highlight marker.
func (h *InputHandler) render() {
	suggestions := h.picker.Suggestions()
	if !h.picker.IsOpen() || len(suggestions) == 0 {
		h.out.Print("no matches - free text still accepted")
		return
	}

	h.out.Printf("Found %d suggestions for query '%s':", len(suggestions), h.picker.Query())
	highlighted := h.picker.Highlighted()
	for i, s := range suggestions {
		marker := "  "
		if i == highlighted {
			marker = "> "
		}
		badge := tierStyles[s.Tier].Render(fmt.Sprintf("%-9s", s.Tier))
		h.out.Printf("%s%2d. %-40s [%s]", marker, i+1, s.Term, badge)
	}
}
