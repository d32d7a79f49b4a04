// Package picker implements the dropdown interaction state machine for
// a species picker widget: open/closed state, a highlighted row, and
// the suggestion list recomputed on every query change. One Picker
// belongs to exactly one widget instance; nothing here is shared.
package picker

import (
	"strings"
	"sync"
	"time"

	"github.com/hmeline/birdserve/pkg/search"
)

// DefaultBlurGrace is how long the dropdown lingers after losing focus,
// so a pointer click that caused the blur still lands on a suggestion.
const DefaultBlurGrace = 150 * time.Millisecond

// Picker tracks the selection state for one input widget. The mutex is
// there for the blur grace timer, which fires off the event path;
// everything else runs synchronously inside the triggering handler.
type Picker struct {
	mu        sync.Mutex
	searcher  *search.Searcher
	onSelect  func(term string)
	blurGrace time.Duration
	blurTimer *time.Timer

	query       string
	open        bool
	highlighted int
	suggestions []search.Suggestion
}

// Option configures a Picker.
type Option func(*Picker)

// WithBlurGrace overrides the blur grace delay.
func WithBlurGrace(d time.Duration) Option {
	return func(p *Picker) {
		p.blurGrace = d
	}
}

// WithOnSelect registers a callback fired with the chosen term after a
// completed selection. The picker performs no validation of the value;
// that stays with the caller.
func WithOnSelect(fn func(term string)) Option {
	return func(p *Picker) {
		p.onSelect = fn
	}
}

// New creates a closed Picker over the given searcher.
func New(s *search.Searcher, opts ...Option) *Picker {
	p := &Picker{
		searcher:  s,
		blurGrace: DefaultBlurGrace,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetQuery replaces the live query, recomputes suggestions and resets
// the highlight to the top. The dropdown opens for any non-blank query
// and closes otherwise; an empty suggestion list still counts as open
// so the caller can show "no matches".
func (p *Picker) SetQuery(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelBlurLocked()
	p.query = q
	p.suggestions = p.searcher.Search(q)
	p.highlighted = 0
	p.open = strings.TrimSpace(q) != ""
}

// Focus reopens the dropdown for the current query, recomputing
// suggestions. Blank queries keep it closed.
func (p *Picker) Focus() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelBlurLocked()
	if strings.TrimSpace(p.query) == "" {
		return
	}
	p.suggestions = p.searcher.Search(p.query)
	p.highlighted = 0
	p.open = true
}

// Navigate moves the highlight by delta rows, clamped to the list.
func (p *Picker) Navigate(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || len(p.suggestions) == 0 {
		return
	}
	p.highlighted += delta
	if p.highlighted < 0 {
		p.highlighted = 0
	}
	if p.highlighted > len(p.suggestions)-1 {
		p.highlighted = len(p.suggestions) - 1
	}
}

// Accept confirms the highlighted suggestion (Enter). Returns the
// chosen term, or false when the dropdown is closed or empty.
func (p *Picker) Accept() (string, bool) {
	p.mu.Lock()
	if !p.open || len(p.suggestions) == 0 {
		p.mu.Unlock()
		return "", false
	}
	term := p.suggestions[p.highlighted].Term
	p.completeLocked(term)
	p.mu.Unlock()
	p.notify(term)
	return term, true
}

// Click selects the suggestion at row i, as a pointer click would.
func (p *Picker) Click(i int) (string, bool) {
	p.mu.Lock()
	if !p.open || i < 0 || i >= len(p.suggestions) {
		p.mu.Unlock()
		return "", false
	}
	term := p.suggestions[i].Term
	p.completeLocked(term)
	p.mu.Unlock()
	p.notify(term)
	return term, true
}

// Select completes a selection with an arbitrary term on behalf of the
// caller, such as free text the user typed past the suggestions.
func (p *Picker) Select(term string) {
	p.mu.Lock()
	p.completeLocked(term)
	p.mu.Unlock()
	p.notify(term)
}

// Cancel closes the dropdown without selecting (Escape). The query is
// left as typed.
func (p *Picker) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancelBlurLocked()
	p.open = false
	p.suggestions = nil
	p.highlighted = 0
}

// Blur schedules the dropdown to close after the grace delay. Any
// event that lands before the timer fires cancels it.
func (p *Picker) Blur() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open || p.blurTimer != nil {
		return
	}
	p.blurTimer = time.AfterFunc(p.blurGrace, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.blurTimer = nil
		p.open = false
		p.suggestions = nil
		p.highlighted = 0
	})
}

// Query returns the current query text.
func (p *Picker) Query() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.query
}

// IsOpen reports whether the dropdown is showing.
func (p *Picker) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// Highlighted returns the highlighted row index.
func (p *Picker) Highlighted() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.highlighted
}

// Suggestions returns a copy of the current suggestion list.
func (p *Picker) Suggestions() []search.Suggestion {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]search.Suggestion, len(p.suggestions))
	copy(out, p.suggestions)
	return out
}

// completeLocked tears the session down after a selection: the query
// shows the chosen term and the dropdown closes.
func (p *Picker) completeLocked(term string) {
	p.cancelBlurLocked()
	p.query = term
	p.open = false
	p.suggestions = nil
	p.highlighted = 0
}

func (p *Picker) cancelBlurLocked() {
	if p.blurTimer != nil {
		p.blurTimer.Stop()
		p.blurTimer = nil
	}
}

// notify runs the selection callback outside the lock so the caller
// may read picker state from inside it.
func (p *Picker) notify(term string) {
	if p.onSelect != nil {
		p.onSelect(term)
	}
}
