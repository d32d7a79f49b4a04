// Package vocab holds the canonical species vocabulary: an immutable,
// ordered list of display names with precomputed lowercase forms and
// tokens for matching. Loaded once, read-only afterwards.
package vocab

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/hmeline/birdserve/internal/utils"
)

// Term is one vocabulary entry. Display keeps canonical casing;
// Lower and Tokens are the forms matching runs against.
type Term struct {
	Display string
	Lower   string
	Tokens  []string
}

// Vocabulary is the ordered set of terms plus a patricia index from
// lowercase name to vocabulary position. The index serves prefix
// retrieval and exact membership; ranking always follows vocabulary
// order, not trie order.
type Vocabulary struct {
	terms []Term
	index *patricia.Trie
}

// New builds a Vocabulary from display names, preserving input order.
// Case-insensitive duplicates and blank entries are dropped with a warning.
func New(names []string) *Vocabulary {
	v := &Vocabulary{
		terms: make([]Term, 0, len(names)),
		index: patricia.NewTrie(),
	}
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		display := strings.TrimSpace(name)
		if display == "" {
			continue
		}
		lower := strings.ToLower(display)
		if seen[lower] {
			log.Warnf("Skipping duplicate vocabulary term: %q", display)
			continue
		}
		seen[lower] = true
		v.index.Insert(patricia.Prefix(lower), len(v.terms))
		v.terms = append(v.terms, Term{
			Display: display,
			Lower:   lower,
			Tokens:  utils.Tokenize(display),
		})
	}
	return v
}

// Builtin returns a Vocabulary over the bundled species list.
func Builtin() *Vocabulary {
	return New(speciesNames)
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// At returns the term at vocabulary position i.
func (v *Vocabulary) At(i int) Term {
	return v.terms[i]
}

// Names returns all display names in vocabulary order.
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.terms))
	for i, t := range v.terms {
		names[i] = t.Display
	}
	return names
}

// Contains reports whether name is a vocabulary term, case-insensitively.
func (v *Vocabulary) Contains(name string) bool {
	return v.index.Get(patricia.Prefix(strings.ToLower(strings.TrimSpace(name)))) != nil
}

// VisitPrefix calls fn with each vocabulary position whose lowercase
// name starts with lowerPrefix, in vocabulary order.
func (v *Vocabulary) VisitPrefix(lowerPrefix string, fn func(i int)) {
	var hits []int
	err := v.index.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		hits = append(hits, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary index: %v", err)
		return
	}
	// The trie visits keys in lexical order; re-order by position.
	sort.Ints(hits)
	for _, i := range hits {
		fn(i)
	}
}
