// Package search implements the tiered species-name matcher. A query
// is classified against the vocabulary in three tiers, prefix over
// substring over fuzzy, and ties within a tier break on vocabulary
// order. The whole pass is pure computation: no input errors, an empty
// result is a normal outcome.
package search

import (
	"strings"

	"github.com/hmeline/birdserve/pkg/vocab"
)

// Tier classifies how a term matched the query. Lower values rank higher.
type Tier int

const (
	TierPrefix Tier = iota
	TierSubstring
	TierFuzzy
)

func (t Tier) String() string {
	switch t {
	case TierPrefix:
		return "prefix"
	case TierSubstring:
		return "substring"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "unknown"
	}
}

// Suggestion pairs a canonical term with the tier it matched in.
// Recomputed per query, never persisted.
type Suggestion struct {
	Term string
	Tier Tier
}

// Limits holds the matcher's caps and thresholds. Zero values fall
// back to the defaults so a partially filled struct stays usable.
type Limits struct {
	// MaxResults caps the combined suggestion list.
	MaxResults int
	// FuzzyCap caps the fuzzy tier before concatenation. Applied
	// separately from MaxResults so result composition does not shift
	// when prefix and substring matches already fill the list.
	FuzzyCap int
	// ShortQueryLen is the longest query still considered short.
	ShortQueryLen int
	// ShortQueryDistance and LongQueryDistance are the max edit
	// distances for short and long queries respectively.
	ShortQueryDistance int
	LongQueryDistance  int
}

// DefaultLimits returns the standard matcher limits.
func DefaultLimits() Limits {
	return Limits{
		MaxResults:         10,
		FuzzyCap:           5,
		ShortQueryLen:      6,
		ShortQueryDistance: 2,
		LongQueryDistance:  3,
	}
}

func (l Limits) withDefaults() Limits {
	d := DefaultLimits()
	if l.MaxResults <= 0 {
		l.MaxResults = d.MaxResults
	}
	if l.FuzzyCap <= 0 {
		l.FuzzyCap = d.FuzzyCap
	}
	if l.ShortQueryLen <= 0 {
		l.ShortQueryLen = d.ShortQueryLen
	}
	if l.ShortQueryDistance <= 0 {
		l.ShortQueryDistance = d.ShortQueryDistance
	}
	if l.LongQueryDistance <= 0 {
		l.LongQueryDistance = d.LongQueryDistance
	}
	return l
}

// Searcher matches queries against one vocabulary. Safe for concurrent
// use: the vocabulary is immutable and Search keeps no state between calls.
type Searcher struct {
	vocab  *vocab.Vocabulary
	limits Limits
}

// NewSearcher creates a Searcher with default limits.
func NewSearcher(v *vocab.Vocabulary) *Searcher {
	return NewSearcherWithLimits(v, DefaultLimits())
}

// NewSearcherWithLimits creates a Searcher with custom limits.
func NewSearcherWithLimits(v *vocab.Vocabulary, limits Limits) *Searcher {
	return &Searcher{vocab: v, limits: limits.withDefaults()}
}

// Limits returns the limits the searcher runs with.
func (s *Searcher) Limits() Limits {
	return s.limits
}

// Search returns ranked suggestions for a live query. Leading and
// trailing whitespace is ignored; a blank query yields nil. Each term
// appears at most once, classified into its best tier only.
func (s *Searcher) Search(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	maxDist := s.limits.ShortQueryDistance
	if len(q) > s.limits.ShortQueryLen {
		maxDist = s.limits.LongQueryDistance
	}

	classified := make([]bool, s.vocab.Len())
	results := make([]Suggestion, 0, s.limits.MaxResults)

	// Prefix tier, via the vocabulary index.
	s.vocab.VisitPrefix(q, func(i int) {
		classified[i] = true
		results = append(results, Suggestion{Term: s.vocab.At(i).Display, Tier: TierPrefix})
	})

	// Substring tier: contains the query but does not start with it.
	for i := 0; i < s.vocab.Len(); i++ {
		if classified[i] {
			continue
		}
		if strings.Contains(s.vocab.At(i).Lower, q) {
			classified[i] = true
			results = append(results, Suggestion{Term: s.vocab.At(i).Display, Tier: TierSubstring})
		}
	}

	// Fuzzy tier: the whole query against individual term tokens, never
	// against the whole name. "nothern" is one edit from the token
	// "northern" but several from "northern cardinal".
	fuzzyCount := 0
	for i := 0; i < s.vocab.Len() && fuzzyCount < s.limits.FuzzyCap; i++ {
		if classified[i] {
			continue
		}
		for _, token := range s.vocab.At(i).Tokens {
			if Levenshtein(q, token) <= maxDist {
				results = append(results, Suggestion{Term: s.vocab.At(i).Display, Tier: TierFuzzy})
				fuzzyCount++
				break
			}
		}
	}

	if len(results) > s.limits.MaxResults {
		results = results[:s.limits.MaxResults]
	}
	return results
}
