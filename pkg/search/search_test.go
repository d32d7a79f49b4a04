package search

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hmeline/birdserve/pkg/vocab"
)

func testVocabulary() *vocab.Vocabulary {
	return vocab.New([]string{
		"American Robin",
		"Bald Eagle",
		"Blue Grosbeak",
		"Blue Jay",
		"Eastern Bluebird",
		"Great Blue Heron",
		"Northern Cardinal",
		"Northern Flicker",
		"Scarlet Tanager",
		"Wood Thrush",
	})
}

// querying with a term itself must put that term first, in the prefix tier
func TestSelfQueryRanksFirst(t *testing.T) {
	v := testVocabulary()
	s := NewSearcher(v)

	for i := 0; i < v.Len(); i++ {
		term := v.At(i).Display
		t.Run(term, func(t *testing.T) {
			results := s.Search(term)
			if len(results) == 0 {
				t.Fatalf("No results for %q", term)
			}
			if results[0].Term != term || results[0].Tier != TierPrefix {
				t.Errorf("Expected %q in prefix tier at position 0, got %+v", term, results[0])
			}
		})
	}
}

// prefix matches come first in vocabulary order, then substring matches;
// a term containing the query but not starting with it never lands in prefix
func TestTierOrdering(t *testing.T) {
	s := NewSearcher(testVocabulary())

	expected := []Suggestion{
		{Term: "Blue Grosbeak", Tier: TierPrefix},
		{Term: "Blue Jay", Tier: TierPrefix},
		{Term: "Eastern Bluebird", Tier: TierSubstring},
		{Term: "Great Blue Heron", Tier: TierSubstring},
	}

	for _, query := range []string{"blue", "Blue", "BLUE", "  blue  "} {
		results := s.Search(query)
		if !reflect.DeepEqual(results, expected) {
			t.Errorf("Query %q: expected %+v, got %+v", query, expected, results)
		}
	}
}

// the fuzzy tier compares the whole query against individual name tokens
func TestFuzzyMisspelledQuery(t *testing.T) {
	s := NewSearcher(testVocabulary())

	// "nothern" is 7 chars, so max edit distance is 3; the token
	// "northern" sits at distance 1.
	results := s.Search("Nothern")

	expected := []Suggestion{
		{Term: "Northern Cardinal", Tier: TierFuzzy},
		{Term: "Northern Flicker", Tier: TierFuzzy},
	}
	if !reflect.DeepEqual(results, expected) {
		t.Errorf("Expected %+v, got %+v", expected, results)
	}
}

// blank queries produce an empty result, never an error
func TestBlankQueries(t *testing.T) {
	s := NewSearcher(testVocabulary())

	for _, query := range []string{"", "   ", "\t  \n"} {
		if results := s.Search(query); len(results) != 0 {
			t.Errorf("Query %q: expected no results, got %+v", query, results)
		}
	}
}

// a query with no lexical overlap yields nothing at all
func TestGibberishQuery(t *testing.T) {
	s := NewSearcher(testVocabulary())

	for _, query := range []string{"zzzzzzzzz", "qqqq", "07731"} {
		if results := s.Search(query); len(results) != 0 {
			t.Errorf("Query %q: expected no results, got %+v", query, results)
		}
	}
}

// max edit distance is 2 for queries up to 6 chars and 3 from 7 on
func TestEditDistanceBoundary(t *testing.T) {
	s := NewSearcher(vocab.New([]string{"Monday"}))

	// 7-char query, distance 3 from "monday": allowed.
	if results := s.Search("mondxxx"); len(results) != 1 || results[0].Tier != TierFuzzy {
		t.Errorf("7-char query at distance 3 should match, got %+v", results)
	}
	// 6-char query, distance 3: over the limit of 2.
	if results := s.Search("monxxx"); len(results) != 0 {
		t.Errorf("6-char query at distance 3 should not match, got %+v", results)
	}
	// 6-char query, distance 2: allowed.
	if results := s.Search("mondxx"); len(results) != 1 || results[0].Tier != TierFuzzy {
		t.Errorf("6-char query at distance 2 should match, got %+v", results)
	}
}

// the fuzzy tier caps at five candidates, in vocabulary order
func TestFuzzyCap(t *testing.T) {
	names := make([]string, 7)
	for i := range names {
		names[i] = fmt.Sprintf("Site%02d Warbler", i+1)
	}
	s := NewSearcher(vocab.New(names))

	results := s.Search("warblr")
	if len(results) != 5 {
		t.Fatalf("Expected 5 fuzzy results, got %d: %+v", len(results), results)
	}
	for i, r := range results {
		if r.Tier != TierFuzzy {
			t.Errorf("Result %d: expected fuzzy tier, got %v", i, r.Tier)
		}
		if r.Term != names[i] {
			t.Errorf("Result %d: expected %q (vocabulary order), got %q", i, names[i], r.Term)
		}
	}
}

// the combined list truncates at ten even when one tier overflows it
func TestCombinedCap(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("Blue Site%02d", i+1)
	}
	s := NewSearcher(vocab.New(names))

	results := s.Search("blue")
	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Tier != TierPrefix || r.Term != names[i] {
			t.Errorf("Result %d: expected %q in prefix tier, got %+v", i, names[i], r)
		}
	}
}

// invariants over the builtin vocabulary: bounded and duplicate-free
func TestBuiltinInvariants(t *testing.T) {
	s := NewSearcher(vocab.Builtin())

	for _, query := range []string{"blue", "warbler", "a", "north", "sparow", "w", "Nothern"} {
		results := s.Search(query)
		if len(results) > 10 {
			t.Errorf("Query %q: %d results exceeds cap", query, len(results))
		}
		seen := make(map[string]bool, len(results))
		for _, r := range results {
			if seen[r.Term] {
				t.Errorf("Query %q: duplicate term %q", query, r.Term)
			}
			seen[r.Term] = true
		}
	}
}

// zero-valued limits fall back to the defaults
func TestLimitsDefaults(t *testing.T) {
	s := NewSearcherWithLimits(testVocabulary(), Limits{})
	if got := s.Limits(); !reflect.DeepEqual(got, DefaultLimits()) {
		t.Errorf("Expected default limits, got %+v", got)
	}
}
