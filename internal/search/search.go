package search

import (
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy match against a todo item.
type Result struct {
	Index          int // 0-based position in the list
	Text           string
	MatchedIndexes []int
	Score          int
}

// FuzzySearchItems searches items using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchItems(items []string, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, items)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Index:          m.Index,
			Text:           m.Str,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// Best returns the best matching item index, or false when nothing matches.
func Best(items []string, query string) (int, bool) {
	results := FuzzySearchItems(items, query)
	if len(results) == 0 {
		return 0, false
	}
	return results[0].Index, true
}
