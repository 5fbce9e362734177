package parse

import (
	"github.com/agext/levenshtein"
)

// Scorer rates the similarity of two strings on a normalized [0,1] scale.
// The section detector treats it as pluggable so the scoring algorithm can
// change without touching span construction.
type Scorer interface {
	Score(a, b string) float64
}

// LevenshteinScorer scores by normalized edit distance.
type LevenshteinScorer struct {
	params *levenshtein.Params
}

// NewLevenshteinScorer returns the default scorer.
func NewLevenshteinScorer() *LevenshteinScorer {
	return &LevenshteinScorer{params: levenshtein.NewParams()}
}

func (s *LevenshteinScorer) Score(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return levenshtein.Similarity(a, b, s.params)
}
