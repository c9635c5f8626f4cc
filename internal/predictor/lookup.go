package predictor

import (
	"context"
	"strings"

	"github.com/stellarlinkco/answerbench/internal/dataset"
)

// LookupPredictor answers questions by a case-insensitive exact-match scan
// over its knowledge base, in order. The first matching entry wins. A miss
// returns the fallback string, never an error.
type LookupPredictor struct {
	entries  []dataset.Example
	fallback string
}

// NewLookupPredictor builds a predictor over the given knowledge base. The
// entries slice is copied so later mutation by the caller cannot change
// lookup results.
func NewLookupPredictor(entries []dataset.Example, fallback string) *LookupPredictor {
	kb := make([]dataset.Example, len(entries))
	copy(kb, entries)
	return &LookupPredictor{
		entries:  kb,
		fallback: fallback,
	}
}

func (p *LookupPredictor) Name() string {
	return "lookup"
}

// Answer scans the knowledge base for a case-insensitive match of question.
// It consults the FULL knowledge base, not just a training prefix, matching
// the reference behavior this predictor reproduces.
func (p *LookupPredictor) Answer(ctx context.Context, question string) (string, error) {
	if p == nil {
		return "", nil
	}
	for _, ex := range p.entries {
		if strings.EqualFold(question, ex.Question) {
			return ex.Answer, nil
		}
	}
	return p.fallback, nil
}
