package predictor

import (
	"context"
	"strings"
)

// Predictor is a question-answering capability. Implementations must be safe
// for concurrent use and must not retain the question after returning.
//
// Lookup-style predictors are total: a question they cannot answer yields a
// fixed fallback string rather than an error, so a miss is indistinguishable
// from an answer. Network-backed predictors may return errors instead.
type Predictor interface {
	Name() string
	Answer(ctx context.Context, question string) (string, error)
}

// Registry stores predictors by name.
type Registry struct {
	predictors map[string]Predictor
}

func NewRegistry() *Registry {
	return &Registry{
		predictors: make(map[string]Predictor),
	}
}

func (r *Registry) Register(p Predictor) {
	if r == nil || p == nil {
		return
	}
	name := strings.ToLower(strings.TrimSpace(p.Name()))
	if name == "" {
		return
	}
	if r.predictors == nil {
		r.predictors = make(map[string]Predictor)
	}
	r.predictors[name] = p
}

func (r *Registry) Get(name string) (Predictor, bool) {
	if r == nil || r.predictors == nil {
		return nil, false
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, false
	}
	p, ok := r.predictors[name]
	return p, ok
}
