package store

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
)

// MemoryStore implements Store in process memory. Useful for the default
// configuration and for tests; nothing survives process exit.
type MemoryStore struct {
	mu    sync.RWMutex
	evals map[string]*EvalRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		evals: make(map[string]*EvalRecord),
	}
}

// SaveEval stores a copy of the record.
func (s *MemoryStore) SaveEval(ctx context.Context, rec *EvalRecord) error {
	if s == nil {
		return errors.New("store: nil memory store")
	}
	if ctx == nil {
		return errors.New("store: nil context")
	}
	if rec == nil {
		return errors.New("store: nil eval record")
	}
	id := strings.TrimSpace(rec.ID)
	if id == "" {
		return errors.New("store: empty eval id")
	}
	if rec.StartedAt.IsZero() || rec.FinishedAt.IsZero() {
		return errors.New("store: missing eval timestamps")
	}

	cp := *rec
	cp.Predictions = append([]PredictionRecord(nil), rec.Predictions...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evals[id] = &cp
	return nil
}

// GetEval loads an evaluation by id. Missing ids return sql.ErrNoRows so
// callers can treat both store types uniformly.
func (s *MemoryStore) GetEval(ctx context.Context, id string) (*EvalRecord, error) {
	if s == nil {
		return nil, errors.New("store: nil memory store")
	}
	if ctx == nil {
		return nil, errors.New("store: nil context")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("store: empty eval id")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.evals[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *rec
	cp.Predictions = append([]PredictionRecord(nil), rec.Predictions...)
	return &cp, nil
}

// ListEvals returns evaluations matching the filter, newest first.
func (s *MemoryStore) ListEvals(ctx context.Context, filter EvalFilter) ([]*EvalRecord, error) {
	if s == nil {
		return nil, errors.New("store: nil memory store")
	}
	if ctx == nil {
		return nil, errors.New("store: nil context")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*EvalRecord
	for _, rec := range s.evals {
		if v := strings.TrimSpace(filter.Dataset); v != "" && rec.Dataset != v {
			continue
		}
		if v := strings.TrimSpace(filter.Provider); v != "" && rec.Provider != v {
			continue
		}
		if !filter.Since.IsZero() && rec.StartedAt.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && rec.StartedAt.After(filter.Until) {
			continue
		}
		cp := *rec
		cp.Predictions = append([]PredictionRecord(nil), rec.Predictions...)
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
