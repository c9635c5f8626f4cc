package store

import (
	"context"
	"time"
)

// EvalWriter defines persistence for evaluation runs.
type EvalWriter interface {
	SaveEval(ctx context.Context, rec *EvalRecord) error
}

// EvalReader defines read access to evaluation history.
type EvalReader interface {
	GetEval(ctx context.Context, id string) (*EvalRecord, error)
	ListEvals(ctx context.Context, filter EvalFilter) ([]*EvalRecord, error)
}

// Store defines persistence for evaluation runs.
type Store interface {
	EvalWriter
	EvalReader
	Close() error
}

// EvalRecord stores one evaluation of a program against a validation set.
type EvalRecord struct {
	ID             string
	Dataset        string
	Provider       string
	SplitRatio     float64
	TrainSize      int
	ValidationSize int
	Correct        int
	Total          int
	Accuracy       float64
	StartedAt      time.Time
	FinishedAt     time.Time
	Predictions    []PredictionRecord // JSON serialized
}

// PredictionRecord stores a single evaluated example.
type PredictionRecord struct {
	Question  string `json:"question"`
	Expected  string `json:"expected"`
	Predicted string `json:"predicted"`
	Correct   bool   `json:"correct"`
}

// EvalFilter filters evaluation listings.
type EvalFilter struct {
	Dataset  string
	Provider string
	Since    time.Time
	Until    time.Time
	Limit    int
}
