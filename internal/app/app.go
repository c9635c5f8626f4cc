// Package app wires datasets, predictors, programs and the store into the
// evaluation flow shared by the CLI and the HTTP API.
package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/dataset"
	"github.com/stellarlinkco/answerbench/internal/predictor"
	"github.com/stellarlinkco/answerbench/internal/program"
	"github.com/stellarlinkco/answerbench/internal/store"
)

// LoadDataset returns the dataset named by the config, or the built-in
// sample dataset when no path is configured.
func LoadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	path := strings.TrimSpace(cfg.Dataset.Path)
	if path == "" {
		return dataset.Sample(), nil
	}
	return dataset.LoadFromFile(path)
}

// NewProgram builds a single-module program around the config's default
// predictor, with the full dataset as the lookup knowledge base.
func NewProgram(cfg *config.Config, ds *dataset.Dataset) (*program.Program, predictor.Predictor, error) {
	if cfg == nil {
		return nil, nil, errors.New("app: nil config")
	}
	if ds == nil {
		return nil, nil, errors.New("app: nil dataset")
	}

	p, err := predictor.DefaultFromConfig(cfg, ds.Examples)
	if err != nil {
		return nil, nil, err
	}

	mod := program.NewModule("qa", p, program.DefaultSignature)
	return program.New(mod), p, nil
}

// EvalOutcome bundles the evaluation report with the persisted record.
type EvalOutcome struct {
	Record *store.EvalRecord
	Report *program.Report
}

// Evaluate splits the dataset, scores the validation suffix with the given
// program, and persists the outcome when a store is supplied.
func Evaluate(ctx context.Context, cfg *config.Config, ds *dataset.Dataset, prog *program.Program, providerName string, st store.Store) (*EvalOutcome, error) {
	if ctx == nil {
		return nil, errors.New("app: nil context")
	}
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	if ds == nil {
		return nil, errors.New("app: nil dataset")
	}
	if prog == nil {
		return nil, errors.New("app: nil program")
	}

	ratio := cfg.Dataset.SplitRatio
	if ratio == 0 {
		ratio = dataset.DefaultSplitRatio
	}

	train, validation, err := ds.Split(ratio)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now().UTC()
	report, err := prog.Evaluate(ctx, validation)
	if err != nil {
		return nil, err
	}
	finishedAt := time.Now().UTC()

	id, err := newEvalID()
	if err != nil {
		return nil, fmt.Errorf("app: new eval id: %w", err)
	}

	rec := &store.EvalRecord{
		ID:             id,
		Dataset:        ds.Name,
		Provider:       providerName,
		SplitRatio:     ratio,
		TrainSize:      len(train),
		ValidationSize: len(validation),
		Correct:        report.Correct,
		Total:          report.Total,
		Accuracy:       report.Accuracy,
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
		Predictions:    predictionRecords(report.Predictions),
	}

	if st != nil {
		if err := st.SaveEval(ctx, rec); err != nil {
			return nil, err
		}
	}

	return &EvalOutcome{Record: rec, Report: report}, nil
}

func predictionRecords(in []program.Prediction) []store.PredictionRecord {
	out := make([]store.PredictionRecord, 0, len(in))
	for _, p := range in {
		out = append(out, store.PredictionRecord{
			Question:  p.Question,
			Expected:  p.Expected,
			Predicted: p.Predicted,
			Correct:   p.Correct,
		})
	}
	return out
}

func newEvalID() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return fmt.Sprintf("eval_%s_%x", time.Now().UTC().Format("20060102T150405Z"), buf), nil
}
