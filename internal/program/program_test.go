package program

import (
	"context"
	"errors"
	"testing"

	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/dataset"
	"github.com/stellarlinkco/answerbench/internal/predictor"
)

func sampleProgram(t *testing.T) *Program {
	t.Helper()
	p := predictor.NewLookupPredictor(dataset.Sample().Examples, config.DefaultFallbackAnswer)
	return New(NewModule("qa", p, DefaultSignature))
}

func TestRun(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	got, err := prog.Run(context.Background(), "What is the meaning of life?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != "42" {
		t.Fatalf("got %q, want 42", got)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	first, err := prog.Run(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := prog.Run(context.Background(), "What is the capital of France?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if first != second {
		t.Fatalf("repeated Run differs: %q vs %q", first, second)
	}
}

func TestRunUnseenQuestion(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	got, err := prog.Run(context.Background(), "What is the airspeed velocity of an unladen swallow?")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got != config.DefaultFallbackAnswer {
		t.Fatalf("got %q, want the fallback answer", got)
	}
}

func TestEvaluateSampleDataset(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	_, validation, err := dataset.Sample().Split(0.8)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	report, err := prog.Evaluate(context.Background(), validation)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Accuracy != 1.0 {
		t.Fatalf("accuracy = %v, want 1.0", report.Accuracy)
	}
	if report.Total != 1 || report.Correct != 1 {
		t.Fatalf("got correct=%d total=%d", report.Correct, report.Total)
	}
	if len(report.Predictions) != 1 || report.Predictions[0].Predicted != "42" {
		t.Fatalf("predictions = %+v", report.Predictions)
	}
}

func TestEvaluateIsCaseSensitive(t *testing.T) {
	t.Parallel()

	// The predictor matches questions case-insensitively, but Evaluate
	// compares answers exactly: a lowercase prediction against a
	// capitalized expected answer must not count.
	kb := []dataset.Example{{Question: "What is the capital of France?", Answer: "paris"}}
	p := predictor.NewLookupPredictor(kb, config.DefaultFallbackAnswer)
	prog := New(NewModule("qa", p, DefaultSignature))

	validation := []dataset.Example{{Question: "What is the capital of France?", Answer: "Paris"}}
	report, err := prog.Evaluate(context.Background(), validation)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Accuracy != 0.0 {
		t.Fatalf("accuracy = %v, want 0.0 for case mismatch", report.Accuracy)
	}
}

func TestEvaluateEmptyValidationSet(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	if _, err := prog.Evaluate(context.Background(), nil); !errors.Is(err, ErrEmptyValidationSet) {
		t.Fatalf("got %v, want ErrEmptyValidationSet", err)
	}
}

func TestEvaluateAccuracyInRange(t *testing.T) {
	t.Parallel()

	prog := sampleProgram(t)

	validation := []dataset.Example{
		{Question: "What is the capital of France?", Answer: "Paris"},
		{Question: "Unknown question?", Answer: "nope"},
	}
	report, err := prog.Evaluate(context.Background(), validation)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Accuracy < 0 || report.Accuracy > 1 {
		t.Fatalf("accuracy out of range: %v", report.Accuracy)
	}
	if report.Accuracy != 0.5 {
		t.Fatalf("accuracy = %v, want 0.5", report.Accuracy)
	}
}

func TestRegisterOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	p := predictor.NewLookupPredictor(nil, "none")
	m1 := NewModule("first", p, DefaultSignature)
	m2 := NewModule("second", p, DefaultSignature)

	prog := New(m1)
	prog.Register(m2)
	prog.Register(m1) // duplicates are permitted

	mods := prog.Modules()
	if len(mods) != 3 {
		t.Fatalf("len(modules) = %d, want 3", len(mods))
	}
	if mods[0].Name() != "first" || mods[1].Name() != "second" || mods[2].Name() != "first" {
		t.Fatalf("registration order not preserved: %v, %v, %v",
			mods[0].Name(), mods[1].Name(), mods[2].Name())
	}

	// Run still delegates to the primary module regardless of later
	// registrations.
	if _, err := prog.Run(context.Background(), "anything"); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunWithoutModules(t *testing.T) {
	t.Parallel()

	prog := New(nil)
	if _, err := prog.Run(context.Background(), "q"); err == nil {
		t.Fatalf("expected error for program without modules")
	}
}

func TestModuleSignature(t *testing.T) {
	t.Parallel()

	p := predictor.NewLookupPredictor(nil, "none")

	m := NewModule("", p, Signature{})
	if m.Name() != "qa" {
		t.Fatalf("default name = %q", m.Name())
	}
	if sig := m.Signature(); sig.Input != "question" || sig.Output != "answer" {
		t.Fatalf("default signature = %+v", sig)
	}

	custom := NewModule("custom", p, Signature{Input: "prompt", Output: "completion"})
	if sig := custom.Signature(); sig.Input != "prompt" || sig.Output != "completion" {
		t.Fatalf("custom signature = %+v", sig)
	}
}
