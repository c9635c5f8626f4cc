package predictor

import (
	"context"
	"testing"

	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/dataset"
)

func TestLookupPredictor(t *testing.T) {
	t.Parallel()

	p := NewLookupPredictor(dataset.Sample().Examples, config.DefaultFallbackAnswer)

	{
		got, err := p.Answer(context.Background(), "What is the meaning of life?")
		if err != nil {
			t.Fatalf("Answer: %v", err)
		}
		if got != "42" {
			t.Fatalf("got %q, want 42", got)
		}
	}
	{
		// Matching is case-insensitive.
		got, err := p.Answer(context.Background(), "WHAT IS THE CAPITAL OF FRANCE?")
		if err != nil {
			t.Fatalf("Answer: %v", err)
		}
		if got != "Paris" {
			t.Fatalf("got %q, want Paris", got)
		}
	}
}

func TestLookupPredictorMiss(t *testing.T) {
	t.Parallel()

	p := NewLookupPredictor(dataset.Sample().Examples, config.DefaultFallbackAnswer)

	got, err := p.Answer(context.Background(), "What is the airspeed velocity of an unladen swallow?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != config.DefaultFallbackAnswer {
		t.Fatalf("miss: got %q, want fallback", got)
	}
}

func TestLookupPredictorFirstMatchWins(t *testing.T) {
	t.Parallel()

	entries := []dataset.Example{
		{Question: "Q?", Answer: "first"},
		{Question: "q?", Answer: "second"},
	}
	p := NewLookupPredictor(entries, "none")

	got, err := p.Answer(context.Background(), "Q?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "first" {
		t.Fatalf("got %q, want first entry in dataset order", got)
	}
}

func TestLookupPredictorCopiesEntries(t *testing.T) {
	t.Parallel()

	entries := []dataset.Example{{Question: "Q?", Answer: "A"}}
	p := NewLookupPredictor(entries, "none")
	entries[0].Answer = "mutated"

	got, err := p.Answer(context.Background(), "Q?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "A" {
		t.Fatalf("got %q, caller mutation leaked into predictor", got)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(NewLookupPredictor(nil, "none"))

	p, ok := r.Get("lookup")
	if !ok || p == nil {
		t.Fatalf("Get(lookup) ok=%v", ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Fatalf("Get(missing) ok=true")
	}
	// Lookup is case-insensitive on names.
	if _, ok := r.Get("  LOOKUP "); !ok {
		t.Fatalf("Get(LOOKUP) ok=false")
	}
}

func TestDefaultFromConfig(t *testing.T) {
	t.Parallel()

	{
		cfg := config.Default()
		p, err := DefaultFromConfig(cfg, dataset.Sample().Examples)
		if err != nil {
			t.Fatalf("DefaultFromConfig: %v", err)
		}
		if p.Name() != "lookup" {
			t.Fatalf("default provider = %q", p.Name())
		}
	}
	{
		cfg := config.Default()
		cfg.Predictor.DefaultProvider = "nope"
		if _, err := DefaultFromConfig(cfg, nil); err == nil {
			t.Fatalf("unknown default provider: expected error")
		}
	}
	{
		cfg := config.Default()
		cfg.Predictor.Providers["weird"] = config.ProviderConfig{}
		if _, err := NewRegistryFromConfig(cfg, nil); err == nil {
			t.Fatalf("unknown provider in config: expected error")
		}
	}
	{
		cfg := config.Default()
		cfg.Predictor.Providers["claude"] = config.ProviderConfig{APIKey: "k"}
		cfg.Predictor.Providers["openai"] = config.ProviderConfig{APIKey: "k"}
		reg, err := NewRegistryFromConfig(cfg, nil)
		if err != nil {
			t.Fatalf("NewRegistryFromConfig: %v", err)
		}
		if _, ok := reg.Get("claude"); !ok {
			t.Fatalf("claude not registered")
		}
		if _, ok := reg.Get("openai"); !ok {
			t.Fatalf("openai not registered")
		}
	}
}
