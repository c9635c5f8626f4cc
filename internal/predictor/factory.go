package predictor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stellarlinkco/answerbench/internal/config"
	"github.com/stellarlinkco/answerbench/internal/dataset"
)

// NewRegistryFromConfig builds a registry holding every configured predictor.
// The lookup predictor is always present, backed by the given knowledge base.
func NewRegistryFromConfig(cfg *config.Config, kb []dataset.Example) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("predictor: nil config")
	}

	fallback := strings.TrimSpace(cfg.Predictor.FallbackAnswer)
	if fallback == "" {
		fallback = config.DefaultFallbackAnswer
	}

	r := NewRegistry()
	r.Register(NewLookupPredictor(kb, fallback))

	for name, pcfg := range cfg.Predictor.Providers {
		key := strings.ToLower(strings.TrimSpace(name))
		switch key {
		case "", "lookup":
			continue
		case "claude", "anthropic":
			r.Register(NewClaudePredictor(pcfg.APIKey, pcfg.BaseURL, pcfg.Model))
		case "openai":
			r.Register(NewOpenAIPredictor(pcfg.APIKey, pcfg.BaseURL, pcfg.Model))
		default:
			return nil, fmt.Errorf("predictor: unknown provider %q", name)
		}
	}

	return r, nil
}

// DefaultFromConfig returns the predictor named by the config's
// default_provider.
func DefaultFromConfig(cfg *config.Config, kb []dataset.Example) (Predictor, error) {
	if cfg == nil {
		return nil, errors.New("predictor: nil config")
	}
	reg, err := NewRegistryFromConfig(cfg, kb)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Predictor.DefaultProvider)
	if name == "" {
		name = "lookup"
	}
	if p, ok := reg.Get(name); ok {
		return p, nil
	}

	available := make([]string, 0, len(reg.predictors))
	for k := range reg.predictors {
		available = append(available, k)
	}
	sort.Strings(available)
	return nil, fmt.Errorf("predictor: default provider %q not configured (available: %s)", name, strings.Join(available, ", "))
}
