package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Predictor.DefaultProvider != "lookup" {
		t.Fatalf("default provider = %q", cfg.Predictor.DefaultProvider)
	}
	if cfg.Predictor.FallbackAnswer != DefaultFallbackAnswer {
		t.Fatalf("fallback = %q", cfg.Predictor.FallbackAnswer)
	}
	if cfg.Dataset.SplitRatio != 0.8 {
		t.Fatalf("split ratio = %v", cfg.Dataset.SplitRatio)
	}
	if cfg.Storage.Type != "memory" {
		t.Fatalf("storage type = %q", cfg.Storage.Type)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
dataset:
  path: datasets/sample.yaml
  split_ratio: 0.5
predictor:
  default_provider: claude
  providers:
    claude:
      api_key: file-key
      model: claude-sonnet-4-5-20250929
storage:
  type: sqlite
  path: out/test.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset.Path != "datasets/sample.yaml" || cfg.Dataset.SplitRatio != 0.5 {
		t.Fatalf("dataset config = %+v", cfg.Dataset)
	}
	if cfg.Predictor.DefaultProvider != "claude" {
		t.Fatalf("default provider = %q", cfg.Predictor.DefaultProvider)
	}
	if cfg.Predictor.FallbackAnswer != DefaultFallbackAnswer {
		t.Fatalf("fallback not defaulted: %q", cfg.Predictor.FallbackAnswer)
	}
	if cfg.Storage.Type != "sqlite" || cfg.Storage.Path != "out/test.db" {
		t.Fatalf("storage config = %+v", cfg.Storage)
	}
}

func TestLoadErrors(t *testing.T) {
	{
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("missing file: expected error")
		}
	}
	{
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("dataset: ["), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("bad yaml: expected error")
		}
	}
}

func TestLoadOrDefault(t *testing.T) {
	{
		cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadOrDefault on missing file: %v", err)
		}
		if cfg.Predictor.DefaultProvider != "lookup" {
			t.Fatalf("default provider = %q", cfg.Predictor.DefaultProvider)
		}
	}
	{
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("storage: ["), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Fatalf("parse failure must still error")
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-anthropic")
	t.Setenv("OPENAI_API_KEY", "env-openai")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("predictor:\n  default_provider: lookup\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Predictor.Providers["claude"].APIKey != "env-anthropic" {
		t.Fatalf("claude key = %q", cfg.Predictor.Providers["claude"].APIKey)
	}
	if cfg.Predictor.Providers["openai"].APIKey != "env-openai" {
		t.Fatalf("openai key = %q", cfg.Predictor.Providers["openai"].APIKey)
	}
}
