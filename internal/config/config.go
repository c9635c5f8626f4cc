package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

// DefaultFallbackAnswer is returned by the lookup predictor when no entry
// matches the question.
const DefaultFallbackAnswer = "Sorry, I couldn't find an answer in my knowledge base."

type Config struct {
	Dataset   DatasetConfig   `yaml:"dataset"`
	Predictor PredictorConfig `yaml:"predictor"`
	Storage   StorageConfig   `yaml:"storage"`
}

type DatasetConfig struct {
	Path       string  `yaml:"path,omitempty"` // Empty means the built-in sample dataset
	SplitRatio float64 `yaml:"split_ratio,omitempty"`
}

type PredictorConfig struct {
	DefaultProvider string                    `yaml:"default_provider,omitempty"`
	FallbackAnswer  string                    `yaml:"fallback_answer,omitempty"`
	Providers       map[string]ProviderConfig `yaml:"providers,omitempty"`
}

type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

type StorageConfig struct {
	Type string `yaml:"type,omitempty"` // "sqlite" or "memory"
	Path string `yaml:"path,omitempty"` // SQLite file path
}

// Default returns the configuration used when no config file exists: the
// built-in sample dataset, an 0.8 split, the lookup predictor, and an
// in-memory store.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadOrDefault loads the config at path, falling back to Default when the
// file does not exist. Any other read or parse failure is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return nil, err
}

func applyDefaults(cfg *Config) {
	if cfg.Predictor.Providers == nil {
		cfg.Predictor.Providers = make(map[string]ProviderConfig)
	}
	if strings.TrimSpace(cfg.Predictor.DefaultProvider) == "" {
		cfg.Predictor.DefaultProvider = "lookup"
	}
	if strings.TrimSpace(cfg.Predictor.FallbackAnswer) == "" {
		cfg.Predictor.FallbackAnswer = DefaultFallbackAnswer
	}
	if cfg.Dataset.SplitRatio == 0 {
		cfg.Dataset.SplitRatio = 0.8
	}
	if strings.TrimSpace(cfg.Storage.Type) == "" {
		cfg.Storage.Type = "memory"
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")); v != "" {
		p := cfg.Predictor.Providers["claude"]
		p.APIKey = v
		cfg.Predictor.Providers["claude"] = p
	} else if v := strings.TrimSpace(os.Getenv("ANTHROPIC_AUTH_TOKEN")); v != "" {
		p := cfg.Predictor.Providers["claude"]
		p.APIKey = v
		cfg.Predictor.Providers["claude"] = p
	}

	if v := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); v != "" {
		p := cfg.Predictor.Providers["openai"]
		p.APIKey = v
		cfg.Predictor.Providers["openai"] = p
	}
}
