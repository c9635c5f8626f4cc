package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stellarlinkco/answerbench/internal/config"
)

const defaultSQLitePath = "answerbench.db"

// Open returns the store selected by the config's storage section.
func Open(cfg *config.Config) (Store, error) {
	if cfg == nil {
		return nil, errors.New("store: nil config")
	}

	typ := strings.ToLower(strings.TrimSpace(cfg.Storage.Type))
	switch typ {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		path := strings.TrimSpace(cfg.Storage.Path)
		if path == "" {
			path = defaultSQLitePath
		}
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("store: unknown storage type %q", cfg.Storage.Type)
	}
}
