package dataset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads and validates a dataset from a YAML file.
func LoadFromFile(path string) (*Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %q: %w", path, err)
	}

	var d Dataset
	if err := yaml.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("dataset: parse %q: %w", path, err)
	}
	if err := Validate(&d); err != nil {
		return nil, fmt.Errorf("dataset: validate %q: %w", path, err)
	}

	return &d, nil
}

// Validate checks a dataset for consistency.
func Validate(d *Dataset) error {
	if d == nil {
		return fmt.Errorf("nil dataset")
	}
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("dataset: missing name")
	}
	if len(d.Examples) == 0 {
		return fmt.Errorf("dataset: no examples")
	}

	for i, ex := range d.Examples {
		if strings.TrimSpace(ex.Question) == "" {
			return fmt.Errorf("examples[%d]: missing question", i)
		}
	}
	return nil
}
