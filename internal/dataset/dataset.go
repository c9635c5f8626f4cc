package dataset

import (
	"errors"
	"fmt"
	"math"
)

// Example is a single labeled question/answer pair. Examples are immutable
// once constructed.
type Example struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Dataset is an ordered collection of examples. Order is significant: it
// defines both the train/validation split and lookup precedence.
type Dataset struct {
	Name     string    `yaml:"name"`
	Examples []Example `yaml:"examples"`
}

// DefaultSplitRatio is the training fraction used when none is configured.
const DefaultSplitRatio = 0.8

// ErrEmptyDataset is returned when an operation needs at least one example.
var ErrEmptyDataset = errors.New("dataset: empty dataset")

// Len returns the number of examples.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Examples)
}

// Split partitions the dataset into a training prefix and a validation
// suffix at floor(ratio * len). No shuffling: the order as given defines the
// split, so len(train) + len(validation) == len(dataset) always holds.
func (d *Dataset) Split(ratio float64) (train, validation []Example, err error) {
	if d == nil || len(d.Examples) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if ratio < 0 || ratio > 1 {
		return nil, nil, fmt.Errorf("dataset: split ratio must be between 0 and 1 (got %v)", ratio)
	}

	cut := int(math.Floor(ratio * float64(len(d.Examples))))
	return d.Examples[:cut], d.Examples[cut:], nil
}

// Sample returns the built-in three-example question answering dataset.
func Sample() *Dataset {
	return &Dataset{
		Name: "sample-qa",
		Examples: []Example{
			{Question: "What is the capital of France?", Answer: "Paris"},
			{Question: "What is the largest planet in our solar system?", Answer: "Jupiter"},
			{Question: "What is the meaning of life?", Answer: "42"},
		},
	}
}
