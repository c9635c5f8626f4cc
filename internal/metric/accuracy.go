// Package metric provides scoring functions for prediction results.
package metric

import (
	"errors"
	"fmt"
)

// ErrEmptySet is returned when accuracy is requested over zero predictions.
var ErrEmptySet = errors.New("metric: empty prediction set")

// Accuracy returns the fraction of predictions exactly equal to their
// expected strings. Comparison is case-sensitive and whitespace-sensitive;
// no normalization is applied. The result lies in [0, 1].
func Accuracy(predictions, expected []string) (float64, error) {
	if len(predictions) == 0 {
		return 0, ErrEmptySet
	}
	if len(predictions) != len(expected) {
		return 0, fmt.Errorf("metric: %d predictions vs %d expected", len(predictions), len(expected))
	}

	correct := 0
	for i := range predictions {
		if predictions[i] == expected[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(predictions)), nil
}
