package program

import (
	"context"
	"errors"

	"github.com/stellarlinkco/answerbench/internal/dataset"
	"github.com/stellarlinkco/answerbench/internal/metric"
)

// ErrEmptyValidationSet is returned by Evaluate when given no examples.
var ErrEmptyValidationSet = errors.New("program: validation set must be non-empty")

// Prediction records one evaluated example.
type Prediction struct {
	Question  string `json:"question"`
	Expected  string `json:"expected"`
	Predicted string `json:"predicted"`
	Correct   bool   `json:"correct"`
}

// Report aggregates an evaluation over a validation set.
type Report struct {
	Total       int          `json:"total"`
	Correct     int          `json:"correct"`
	Accuracy    float64      `json:"accuracy"`
	Predictions []Prediction `json:"predictions"`
}

// Program owns an ordered collection of modules. Run delegates to the
// primary module; the collection itself exists for registration and
// inspection. Registration order is preserved and duplicates are permitted.
type Program struct {
	modules []*Module
	primary *Module
}

// New creates a program with the given primary module, which is also
// registered as the first entry of the collection. A nil primary is allowed;
// Run will fail until one is registered.
func New(primary *Module) *Program {
	p := &Program{}
	if primary != nil {
		p.primary = primary
		p.Register(primary)
	}
	return p
}

// Register appends a module to the collection. The first registered module
// becomes the primary if none was set at construction.
func (p *Program) Register(m *Module) {
	if p == nil || m == nil {
		return
	}
	p.modules = append(p.modules, m)
	if p.primary == nil {
		p.primary = m
	}
}

// Modules returns the registered modules in registration order.
func (p *Program) Modules() []*Module {
	if p == nil {
		return nil
	}
	out := make([]*Module, len(p.modules))
	copy(out, p.modules)
	return out
}

// Run answers a single question by delegating to the primary module.
func (p *Program) Run(ctx context.Context, question string) (string, error) {
	if p == nil || p.primary == nil {
		return "", errors.New("program: no module registered")
	}
	return p.primary.Invoke(ctx, question)
}

// Evaluate runs every example in order and scores the predictions by exact,
// case-sensitive string equality. The predictor behind the module may match
// more loosely; the score never does.
func (p *Program) Evaluate(ctx context.Context, validation []dataset.Example) (*Report, error) {
	if p == nil {
		return nil, errors.New("program: nil program")
	}
	if ctx == nil {
		return nil, errors.New("program: nil context")
	}
	if len(validation) == 0 {
		return nil, ErrEmptyValidationSet
	}

	report := &Report{
		Total:       len(validation),
		Predictions: make([]Prediction, 0, len(validation)),
	}

	predicted := make([]string, 0, len(validation))
	expected := make([]string, 0, len(validation))
	for _, ex := range validation {
		answer, err := p.Run(ctx, ex.Question)
		if err != nil {
			return nil, err
		}

		correct := answer == ex.Answer
		if correct {
			report.Correct++
		}
		report.Predictions = append(report.Predictions, Prediction{
			Question:  ex.Question,
			Expected:  ex.Answer,
			Predicted: answer,
			Correct:   correct,
		})
		predicted = append(predicted, answer)
		expected = append(expected, ex.Answer)
	}

	acc, err := metric.Accuracy(predicted, expected)
	if err != nil {
		return nil, err
	}
	report.Accuracy = acc

	return report, nil
}
