// Package program composes predictor-backed modules and evaluates them
// against labeled examples.
package program

import (
	"context"
	"errors"
	"strings"

	"github.com/stellarlinkco/answerbench/internal/predictor"
)

// Signature names a module's input and output fields. It is documentation
// only: nothing at runtime enforces shapes against it.
type Signature struct {
	Input  string
	Output string
}

// DefaultSignature is the question-answering signature.
var DefaultSignature = Signature{Input: "question", Output: "answer"}

// Module wraps exactly one Predictor behind a declared signature. Invoke is
// a pure pass-through: no transformation, no caching, no retry.
type Module struct {
	name      string
	signature Signature
	predictor predictor.Predictor
}

// NewModule creates a module owning the given predictor. An empty name
// defaults to "qa"; a zero signature defaults to ("question", "answer").
func NewModule(name string, p predictor.Predictor, sig Signature) *Module {
	if strings.TrimSpace(name) == "" {
		name = "qa"
	}
	if sig == (Signature{}) {
		sig = DefaultSignature
	}
	return &Module{
		name:      name,
		signature: sig,
		predictor: p,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	if m == nil {
		return ""
	}
	return m.name
}

// Signature returns the declared input/output field names.
func (m *Module) Signature() Signature {
	if m == nil {
		return Signature{}
	}
	return m.signature
}

// Invoke delegates the question to the held predictor.
func (m *Module) Invoke(ctx context.Context, question string) (string, error) {
	if m == nil || m.predictor == nil {
		return "", errors.New("program: module has no predictor")
	}
	if ctx == nil {
		return "", errors.New("program: nil context")
	}
	return m.predictor.Answer(ctx, question)
}
