// Package llm defines the text-generation contract shared by the provider
// adapters, plus a circuit breaker that guards any of them.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when a provider answers without text.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// Prompt is a single-shot generation request.
type Prompt struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// Generator produces text for a prompt. Implementations make exactly one
// upstream call per Generate.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}
