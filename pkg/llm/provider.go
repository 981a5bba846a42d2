package llm

import (
	"context"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	JSONOutput  bool   // Constrain the model to emit a single JSON object
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithJSONOutput asks the provider for constrained JSON decoding. Callers
// must still parse the result defensively; the constraint is best effort.
func WithJSONOutput() Option {
	return func(o *Options) {
		o.JSONOutput = true
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// Complete is the engine-facing convenience: one system instruction, one user
// instruction, optionally constrained to JSON. Each call is stateless.
func Complete(ctx context.Context, p LLMProvider, system, user string, wantJSON bool) (string, error) {
	history := []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	if wantJSON {
		return p.Chat(ctx, history, WithJSONOutput())
	}
	return p.Chat(ctx, history)
}
