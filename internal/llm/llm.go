// Package llm is the thin completion layer behind the counselor note. A
// Provider turns one system + user prompt into one JSON reply, optionally
// constrained by a Schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider completes single-turn prompts.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (*Reply, error)
	Model() string
}

// Prompt is one request. When Schema is set the provider asks for native
// structured output and the reply is checked against it.
type Prompt struct {
	System      string
	User        string
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

// Reply is the provider's answer.
type Reply struct {
	JSON      json.RawMessage
	Usage     Usage
	Model     string
	Truncated bool
}

// Usage counts tokens for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Total is input plus output tokens.
func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }
