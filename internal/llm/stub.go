package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// StubReply is one scripted answer for a Stub.
type StubReply struct {
	JSON  json.RawMessage
	Usage Usage
	Err   error
}

// Stub is an offline Provider that plays back scripted replies in order
// and records every prompt. Once the script runs out it reports the
// provider as unavailable.
type Stub struct {
	mu      sync.Mutex
	script  []StubReply
	prompts []Prompt
}

// NewStub returns a Stub that will answer with replies.
func NewStub(replies ...StubReply) *Stub {
	return &Stub{script: replies}
}

func (s *Stub) Model() string { return "stub" }

func (s *Stub) Complete(_ context.Context, pr Prompt) (*Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prompts = append(s.prompts, pr)
	if len(s.script) == 0 {
		return nil, unavailable(nil)
	}
	next := s.script[0]
	s.script = s.script[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return finish(pr, &Reply{JSON: next.JSON, Usage: next.Usage, Model: "stub"})
}

// Prompts returns a copy of every prompt received so far.
func (s *Stub) Prompts() []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Prompt(nil), s.prompts...)
}

// Calls is len(Prompts()).
func (s *Stub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}
