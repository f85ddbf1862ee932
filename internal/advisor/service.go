package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/minatbakat/internal/llm"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = errors.New("advisor disabled")

// Service writes counselor notes for participants without a matching
// profile.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advisor. A nil provider yields a disabled service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Enabled reports whether Advise can reach a provider.
func (s *Service) Enabled() bool {
	return s != nil && s.provider != nil
}

// Advise asks the provider for a counselor note.
func (s *Service) Advise(ctx context.Context, in Input) (*Advice, error) {
	if !s.Enabled() {
		return nil, ErrDisabled
	}
	ctx = llm.WithPurpose(ctx, llm.PurposeAdvice)

	reply, err := s.provider.Complete(ctx, llm.Prompt{
		System:      systemPrompt,
		User:        buildUserMessage(in),
		Schema:      AdviceSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out Advice
	if err := json.Unmarshal(reply.JSON, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}
	out.Summary = strings.TrimSpace(out.Summary)
	if out.Summary == "" {
		return nil, fmt.Errorf("advice response has empty summary")
	}

	return &out, nil
}

// Text renders the note as plain paragraphs for the result screen.
func (a *Advice) Text() string {
	var b strings.Builder
	b.WriteString(a.Summary)
	if len(a.Majors) > 0 {
		b.WriteString("\n\nJurusan yang bisa kamu lirik: ")
		b.WriteString(strings.Join(a.Majors, ", "))
		b.WriteString(".")
	}
	if a.NextStep != "" {
		b.WriteString("\n\nLangkah berikutnya: ")
		b.WriteString(a.NextStep)
	}
	return b.String()
}
