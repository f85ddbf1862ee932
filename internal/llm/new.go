package llm

import (
	"context"

	"go.uber.org/zap"
)

// New builds the provider described by cfg, wrapped as
// retry → logging → vendor so every attempt is logged. The stub provider
// comes back bare with an empty script.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Model = ResolveModel(cfg.Model)

	var base Provider
	switch cfg.Provider {
	case ProviderStub:
		return NewStub(), nil
	case ProviderAnthropic:
		base = newAnthropic(cfg)
	case ProviderGemini:
		g, err := newGemini(ctx, cfg)
		if err != nil {
			return nil, err
		}
		base = g
	default:
		base = newOpenAI(cfg)
	}
	return WithRetry(WithLogging(base, cfg.Provider, logger), cfg.Backoff, cfg.Timeout), nil
}
