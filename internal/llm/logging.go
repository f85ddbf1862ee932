package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type logged struct {
	next     Provider
	provider string
	logger   *zap.Logger
}

// WithLogging writes one zap line per completion: Debug on success with
// token counts and estimated cost, Warn on failure.
func WithLogging(p Provider, provider string, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logged{next: p, provider: provider, logger: logger.Named("llm")}
}

func (l *logged) Model() string { return l.next.Model() }

func (l *logged) Complete(ctx context.Context, pr Prompt) (*Reply, error) {
	start := time.Now()
	reply, err := l.next.Complete(ctx, pr)

	fields := []zap.Field{
		zap.String("provider", l.provider),
		zap.String("model", l.next.Model()),
		zap.String("purpose", PurposeFrom(ctx)),
		zap.Duration("latency", time.Since(start)),
	}
	if pr.Schema != nil {
		fields = append(fields, zap.String("schema", pr.Schema.Name))
	}
	if err != nil {
		l.logger.Warn("llm request failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	fields = append(fields,
		zap.String("served_by", reply.Model),
		zap.Int("input_tokens", reply.Usage.InputTokens),
		zap.Int("output_tokens", reply.Usage.OutputTokens),
	)
	if price, ok := PriceOf(reply.Model); ok {
		fields = append(fields, zap.Float64("cost_usd", price.Cost(reply.Usage)))
	}
	l.logger.Debug("llm request", fields...)
	return reply, nil
}
