package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/advisor"
	"github.com/abhisek/minatbakat/internal/content"
	"github.com/abhisek/minatbakat/internal/llm"
	"github.com/abhisek/minatbakat/internal/metrics"
	"github.com/abhisek/minatbakat/internal/notify"
)

const contentTimeout = 15 * time.Second

// newSource opens the configured content location.
func newSource() content.Source {
	return content.Open(cfg.Content, &http.Client{Timeout: contentTimeout})
}

// newNotifier returns the webhook notifier, disabled when no URL is set.
func newNotifier(logger *zap.Logger, m *metrics.Metrics) *notify.Notifier {
	n := notify.New(cfg.WebhookURL, cfg.WebhookTimeout, logger)
	n.Observe = m.RecordNotification
	return n
}

// newAdvisor builds the counselor service from the LLM environment. It
// returns nil when the feature is off or no provider is configured; the
// quiz works without it.
func newAdvisor(ctx context.Context, logger *zap.Logger) *advisor.Service {
	if !cfg.Advisor {
		return nil
	}
	llmCfg, ok := llm.Resolve(os.Getenv)
	if !ok {
		logger.Debug("no llm provider configured, advisor disabled")
		return nil
	}
	provider, err := llm.New(ctx, llmCfg, logger)
	if err != nil {
		logger.Warn("llm provider unavailable, advisor disabled", zap.Error(err))
		return nil
	}
	logger.Info("advisor enabled",
		zap.String("provider", llmCfg.Provider),
		zap.String("model", provider.Model()),
	)
	return advisor.NewService(provider, advisor.DefaultConfig())
}

// describeContent is a one-line summary of where content comes from.
func describeContent() string {
	if cfg.Content == "" || cfg.Content == "embedded" {
		return "embedded"
	}
	return fmt.Sprintf("%q", cfg.Content)
}
