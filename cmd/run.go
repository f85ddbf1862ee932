package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/app"
	"github.com/abhisek/minatbakat/internal/logging"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, err := logging.ForTUI(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting quiz",
		zap.String("content", describeContent()),
		zap.Int("riasec_code_length", int(cfg.RIASECCodeLength)),
		zap.Bool("webhook", cfg.WebhookURL != ""),
	)

	return app.Run(app.Options{
		Source:     newSource(),
		CodeLength: cfg.RIASECCodeLength,
		Notifier:   newNotifier(logger, nil),
		Advisor:    newAdvisor(cmd.Context(), logger),
		Logger:     logger,
	})
}
