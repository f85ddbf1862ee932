package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/minatbakat/internal/config"
	"github.com/abhisek/minatbakat/internal/logging"
	"github.com/abhisek/minatbakat/internal/metrics"
	"github.com/abhisek/minatbakat/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the quiz content and scoring API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: cfg.Verbose})
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err := metrics.New(reg)
		if err != nil {
			return err
		}

		n := newNotifier(logger, m)
		defer n.Wait()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		src := newSource()
		nq, np, err := server.Preflight(ctx, src)
		if err != nil {
			return fmt.Errorf("content check: %w", err)
		}
		logger.Info("content ready",
			zap.String("content", describeContent()),
			zap.Int("questions", nq),
			zap.Int("profiles", np),
		)

		srv := server.New(server.Options{
			Source:     src,
			CodeLength: cfg.RIASECCodeLength,
			Notifier:   n,
			Metrics:    m,
			Gatherer:   reg,
			Logger:     logger,
			Debug:      cfg.Verbose,

			CORSOrigins: cfg.CORSOrigins,
		})
		return srv.Run(ctx, cfg.Listen)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":8080", "Address to listen on")
	serveCmd.Flags().StringSlice("cors-origin", nil, "Browser origin allowed to call the API (repeatable, \"*\" for any)")
	if err := v.BindPFlag(config.KeyListen, serveCmd.Flags().Lookup("listen")); err != nil {
		panic(err)
	}
	if err := v.BindPFlag(config.KeyCORSOrigins, serveCmd.Flags().Lookup("cors-origin")); err != nil {
		panic(err)
	}
}
