// Package logging builds the zap logger for each command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/minatbakat/internal/config"
)

// Options selects where and how verbosely to log.
type Options struct {
	// File receives JSON log lines. Empty means stderr.
	File    string
	Verbose bool
}

// New builds a production JSON logger. Debug level is enabled by Verbose.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !opts.Verbose

	if opts.File != "" {
		if err := config.EnsureDir(opts.File); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ForTUI logs to file, or to DefaultLogPath when file is empty, since the
// terminal belongs to the UI.
func ForTUI(file string, verbose bool) (*zap.Logger, error) {
	if file == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			return nil, err
		}
		file = p
	}
	return New(Options{File: file, Verbose: verbose})
}
