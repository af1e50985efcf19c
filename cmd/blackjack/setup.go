package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
)

// load reads the config file and environment, then applies global flags
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Log.File = g.LogFile
	}
	if g.NoColor {
		cfg.UI.Color = false
	}
	return cfg, nil
}

// newLogger returns a logger writing to the configured file or stderr, and a
// func that releases it
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			if err := f.Close(); err != nil {
				log.Error("Failed to close log file", "error", err)
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn, nil
}

// resolveSeed returns the flag seed, else a configured non-zero seed, else a
// fresh random one
func resolveSeed(flag *int64, configured int64) int64 {
	switch {
	case flag != nil:
		return *flag
	case configured != 0:
		return configured
	default:
		return randutil.NewSeed()
	}
}
