package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/threecards/internal/config"
)

// loadConfig merges the config file, .env and THREECARDS_* variables
func loadConfig(g *Globals) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", g.Config, err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newGameLogger builds the charmbracelet logger handed to internal packages
func newGameLogger(w io.Writer, level string, structured bool) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := log.Options{
		Level:           lvl,
		ReportTimestamp: true,
	}
	if structured {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts), nil
}

// openLogFile opens path for appending
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
