package main

import (
	"github.com/lox/threecards/internal/game"
	"github.com/lox/threecards/internal/tui"
)

type PlayCmd struct {
	Seed int64 `help:"Random seed for reproducible shuffles (0 uses the config or the clock)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newGameLogger(logFile, cfg.LogLevel, g.JSONLogs)
	if err != nil {
		return err
	}

	opts := []game.SessionOption{game.WithLogger(logger)}
	seed := cfg.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	if seed != 0 {
		opts = append(opts, game.WithSeed(seed))
	}

	session := game.NewSession(opts...)
	logger.Info("Starting interactive game", "session", session.ID(), "seed", seed)

	return tui.Run(session, cfg.PlayerNames(), logger)
}
