package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lox/threecards/cmd/threecards/shared"
	"github.com/lox/threecards/internal/evaluator"
	"github.com/lox/threecards/internal/game"
	"github.com/lox/threecards/internal/simulator"
	"github.com/lox/threecards/internal/statistics"
	"github.com/pterm/pterm"
)

type SimulateCmd struct {
	Games   int    `short:"n" help:"Number of games to play (default from config)"`
	Workers int    `short:"w" help:"Concurrent workers (0 uses the config or GOMAXPROCS)"`
	Seed    int64  `help:"Master seed (0 uses the config or the clock)"`
	Output  string `short:"o" help:"Write a JSON report to this file"`
	Quiet   bool   `short:"q" help:"Hide the progress indicator"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	logger := shared.SetupCLILogger(g.Debug, g.JSONLogs)

	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}

	games := cfg.Simulation.Games
	if c.Games > 0 {
		games = c.Games
	}
	workers := cfg.Simulation.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	seed := cfg.Seed
	if c.Seed != 0 {
		seed = c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameLogger, err := newGameLogger(os.Stderr, cfg.LogLevel, g.JSONLogs)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandlerWithLogger(logger)
	defer cancel()

	logger.Info().
		Int("games", games).
		Int("workers", workers).
		Int64("seed", seed).
		Msg("Starting simulation")

	simConfig := simulator.Config{
		Games:   games,
		Workers: workers,
		Seed:    seed,
		Logger:  gameLogger,
	}
	if !c.Quiet {
		simConfig.Progress = NewSimpleProgressMonitor(os.Stderr)
	}

	start := time.Now()
	stats, err := simulator.New(simConfig).Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	duration := time.Since(start)

	logger.Info().
		Int("rounds", stats.Rounds).
		Dur("duration", duration).
		Msg("Simulation complete")

	if err := renderReport(os.Stdout, stats, cfg.PlayerNames()); err != nil {
		return err
	}

	if c.Output != "" {
		report := simulator.NewReport(stats, seed, duration, time.Now().UTC())
		if err := report.WriteFile(c.Output); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info().Str("file", c.Output).Msg("Report written")
	}
	return nil
}

// reportTable lays out per-seat statistics as rows for pterm
func reportTable(stats *statistics.Statistics, names [game.NumPlayers]string) pterm.TableData {
	data := pterm.TableData{
		{"", names[game.Player1], names[game.Player2]},
		{"Wins",
			fmt.Sprintf("%d (%.1f%%)", stats.Wins[game.Player1], 100*stats.WinRate(game.Player1)),
			fmt.Sprintf("%d (%.1f%%)", stats.Wins[game.Player2], 100*stats.WinRate(game.Player2))},
		{"Mean hand score",
			fmt.Sprintf("%.2f ± %.2f", stats.MeanHandScore(game.Player1), stats.HandScoreStdDev(game.Player1)),
			fmt.Sprintf("%.2f ± %.2f", stats.MeanHandScore(game.Player2), stats.HandScoreStdDev(game.Player2))},
		{"Median hand score",
			fmt.Sprintf("%.1f", stats.MedianHandScore(game.Player1)),
			fmt.Sprintf("%.1f", stats.MedianHandScore(game.Player2))},
	}
	for _, cat := range []evaluator.Category{evaluator.HighCard, evaluator.Pair, evaluator.Triple} {
		data = append(data, []string{
			cat.String(),
			fmt.Sprintf("%.2f%%", 100*stats.CategoryRate(game.Player1, cat)),
			fmt.Sprintf("%.2f%%", 100*stats.CategoryRate(game.Player2, cat)),
		})
	}
	return data
}

func renderReport(w io.Writer, stats *statistics.Statistics, names [game.NumPlayers]string) error {
	cmp := stats.Compare()

	fmt.Fprint(w, pterm.DefaultSection.Sprint("Simulation results"))
	fmt.Fprintf(w, "Games: %d  Rounds: %d  Ties: %d (%.1f%%)  Best hand: %d\n\n",
		stats.Games, stats.Rounds, stats.Ties, 100*stats.TieRate(), stats.MaxHandScore)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithData(reportTable(stats, names)).
		Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Fprintln(w, table)

	fmt.Fprintf(w, "\n%s share of decided rounds: %.2f%% [%.2f%%, %.2f%%], z=%.2f p=%.4f\n",
		names[game.Player1], 100*cmp.Share, 100*cmp.CI95Low, 100*cmp.CI95High, cmp.ZScore, cmp.PValue)
	return nil
}
