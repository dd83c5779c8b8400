// Package simulator plays many independent games headlessly and aggregates
// the results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/threecards/internal/game"
	"github.com/lox/threecards/internal/randutil"
	"github.com/lox/threecards/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Games   int   // Complete games to play, each from a fresh deck
	Workers int   // Concurrent workers; 0 means GOMAXPROCS
	Seed    int64 // Master seed; per-game seeds are derived from it
	Logger  *log.Logger

	// Progress, when set, is told after each completed game. It is called
	// from worker goroutines.
	Progress ProgressReporter
}

// ProgressReporter receives game completion counts during a run
type ProgressReporter interface {
	OnGamesProgress(completed, total int)
}

// Simulator runs game simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Workers > config.Games && config.Games > 0 {
		config.Workers = config.Games
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the merged statistics. Results depend
// only on the seed and game count, not on the number of workers. Run stops
// early with the context's error if ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}

	logger := s.config.Logger.WithPrefix("simulator")
	seeds := GameSeeds(s.config.Seed, s.config.Games)
	workers := s.config.Workers
	partials := make([]*statistics.Statistics, workers)

	logger.Debug("Starting simulation", "games", s.config.Games, "workers", workers, "seed", s.config.Seed)
	start := time.Now()

	var completed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			for i := w; i < len(seeds); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := PlayGame(seeds[i], stats); err != nil {
					return fmt.Errorf("game %d (seed %d): %w", i+1, seeds[i], err)
				}
				done := completed.Add(1)
				if s.config.Progress != nil {
					s.config.Progress.OnGamesProgress(int(done), len(seeds))
				}
			}
			partials[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, p := range partials {
		stats.Merge(p)
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	logger.Debug("Simulation complete",
		"games", stats.Games,
		"rounds", stats.Rounds,
		"duration", time.Since(start))

	return stats, nil
}

// GameSeeds derives one seed per game from the master seed
func GameSeeds(seed int64, games int) []int64 {
	master := randutil.New(seed)
	seeds := make([]int64, games)
	for i := range seeds {
		seeds[i] = master.Int64()
	}
	return seeds
}

// PlayGame plays one session from a fresh deck until it can no longer deal a
// round, recording every round into stats.
func PlayGame(seed int64, stats *statistics.Statistics) error {
	session := game.NewSession(game.WithSeed(seed))
	for session.CanDraw() {
		result, err := session.Draw()
		if err != nil {
			return err
		}
		stats.Add(result)
	}
	stats.AddGame()
	return nil
}

// RunSimulation is a convenience wrapper around New(...).Run
func RunSimulation(ctx context.Context, games int, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{Games: games, Seed: seed, Logger: logger}).Run(ctx)
}
