package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/threecards/internal/gameid"
	"github.com/lox/threecards/internal/randutil"
)

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	source randutil.Source
	clock  quartz.Clock
	logger *log.Logger
	ids    *gameid.Generator
}

// WithSource sets the randomness used for every shuffle. Defaults to a
// time-seeded generator.
func WithSource(src randutil.Source) SessionOption {
	return func(c *sessionConfig) {
		c.source = src
	}
}

// WithSeed is shorthand for WithSource(randutil.New(seed)).
func WithSeed(seed int64) SessionOption {
	return WithSource(randutil.New(seed))
}

// WithClock sets the clock used to stamp rounds. Defaults to the real clock.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) {
		c.clock = clock
	}
}

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(logger *log.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// WithIDGenerator sets how session IDs are generated.
func WithIDGenerator(ids *gameid.Generator) SessionOption {
	return func(c *sessionConfig) {
		c.ids = ids
	}
}

func newSessionConfig(opts []SessionOption) *sessionConfig {
	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.source == nil {
		cfg.source = randutil.NewFromTime()
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.ids == nil {
		cfg.ids = gameid.NewGenerator(nil, nil)
	}
	return cfg
}
