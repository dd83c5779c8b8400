// Package config loads threecards settings from an HCL or TOML file, a .env
// file and THREECARDS_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvSeed     = "THREECARDS_SEED"
	EnvLogLevel = "THREECARDS_LOG_LEVEL"
	EnvLogFile  = "THREECARDS_LOG_FILE"
	EnvPlayer1  = "THREECARDS_PLAYER1"
	EnvPlayer2  = "THREECARDS_PLAYER2"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "threecards.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel   string            `hcl:"log_level,optional" toml:"log_level"`
	LogFile    string            `hcl:"log_file,optional" toml:"log_file"`
	Seed       int64             `hcl:"seed,optional" toml:"seed"` // 0 means seed from the clock
	Players    *PlayersConfig    `hcl:"players,block" toml:"players"`
	Simulation *SimulationConfig `hcl:"simulation,block" toml:"simulation"`
}

// PlayersConfig holds display names for the two seats
type PlayersConfig struct {
	One string `hcl:"one,optional" toml:"one"`
	Two string `hcl:"two,optional" toml:"two"`
}

// SimulationConfig holds defaults for the simulate command
type SimulationConfig struct {
	Games   int `hcl:"games,optional" toml:"games"`
	Workers int `hcl:"workers,optional" toml:"workers"` // 0 means GOMAXPROCS
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the default configuration
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads filename. A missing file yields the defaults. Files ending in
// .toml are parsed as TOML, everything else as HCL.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if _, err := toml.DecodeFile(filename, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML: %w", err)
		}
	} else {
		parser := hclparse.NewParser()
		file, diags := parser.ParseHCLFile(filename)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
		}
		diags = gohcl.DecodeBody(file.Body, nil, &cfg)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment
// without overriding variables that are already set. Missing files are
// ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var existing []string
	for _, f := range filenames {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load %s: %w", strings.Join(existing, ", "), err)
	}
	return nil
}

// ApplyEnv overrides fields from THREECARDS_* environment variables
func (c *Config) ApplyEnv() error {
	if c.Players == nil {
		c.Players = &PlayersConfig{}
	}
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		c.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvPlayer1); ok && v != "" {
		c.Players.One = v
	}
	if v, ok := os.LookupEnv(EnvPlayer2); ok && v != "" {
		c.Players.Two = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogFile == "" {
		c.LogFile = "threecards.log"
	}
	if c.Players == nil {
		c.Players = &PlayersConfig{}
	}
	if c.Players.One == "" {
		c.Players.One = "Player 1"
	}
	if c.Players.Two == "" {
		c.Players.Two = "Player 2"
	}
	if c.Simulation == nil {
		c.Simulation = &SimulationConfig{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = 10000
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if strings.TrimSpace(c.Players.One) == "" || strings.TrimSpace(c.Players.Two) == "" {
		return fmt.Errorf("player names must not be empty")
	}
	if c.Players.One == c.Players.Two {
		return fmt.Errorf("player names must differ, both are %q", c.Players.One)
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation games must be positive, got %d", c.Simulation.Games)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation workers must not be negative, got %d", c.Simulation.Workers)
	}
	return nil
}

// PlayerNames returns the display names in seat order
func (c *Config) PlayerNames() [2]string {
	return [2]string{c.Players.One, c.Players.Two}
}
