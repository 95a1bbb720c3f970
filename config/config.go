// Package config loads server settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"wargame/meta"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds server configuration.
type Config struct {
	Addr      string `env:"WARGAME_ADDR" envDefault:":8080"`
	LogLevel  string `env:"WARGAME_LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"WARGAME_LOG_PRETTY"`
	Seed      uint64 `env:"WARGAME_SEED"` // 0 seeds every game from the clock
	GridSize  int    `env:"WARGAME_GRID_SIZE"`
}

// ParseConfig reads the environment first; flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{GridSize: meta.GRID_SIZE}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "Human readable console logs")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed for reproducible games")
	fs.IntVar(&cfg.GridSize, "grid-size", cfg.GridSize, "Board width and height in territories")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address is required")
	}
	if c.GridSize < 2 {
		return fmt.Errorf("grid size %d is too small", c.GridSize)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
