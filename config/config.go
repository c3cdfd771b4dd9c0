// Package config loads game settings from PONG_* environment variables and
// command-line flags, flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mo-shahab/go-pong/input"
)

// Frontends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
)

var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalidDuration = errors.New("duration must be positive")
)

type Config struct {
	Frontend string `env:"PONG_FRONTEND" envDefault:"window"`

	// Seed of the serve direction coin; 0 seeds from the clock
	Seed     int64         `env:"PONG_SEED" envDefault:"0"`
	TickRate time.Duration `env:"PONG_TICK_RATE" envDefault:"16667us"`
	EndDelay time.Duration `env:"PONG_END_DELAY" envDefault:"500ms"`
	Title    string        `env:"PONG_TITLE" envDefault:"Pong"`

	// Spectator feed; an empty address disables it
	SpectateAddr string `env:"PONG_SPECTATE_ADDR"`
	MaxViewers   int    `env:"PONG_MAX_VIEWERS" envDefault:"16"`
	FrameStride  uint64 `env:"PONG_FRAME_STRIDE" envDefault:"2"`

	Keys Keys
}

// Keys holds the logical key names bound to each action
type Keys struct {
	LeftUp    string `env:"PONG_KEY_LEFT_UP" envDefault:"w"`
	LeftDown  string `env:"PONG_KEY_LEFT_DOWN" envDefault:"s"`
	RightUp   string `env:"PONG_KEY_RIGHT_UP" envDefault:"up"`
	RightDown string `env:"PONG_KEY_RIGHT_DOWN" envDefault:"down"`
	Pause     string `env:"PONG_KEY_PAUSE" envDefault:"tab"`
}

// Load reads the environment, then applies flags parsed from args.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("pong", flag.ContinueOnError)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window, terminal or headless")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "serve direction seed (0 = time based)")
	fs.DurationVar(&cfg.TickRate, "tick", cfg.TickRate, "frame interval")
	fs.DurationVar(&cfg.EndDelay, "end-delay", cfg.EndDelay, "how long a round stays ended after a point")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.StringVar(&cfg.SpectateAddr, "spectate", cfg.SpectateAddr, "spectator websocket address, e.g. :8080")
	fs.IntVar(&cfg.MaxViewers, "max-viewers", cfg.MaxViewers, "spectator cap (0 = unlimited)")
	fs.Uint64Var(&cfg.FrameStride, "frame-stride", cfg.FrameStride, "send every Nth frame to spectators")
	fs.StringVar(&cfg.Keys.LeftUp, "key-left-up", cfg.Keys.LeftUp, "left paddle up key")
	fs.StringVar(&cfg.Keys.LeftDown, "key-left-down", cfg.Keys.LeftDown, "left paddle down key")
	fs.StringVar(&cfg.Keys.RightUp, "key-right-up", cfg.Keys.RightUp, "right paddle up key")
	fs.StringVar(&cfg.Keys.RightDown, "key-right-down", cfg.Keys.RightDown, "right paddle down key")
	fs.StringVar(&cfg.Keys.Pause, "key-pause", cfg.Keys.Pause, "pause key")

	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the parsers cannot
func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal, FrontendHeadless:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate: %w", ErrInvalidDuration)
	}
	if c.EndDelay <= 0 {
		return fmt.Errorf("end delay: %w", ErrInvalidDuration)
	}
	if _, err := input.NewKeyMap(c.Bindings()); err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}
	return nil
}

func (c Config) Bindings() input.Bindings {
	return input.Bindings{
		LeftUp:    input.Normalize(c.Keys.LeftUp),
		LeftDown:  input.Normalize(c.Keys.LeftDown),
		RightUp:   input.Normalize(c.Keys.RightUp),
		RightDown: input.Normalize(c.Keys.RightDown),
		Pause:     input.Normalize(c.Keys.Pause),
	}
}
