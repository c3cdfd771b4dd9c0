package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mo-shahab/go-pong/input"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Frontend != FrontendWindow {
		t.Errorf("expected frontend %q, got %q", FrontendWindow, cfg.Frontend)
	}
	if cfg.TickRate != 16667*time.Microsecond {
		t.Errorf("expected tick rate 16.667ms, got %v", cfg.TickRate)
	}
	if cfg.EndDelay != 500*time.Millisecond {
		t.Errorf("expected end delay 500ms, got %v", cfg.EndDelay)
	}
	if cfg.SpectateAddr != "" {
		t.Errorf("expected spectator feed disabled, got %q", cfg.SpectateAddr)
	}
	if cfg.MaxViewers != 16 || cfg.FrameStride != 2 {
		t.Errorf("expected 16 viewers and stride 2, got %d and %d", cfg.MaxViewers, cfg.FrameStride)
	}
	if got := cfg.Bindings(); got != input.DefaultBindings() {
		t.Errorf("expected default bindings, got %+v", got)
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	t.Setenv("PONG_FRONTEND", "terminal")
	t.Setenv("PONG_SEED", "42")
	t.Setenv("PONG_KEY_PAUSE", " P ")
	t.Setenv("PONG_SPECTATE_ADDR", ":9000")

	cfg, err := Load([]string{"-frontend", "headless", "-tick", "10ms"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Frontend != FrontendHeadless {
		t.Errorf("expected flag to win, got %q", cfg.Frontend)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.TickRate != 10*time.Millisecond {
		t.Errorf("expected tick 10ms, got %v", cfg.TickRate)
	}
	if cfg.SpectateAddr != ":9000" {
		t.Errorf("expected :9000, got %q", cfg.SpectateAddr)
	}
	if got := cfg.Bindings().Pause; got != "p" {
		t.Errorf("expected normalized pause key %q, got %q", "p", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr error
		prefix  string
	}{
		{name: "bad env value", env: map[string]string{"PONG_SEED": "abc"}, prefix: "parse env:"},
		{name: "bad flag", args: []string{"-nope"}, prefix: "parse flags:"},
		{name: "unknown frontend", args: []string{"-frontend", "vr"}, wantErr: ErrUnknownFrontend},
		{name: "zero tick", args: []string{"-tick", "0s"}, wantErr: ErrInvalidDuration},
		{name: "negative end delay", env: map[string]string{"PONG_END_DELAY": "-1s"}, wantErr: ErrInvalidDuration},
		{name: "duplicate keys", args: []string{"-key-left-up", "up"}, wantErr: input.ErrInvalidBindings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.prefix != "" && !strings.HasPrefix(err.Error(), tt.prefix) {
				t.Errorf("expected %q prefix, got %v", tt.prefix, err)
			}
		})
	}
}
