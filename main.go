package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/go-pong/client"
	"github.com/mo-shahab/go-pong/config"
	"github.com/mo-shahab/go-pong/frontend/ebitenui"
	"github.com/mo-shahab/go-pong/frontend/terminal"
	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/input"
	"github.com/mo-shahab/go-pong/wsserver"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	keys, err := input.NewKeyMap(cfg.Bindings())
	if err != nil {
		log.Fatalf("Failed to build key map: %v", err)
	}

	if err := run(cfg, keys); err != nil {
		log.Fatalf("Game exited with error: %v", err)
	}
}

func run(cfg config.Config, keys *input.KeyMap) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := game.NewEngine(
		game.WithSignSource(game.NewSignSource(seed)),
		game.WithEndDelay(cfg.EndDelay),
	)
	defer engine.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SpectateAddr != "" {
		shutdown := startSpectatorServer(cfg, engine)
		defer shutdown()
	}

	switch cfg.Frontend {
	case config.FrontendWindow:
		return ebitenui.Run(ctx, ebitenui.New(engine, keys), cfg.Title, cfg.TickRate)

	case config.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		return terminal.New(screen, engine, keys).Run(ctx, cfg.TickRate)

	default:
		log.Println("Running headless, press Ctrl-C to stop")
		loop := game.NewLoop(engine, game.LoopConfig{TickRate: cfg.TickRate})
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// startSpectatorServer serves the read-only feed on cfg.SpectateAddr and
// returns a function that stops it.
func startSpectatorServer(cfg config.Config, engine *game.Engine) func() {
	spectators := wsserver.NewHandler(wsserver.Options{
		MaxViewers:  cfg.MaxViewers,
		FrameStride: cfg.FrameStride,
		QueueSize:   client.DefaultQueueSize,
		Canvas:      engine.Snapshot().Canvas,
	})
	engine.Subscribe(spectators)

	mux := http.NewServeMux()
	mux.Handle("/ws", spectators)
	srv := &http.Server{Addr: cfg.SpectateAddr, Handler: mux}

	go func() {
		log.Printf("Spectator feed at ws://%s/ws?room=%s", cfg.SpectateAddr, spectators.RoomId)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Spectator server error: %v", err)
		}
	}()

	return func() {
		spectators.Close()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Spectator server shutdown: %v", err)
		}
	}
}
