package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/mo-shahab/go-pong/input"
)

// ErrLoopStopped is returned when starting a loop that was already stopped
var ErrLoopStopped = errors.New("game loop stopped")

// DrawFunc paints one frame
type DrawFunc func(snapshot Snapshot)

// LoopConfig configures a Loop
type LoopConfig struct {
	TickRate time.Duration
	Draw     DrawFunc
	// Actions are applied on the loop goroutine between ticks
	Actions <-chan input.Action
}

// Loop drives Tick and Draw at a fixed rate until stopped. It cannot be
// restarted once stopped.
type Loop struct {
	engine   *Engine
	config   LoopConfig
	ticker   *time.Ticker
	stopChan chan struct{}
	done     chan struct{}
	running  bool
	stopped  bool
	mu       sync.Mutex
}

// NewLoop creates a loop over engine
func NewLoop(engine *Engine, config LoopConfig) *Loop {
	if config.TickRate <= 0 {
		config.TickRate = DefaultTickRate
	}
	return &Loop{
		engine:   engine,
		config:   config,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the game loop
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return ErrLoopStopped
	}
	if l.running {
		return nil
	}

	l.running = true
	l.ticker = time.NewTicker(l.config.TickRate)

	log.Println("Starting game loop")
	go l.gameLoop()
	return nil
}

// Stop halts the game loop and waits for the current frame to finish
func (l *Loop) Stop() {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.stopped = true
	wasRunning := l.running
	close(l.stopChan)
	l.mu.Unlock()

	if wasRunning {
		<-l.done
		log.Println("Game loop stopped")
	}
}

// Run starts the loop and blocks until ctx is cancelled or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Start(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		l.Stop()
		return ctx.Err()
	case <-l.done:
		return nil
	}
}

// gameLoop runs the main game update cycle
func (l *Loop) gameLoop() {
	defer close(l.done)
	defer l.ticker.Stop()

	actions := l.config.Actions
	for {
		select {
		case <-l.stopChan:
			return
		case action, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			l.engine.HandleAction(action)
		case <-l.ticker.C:
			l.frame()
		}
	}
}

func (l *Loop) frame() {
	snapshot := l.engine.Tick()
	if l.config.Draw != nil {
		l.config.Draw(snapshot)
	}
}
