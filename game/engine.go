// game/engine.go
package game

import (
	"log"
	"sync"
	"time"

	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/input"
)

// Game constants
const (
	// How long the round stays Ended after a point
	DefaultEndDelay = 500 * time.Millisecond

	// One tick per display refresh
	DefaultTickRate = time.Second / 60
)

// Timer is the part of *time.Timer the engine needs
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Engine owns the game state and serializes every mutation of it
type Engine struct {
	state     State
	signs     SignSource
	endDelay  time.Duration
	afterFunc AfterFunc
	endTimer  Timer
	endGen    uint64
	tick      uint64
	handlers  []EventHandler
	closed    bool
	mu        sync.RWMutex
}

// Option configures an Engine
type Option func(*Engine)

// WithSignSource injects the coin flip used for launches and rebounds
func WithSignSource(signs SignSource) Option {
	return func(e *Engine) { e.signs = signs }
}

// WithEndDelay sets how long the Ended flag stays up after a point
func WithEndDelay(d time.Duration) Option {
	return func(e *Engine) { e.endDelay = d }
}

// WithAfterFunc replaces the timer used to clear the Ended flag
func WithAfterFunc(f AfterFunc) Option {
	return func(e *Engine) { e.afterFunc = f }
}

// WithEventHandler registers a handler at construction time
func WithEventHandler(h EventHandler) Option {
	return func(e *Engine) { e.handlers = append(e.handlers, h) }
}

// WithCanvas overrides the playfield size
func WithCanvas(c canvas.Canvas) Option {
	return func(e *Engine) { e.state.Canvas = c }
}

// NewEngine creates a new game engine instance
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		endDelay:  DefaultEndDelay,
		afterFunc: realAfterFunc,
	}
	e.state.Canvas = canvas.Default()

	for _, opt := range opts {
		opt(e)
	}

	if e.signs == nil {
		e.signs = NewSignSource(time.Now().UnixNano())
	}

	e.state = NewState(e.state.Canvas, e.signs)

	log.Println("Game engine initialized")
	return e
}

// Subscribe adds an event handler
func (e *Engine) Subscribe(h EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.handlers = append(e.handlers, h)
}

// Tick handles one game loop iteration: a physics step unless paused, and a
// round reset when the ball left the playfield.
func (e *Engine) Tick() Snapshot {
	e.mu.Lock()

	if e.closed {
		snapshot := e.snapshotLocked()
		e.mu.Unlock()
		return snapshot
	}

	e.tick++
	outcome := e.state.Advance(e.signs)
	scored := !e.state.Paused && !outcome.Continues()
	if scored {
		e.armEndTimerLocked()
	}

	snapshot := e.snapshotLocked()
	handlers := e.handlersLocked()
	e.mu.Unlock()

	// Broadcast outside of the lock
	if scored {
		whoScored, _ := outcome.Scorer()
		log.Printf("%s Player Scored! Score: %d-%d",
			whoScored, snapshot.Scores.LeftScores, snapshot.Scores.RightScores)
		for _, h := range handlers {
			h.OnScore(snapshot.Scores, whoScored)
		}
	}
	for _, h := range handlers {
		h.OnFrame(snapshot)
	}

	return snapshot
}

// HandleAction applies one input action. While paused only the pause toggle
// is honored. Reports whether the action changed anything.
func (e *Engine) HandleAction(a input.Action) bool {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return false
	}

	if a != input.TogglePause {
		moved := e.state.MovePaddle(a)
		e.mu.Unlock()
		return moved
	}

	paused := e.state.TogglePause(e.signs)
	handlers := e.handlersLocked()
	e.mu.Unlock()

	if paused {
		log.Println("Game paused")
	} else {
		log.Println("Game resumed")
	}
	for _, h := range handlers {
		h.OnPauseChanged(paused)
	}
	return true
}

// Snapshot returns the current game state safely
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.snapshotLocked()
}

// State returns a copy of the full state, pause snapshot included
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := e.state
	if s.PauseSnapshot != nil {
		snap := *s.PauseSnapshot
		s.PauseSnapshot = &snap
	}
	return s
}

// Close cancels the pending round-end timer. Later ticks and input are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	if e.endTimer != nil {
		e.endTimer.Stop()
		e.endTimer = nil
	}
	log.Println("Game engine stopped")
}

func (e *Engine) armEndTimerLocked() {
	if e.endTimer != nil {
		e.endTimer.Stop()
	}

	e.endGen++
	gen := e.endGen
	e.endTimer = e.afterFunc(e.endDelay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		// a newer point re-armed the timer
		if gen != e.endGen || e.closed {
			return
		}
		e.state.Ended = false
		e.endTimer = nil
	})
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Tick:        e.tick,
		Ball:        e.state.Ball,
		LeftPaddle:  e.state.LeftPaddle,
		RightPaddle: e.state.RightPaddle,
		Canvas:      e.state.Canvas,
		Scores:      e.state.Scores,
		Round:       e.state.Round(),
	}
}

func (e *Engine) handlersLocked() []EventHandler {
	if len(e.handlers) == 0 {
		return nil
	}
	handlers := make([]EventHandler, len(e.handlers))
	copy(handlers, e.handlers)
	return handlers
}
