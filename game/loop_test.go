package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mo-shahab/go-pong/input"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestLoopTicksAndDraws(t *testing.T) {
	rec := &recorder{}
	e := NewEngine(WithSignSource(signs(1)), WithEventHandler(rec))
	defer e.Close()

	draws := make(chan Snapshot, 16)
	l := NewLoop(e, LoopConfig{
		TickRate: time.Millisecond,
		Draw: func(s Snapshot) {
			select {
			case draws <- s:
			default:
			}
		},
	})

	if err := l.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Start(); err != nil {
		t.Fatalf("starting a running loop should be a no-op, got %v", err)
	}

	var last uint64
	for i := 0; i < 3; i++ {
		select {
		case s := <-draws:
			if s.Tick <= last {
				t.Errorf("expected increasing ticks, got %d after %d", s.Tick, last)
			}
			last = s.Tick
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a frame")
		}
	}

	l.Stop()
	if err := l.Start(); !errors.Is(err, ErrLoopStopped) {
		t.Errorf("expected ErrLoopStopped, got %v", err)
	}

	frames := rec.frameCount()
	time.Sleep(10 * time.Millisecond)
	if rec.frameCount() != frames {
		t.Error("expected no frames after stop")
	}
}

func TestLoopAppliesActions(t *testing.T) {
	e := NewEngine(WithSignSource(signs(1)))
	defer e.Close()

	actions := make(chan input.Action, 4)
	l := NewLoop(e, LoopConfig{TickRate: time.Millisecond, Actions: actions})

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	actions <- input.RightUp
	actions <- input.TogglePause
	close(actions)

	waitFor(t, func() bool { return e.Snapshot().Paused() })
	if y := e.Snapshot().RightPaddle.Y; y != 200 {
		t.Errorf("expected right paddle at 200, got %v", y)
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
