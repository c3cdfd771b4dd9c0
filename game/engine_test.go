package game

import (
	"testing"

	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/input"
	"github.com/mo-shahab/go-pong/scores"
)

func newTestEngine(clock *fakeClock, rec *recorder) *Engine {
	return NewEngine(
		WithSignSource(signs(1)),
		WithAfterFunc(clock.AfterFunc),
		WithEventHandler(rec),
	)
}

func TestTickScoresAndClearsEndedAfterDelay(t *testing.T) {
	clock := &fakeClock{}
	rec := &recorder{}
	e := newTestEngine(clock, rec)
	e.state.Ball = ball.Ball{X: 695, Y: 100, Dx: 1.5, Dy: 2.25, Radius: ball.Radius}

	snapshot := e.Tick()

	if snapshot.Scores.LeftScores != 1 {
		t.Errorf("expected left player to score, got %+v", snapshot.Scores)
	}
	if snapshot.Round != Ended {
		t.Errorf("expected ended, got %s", snapshot.Round)
	}
	if len(clock.timers) != 1 || clock.timers[0].delay != DefaultEndDelay {
		t.Fatalf("expected one %v timer, got %d", DefaultEndDelay, len(clock.timers))
	}
	if len(rec.scored) != 1 || rec.scored[0] != scores.Left {
		t.Errorf("expected one left score event, got %v", rec.scored)
	}

	// the ended flag does not gate physics
	moved := e.Tick()
	if moved.Ball.X == 350 {
		t.Error("expected the ball to move while ended")
	}

	clock.timers[0].fire()
	if round := e.Snapshot().Round; round != Playing {
		t.Errorf("expected playing after the delay, got %s", round)
	}
}

func TestStaleEndTimerIsIgnored(t *testing.T) {
	clock := &fakeClock{}
	e := newTestEngine(clock, &recorder{})

	e.state.Ball = ball.Ball{X: 695, Y: 100, Dx: 1.5, Radius: ball.Radius}
	e.Tick()
	e.state.Ball = ball.Ball{X: 1, Y: 100, Dx: -1.5, Radius: ball.Radius}
	e.Tick()

	if !clock.timers[0].stopped {
		t.Error("expected the first timer to be stopped when re-armed")
	}

	clock.timers[0].fire()
	if round := e.Snapshot().Round; round != Ended {
		t.Errorf("expected stale timer to leave the round ended, got %s", round)
	}

	clock.timers[1].fire()
	if round := e.Snapshot().Round; round != Playing {
		t.Errorf("expected playing, got %s", round)
	}

	s := e.Snapshot().Scores
	if s.LeftScores != 1 || s.RightScores != 1 {
		t.Errorf("expected 1-1, got %+v", s)
	}
}

func TestHandleActionPauseFreezesInput(t *testing.T) {
	rec := &recorder{}
	e := newTestEngine(&fakeClock{}, rec)

	if !e.HandleAction(input.LeftDown) {
		t.Fatal("expected movement to be applied")
	}
	if !e.HandleAction(input.TogglePause) {
		t.Fatal("expected toggle to be applied")
	}

	before := e.Snapshot()
	if e.HandleAction(input.LeftDown) || e.HandleAction(input.RightUp) {
		t.Error("expected movement to be ignored while paused")
	}
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	after := e.Snapshot()

	if after.Ball != before.Ball || after.LeftPaddle != before.LeftPaddle || after.RightPaddle != before.RightPaddle {
		t.Error("expected nothing to change while paused")
	}
	if !after.Paused() {
		t.Error("expected paused snapshot")
	}

	e.HandleAction(input.TogglePause)
	if e.Snapshot().Ball != before.Ball {
		t.Error("expected resume to restore the paused ball")
	}

	if len(rec.pauses) != 2 || !rec.pauses[0] || rec.pauses[1] {
		t.Errorf("expected pause events [true false], got %v", rec.pauses)
	}
}

func TestCloseStopsTimerAndIgnoresInput(t *testing.T) {
	clock := &fakeClock{}
	e := newTestEngine(clock, &recorder{})
	e.state.Ball = ball.Ball{X: 695, Y: 100, Dx: 1.5, Radius: ball.Radius}
	e.Tick()

	e.Close()
	e.Close()

	if !clock.timers[0].stopped {
		t.Error("expected the pending timer to be stopped")
	}
	if e.HandleAction(input.LeftUp) {
		t.Error("expected input to be ignored after close")
	}

	before := e.Snapshot()
	if after := e.Tick(); after.Tick != before.Tick || after.Ball != before.Ball {
		t.Error("expected ticks to be ignored after close")
	}
}

func TestStateReturnsCopy(t *testing.T) {
	e := newTestEngine(&fakeClock{}, &recorder{})
	e.HandleAction(input.TogglePause)

	s := e.State()
	s.PauseSnapshot.X = -1

	if e.State().PauseSnapshot.X == -1 {
		t.Error("expected State to copy the pause snapshot")
	}
}
