package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/paddle"
	"github.com/mo-shahab/go-pong/scores"
)

// RoundState describes the round at one instant. Paused takes precedence over Ended.
type RoundState int

const (
	Playing RoundState = iota
	Ended
	Paused
)

var roundStateName = map[RoundState]string{
	Playing: "playing",
	Ended:   "ended",
	Paused:  "paused",
}

func (r RoundState) String() string {
	return roundStateName[r]
}

// PauseSnapshot is the ball state captured when pause is engaged
type PauseSnapshot struct {
	X, Y   float64
	Dx, Dy float64
}

// State is the whole mutable game state
type State struct {
	Ball          ball.Ball
	LeftPaddle    paddle.Paddle
	RightPaddle   paddle.Paddle
	Canvas        canvas.Canvas
	Scores        scores.Scores
	Paused        bool
	Ended         bool
	PauseSnapshot *PauseSnapshot
}

// Round folds the pause and ended flags into one RoundState
func (s *State) Round() RoundState {
	switch {
	case s.Paused:
		return Paused
	case s.Ended:
		return Ended
	default:
		return Playing
	}
}

// Snapshot represents a point-in-time copy of the game state
type Snapshot struct {
	Tick        uint64
	Ball        ball.Ball
	LeftPaddle  paddle.Paddle
	RightPaddle paddle.Paddle
	Canvas      canvas.Canvas
	Scores      scores.Scores
	Round       RoundState
}

// Paused reports whether the snapshot was taken while paused
func (s Snapshot) Paused() bool {
	return s.Round == Paused
}

// EventHandler receives engine events. Calls happen outside the engine lock.
type EventHandler interface {
	OnFrame(snapshot Snapshot)
	OnScore(score scores.Scores, whoScored scores.Side)
	OnPauseChanged(paused bool)
}
