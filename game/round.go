package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/input"
	"github.com/mo-shahab/go-pong/paddle"
	"github.com/mo-shahab/go-pong/scores"
)

// NewState returns a fresh game: centered ball with a random launch, paddles
// centered, zero score.
func NewState(c canvas.Canvas, signs SignSource) State {
	return State{
		Ball:        ball.New(c, signs.Sign()),
		LeftPaddle:  paddle.New(scores.Left, c),
		RightPaddle: paddle.New(scores.Right, c),
		Canvas:      c,
	}
}

// Advance runs one physics step unless paused. A ball exit awards the point
// and resets the round.
func (s *State) Advance(signs SignSource) Outcome {
	if s.Paused {
		return Move
	}

	next, outcome, continues := Step(s.Ball, s.LeftPaddle, s.RightPaddle, s.Canvas, signs)
	s.Ball = next

	if !continues {
		if side, ok := outcome.Scorer(); ok {
			s.Scores.Award(side)
		}
		s.ResetRound(signs)
	}

	return outcome
}

// ResetRound re-centers the ball and marks the round ended
func (s *State) ResetRound(signs SignSource) {
	s.Ball.Reset(s.Canvas, signs.Sign())
	s.Ended = true
}

// TogglePause flips the pause flag and returns the new value. Entering pause
// captures the ball; leaving restores it verbatim, or resets to the default
// launch when nothing was captured.
func (s *State) TogglePause(signs SignSource) bool {
	if !s.Paused {
		s.PauseSnapshot = &PauseSnapshot{
			X:  s.Ball.X,
			Y:  s.Ball.Y,
			Dx: s.Ball.Dx,
			Dy: s.Ball.Dy,
		}
		s.Paused = true
		return true
	}

	if snap := s.PauseSnapshot; snap != nil {
		s.Ball.X, s.Ball.Y = snap.X, snap.Y
		s.Ball.Dx, s.Ball.Dy = snap.Dx, snap.Dy
	} else {
		s.Ball.Reset(s.Canvas, signs.Sign())
	}
	s.PauseSnapshot = nil
	s.Paused = false
	return false
}

// MovePaddle applies a movement action. Ignored while paused.
func (s *State) MovePaddle(a input.Action) bool {
	if s.Paused {
		return false
	}

	switch a {
	case input.LeftUp:
		s.LeftPaddle.MoveUp(s.Canvas)
	case input.LeftDown:
		s.LeftPaddle.MoveDown(s.Canvas)
	case input.RightUp:
		s.RightPaddle.MoveUp(s.Canvas)
	case input.RightDown:
		s.RightPaddle.MoveDown(s.Canvas)
	default:
		return false
	}
	return true
}
