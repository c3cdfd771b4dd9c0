package game

import (
	"github.com/mo-shahab/go-pong/ball"
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/paddle"
	"github.com/mo-shahab/go-pong/scores"
)

// Outcome names the branch that fired during one physics step
type Outcome int

const (
	Move Outcome = iota
	RightPaddleBounce
	LeftPaddleBounce
	LeftExit
	RightExit
	WallBounce
)

var outcomeName = map[Outcome]string{
	Move:              "move",
	RightPaddleBounce: "right_paddle_bounce",
	LeftPaddleBounce:  "left_paddle_bounce",
	LeftExit:          "left_exit",
	RightExit:         "right_exit",
	WallBounce:        "wall_bounce",
}

func (o Outcome) String() string {
	return outcomeName[o]
}

// Continues is false when the ball left the playfield
func (o Outcome) Continues() bool {
	return o != LeftExit && o != RightExit
}

// Scorer returns the side awarded a point by an exit
func (o Outcome) Scorer() (scores.Side, bool) {
	switch o {
	case LeftExit:
		return scores.Right, true
	case RightExit:
		return scores.Left, true
	}
	return scores.Left, false
}

// Step advances the ball by one frame. Checks run in a fixed order: right
// paddle, left paddle, left exit, right exit, walls. Paddle bounces and exits
// leave the position untouched for this frame.
func Step(b ball.Ball, left, right paddle.Paddle, c canvas.Canvas, signs SignSource) (ball.Ball, Outcome, bool) {
	// the right check uses the full diameter as the leading edge
	if b.X+2*b.Radius+b.Dx > right.CenterX && right.Spans(b.Y) {
		b.ReflectX()
		b.Dy = signs.Sign() * b.Dy
		return b, RightPaddleBounce, true
	}

	if b.X+b.Dx < left.CenterX+left.Width && left.Spans(b.Y) {
		b.ReflectX()
		b.Dy = signs.Sign() * b.Dy
		return b, LeftPaddleBounce, true
	}

	if b.X+b.Dx < 0 {
		return b, LeftExit, false
	}

	if b.X+b.Radius+b.Dx > c.Width {
		return b, RightExit, false
	}

	outcome := Move
	if b.Y-b.Radius+b.Dy < 0 || b.Y+b.Radius+b.Dy > c.Height {
		b.ReflectY()
		outcome = WallBounce
	}

	b.Move()
	return b, outcome, true
}
