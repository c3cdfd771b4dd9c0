package paddle

import (
	"github.com/mo-shahab/go-pong/canvas"
	"github.com/mo-shahab/go-pong/scores"
)

// Paddle constants
const (
	Width  = 17
	Height = 60
	Step   = 20
)

// Paddle is a vertically movable rectangle. CenterX is fixed, Y is the top edge.
type Paddle struct {
	Side    scores.Side
	CenterX float64
	Y       float64
	Width   float64
	Height  float64
}

// New places a paddle against its edge, vertically centered
func New(side scores.Side, c canvas.Canvas) Paddle {
	p := Paddle{
		Side:   side,
		Y:      (c.Height - Height) / 2,
		Width:  Width,
		Height: Height,
	}
	if side == scores.Left {
		p.CenterX = p.Width / 2
	} else {
		p.CenterX = c.Width - p.Width/2
	}
	return p
}

// MoveUp moves the paddle one step up, snapping to the top edge
func (p *Paddle) MoveUp(c canvas.Canvas) {
	p.move(-Step, c)
}

// MoveDown moves the paddle one step down, snapping to the bottom edge
func (p *Paddle) MoveDown(c canvas.Canvas) {
	p.move(Step, c)
}

func (p *Paddle) move(delta float64, c canvas.Canvas) {
	newPosition := p.Y + delta

	if newPosition < 0 {
		newPosition = 0
	} else if newPosition+p.Height > c.Height {
		newPosition = c.Height - p.Height
	}

	p.Y = newPosition
}

// Spans reports whether y lies within [Y, Y+Height]
func (p Paddle) Spans(y float64) bool {
	return y >= p.Y && y <= p.Y+p.Height
}

// Left returns the x of the paddle's left edge
func (p Paddle) Left() float64 {
	return p.CenterX - p.Width/2
}
