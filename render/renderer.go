package render

import (
	"image/color"

	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/paddle"
)

// Renderer paints whole frames. It keeps no state between frames.
type Renderer struct {
	Background color.Color
	Ball       color.Color
	Left       color.Color
	Right      color.Color
}

// NewRenderer returns a renderer with the default palette
func NewRenderer() Renderer {
	return Renderer{
		Background: CanvasColor,
		Ball:       BallColor,
		Left:       LeftPaddleColor,
		Right:      RightPaddleColor,
	}
}

// Draw repaints the full surface: background, ball, then both paddles.
// A nil surface is skipped.
func (r Renderer) Draw(s Surface, snapshot game.Snapshot) {
	if s == nil {
		return
	}

	s.FillRect(0, 0, snapshot.Canvas.Width, snapshot.Canvas.Height, r.Background)
	s.FillCircle(snapshot.Ball.X, snapshot.Ball.Y, snapshot.Ball.Radius, r.Ball)

	drawPaddle(s, snapshot.LeftPaddle, r.Left)
	drawPaddle(s, snapshot.RightPaddle, r.Right)
}

func drawPaddle(s Surface, p paddle.Paddle, clr color.Color) {
	s.FillRect(p.Left(), p.Y, p.Width, p.Height, clr)
}
