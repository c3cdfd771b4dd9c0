package canvas

// Playfield size in logical pixels
const (
	Width  = 700
	Height = 500
)

// Canvas is the fixed-size rectangular area containing the ball and both paddles
type Canvas struct {
	Width  float64
	Height float64
}

// Default returns the standard 700x500 playfield
func Default() Canvas {
	return Canvas{Width: Width, Height: Height}
}

// Center returns the playfield midpoint
func (c Canvas) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}
