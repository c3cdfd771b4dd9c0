package ball

import "github.com/mo-shahab/go-pong/canvas"

// Ball constants
const (
	Radius = 8
	Speed  = 1.5
)

type Ball struct {
	X, Y   float64
	Dx, Dy float64
	Radius float64
}

// New returns a ball centered on the playfield and launched along sign.
func New(c canvas.Canvas, sign float64) Ball {
	b := Ball{Radius: Radius}
	b.Reset(c, sign)
	return b
}

// Reset re-centers the ball. The horizontal direction follows sign (±1) and
// the vertical velocity is always derived from it as -Dx*Speed.
func (b *Ball) Reset(c canvas.Canvas, sign float64) {
	b.X, b.Y = c.Center()
	b.Dx = sign * Speed
	b.Dy = -b.Dx * Speed
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.Dx
	b.Y += b.Dy
}

// ReflectX reverses the horizontal direction
func (b *Ball) ReflectX() {
	b.Dx = -b.Dx
}

// ReflectY reverses the vertical direction
func (b *Ball) ReflectY() {
	b.Dy = -b.Dy
}
