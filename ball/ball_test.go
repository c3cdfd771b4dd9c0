package ball

import (
	"testing"

	"github.com/mo-shahab/go-pong/canvas"
)

func TestResetCentersAndDerivesVertical(t *testing.T) {
	c := canvas.Default()

	for _, sign := range []float64{-1, 1} {
		b := Ball{X: 3, Y: 4, Dx: 9, Dy: 9, Radius: Radius}
		b.Reset(c, sign)

		if b.X != 350 || b.Y != 250 {
			t.Errorf("sign %v: expected center (350, 250), got (%v, %v)", sign, b.X, b.Y)
		}
		if b.Dx != sign*Speed {
			t.Errorf("sign %v: expected dx %v, got %v", sign, sign*Speed, b.Dx)
		}
		if b.Dy != -sign*Speed*Speed {
			t.Errorf("sign %v: expected dy %v, got %v", sign, -sign*Speed*Speed, b.Dy)
		}
		if (b.Dx > 0) == (b.Dy > 0) {
			t.Errorf("sign %v: vertical sign must oppose horizontal sign, got dx=%v dy=%v", sign, b.Dx, b.Dy)
		}
	}
}

func TestMoveAndReflect(t *testing.T) {
	b := Ball{X: 10, Y: 20, Dx: 1.5, Dy: -2}

	b.Move()
	if b.X != 11.5 || b.Y != 18 {
		t.Errorf("expected (11.5, 18), got (%v, %v)", b.X, b.Y)
	}

	b.ReflectX()
	b.ReflectY()
	if b.Dx != -1.5 || b.Dy != 2 {
		t.Errorf("expected velocity (-1.5, 2), got (%v, %v)", b.Dx, b.Dy)
	}
}
