package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/go-pong/canvas"
)

// Surface maps the logical playfield onto a tcell screen. Row 0 holds the
// score line, the playfield fills the rows below it.
type Surface struct {
	screen tcell.Screen
	canvas canvas.Canvas
}

func NewSurface(screen tcell.Screen, c canvas.Canvas) *Surface {
	return &Surface{screen: screen, canvas: c}
}

// scale returns cells per logical pixel on each axis
func (s *Surface) scale() (float64, float64) {
	cols, rows := s.screen.Size()
	if rows < 2 {
		return 0, 0
	}
	return float64(cols) / s.canvas.Width, float64(rows-1) / s.canvas.Height
}

func (s *Surface) FillRect(x, y, width, height float64, clr color.Color) {
	sx, sy := s.scale()
	if sx == 0 {
		return
	}

	x0, x1 := span(x*sx, (x+width)*sx)
	y0, y1 := span(y*sy, (y+height)*sy)
	style := styleFor(clr)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			s.setCell(col, row, style)
		}
	}
}

// FillCircle paints every cell whose center lies inside the circle, and
// always the cell holding the center so small balls stay visible.
func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	sx, sy := s.scale()
	if sx == 0 {
		return
	}

	style := styleFor(clr)
	s.setCell(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), style)

	x0, x1 := span((cx-radius)*sx, (cx+radius)*sx)
	y0, y1 := span((cy-radius)*sy, (cy+radius)*sy)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			px := (float64(col) + 0.5) / sx
			py := (float64(row) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= radius {
				s.setCell(col, row, style)
			}
		}
	}
}

// Text writes str centered on screen row row
func (s *Surface) Text(row int, str string, style tcell.Style) {
	cols, _ := s.screen.Size()
	col := (cols - len(str)) / 2
	if col < 0 {
		col = 0
	}
	for i, r := range str {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

func (s *Surface) setCell(col, row int, style tcell.Style) {
	cols, rows := s.screen.Size()
	// playfield rows start below the score line
	row++
	if col < 0 || col >= cols || row < 1 || row >= rows {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, style)
}

// span converts a logical interval to a half-open cell range covering it
func span(from, to float64) (int, int) {
	return int(math.Floor(from)), int(math.Ceil(to))
}

func styleFor(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.FromImageColor(clr))
}
