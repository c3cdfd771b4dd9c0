package render

import "image/color"

// Surface is a drawing target addressed in logical playfield pixels
type Surface interface {
	FillRect(x, y, width, height float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
}

// Palette colors
var (
	CanvasColor      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	BallColor        = color.RGBA{0xf2, 0xf2, 0x0c, 0xff}
	LeftPaddleColor  = color.RGBA{0xeb, 0x0b, 0x0b, 0xff}
	RightPaddleColor = color.RGBA{0x5d, 0x9c, 0xec, 0xff}
)
