// Package ebitenui plays the game in a desktop window using ebiten
package ebitenui

import (
	"context"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/input"
	"github.com/mo-shahab/go-pong/render"
	"golang.org/x/image/font/basicfont"
)

// basicfont glyph metrics
const (
	glyphWidth  = 7
	glyphHeight = 13
)

var bannerColor = color.NRGBA{255, 255, 255, 220}

// Game adapts the engine to ebiten's Update/Draw callbacks. ebiten calls
// Update at the configured TPS, so it is the frame scheduler.
type Game struct {
	ctx      context.Context
	engine   *game.Engine
	keys     *input.KeyMap
	renderer render.Renderer
	snapshot game.Snapshot
	pressed  []ebiten.Key
}

func New(engine *game.Engine, keys *input.KeyMap) *Game {
	return &Game{
		engine:   engine,
		keys:     keys,
		renderer: render.NewRenderer(),
		snapshot: engine.Snapshot(),
	}
}

func (g *Game) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		name := keyName(k)
		if input.IsQuit(name) {
			return ebiten.Termination
		}
		if action, ok := g.keys.Resolve(name); ok {
			g.engine.HandleAction(action)
		}
	}

	g.snapshot = g.engine.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(surface{screen}, g.snapshot)

	p := render.Present(g.snapshot)
	w := int(g.snapshot.Canvas.Width)
	drawCentered(screen, p.ScoreLine(), w, 2*glyphHeight, color.White)
	if banner := p.Banner(); banner != "" {
		drawCentered(screen, banner, w, int(g.snapshot.Canvas.Height)/2, bannerColor)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.snapshot.Canvas.Width), int(g.snapshot.Canvas.Height)
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is done.
func Run(ctx context.Context, g *Game, title string, tickRate time.Duration) error {
	g.ctx = ctx
	tps := ebiten.DefaultTPS
	if tickRate > 0 {
		tps = int(time.Second / tickRate)
	}

	ebiten.SetWindowSize(int(g.snapshot.Canvas.Width), int(g.snapshot.Canvas.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)

	log.Printf("Opening %s window at %d TPS", title, tps)
	return ebiten.RunGame(g)
}

func drawCentered(screen *ebiten.Image, str string, width, y int, clr color.Color) {
	x := (width - len(str)*glyphWidth) / 2
	text.Draw(screen, str, basicfont.Face7x13, x, y, clr)
}

// surface draws logical pixels straight onto the screen image; Layout keeps
// the two coordinate systems identical.
type surface struct {
	img *ebiten.Image
}

func (s surface) FillRect(x, y, width, height float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(width), float32(height), clr, false)
}

func (s surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(radius), clr, true)
}

// keyName converts an ebiten key to the shared key naming. ebiten names keys
// by their physical code.
func keyName(k ebiten.Key) string {
	return input.FromKeyCode(k.String())
}
