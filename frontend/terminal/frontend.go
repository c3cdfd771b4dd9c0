// Package terminal plays the game inside a terminal using tcell
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mo-shahab/go-pong/game"
	"github.com/mo-shahab/go-pong/input"
	"github.com/mo-shahab/go-pong/render"
)

const actionBuffer = 16

var (
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	bannerStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

type Frontend struct {
	screen   tcell.Screen
	engine   *game.Engine
	keys     *input.KeyMap
	renderer render.Renderer
	surface  *Surface
}

func New(screen tcell.Screen, engine *game.Engine, keys *input.KeyMap) *Frontend {
	return &Frontend{
		screen:   screen,
		engine:   engine,
		keys:     keys,
		renderer: render.NewRenderer(),
		surface:  NewSurface(screen, engine.Snapshot().Canvas),
	}
}

// Run owns the screen until Escape or Ctrl-C is pressed or ctx is done.
// Quitting from the keyboard is not an error.
func (f *Frontend) Run(ctx context.Context, tickRate time.Duration) error {
	if err := f.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// log lines written to stderr would land on top of the game
	defer silenceLog()()
	defer f.screen.Fini()
	f.screen.HideCursor()

	runCtx, quit := context.WithCancel(ctx)
	defer quit()

	actions := make(chan input.Action, actionBuffer)
	go f.pollEvents(runCtx, quit, actions)

	loop := game.NewLoop(f.engine, game.LoopConfig{
		TickRate: tickRate,
		Draw:     f.Draw,
		Actions:  actions,
	})

	err := loop.Run(runCtx)
	if errors.Is(err, context.Canceled) && ctx.Err() == nil {
		return nil
	}
	return err
}

// silenceLog discards the standard logger's output and returns a func that
// restores the previous writer
func silenceLog() func() {
	prev := log.Writer()
	log.SetOutput(io.Discard)
	return func() { log.SetOutput(prev) }
}

// pollEvents feeds key presses to the loop goroutine
func (f *Frontend) pollEvents(ctx context.Context, quit context.CancelFunc, actions chan<- input.Action) {
	defer close(actions)

	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			name := KeyName(ev)
			if input.IsQuit(name) || ev.Key() == tcell.KeyCtrlC {
				log.Println("Quit requested")
				quit()
				return
			}
			action, ok := f.keys.Resolve(name)
			if !ok {
				continue
			}
			select {
			case actions <- action:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			f.screen.Sync()
		}
	}
}

// Draw paints one frame and the score line
func (f *Frontend) Draw(snapshot game.Snapshot) {
	f.screen.Clear()
	f.renderer.Draw(f.surface, snapshot)

	p := render.Present(snapshot)
	f.surface.Text(0, p.ScoreLine(), scoreStyle)
	if banner := p.Banner(); banner != "" {
		_, rows := f.screen.Size()
		f.surface.Text(rows/2, banner, bannerStyle)
	}
	f.screen.Show()
}

// KeyName converts a key event to the shared key naming
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return input.KeySpace
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return ""
}
