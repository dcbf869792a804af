// Package tui runs the game on a tcell screen: keyboard through tcell key
// events and mouse drags mapped onto the touch gestures.
package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/laserdodge/internal/audio"
	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/draw"
	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/input"
	"github.com/tomz197/laserdodge/internal/loop"
	"github.com/tomz197/laserdodge/internal/render"
)

// Options configures the tcell frontend.
type Options struct {
	Tuning config.Tuning
	Logger *log.Logger
	Sound  *audio.Player
	Clock  clock.Clock
	Rand   *rand.Rand
}

// App owns a tcell screen and one game.
type App struct {
	screen  tcell.Screen
	game    *game.Game
	sched   *loop.Scheduler
	ticker  *loop.Ticker
	adapter *input.Adapter
	holds   *input.HoldTracker

	canvas  *draw.Canvas
	surface *draw.Surface

	logger    *log.Logger
	sound     *audio.Player
	clock     clock.Clock
	frameTime time.Duration
	quit      bool
}

// New creates an app drawing to screen. The screen must not be initialised
// yet; Run initialises and finalises it.
func New(screen tcell.Screen, opts Options) (*App, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	settings, err := game.SettingsFromTuning(opts.Tuning)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	a := &App{
		screen:    screen,
		holds:     input.NewHoldTracker(opts.Tuning.KeyHold),
		logger:    logger,
		sound:     opts.Sound,
		clock:     clk,
		frameTime: opts.Tuning.FrameTime(),
	}
	a.game = game.New(settings, clk, opts.Rand)
	a.adapter = input.NewAdapter(a.game)
	a.ticker = &loop.Ticker{}
	a.sched = loop.NewScheduler(a.game, clk, a.ticker, a.onFrame)
	a.canvas = draw.NewScaledCanvas(0, 0, game.Resolution, game.Resolution)
	a.canvas.SetPalette(draw.GamePalette())
	a.surface = draw.NewSurface(a.canvas)
	return a, nil
}

// Game returns the app's game.
func (a *App) Game() *game.Game {
	return a.game
}

// Run initialises the screen and plays until the player quits or ctx is
// cancelled. Events are pumped from PollEvent on their own goroutine.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	a.screen.EnableMouse(tcell.MouseDragEvents)
	a.screen.HideCursor()
	a.resize()

	events := make(chan tcell.Event, 100)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return nil // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer a.screen.Fini()
		return a.loop(ctx, events)
	})

	return g.Wait()
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.frameTime)
	defer ticker.Stop()

	for !a.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			a.handleEvent(ev)
		case <-ticker.C:
			a.frame()
		}
	}
	return nil
}

// frame releases expired keys, runs one game frame and redraws.
func (a *App) frame() {
	for _, ev := range a.holds.Expire(a.clock.Now(), nil) {
		a.adapter.Apply(ev)
	}
	if a.sched.Pending() {
		a.ticker.Fire()
	} else {
		a.sched.Resume()
	}
	a.draw()
}

func (a *App) onFrame(out game.Outcome) {
	a.sound.PlayOutcome(out)
	if out.Hit {
		a.logger.Info("game over", "score", a.game.Score, "best", a.game.Best)
	}
}

// handleEvent applies one tcell event.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := keyFor(ev)
		if k == input.KeyQuit {
			a.quit = true
			return
		}
		if k == input.KeyNone {
			return
		}
		wasOver := a.game.Over()
		if a.holds.Press(k, a.clock.Now()) {
			a.adapter.KeyDown(k)
		}
		if wasOver && !a.game.Over() {
			a.holds.Reset()
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	}
}

// handleMouse maps a left-button drag onto the touch gestures. On the
// game-over screen a click on the restart control restarts.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := a.toSurface(x, y)

	if ev.Buttons()&tcell.Button1 == 0 {
		a.adapter.TouchEnd(0)
		return
	}

	if a.game.Over() {
		if render.RestartButton.Contains(p.X, p.Y) {
			a.game.Restart()
			a.holds.Reset()
		}
		return
	}
	if a.adapter.Dragging() {
		a.adapter.TouchMove([]input.Point{p})
		return
	}
	a.adapter.TouchStart([]input.Point{p})
}

// toSurface converts a screen cell to game coordinates. Each cell holds
// two sub-pixel rows, so the cell's vertical centre is used.
func (a *App) toSurface(x, y int) input.Point {
	display := input.Rect{
		X: float64(a.canvas.OffsetCol()),
		Y: float64(a.canvas.OffsetRow()),
		W: float64(a.canvas.TerminalWidth()),
		H: float64(a.canvas.TerminalHeight()),
	}
	return input.ScalePoint(input.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}, display, game.Resolution, game.Resolution)
}

func (a *App) resize() {
	w, h := a.screen.Size()
	rw, rh, offCol, offRow := draw.ClampTermSize(w, h, config.MaxTermWidth)
	a.canvas.Resize(rw, rh)
	a.canvas.SetOffset(offCol, offRow)
	a.screen.Clear()
}

// draw copies the canvas and the overlay text into the screen.
func (a *App) draw() {
	render.Frame(a.surface, a.game)

	pal := a.canvas.Palette()
	offCol, offRow := a.canvas.OffsetCol(), a.canvas.OffsetRow()
	for row := 0; row < a.canvas.TerminalHeight(); row++ {
		for col := 0; col < a.canvas.TerminalWidth(); col++ {
			top, bottom := a.canvas.Cell(col, row)
			ch, style := cellStyle(pal[top], pal[bottom])
			a.screen.SetContent(offCol+col, offRow+row, ch, nil, style)
		}
	}

	text := tcell.StyleDefault.Bold(true)
	for _, t := range a.surface.Placed() {
		col := offCol + t.Col - 1
		for _, r := range t.Text {
			a.screen.SetContent(col, offRow+t.Row-1, r, nil, text)
			col++
		}
	}
	a.screen.Show()
}

// cellStyle picks the half-block glyph and style for two xterm colours.
func cellStyle(top, bottom int) (rune, tcell.Style) {
	style := tcell.StyleDefault
	switch {
	case top < 0 && bottom < 0:
		return ' ', style
	case top == bottom:
		return draw.BlockFull, style.Foreground(tcell.PaletteColor(top))
	case top < 0:
		return draw.BlockLowerHalf, style.Foreground(tcell.PaletteColor(bottom))
	case bottom < 0:
		return draw.BlockUpperHalf, style.Foreground(tcell.PaletteColor(top))
	}
	return draw.BlockUpperHalf, style.Foreground(tcell.PaletteColor(top)).Background(tcell.PaletteColor(bottom))
}

// keyFor maps a tcell key event to a game key.
func keyFor(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return input.KeyQuit
	case tcell.KeyRune:
		if ev.Rune() > 0x7f {
			return input.KeyNone
		}
		return input.KeyForByte(byte(ev.Rune()))
	}
	return input.KeyNone
}
