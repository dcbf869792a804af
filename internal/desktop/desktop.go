// Package desktop runs the game in an ebiten window: keyboard, mouse drags
// and touch gestures on a 500×500 surface.
package desktop

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/laserdodge/internal/audio"
	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/input"
	"github.com/tomz197/laserdodge/internal/loop"
	"github.com/tomz197/laserdodge/internal/render"
)

// WindowTitle is shown in the window's title bar.
const WindowTitle = "Laser Dodge"

// Options configures the desktop frontend.
type Options struct {
	Tuning config.Tuning
	Logger *log.Logger
	Sound  *audio.Player
	Clock  clock.Clock
	Rand   *rand.Rand
}

// App implements ebiten.Game.
type App struct {
	game    *game.Game
	sched   *loop.Scheduler
	ticker  *loop.Ticker
	adapter *input.Adapter
	surface *Surface
	logger  *log.Logger
	sound   *audio.Player

	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
	mouse    bool
	quit     bool
}

var _ ebiten.Game = (*App)(nil)

// New creates an app.
func New(opts Options) (*App, error) {
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
		logger:  logger,
		sound:   opts.Sound,
		surface: NewSurface(),
	}
	a.game = game.New(settings, clk, opts.Rand)
	a.adapter = input.NewAdapter(a.game)
	a.ticker = &loop.Ticker{}
	a.sched = loop.NewScheduler(a.game, clk, a.ticker, a.onFrame)
	return a, nil
}

// Run opens the window and blocks until it is closed or the player quits.
func (a *App) Run(tuning config.Tuning) error {
	ebiten.SetWindowSize(config.Resolution, config.Resolution)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tuning.TargetFPS)

	err := ebiten.RunGame(a)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Game returns the app's game.
func (a *App) Game() *game.Game {
	return a.game
}

// Update reads input and runs one game frame.
func (a *App) Update() error {
	a.readKeys()
	a.readMouse()
	a.readTouches()
	if a.quit {
		return ebiten.Termination
	}
	a.step()
	return nil
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	render.Frame(a.surface, a.game)
}

// Layout keeps the logical surface fixed; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Resolution, config.Resolution
}

func (a *App) step() {
	if a.sched.Pending() {
		a.ticker.Fire()
		return
	}
	a.sched.Resume()
}

func (a *App) onFrame(out game.Outcome) {
	a.sound.PlayOutcome(out)
	if out.Hit {
		a.logger.Info("game over", "score", a.game.Score, "best", a.game.Best)
	}
}

func (a *App) readKeys() {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.keyDown(keyFor(k))
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		a.adapter.KeyUp(keyFor(k))
	}
}

func (a *App) keyDown(k input.Key) {
	switch k {
	case input.KeyNone:
	case input.KeyQuit:
		a.quit = true
	default:
		a.adapter.KeyDown(k)
	}
}

func (a *App) readMouse() {
	x, y := ebiten.CursorPosition()
	p := input.Point{X: float64(x), Y: float64(y)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		a.mouse = true
		a.press(p, []input.Point{p})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		a.mouse = false
		a.release(0)
	case a.mouse:
		a.drag([]input.Point{p})
	}
}

func (a *App) readTouches() {
	a.touchIDs = ebiten.AppendTouchIDs(a.touchIDs[:0])
	points := make([]input.Point, 0, len(a.touchIDs))
	for _, id := range a.touchIDs {
		x, y := ebiten.TouchPosition(id)
		points = append(points, input.Point{X: float64(x), Y: float64(y)})
	}

	if pressed := inpututil.AppendJustPressedTouchIDs(nil); len(pressed) > 0 {
		x, y := ebiten.TouchPosition(pressed[0])
		a.press(input.Point{X: float64(x), Y: float64(y)}, points)
		return
	}
	if released := inpututil.AppendJustReleasedTouchIDs(nil); len(released) > 0 {
		a.release(len(points))
		return
	}
	if len(points) > 0 {
		a.drag(points)
	}
}

// press starts a gesture at p, where active holds every pointer now down.
// On the game-over screen it only hits the restart control.
func (a *App) press(p input.Point, active []input.Point) {
	if a.game.Over() {
		if render.RestartButton.Contains(p.X, p.Y) {
			a.game.Restart()
		}
		return
	}
	a.adapter.TouchStart(active)
}

func (a *App) drag(active []input.Point) {
	a.adapter.TouchMove(active)
}

func (a *App) release(remaining int) {
	a.adapter.TouchEnd(remaining)
}

// keyFor maps an ebiten key to a game key.
func keyFor(k ebiten.Key) input.Key {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return input.KeyUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return input.KeyDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return input.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return input.KeyRight
	case ebiten.KeySpace:
		return input.KeyJump
	case ebiten.KeyP:
		return input.KeyPause
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return input.KeyEnter
	case ebiten.KeyR:
		return input.KeyRestart
	case ebiten.KeyH:
		return input.KeyHelp
	case ebiten.KeyM:
		return input.KeyMode
	case ebiten.KeyG:
		return input.KeyRuleset
	case ebiten.KeyQ, ebiten.KeyEscape:
		return input.KeyQuit
	}
	return input.KeyNone
}
