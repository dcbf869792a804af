package desktop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/input"
	"github.com/tomz197/laserdodge/internal/render"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newApp(t *testing.T) *App {
	t.Helper()
	tuning := config.DefaultTuning()
	tuning.CountdownFrom = 0
	a, err := New(Options{Tuning: tuning, Clock: clock.NewMock(epoch), Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

func endGame(t *testing.T, a *App) {
	t.Helper()
	g := a.Game()
	g.Lasers = append(g.Lasers, game.Laser{Kind: game.Horizontal, Offset: g.Player.Y - 2, Thickness: 5})
	a.step()
	if !g.Over() {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
}

func TestKeyFor(t *testing.T) {
	tests := map[ebiten.Key]input.Key{
		ebiten.KeyArrowUp: input.KeyUp,
		ebiten.KeyD:       input.KeyRight,
		ebiten.KeySpace:   input.KeyJump,
		ebiten.KeyEnter:   input.KeyEnter,
		ebiten.KeyG:       input.KeyRuleset,
		ebiten.KeyEscape:  input.KeyQuit,
		ebiten.KeyF5:      input.KeyNone,
	}
	for k, want := range tests {
		if got := keyFor(k); got != want {
			t.Errorf("keyFor(%v) = %v, want %v", k, got, want)
		}
	}
}

func TestTextLeft(t *testing.T) {
	if got := TextLeft(250, 100, render.AlignCenter); got != 200 {
		t.Errorf("centre = %v, want 200", got)
	}
	if got := TextLeft(490, 100, render.AlignRight); got != 390 {
		t.Errorf("right = %v, want 390", got)
	}
	if got := TextLeft(10, 100, render.AlignLeft); got != 10 {
		t.Errorf("left = %v, want 10", got)
	}
}

func TestColors(t *testing.T) {
	if c := RGBA(game.ColorCoin); c.R != 0xff || c.G != 0xd7 || c.B != 0 {
		t.Errorf("coin = %v, want gold", c)
	}
	if c := RGBA(game.ColorBackground); c.R != 0xff || c.G != 0xff || c.B != 0xff {
		t.Errorf("background = %v, want white", c)
	}
}

func TestKeyDownMoves(t *testing.T) {
	a := newApp(t)
	g := a.Game()
	x := g.Player.X

	a.keyDown(input.KeyRight)
	a.step()
	if g.Player.X <= x {
		t.Fatalf("player x = %v, want > %v", g.Player.X, x)
	}

	a.adapter.KeyUp(input.KeyRight)
	x = g.Player.X
	a.step()
	if g.Player.X != x {
		t.Errorf("player moved after key up: %v -> %v", x, g.Player.X)
	}
}

func TestQuitKey(t *testing.T) {
	a := newApp(t)
	a.keyDown(input.KeyQuit)
	if !a.quit {
		t.Error("quit key ignored")
	}
}

func TestDragMoves(t *testing.T) {
	a := newApp(t)
	g := a.Game()
	y := g.Player.Y

	start := input.Point{X: 100, Y: 100}
	a.press(start, []input.Point{start})
	a.drag([]input.Point{{X: 100, Y: 160}})
	a.step()
	if g.Player.Y <= y {
		t.Fatalf("player y = %v, want > %v after dragging down", g.Player.Y, y)
	}

	a.release(0)
	if a.adapter.Dragging() {
		t.Error("still dragging after release")
	}
}

func TestSecondTouchJumps(t *testing.T) {
	a := newApp(t)
	p := input.Point{X: 100, Y: 100}
	a.press(p, []input.Point{p})
	a.press(input.Point{X: 300, Y: 300}, []input.Point{p, {X: 300, Y: 300}})
	a.step()
	if !a.Game().Jumping() {
		t.Error("second touch did not jump")
	}
}

func TestPressRestartButton(t *testing.T) {
	a := newApp(t)
	endGame(t, a)

	b := render.RestartButton
	a.press(input.Point{X: 10, Y: 10}, nil)
	if !a.Game().Over() {
		t.Fatal("press outside the button restarted")
	}
	centre := input.Point{X: b.X + b.W/2, Y: b.Y + b.H/2}
	a.press(centre, []input.Point{centre})
	if a.Game().Over() {
		t.Error("press on the button did not restart")
	}
}

func TestLayoutIsFixed(t *testing.T) {
	a := newApp(t)
	if w, h := a.Layout(1920, 1080); w != config.Resolution || h != config.Resolution {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, config.Resolution, config.Resolution)
	}
}
