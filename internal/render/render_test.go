package render

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/game"
)

type op struct {
	kind  string
	x, y  float64
	w, h  float64
	color game.Color
	text  string
	align Align
}

// recorder is a Surface that records draw calls.
type recorder struct {
	ops []op
}

func (r *recorder) Clear(c game.Color) {
	r.ops = append(r.ops, op{kind: "clear", color: c})
}

func (r *recorder) FillRect(x, y, w, h float64, c game.Color) {
	r.ops = append(r.ops, op{kind: "rect", x: x, y: y, w: w, h: h, color: c})
}

func (r *recorder) FillCircle(x, y, rad float64, c game.Color) {
	r.ops = append(r.ops, op{kind: "circle", x: x, y: y, w: rad, color: c})
}

func (r *recorder) Text(x, y float64, s string, size float64, align Align) {
	r.ops = append(r.ops, op{kind: "text", x: x, y: y, h: size, text: s, align: align})
}

func (r *recorder) texts() []string {
	var out []string
	for _, o := range r.ops {
		if o.kind == "text" {
			out = append(out, o.text)
		}
	}
	return out
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts() {
		if t == s {
			return true
		}
	}
	return false
}

func newGame(t *testing.T, countdown int) *game.Game {
	t.Helper()
	s := game.DefaultSettings()
	s.CountdownFrom = countdown
	clk := clock.NewMock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return game.New(s, clk, rand.New(rand.NewSource(3)))
}

func TestFrameDrawOrder(t *testing.T) {
	g := newGame(t, 0)
	var r recorder
	Frame(&r, g)

	if r.ops[0].kind != "clear" || r.ops[0].color != game.ColorBackground {
		t.Fatalf("first op = %+v, want background clear", r.ops[0])
	}
	if o := r.ops[1]; o.kind != "circle" || o.x != 250 || o.y != 250 || o.color != game.ColorPlayer {
		t.Fatalf("player op = %+v", o)
	}
	if o := r.ops[2]; o.kind != "rect" || o.x != 0 || o.y != 50 || o.w != 500 || o.h != 5 {
		t.Fatalf("horizontal laser op = %+v", o)
	}
	if o := r.ops[3]; o.kind != "rect" || o.x != 50 || o.y != 0 || o.w != 5 || o.h != 500 {
		t.Fatalf("vertical laser op = %+v", o)
	}
	if o := r.ops[4]; o.kind != "circle" || o.color != game.ColorCoin {
		t.Fatalf("coin op = %+v", o)
	}
	if o := r.ops[5]; o.kind != "text" || o.text != "Score: 0" || o.x != 10 || o.y != 25 || o.align != AlignLeft {
		t.Fatalf("score op = %+v", o)
	}
}

func TestFrameOverlays(t *testing.T) {
	g := newGame(t, 3)
	var r recorder
	Frame(&r, g)
	if !r.hasText("3") {
		t.Fatalf("countdown digit missing: %q", r.texts())
	}

	g = newGame(t, 0)
	g.TogglePause()
	r = recorder{}
	Frame(&r, g)
	if !r.hasText("Paused") {
		t.Fatalf("pause overlay missing: %q", r.texts())
	}

	g.ToggleHelp()
	r = recorder{}
	Frame(&r, g)
	if !r.hasText(HelpLines[0]) || r.hasText("Paused") {
		t.Fatalf("help overlay = %q", r.texts())
	}
}

func TestFrameGameOver(t *testing.T) {
	g := newGame(t, 0)
	g.Lasers = append(g.Lasers, game.Laser{Kind: game.Horizontal, Offset: 250, Thickness: 5})
	g.Tick(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if !g.Over() {
		t.Fatalf("game not over")
	}

	var r recorder
	Frame(&r, g)
	for _, want := range []string{"Game Over", "Press Enter to restart", "Restart", "G: play grid"} {
		if !r.hasText(want) {
			t.Fatalf("missing %q in %q", want, r.texts())
		}
	}
}

func TestHUDLabels(t *testing.T) {
	g := newGame(t, 0)
	g.ToggleDifficulty()
	g.Best = 7

	var r recorder
	HUD(&r, g)
	got := strings.Join(r.texts(), "|")
	for _, want := range []string{"Best: 7", "Mode: Easy", "Rules: continuous"} {
		if !strings.Contains(got, want) {
			t.Fatalf("HUD = %q, missing %q", got, want)
		}
	}
}

func TestRestartButtonContains(t *testing.T) {
	b := RestartButton
	if !b.Contains(b.X+1, b.Y+1) {
		t.Fatalf("button does not contain its corner")
	}
	if b.Contains(b.X+b.W, b.Y) {
		t.Fatalf("button contains a point on its right edge")
	}
}
