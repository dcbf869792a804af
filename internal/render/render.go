// Package render draws a game onto any Surface. Frontends (terminal canvas,
// tcell screen, ebiten window) implement Surface; the layout lives here.
package render

import (
	"strconv"

	"github.com/tomz197/laserdodge/internal/game"
)

// Align positions text relative to its anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Text sizes in logical pixels.
const (
	SizeHUD       = 20.0
	SizeTitle     = 50.0
	SizeCountdown = 120.0
)

// Surface is a 500×500 logical drawing target.
type Surface interface {
	Clear(c game.Color)
	FillRect(x, y, w, h float64, c game.Color)
	FillCircle(x, y, r float64, c game.Color)
	// Text draws s with its baseline at y. size is the font height.
	Text(x, y float64, s string, size float64, align Align)
}

// Rect is an axis-aligned logical rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RestartButton is the restart control shown on the game-over screen.
var RestartButton = Rect{X: game.Resolution/2 - 70, Y: game.Resolution/2 + 60, W: 140, H: 36}

// HelpLines is the text of the help overlay.
var HelpLines = []string{
	"Arrows / WASD  move",
	"Space          jump",
	"P              pause",
	"Enter / R      restart",
	"M              hard / easy",
	"G              continuous / grid",
	"H              close help",
	"Q              quit",
}

// Frame draws the full scene: board, entities, HUD and the overlay for
// the current phase.
func Frame(s Surface, g *game.Game) {
	s.Clear(game.ColorBackground)

	p := g.Player
	s.FillCircle(p.X, p.Y, p.Radius, p.Color)

	for _, l := range g.Lasers {
		x, y, w, h := l.Bounds(game.Resolution)
		s.FillRect(x, y, w, h, game.ColorLaser)
	}

	c := g.Coin
	s.FillCircle(c.X, c.Y, c.Radius, c.Color)

	HUD(s, g)

	switch {
	case g.HelpOpen():
		Help(s)
	case g.Phase() == game.Counting:
		s.Text(game.Resolution/2, game.Resolution/2+SizeCountdown/3, strconv.Itoa(g.Countdown()), SizeCountdown, AlignCenter)
	case g.Phase() == game.Paused:
		s.Text(game.Resolution/2, game.Resolution/2, "Paused", SizeTitle, AlignCenter)
		s.Text(game.Resolution/2, game.Resolution/2+40, "Press P to resume", SizeHUD, AlignCenter)
	case g.Phase() == game.GameOver:
		GameOver(s, g)
	}
}

// HUD draws the score, best score, difficulty and ruleset labels.
func HUD(s Surface, g *game.Game) {
	s.Text(10, 25, "Score: "+strconv.Itoa(g.Score), SizeHUD, AlignLeft)
	s.Text(10, 50, "Best: "+strconv.Itoa(g.Best), SizeHUD, AlignLeft)
	s.Text(game.Resolution-10, 25, ModeLabel(g.HardMode()), SizeHUD, AlignRight)
	s.Text(game.Resolution-10, 50, "Rules: "+g.Ruleset().String(), SizeHUD, AlignRight)
}

// ModeLabel returns the difficulty label.
func ModeLabel(hard bool) string {
	if hard {
		return "Mode: Hard"
	}
	return "Mode: Easy"
}

// GameOver draws the game-over message and the restart control.
func GameOver(s Surface, g *game.Game) {
	cx, cy := game.Resolution/2, game.Resolution/2
	s.Text(cx, cy, "Game Over", SizeTitle, AlignCenter)
	s.Text(cx, cy+40, "Press Enter to restart", SizeHUD, AlignCenter)

	b := RestartButton
	s.FillRect(b.X, b.Y, b.W, b.H, game.ColorPlayer)
	s.Text(b.X+b.W/2, b.Y+b.H/2+SizeHUD/3, "Restart", SizeHUD, AlignCenter)

	next := game.Grid
	if g.Ruleset() == game.Grid {
		next = game.Continuous
	}
	s.Text(cx, b.Y+b.H+30, "G: play "+next.String(), SizeHUD, AlignCenter)
}

// Help draws the help overlay.
func Help(s Surface) {
	top := game.Resolution/2 - float64(len(HelpLines))*SizeHUD/2
	s.Text(game.Resolution/2, top-20, "Help", SizeTitle/1.5, AlignCenter)
	for i, line := range HelpLines {
		s.Text(game.Resolution/2-120, top+20+float64(i)*SizeHUD*1.2, line, SizeHUD, AlignLeft)
	}
}
