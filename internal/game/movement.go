package game

import (
	"time"

	"github.com/tomz197/laserdodge/internal/physics"
)

// move integrates the player's position from the pending intents.
func (g *Game) move(now time.Time) {
	if g.settings.Ruleset == Grid {
		g.moveGrid(now)
		return
	}
	g.moveContinuous()
}

// moveContinuous steps each held direction by Speed if the player's circle
// stays on the surface afterwards. Both axes may move in one tick.
func (g *Game) moveContinuous() {
	p := &g.Player
	in := g.intents

	if in.Up && p.Y-p.Speed-p.Radius >= 0 {
		p.Y -= p.Speed
	}
	if in.Down && p.Y+p.Speed+p.Radius <= Resolution {
		p.Y += p.Speed
	}
	if in.Left && p.X-p.Speed-p.Radius >= 0 {
		p.X -= p.Speed
	}
	if in.Right && p.X+p.Speed+p.Radius <= Resolution {
		p.X += p.Speed
	}
}

// moveGrid takes at most one cell step per MoveDelay, preferring
// up, down, left, right in that order.
func (g *Game) moveGrid(now time.Time) {
	if now.Sub(g.lastMove) < g.settings.MoveDelay {
		return
	}

	c := g.Player.Cell
	in := g.intents
	switch {
	case in.Up:
		c.Row--
	case in.Down:
		c.Row++
	case in.Left:
		c.Col--
	case in.Right:
		c.Col++
	default:
		return
	}
	c.Col = physics.Clamp(c.Col, 0, TileCount-1)
	c.Row = physics.Clamp(c.Row, 0, TileCount-1)

	g.Player.Cell = c
	g.Player.X, g.Player.Y = c.Center()
	g.lastMove = now
}

// startJump begins the invulnerability window.
func (g *Game) startJump(now time.Time) {
	g.Player.Jumping = true
	g.Player.JumpStart = now
	g.Player.Color = ColorPlayerJumping
}

// endJump closes the invulnerability window.
func (g *Game) endJump() {
	g.Player.Jumping = false
	g.Player.Color = ColorPlayer
}
