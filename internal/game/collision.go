package game

import "github.com/tomz197/laserdodge/internal/physics"

// checkCollisions runs coin pickup, then laser hits.
func (g *Game) checkCollisions(out *Outcome) {
	if g.coinCollected() {
		g.Score++
		if g.Score > g.Best {
			g.Best = g.Score
		}
		out.Collected = true
		g.spawnCoin()

		if g.settings.HardMode {
			g.addLaser()
			out.LaserAdded = true
		}
	}

	if g.Player.Jumping {
		return
	}
	for _, l := range g.Lasers {
		if l.Hits(g.Player.X, g.Player.Y, g.Player.Radius) {
			g.phase = GameOver
			out.Hit = true
			return
		}
	}
}

// coinCollected tests player/coin overlap: cell equality on the grid,
// circle overlap otherwise.
func (g *Game) coinCollected() bool {
	if g.settings.Ruleset == Grid {
		return g.Player.Cell == g.Coin.Cell
	}
	return physics.CirclesOverlap(g.Player.X, g.Player.Y, g.Player.Radius, g.Coin.X, g.Coin.Y, g.Coin.Radius)
}

// spawnCoin places the coin at a new random position. On the grid it never
// lands on the player's cell.
func (g *Game) spawnCoin() {
	c := &g.Coin
	if g.settings.Ruleset == Grid {
		for {
			cell := Cell{Col: g.rng.Intn(TileCount), Row: g.rng.Intn(TileCount)}
			if cell != g.Player.Cell {
				c.Cell = cell
				break
			}
		}
		c.X, c.Y = c.Cell.Center()
		return
	}

	padding := c.Radius * 2
	c.X = padding + g.rng.Float64()*(Resolution-padding*2)
	c.Y = padding + g.rng.Float64()*(Resolution-padding*2)
}

// addLaser appends one laser for the current score: horizontal on odd
// scores, vertical on even ones. It starts at the edge farther from the
// player and moves in a random direction.
func (g *Game) addLaser() {
	s := g.settings
	velocity := s.LaserSpeed
	if g.rng.Float64() <= 0.5 {
		velocity = -velocity
	}

	l := Laser{Velocity: velocity, Thickness: s.LaserThickness}
	if g.Score%2 != 0 {
		l.Kind = Horizontal
		l.Offset = farEdge(g.Player.Y, s.LaserThickness)
	} else {
		l.Kind = Vertical
		l.Offset = farEdge(g.Player.X, s.LaserThickness)
	}
	g.Lasers = append(g.Lasers, l)
}

// farEdge returns the band offset at the edge opposite to pos.
func farEdge(pos, thickness float64) float64 {
	if pos < Resolution/2 {
		return Resolution - thickness
	}
	return 0
}
