// Package game holds the entity model, the per-tick update and the state
// machine of the laser-dodging arcade game.
package game

import (
	"fmt"
	"time"

	"github.com/tomz197/laserdodge/internal/config"
)

// Surface dimensions shared by every frontend.
const (
	Resolution = float64(config.Resolution)
	GridSize   = float64(config.GridSize)
	TileCount  = config.TileCount
)

// Color is a palette slot. Frontends map slots to real colours.
type Color uint8

const (
	ColorNone Color = iota
	ColorBackground
	ColorPlayer
	ColorPlayerJumping
	ColorCoin
	ColorLaser
	ColorText
)

// Ruleset selects how the player moves and how coins are placed.
type Ruleset int

const (
	// Continuous moves the player in pixel steps, diagonals allowed.
	Continuous Ruleset = iota
	// Grid moves the player one cell at a time, rate limited.
	Grid
)

func (r Ruleset) String() string {
	switch r {
	case Continuous:
		return config.RulesetContinuous
	case Grid:
		return config.RulesetGrid
	default:
		return fmt.Sprintf("Ruleset(%d)", int(r))
	}
}

// ParseRuleset converts a tuning-file name to a Ruleset.
func ParseRuleset(s string) (Ruleset, error) {
	switch s {
	case config.RulesetContinuous, "":
		return Continuous, nil
	case config.RulesetGrid:
		return Grid, nil
	}
	return Continuous, fmt.Errorf("unknown ruleset %q", s)
}

// Cell is a grid position.
type Cell struct {
	Col, Row int
}

// Center returns the pixel centre of the cell.
func (c Cell) Center() (x, y float64) {
	return float64(c.Col)*GridSize + GridSize/2, float64(c.Row)*GridSize + GridSize/2
}

// Player is the token the user steers.
// X and Y are always the pixel centre; in the grid ruleset they follow Cell.
type Player struct {
	X, Y         float64
	Cell         Cell
	Radius       float64
	Speed        float64
	Color        Color
	Jumping      bool
	JumpStart    time.Time
	JumpDuration time.Duration
}

// Coin is the pickup. X and Y follow Cell in the grid ruleset.
type Coin struct {
	X, Y   float64
	Cell   Cell
	Radius float64
	Color  Color
}
