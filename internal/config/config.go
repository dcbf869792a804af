package config

import "time"

// Surface - all game coordinates live in this logical square.
// Frontends scale it to whatever they draw on.
const (
	Resolution = 500 // Logical width and height
	GridSize   = 25  // Size of one grid cell
	TileCount  = 20  // Cells per row/column in the grid ruleset
)

// Player
const (
	PlayerSpeed  = 3.0                    // Pixels per tick (continuous ruleset)
	PlayerRadius = GridSize / 2.0         // Also the coin radius
	JumpDuration = 500 * time.Millisecond // Invulnerability window
	MoveDelay    = 100 * time.Millisecond // Minimum time between grid steps
)

// Lasers
const (
	LaserThickness     = 5.0
	LaserSpeed         = 1.5
	InitialLaserOffset = 50.0
)

// Countdown
const (
	CountdownFrom = 3
	CountdownStep = 700 * time.Millisecond
)

// Frontend timing
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	KeyHoldDuration = 120 * time.Millisecond // Key counts as held this long after its last byte
)

// Terminal rendering
const (
	MaxTermWidth = 100 // Columns; the board is square, so at most 50 rows
)

// Inactivity (SSH sessions)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Shutdown
const (
	ShutdownDisplaySeconds = 5.0 // Seconds to show the shutdown notice before disconnecting
)
