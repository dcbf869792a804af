package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/input"
)

// Phase is the state of the game state machine.
type Phase int

const (
	Counting Phase = iota // Pre-game 3-2-1 overlay
	Running               // Ticks advance the simulation
	Paused                // Ticks halted until resumed
	GameOver              // Ticks halted until restart
)

func (p Phase) String() string {
	switch p {
	case Counting:
		return "counting"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Game is the aggregate of all state for one player's game.
// It is not safe for concurrent use; a single loop goroutine owns it.
type Game struct {
	Player Player
	Coin   Coin
	Lasers []Laser
	Score  int
	Best   int // Highest score since the process started

	settings  Settings
	clock     clock.Clock
	rng       *rand.Rand
	phase     Phase
	helpOpen  bool
	countdown int       // Digit currently shown while Counting
	nextCount time.Time // When the countdown digit changes
	lastMove  time.Time // Last grid step
	intents   input.Intents
}

// Ensure Game can be driven by the input adapter.
var _ input.Target = (*Game)(nil)

// New creates a game and starts it: with a countdown in the continuous
// ruleset, immediately in the grid ruleset.
func New(s Settings, clk clock.Clock, rng *rand.Rand) *Game {
	if clk == nil {
		clk = clock.Real{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(clk.Now().UnixNano()))
	}
	g := &Game{
		settings: s,
		clock:    clk,
		rng:      rng,
	}
	g.reset()
	g.begin(clk.Now())
	return g
}

// reset reinitialises every entity for a new run.
func (g *Game) reset() {
	s := g.settings
	g.Player = Player{
		Radius:       s.PlayerRadius,
		Speed:        s.PlayerSpeed,
		Color:        ColorPlayer,
		JumpDuration: s.JumpDuration,
	}
	if s.Ruleset == Grid {
		g.Player.Cell = Cell{Col: TileCount / 2, Row: TileCount / 2}
		g.Player.X, g.Player.Y = g.Player.Cell.Center()
	} else {
		g.Player.X = Resolution / 2
		g.Player.Y = Resolution / 2
	}

	g.Lasers = initialLasers(s)
	g.Score = 0
	g.Coin = Coin{Radius: s.PlayerRadius, Color: ColorCoin}
	g.spawnCoin()
	g.intents = input.Intents{}
	g.lastMove = time.Time{}
}

// Phase returns the current state.
func (g *Game) Phase() Phase { return g.phase }

// Settings returns the active rules.
func (g *Game) Settings() Settings { return g.settings }

// HardMode reports whether coins add lasers.
func (g *Game) HardMode() bool { return g.settings.HardMode }

// Ruleset returns the active ruleset. On the game-over screen this is the
// ruleset the next run will use.
func (g *Game) Ruleset() Ruleset { return g.settings.Ruleset }

// HelpOpen reports whether the help overlay is shown.
func (g *Game) HelpOpen() bool { return g.helpOpen }

// Countdown returns the digit to show while Counting.
func (g *Game) Countdown() int { return g.countdown }

// Halted reports whether the scheduler should stop requesting ticks.
func (g *Game) Halted() bool {
	return g.phase == Paused || g.phase == GameOver
}

// Intents returns the pending input state.
func (g *Game) Intents() *input.Intents { return &g.intents }

// Jumping reports whether the player is in a jump.
func (g *Game) Jumping() bool { return g.Player.Jumping }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.phase == GameOver }

// Paused reports whether the game is paused.
func (g *Game) Paused() bool { return g.phase == Paused }

// Scheme returns the touch gesture scheme matching the ruleset.
func (g *Game) Scheme() input.GestureScheme {
	if g.settings.Ruleset == Grid {
		return input.GestureDominantAxis
	}
	return input.GestureAngle
}
