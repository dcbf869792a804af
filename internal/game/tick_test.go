package game

import (
	"testing"
	"time"

	"github.com/tomz197/laserdodge/internal/config"
)

func TestContinuousMovementStaysInBounds(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right bool
	}{
		{"up-left", true, false, true, false},
		{"down-right", false, true, false, true},
		{"up-right", true, false, false, true},
		{"down-left", false, true, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, clk := newRunningGame(t, Continuous)
			g.Lasers = nil
			in := g.Intents()
			in.Up, in.Down, in.Left, in.Right = tt.up, tt.down, tt.left, tt.right

			for i := 0; i < 300; i++ {
				parkCoinAwayFrom(g)
				g.Tick(clk.Advance(config.TargetFrameTime))
				p := g.Player
				if p.X-p.Radius < 0 || p.X+p.Radius > Resolution || p.Y-p.Radius < 0 || p.Y+p.Radius > Resolution {
					t.Fatalf("tick %d: player at (%v, %v) left the surface", i, p.X, p.Y)
				}
			}
		})
	}
}

// parkCoinAwayFrom keeps the coin in the corner opposite to the player.
func parkCoinAwayFrom(g *Game) {
	g.Coin.X, g.Coin.Y = 30, 30
	if g.Player.X < Resolution/2 {
		g.Coin.X = 470
	}
	if g.Player.Y < Resolution/2 {
		g.Coin.Y = 470
	}
}

func TestContinuousDiagonalMovesBothAxes(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	in := g.Intents()
	in.Up, in.Right = true, true

	g.Tick(clk.Advance(config.TargetFrameTime))
	if g.Player.X != 253 || g.Player.Y != 247 {
		t.Fatalf("player = (%v, %v), want (253, 247)", g.Player.X, g.Player.Y)
	}
}

func TestGridMovementIsRateLimited(t *testing.T) {
	g, clk := newRunningGame(t, Grid)
	g.Intents().Right = true

	g.Tick(clk.Now())
	if g.Player.Cell.Col != 11 {
		t.Fatalf("col = %d, want 11 after first step", g.Player.Cell.Col)
	}
	g.Tick(clk.Advance(50 * time.Millisecond))
	if g.Player.Cell.Col != 11 {
		t.Fatalf("col = %d, want 11 within move delay", g.Player.Cell.Col)
	}
	g.Tick(clk.Advance(50 * time.Millisecond))
	if g.Player.Cell.Col != 12 {
		t.Fatalf("col = %d, want 12 after move delay", g.Player.Cell.Col)
	}
	if x, y := g.Player.Cell.Center(); g.Player.X != x || g.Player.Y != y {
		t.Fatalf("pixel position (%v, %v) does not follow cell centre (%v, %v)", g.Player.X, g.Player.Y, x, y)
	}
}

func TestGridMovementPriority(t *testing.T) {
	g, clk := newRunningGame(t, Grid)
	in := g.Intents()
	in.Up, in.Left, in.Right = true, true, true

	g.Tick(clk.Now())
	if got, want := g.Player.Cell, (Cell{Col: 10, Row: 9}); got != want {
		t.Fatalf("cell = %+v, want %+v", got, want)
	}
}

func TestGridMovementClamps(t *testing.T) {
	g, clk := newRunningGame(t, Grid)
	g.Lasers = nil
	g.Intents().Up = true

	for i := 0; i < 30; i++ {
		g.Tick(clk.Advance(config.MoveDelay))
	}
	if g.Player.Cell.Row != 0 {
		t.Fatalf("row = %d, want 0", g.Player.Cell.Row)
	}
}

func TestJumpGrantsImmunity(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	g.Lasers = []Laser{{Kind: Horizontal, Offset: 248, Velocity: 0, Thickness: 5}}
	g.Intents().JumpRequested = true

	out := g.Tick(clk.Now())
	if !out.JumpStarted || !g.Player.Jumping {
		t.Fatalf("jump did not start")
	}
	if g.Player.Color != ColorPlayerJumping {
		t.Fatalf("color = %v, want jumping color", g.Player.Color)
	}
	if g.Phase() != Running {
		t.Fatalf("phase = %v, want running while jumping over a laser", g.Phase())
	}

	g.Tick(clk.Advance(499 * time.Millisecond))
	if !g.Player.Jumping || g.Phase() != Running {
		t.Fatalf("jump ended early: jumping=%v phase=%v", g.Player.Jumping, g.Phase())
	}

	out = g.Tick(clk.Advance(time.Millisecond))
	if !out.JumpEnded || g.Player.Jumping {
		t.Fatalf("jump did not end at its duration")
	}
	if g.Player.Color != ColorPlayer {
		t.Fatalf("color = %v, want default color", g.Player.Color)
	}
	if !out.Hit || g.Phase() != GameOver {
		t.Fatalf("laser under the player did not end the game after the jump")
	}
}

func TestJumpRequestWhileJumpingKeepsStartTime(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	g.Intents().JumpRequested = true
	g.Tick(clk.Now())
	start := g.Player.JumpStart

	g.Intents().JumpRequested = true
	g.Tick(clk.Advance(200 * time.Millisecond))
	if !g.Player.JumpStart.Equal(start) {
		t.Fatalf("jump restarted while already jumping")
	}
}

func TestLaserHitEndsGame(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	g.Lasers = append(g.Lasers, Laser{Kind: Vertical, Offset: 240, Velocity: 0, Thickness: 5})

	out := g.Tick(clk.Now())
	if !out.Hit || g.Phase() != GameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}

	g.Intents().Left = true
	x := g.Player.X
	g.Tick(clk.Advance(config.TargetFrameTime))
	if g.Player.X != x {
		t.Fatalf("player moved after game over")
	}
}

func TestLasersAdvanceEachTick(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	g.Tick(clk.Now())
	for i, l := range g.Lasers {
		if l.Offset != 51.5 {
			t.Fatalf("laser %d offset = %v, want 51.5", i, l.Offset)
		}
	}
}

func TestPausedTickDoesNothing(t *testing.T) {
	g, clk := newRunningGame(t, Continuous)
	g.TogglePause()
	g.Intents().Up = true

	g.Tick(clk.Advance(config.TargetFrameTime))
	if g.Player.Y != 250 || g.Lasers[0].Offset != 50 {
		t.Fatalf("state changed while paused")
	}
}
