package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/tomz197/laserdodge/internal/clock"
)

var epoch = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// newRunningGame returns a game that skips the countdown, with the coin
// parked in a corner so it is not picked up by accident.
func newRunningGame(t *testing.T, r Ruleset) (*Game, *clock.Mock) {
	t.Helper()
	s := DefaultSettings()
	s.Ruleset = r
	s.CountdownFrom = 0
	clk := clock.NewMock(epoch)
	g := New(s, clk, rand.New(rand.NewSource(1)))
	if g.Phase() != Running {
		t.Fatalf("phase = %v, want running", g.Phase())
	}
	parkCoin(g)
	return g, clk
}

// parkCoin moves the coin away from the player.
func parkCoin(g *Game) {
	if g.settings.Ruleset == Grid {
		g.Coin.Cell = Cell{Col: 0, Row: TileCount - 1}
		g.Coin.X, g.Coin.Y = g.Coin.Cell.Center()
		return
	}
	g.Coin.X, g.Coin.Y = 480, 480
}

// seqSource is a rand.Source yielding a fixed sequence, so Intn(n) returns
// each value (mod n) in order.
type seqSource struct {
	vals []int64
	i    int
}

func (s *seqSource) Int63() int64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v << 32
}

func (s *seqSource) Seed(int64) {}
