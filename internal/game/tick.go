package game

import "time"

// Outcome reports what happened during one tick, for sound cues and logs.
type Outcome struct {
	CountdownStep bool // The countdown digit changed
	Started       bool // The countdown finished
	JumpStarted   bool
	JumpEnded     bool
	Collected     bool // A coin was picked up
	LaserAdded    bool
	Hit           bool // A laser ended the game
}

// Tick advances the game by one frame at time now.
//
// While Running it applies a pending jump, moves the player and the lasers,
// expires the jump, then checks collisions. While Counting it only advances
// the countdown. Paused and GameOver ticks do nothing.
func (g *Game) Tick(now time.Time) Outcome {
	var out Outcome
	switch g.phase {
	case Counting:
		g.advanceCountdown(now, &out)
		return out
	case Running:
	default:
		return out
	}

	if g.intents.JumpRequested {
		g.intents.JumpRequested = false
		if !g.Player.Jumping {
			g.startJump(now)
			out.JumpStarted = true
		}
	}

	g.move(now)

	for i := range g.Lasers {
		g.Lasers[i].Advance(Resolution)
	}

	if g.Player.Jumping && now.Sub(g.Player.JumpStart) >= g.Player.JumpDuration {
		g.endJump()
		out.JumpEnded = true
	}

	g.checkCollisions(&out)
	return out
}
