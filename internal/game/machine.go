package game

import "time"

// begin enters Counting, or Running when the countdown does not apply.
// The countdown only runs in the continuous ruleset.
func (g *Game) begin(now time.Time) {
	if g.settings.Ruleset == Continuous && g.settings.CountdownFrom > 0 {
		g.phase = Counting
		g.countdown = g.settings.CountdownFrom
		g.nextCount = now.Add(g.settings.CountdownStep)
		return
	}
	g.countdown = 0
	g.startRunning()
}

// startRunning enters Running, or Paused while the help overlay is open.
func (g *Game) startRunning() {
	if g.helpOpen {
		g.phase = Paused
		return
	}
	g.phase = Running
}

// advanceCountdown steps the countdown digit. Returns true once it reached
// zero and the game left Counting.
func (g *Game) advanceCountdown(now time.Time, out *Outcome) bool {
	// Jumps requested before the start would expire unseen.
	g.intents.JumpRequested = false

	for g.countdown > 0 && !now.Before(g.nextCount) {
		g.countdown--
		g.nextCount = g.nextCount.Add(g.settings.CountdownStep)
		out.CountdownStep = true
	}
	if g.countdown > 0 {
		return false
	}
	g.startRunning()
	out.Started = true
	return true
}

// TogglePause switches between Running and Paused. Ignored in other phases.
// Resuming also closes the help overlay.
func (g *Game) TogglePause() {
	switch g.phase {
	case Running:
		g.phase = Paused
	case Paused:
		g.helpOpen = false
		g.phase = Running
	}
}

// OpenHelp shows the help overlay and pauses a running game.
func (g *Game) OpenHelp() {
	g.helpOpen = true
	if g.phase == Running {
		g.phase = Paused
	}
}

// CloseHelp hides the help overlay and resumes a paused game.
func (g *Game) CloseHelp() {
	if !g.helpOpen {
		return
	}
	g.helpOpen = false
	if g.phase == Paused {
		g.phase = Running
	}
}

// ToggleHelp opens or closes the help overlay.
func (g *Game) ToggleHelp() {
	if g.helpOpen {
		g.CloseHelp()
		return
	}
	g.OpenHelp()
}

// ToggleDifficulty switches between hard and easy mode. Existing lasers stay;
// only later pickups are affected.
func (g *Game) ToggleDifficulty() {
	g.settings.HardMode = !g.settings.HardMode
}

// ToggleRuleset switches between continuous and grid movement for the next
// run. Only allowed on the game-over screen.
func (g *Game) ToggleRuleset() {
	if g.phase != GameOver {
		return
	}
	if g.settings.Ruleset == Grid {
		g.settings.Ruleset = Continuous
	} else {
		g.settings.Ruleset = Grid
	}
}

// Restart reinitialises every entity and resumes play without a countdown.
// Only allowed after the game is over.
func (g *Game) Restart() {
	if g.phase != GameOver {
		return
	}
	g.reset()
	g.countdown = 0
	g.startRunning()
}
