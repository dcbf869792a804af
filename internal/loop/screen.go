package loop

import (
	"fmt"
	"math"

	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/render"
)

// textStyle is applied to every overlay string.
const textStyle = "\033[1m"

// drawFrame draws the current frame.
func (s *Session) drawFrame() error {
	render.Frame(s.surface, s.game)

	switch {
	case s.shuttingDown:
		s.drawShutdownScreen()
	case s.isInactive:
		s.drawInactivityScreen()
	case s.game.Over() && s.server != nil:
		s.drawTopScores()
	}

	s.canvas.Render(s.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	s.canvas.RenderBorder(s.chunkWriter)

	for _, t := range s.surface.Placed() {
		n := s.chunkWriter.WriteText(t, textStyle)
		s.canvas.MarkTextDirty(t.Col, t.Row, n)
	}
	return s.chunkWriter.Flush()
}

// drawInactivityScreen draws the inactivity warning screen.
func (s *Session) drawInactivityScreen() {
	left := s.idleDisconnect - s.clock.Now().Sub(s.lastInput)
	s.drawNotice(
		"INACTIVITY WARNING",
		fmt.Sprintf("Disconnecting in %d seconds", int(math.Ceil(left.Seconds()))),
		"Press any game key to continue",
	)
}

// drawShutdownScreen draws the server shutdown notice.
func (s *Session) drawShutdownScreen() {
	left := s.shutdownAt.Sub(s.clock.Now())
	s.drawNotice(
		"SERVER SHUTTING DOWN",
		fmt.Sprintf("Disconnecting in %d seconds", int(math.Ceil(left.Seconds()))),
		"Thanks for playing!",
	)
}

// drawNotice blanks the board and centres a title with two lines below it.
func (s *Session) drawNotice(title, msg, hint string) {
	cx, cy := game.Resolution/2, game.Resolution/2
	s.surface.Clear(game.ColorBackground)
	s.surface.Text(cx, cy-40, title, render.SizeHUD, render.AlignCenter)
	s.surface.Text(cx, cy, msg, render.SizeHUD, render.AlignCenter)
	s.surface.Text(cx, cy+40, hint, render.SizeHUD, render.AlignCenter)
}

// drawTopScores lists the best runs across all sessions on this server.
func (s *Session) drawTopScores() {
	scores := s.server.TopScores()
	if len(scores) == 0 {
		return
	}
	cx := game.Resolution / 2
	s.surface.Text(cx, 100, "Top scores", render.SizeHUD, render.AlignCenter)
	for i, e := range scores {
		line := fmt.Sprintf("%d. %-16s %4d", i+1, e.Username, e.Score)
		s.surface.Text(cx, 125+float64(i)*20, line, render.SizeHUD, render.AlignCenter)
	}
}
