package loop

import (
	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/game"
)

// FrameRequester runs a callback on the next display refresh.
type FrameRequester interface {
	RequestFrame(fn func())
}

// FrameHook is called after every tick with what happened during it.
type FrameHook func(out game.Outcome)

// Scheduler drives a game one frame at a time. Each frame ticks the game,
// runs the hook and requests the next frame, unless the game is halted
// (paused or over). A halted game is re-entered with Resume.
type Scheduler struct {
	game    *game.Game
	clock   clock.Clock
	frames  FrameRequester
	hook    FrameHook
	pending bool
}

// NewScheduler creates a scheduler. Call Resume to request the first frame.
func NewScheduler(g *game.Game, clk clock.Clock, fr FrameRequester, hook FrameHook) *Scheduler {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Scheduler{
		game:   g,
		clock:  clk,
		frames: fr,
		hook:   hook,
	}
}

// Pending reports whether a frame has been requested and not yet run.
func (s *Scheduler) Pending() bool {
	return s.pending
}

// Resume runs a frame immediately if the game is not halted and no frame
// is already pending. Call it after any control that may unpause the game.
func (s *Scheduler) Resume() {
	if s.pending || s.game.Halted() {
		return
	}
	s.frame()
}

func (s *Scheduler) frame() {
	s.pending = false
	out := s.game.Tick(s.clock.Now())
	if s.hook != nil {
		s.hook(out)
	}
	if s.game.Halted() {
		return
	}
	s.pending = true
	s.frames.RequestFrame(s.frame)
}

// Ticker is a FrameRequester for fixed-rate loops. It holds at most one
// callback; the loop calls Fire once per frame.
type Ticker struct {
	next func()
}

// RequestFrame stores fn for the next Fire.
func (t *Ticker) RequestFrame(fn func()) {
	t.next = fn
}

// Fire runs the stored callback. It reports false if none was requested.
func (t *Ticker) Fire() bool {
	fn := t.next
	if fn == nil {
		return false
	}
	t.next = nil
	fn()
	return true
}

var _ FrameRequester = (*Ticker)(nil)
