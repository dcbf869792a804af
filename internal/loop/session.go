// Package loop runs a game in a terminal: the frame scheduler plus the
// fixed-rate Input → Update → Draw session used by the local binary and
// by every SSH connection.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/laserdodge/internal/audio"
	"github.com/tomz197/laserdodge/internal/clock"
	"github.com/tomz197/laserdodge/internal/config"
	"github.com/tomz197/laserdodge/internal/draw"
	"github.com/tomz197/laserdodge/internal/game"
	"github.com/tomz197/laserdodge/internal/input"
	"github.com/tomz197/laserdodge/internal/loop/server"
)

// Options configures a terminal session.
type Options struct {
	Tuning       config.Tuning
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
	Sound        *audio.Player // nil plays nothing
	Server       server.GameServer
	Username     string

	// Inactivity limits; zero disables them.
	IdleWarn       time.Duration
	IdleDisconnect time.Duration

	Clock clock.Clock
	Rand  *rand.Rand
}

// Session handles input, ticking and rendering for a single terminal.
type Session struct {
	game    *game.Game
	sched   *Scheduler
	ticker  *Ticker
	adapter *input.Adapter

	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	surface      *draw.Surface
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc

	logger    *log.Logger
	sound     *audio.Player
	server    server.GameServer
	handle    *server.ClientHandle
	clock     clock.Clock
	frameTime time.Duration

	idleWarn       time.Duration
	idleDisconnect time.Duration
	lastInput      time.Time
	isInactive     bool

	shuttingDown bool
	shutdownAt   time.Time
	running      bool
}

// NewSession creates a session reading keys from r and drawing to w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	settings, err := game.SettingsFromTuning(opts.Tuning)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Real{}
	}

	s := &Session{
		writer:         w,
		termSizeFunc:   termSizeFunc,
		logger:         logger,
		sound:          opts.Sound,
		server:         opts.Server,
		clock:          clk,
		frameTime:      opts.Tuning.FrameTime(),
		idleWarn:       opts.IdleWarn,
		idleDisconnect: opts.IdleDisconnect,
		lastInput:      clk.Now(),
		running:        true,
	}

	s.game = game.New(settings, clk, opts.Rand)
	s.adapter = input.NewAdapter(s.game)
	s.ticker = &Ticker{}
	s.sched = NewScheduler(s.game, clk, s.ticker, s.onFrame)

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth)
	s.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, game.Resolution, game.Resolution)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.canvas.SetPalette(draw.GamePalette())
	s.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)
	s.surface = draw.NewSurface(s.canvas)
	s.inputStream = input.StartStream(r, opts.Tuning.KeyHold)

	if s.server != nil {
		s.handle = s.server.RegisterClient(opts.Username)
		s.logger = s.logger.With("session", s.handle.ID)
	}
	return s, nil
}

// Game returns the session's game.
func (s *Session) Game() *game.Game {
	return s.game
}

// Run starts the session loop. Blocks until the player quits, the input
// ends, the session idles out or the server shuts down.
func (s *Session) Run() error {
	draw.HideCursor(s.writer)
	defer draw.ShowCursor(s.writer)
	draw.ClearScreen(s.writer)

	if s.handle != nil {
		defer s.server.UnregisterClient(s.handle.ID)
	}

	s.logger.Debug("game started", "ruleset", s.game.Ruleset(), "hard", s.game.HardMode())

	for s.running {
		frameStart := time.Now()

		s.processInput()
		s.processServerEvents()
		s.updateScreen()
		s.step()

		if err := s.drawFrame(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		elapsed := time.Since(frameStart)
		if elapsed < s.frameTime {
			time.Sleep(s.frameTime - elapsed)
		}
	}

	io.WriteString(s.writer, draw.ColorReset)
	draw.ClearScreen(s.writer)
	return nil
}

// step runs at most one game frame: the pending one, or a fresh one if
// a control just resumed the game.
func (s *Session) step() {
	if s.sched.Pending() {
		s.ticker.Fire()
		return
	}
	s.sched.Resume()
}

// onFrame reacts to what happened during a tick.
func (s *Session) onFrame(out game.Outcome) {
	s.sound.PlayOutcome(out)

	if out.Collected {
		s.logger.Debug("coin collected", "score", s.game.Score, "lasers", len(s.game.Lasers))
	}
	if out.Hit {
		s.logger.Info("game over", "score", s.game.Score, "best", s.game.Best)
		if s.handle != nil {
			s.server.ReportScore(s.handle.ID, s.game.Score)
		}
	}
}

// processInput applies all pending key events to the game.
func (s *Session) processInput() {
	now := s.clock.Now()
	events := s.inputStream.Poll(now)
	if s.inputStream.Closed() {
		s.running = false
		return
	}

	if len(events) > 0 {
		s.lastInput = now
		s.isInactive = false
	} else if s.idleDisconnect > 0 && now.Sub(s.lastInput) > s.idleDisconnect {
		s.logger.Info("disconnecting idle session")
		s.running = false
		return
	} else if s.idleWarn > 0 && now.Sub(s.lastInput) > s.idleWarn {
		s.isInactive = true
	}

	for _, ev := range events {
		if ev.Kind == input.Press && ev.Key == input.KeyQuit {
			s.running = false
			return
		}
		s.apply(ev)
	}
}

// apply forwards one event and logs shell controls.
func (s *Session) apply(ev input.Event) {
	wasOver := s.game.Over()
	s.adapter.Apply(ev)
	if ev.Kind != input.Press {
		return
	}

	switch ev.Key {
	case input.KeyMode:
		s.logger.Debug("difficulty changed", "hard", s.game.HardMode())
	case input.KeyRuleset:
		s.logger.Debug("ruleset changed", "ruleset", s.game.Ruleset())
	case input.KeyPause:
		s.logger.Debug("pause toggled", "phase", s.game.Phase())
	}
	if wasOver && !s.game.Over() {
		s.inputStream.Reset()
		s.logger.Debug("restarted", "ruleset", s.game.Ruleset())
	}
}

// processServerEvents handles events from the server.
func (s *Session) processServerEvents() {
	if s.shuttingDown {
		if !s.clock.Now().Before(s.shutdownAt) {
			s.running = false
		}
		return
	}
	if s.handle == nil {
		return
	}
	for {
		select {
		case event := <-s.handle.EventsCh:
			if event.Type == server.EventServerShutdown {
				s.shuttingDown = true
				s.shutdownAt = s.clock.Now().Add(time.Duration(config.ShutdownDisplaySeconds * float64(time.Second)))
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth)

	if renderWidth != s.canvas.TerminalWidth() || renderHeight != s.canvas.TerminalHeight() ||
		offsetCol != s.canvas.OffsetCol() || offsetRow != s.canvas.OffsetRow() {
		s.chunkWriter.WriteString(draw.ColorReset + "\033[H\033[2J")
		s.canvas.ForceRedraw()
	}

	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(offsetCol, offsetRow)
}
