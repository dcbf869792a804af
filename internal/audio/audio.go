// Package audio plays short tones for game events through the system
// speaker. A Player that failed to initialise stays silent.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/laserdodge/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a game event with a sound.
type Cue int

const (
	CueCountdown Cue = iota
	CueStart
	CueJump
	CueCoin
	CueGameOver
)

type tone struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

var cueTones = map[Cue][]tone{
	CueCountdown: {{440, 80 * time.Millisecond}},
	CueStart:     {{880, 120 * time.Millisecond}},
	CueJump:      {{523, 40 * time.Millisecond}, {784, 60 * time.Millisecond}},
	CueCoin:      {{988, 50 * time.Millisecond}, {1319, 90 * time.Millisecond}},
	CueGameOver:  {{392, 150 * time.Millisecond}, {0, 40 * time.Millisecond}, {262, 300 * time.Millisecond}},
}

// Streamer builds the finite tone sequence for a cue.
func (c Cue) Streamer(sr beep.SampleRate) (beep.Streamer, error) {
	tones, ok := cueTones[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		n := sr.N(t.dur)
		if t.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		sine, err := generators.SineTone(sr, t.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", c, err)
		}
		parts = append(parts, beep.Take(n, sine))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.8}, nil
}

// Player mixes cues onto the speaker. The zero value and a nil *Player
// are valid and silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before cues are audible.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. On error the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if p.mixer == nil {
		p.mixer = &beep.Mixer{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := c.Streamer(sampleRate)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayOutcome plays the cues for what happened during a tick.
func (p *Player) PlayOutcome(out game.Outcome) {
	for _, c := range Cues(out) {
		p.Play(c)
	}
}

// Close silences all queued cues.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// Cues maps a tick outcome to the cues to play, most important first.
func Cues(out game.Outcome) []Cue {
	var cues []Cue
	switch {
	case out.Hit:
		cues = append(cues, CueGameOver)
	case out.Started:
		cues = append(cues, CueStart)
	case out.CountdownStep:
		cues = append(cues, CueCountdown)
	}
	if out.Collected {
		cues = append(cues, CueCoin)
	}
	if out.JumpStarted {
		cues = append(cues, CueJump)
	}
	return cues
}
