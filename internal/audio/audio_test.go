package audio

import (
	"testing"

	"github.com/gopxl/beep"

	"github.com/tomz197/laserdodge/internal/game"
)

func TestCueStreamerLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for c, tones := range cueTones {
		var want int
		for _, tn := range tones {
			want += rate.N(tn.dur)
		}

		s, err := c.Streamer(rate)
		if err != nil {
			t.Fatalf("cue %d: %v", c, err)
		}

		buf := make([][2]float64, 512)
		total := 0
		for {
			n, ok := s.Stream(buf)
			for i := 0; i < n; i++ {
				if buf[i][0] < -1 || buf[i][0] > 1 {
					t.Fatalf("cue %d: sample %v out of range", c, buf[i][0])
				}
			}
			total += n
			if !ok {
				break
			}
		}
		if total != want {
			t.Fatalf("cue %d streamed %d samples, want %d", c, total, want)
		}
	}
}

func TestUnknownCue(t *testing.T) {
	if _, err := Cue(99).Streamer(beep.SampleRate(44100)); err == nil {
		t.Fatalf("expected error for unknown cue")
	}
}

func TestCues(t *testing.T) {
	tests := []struct {
		name string
		out  game.Outcome
		want []Cue
	}{
		{"quiet", game.Outcome{}, nil},
		{"coin and hit", game.Outcome{Collected: true, Hit: true}, []Cue{CueGameOver, CueCoin}},
		{"jump", game.Outcome{JumpStarted: true}, []Cue{CueJump}},
		{"countdown finished", game.Outcome{CountdownStep: true, Started: true}, []Cue{CueStart}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cues(tt.out)
			if len(got) != len(tt.want) {
				t.Fatalf("Cues() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Cues() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(CueCoin)
	p.PlayOutcome(game.Outcome{Collected: true})
	p.Close()

	q := NewPlayer()
	q.Play(CueCoin) // not initialised
}
