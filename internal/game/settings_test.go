package game

import (
	"testing"
	"time"

	"github.com/tomz197/laserdodge/internal/config"
)

func TestSettingsFromTuning(t *testing.T) {
	tun := config.DefaultTuning()
	tun.Ruleset = config.RulesetGrid
	tun.HardMode = false
	tun.MoveDelay = 150 * time.Millisecond

	s, err := SettingsFromTuning(tun)
	if err != nil {
		t.Fatalf("SettingsFromTuning: %v", err)
	}
	if s.Ruleset != Grid || s.HardMode || s.MoveDelay != 150*time.Millisecond {
		t.Fatalf("settings = %+v", s)
	}
	if s.PlayerRadius != config.PlayerRadius {
		t.Fatalf("radius = %v, want %v", s.PlayerRadius, config.PlayerRadius)
	}
}

func TestSettingsFromTuningRejectsRuleset(t *testing.T) {
	tun := config.DefaultTuning()
	tun.Ruleset = "hex"
	if _, err := SettingsFromTuning(tun); err == nil {
		t.Fatalf("expected error for unknown ruleset")
	}
}

func TestParseRuleset(t *testing.T) {
	for _, r := range []Ruleset{Continuous, Grid} {
		got, err := ParseRuleset(r.String())
		if err != nil || got != r {
			t.Fatalf("ParseRuleset(%q) = %v, %v", r.String(), got, err)
		}
	}
}
