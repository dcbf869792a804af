package game

import (
	"time"

	"github.com/tomz197/laserdodge/internal/config"
)

// Settings are the tunable rules of one game.
type Settings struct {
	Ruleset            Ruleset
	HardMode           bool // Each coin adds a laser
	PlayerSpeed        float64
	PlayerRadius       float64
	JumpDuration       time.Duration
	MoveDelay          time.Duration
	LaserSpeed         float64
	LaserThickness     float64
	InitialLaserOffset float64
	CountdownFrom      int // 0 disables the countdown
	CountdownStep      time.Duration
}

// DefaultSettings returns the classic rules: continuous movement, hard mode.
func DefaultSettings() Settings {
	return Settings{
		Ruleset:            Continuous,
		HardMode:           true,
		PlayerSpeed:        config.PlayerSpeed,
		PlayerRadius:       config.PlayerRadius,
		JumpDuration:       config.JumpDuration,
		MoveDelay:          config.MoveDelay,
		LaserSpeed:         config.LaserSpeed,
		LaserThickness:     config.LaserThickness,
		InitialLaserOffset: config.InitialLaserOffset,
		CountdownFrom:      config.CountdownFrom,
		CountdownStep:      config.CountdownStep,
	}
}

// SettingsFromTuning builds Settings from a loaded tuning file.
func SettingsFromTuning(t config.Tuning) (Settings, error) {
	r, err := ParseRuleset(t.Ruleset)
	if err != nil {
		return Settings{}, err
	}
	s := DefaultSettings()
	s.Ruleset = r
	s.HardMode = t.HardMode
	s.PlayerSpeed = t.PlayerSpeed
	s.JumpDuration = t.JumpDuration
	s.MoveDelay = t.MoveDelay
	s.LaserSpeed = t.LaserSpeed
	s.LaserThickness = t.LaserThickness
	s.CountdownFrom = t.CountdownFrom
	s.CountdownStep = t.CountdownStep
	return s, nil
}
