package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Ruleset names accepted in the tuning file.
const (
	RulesetContinuous = "continuous"
	RulesetGrid       = "grid"
)

// Tuning holds the parameters a player can override from a YAML file.
// Keys absent from the file keep their defaults; keys present, zero
// included, override them.
type Tuning struct {
	Ruleset        string        `yaml:"ruleset"`
	HardMode       bool          `yaml:"hard_mode"`
	PlayerSpeed    float64       `yaml:"player_speed"`
	JumpDuration   time.Duration `yaml:"jump_duration"`
	MoveDelay      time.Duration `yaml:"move_delay"`
	LaserSpeed     float64       `yaml:"laser_speed"`
	LaserThickness float64       `yaml:"laser_thickness"`
	CountdownFrom  int           `yaml:"countdown_from"`
	CountdownStep  time.Duration `yaml:"countdown_step"`
	TargetFPS      int           `yaml:"target_fps"`
	KeyHold        time.Duration `yaml:"key_hold"`
	Sound          bool          `yaml:"sound"`
}

// DefaultTuning returns the built-in parameters.
func DefaultTuning() Tuning {
	return Tuning{
		Ruleset:        RulesetContinuous,
		HardMode:       true,
		PlayerSpeed:    PlayerSpeed,
		JumpDuration:   JumpDuration,
		MoveDelay:      MoveDelay,
		LaserSpeed:     LaserSpeed,
		LaserThickness: LaserThickness,
		CountdownFrom:  CountdownFrom,
		CountdownStep:  CountdownStep,
		TargetFPS:      TargetFPS,
		KeyHold:        KeyHoldDuration,
		Sound:          true,
	}
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
// An empty path returns the defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects values the game loop cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Ruleset != RulesetContinuous && t.Ruleset != RulesetGrid {
		errs = append(errs, fmt.Errorf("unknown ruleset %q", t.Ruleset))
	}
	if t.PlayerSpeed <= 0 {
		errs = append(errs, errors.New("player_speed must be positive"))
	}
	if t.JumpDuration <= 0 {
		errs = append(errs, errors.New("jump_duration must be positive"))
	}
	if t.MoveDelay <= 0 {
		errs = append(errs, errors.New("move_delay must be positive"))
	}
	if t.LaserSpeed <= 0 {
		errs = append(errs, errors.New("laser_speed must be positive"))
	}
	if t.LaserThickness <= 0 || t.LaserThickness >= Resolution {
		errs = append(errs, fmt.Errorf("laser_thickness must be in (0, %d)", Resolution))
	}
	if t.CountdownFrom < 0 {
		errs = append(errs, errors.New("countdown_from must not be negative"))
	}
	if t.CountdownStep <= 0 {
		errs = append(errs, errors.New("countdown_step must be positive"))
	}
	if t.TargetFPS <= 0 {
		errs = append(errs, errors.New("target_fps must be positive"))
	}
	if t.KeyHold <= 0 {
		errs = append(errs, errors.New("key_hold must be positive"))
	}
	return errors.Join(errs...)
}

// FrameTime returns the duration of one frame at TargetFPS.
func (t Tuning) FrameTime() time.Duration {
	return time.Second / time.Duration(t.TargetFPS)
}
