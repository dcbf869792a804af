// Package input turns keyboard, terminal and touch events into the game's
// directional intents and control actions.
package input

// Intents is the pending input state consumed by the game each tick.
// Frontends write it between ticks; the tick reads it at its start.
type Intents struct {
	Up, Down, Left, Right bool
	JumpRequested         bool // Edge trigger, cleared when the tick consumes it
}

// ClearDirections releases all four directional flags.
func (i *Intents) ClearDirections() {
	i.Up = false
	i.Down = false
	i.Left = false
	i.Right = false
}

// Moving reports whether any directional flag is set.
func (i Intents) Moving() bool {
	return i.Up || i.Down || i.Left || i.Right
}
