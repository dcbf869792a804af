package input

// Target is the game surface the adapter drives.
type Target interface {
	Intents() *Intents
	Jumping() bool
	Over() bool
	Paused() bool
	Scheme() GestureScheme

	TogglePause()
	Restart()
	ToggleHelp()
	ToggleDifficulty()
	ToggleRuleset()
}

// Adapter maps key and touch events onto a Target.
// It must be called from the goroutine that runs the game's ticks.
type Adapter struct {
	target Target
	touch  touchState
}

// NewAdapter creates an adapter for the given target.
func NewAdapter(t Target) *Adapter {
	return &Adapter{target: t}
}

// KeyDown handles a key press.
func (a *Adapter) KeyDown(k Key) {
	// Shell controls work in every state.
	switch k {
	case KeyHelp:
		a.target.ToggleHelp()
		return
	case KeyMode:
		a.target.ToggleDifficulty()
		return
	case KeyRuleset:
		a.target.ToggleRuleset()
		return
	case KeyRestart:
		if a.target.Over() {
			a.target.Restart()
		}
		return
	}

	if a.target.Over() {
		if k == KeyEnter {
			a.target.Restart()
		}
		return
	}

	in := a.target.Intents()
	switch k {
	case KeyUp:
		in.Up = true
	case KeyDown:
		in.Down = true
	case KeyLeft:
		in.Left = true
	case KeyRight:
		in.Right = true
	case KeyJump:
		if !a.target.Jumping() {
			in.JumpRequested = true
		}
	case KeyPause:
		a.target.TogglePause()
	}
}

// KeyUp handles a key release. Only directional keys have release semantics.
func (a *Adapter) KeyUp(k Key) {
	in := a.target.Intents()
	switch k {
	case KeyUp:
		in.Up = false
	case KeyDown:
		in.Down = false
	case KeyLeft:
		in.Left = false
	case KeyRight:
		in.Right = false
	}
}

// Apply dispatches a stream event.
func (a *Adapter) Apply(ev Event) {
	switch ev.Kind {
	case Press:
		a.KeyDown(ev.Key)
	case Release:
		a.KeyUp(ev.Key)
	}
}
