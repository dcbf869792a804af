package input

// Key identifies a logical key, independent of the frontend that produced it.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyJump    // Space
	KeyPause   // p / P
	KeyEnter   // Restart after game over
	KeyRestart // Restart button (r)
	KeyHelp    // Help overlay (h)
	KeyMode    // Difficulty toggle (m)
	KeyRuleset // Ruleset toggle on the game-over screen (g)
	KeyQuit    // q / Ctrl-C
	keyCount
)

var keyNames = [...]string{
	KeyNone:    "none",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyJump:    "jump",
	KeyPause:   "pause",
	KeyEnter:   "enter",
	KeyRestart: "restart",
	KeyHelp:    "help",
	KeyMode:    "mode",
	KeyRuleset: "ruleset",
	KeyQuit:    "quit",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Directional reports whether the key is one of the four arrows.
// Directional keys are held; every other key is a one-shot action.
func (k Key) Directional() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// KeyForByte maps a single terminal byte to a key.
func KeyForByte(b byte) Key {
	switch b {
	case 'w', 'W':
		return KeyUp
	case 's', 'S':
		return KeyDown
	case 'a', 'A':
		return KeyLeft
	case 'd', 'D':
		return KeyRight
	case ' ':
		return KeyJump
	case 'p', 'P':
		return KeyPause
	case '\n', '\r':
		return KeyEnter
	case 'r', 'R':
		return KeyRestart
	case 'h', 'H', '?':
		return KeyHelp
	case 'm', 'M':
		return KeyMode
	case 'g', 'G':
		return KeyRuleset
	case 'q', 'Q', '\x03':
		return KeyQuit
	}
	return KeyNone
}
