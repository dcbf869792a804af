package input

import "time"

// HoldTracker turns repeated presses of directional keys into held state.
// Terminals never report key releases, so a directional key counts as held
// while presses keep arriving (auto-repeat) and is released once none was
// seen for the hold duration.
type HoldTracker struct {
	hold     time.Duration
	lastSeen [keyCount]time.Time
	held     [keyCount]bool
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{hold: hold}
}

// Press records a press at now. It reports whether the press should be
// delivered: action keys always are, directional keys only when not
// already held.
func (h *HoldTracker) Press(k Key, now time.Time) bool {
	if !k.Directional() {
		return true
	}
	h.lastSeen[k] = now
	if h.held[k] {
		return false
	}
	h.held[k] = true
	return true
}

// Expire appends a Release event for every held key whose window ran out.
func (h *HoldTracker) Expire(now time.Time, events []Event) []Event {
	for k := KeyUp; k <= KeyRight; k++ {
		if h.held[k] && now.Sub(h.lastSeen[k]) >= h.hold {
			h.held[k] = false
			events = append(events, Event{Kind: Release, Key: k})
		}
	}
	return events
}

// Held reports whether k is currently held.
func (h *HoldTracker) Held(k Key) bool {
	return k >= 0 && k < keyCount && h.held[k]
}

// Reset releases every held key without emitting events.
func (h *HoldTracker) Reset() {
	h.held = [keyCount]bool{}
	h.lastSeen = [keyCount]time.Time{}
}
