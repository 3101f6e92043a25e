package core

// HoldTracker turns discrete key presses into held actions.
//
// Terminals report key presses (plus auto-repeat) but never releases, so a
// direction stays held for a fixed number of ticks after its last press.
// Auto-repeat keeps refreshing the window while the key is down.
type HoldTracker struct {
	window    int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that holds actions for window ticks.
// A window below 1 is treated as 1.
func NewHoldTracker(window int) *HoldTracker {
	if window < 1 {
		window = 1
	}
	return &HoldTracker{
		window:    window,
		remaining: make(map[Action]int),
	}
}

// Press marks an action as held for the full window.
// Left and right are exclusive: pressing one releases the other.
func (h *HoldTracker) Press(a Action) {
	switch a {
	case ActionLeft:
		delete(h.remaining, ActionRight)
	case ActionRight:
		delete(h.remaining, ActionLeft)
	}
	h.remaining[a] = h.window
}

// Release drops an action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.remaining, a)
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Apply sets every held action on the frame and consumes one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases all actions.
func (h *HoldTracker) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
