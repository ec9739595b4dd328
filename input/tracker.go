package input

import (
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Tracker accumulates raw events into per-frame edge state
// Owned by the frame loop; not safe for concurrent use
type Tracker struct {
	keys     map[Key]ButtonState
	mouse    map[MouseButton]ButtonState
	mousePos vmath.Vector2
}

// NewTracker creates an empty tracker
func NewTracker() *Tracker {
	return &Tracker{
		keys:  make(map[Key]ButtonState),
		mouse: make(map[MouseButton]ButtonState),
	}
}

// Press records a key going down
// Repeats while held do not produce a new press edge
func (t *Tracker) Press(k Key) {
	s := t.keys[k]
	if !s.Held {
		s.Pressed = true
	}
	s.Held = true
	t.keys[k] = s
}

// Release records a key going up
func (t *Tracker) Release(k Key) {
	s := t.keys[k]
	if !s.Held {
		return
	}
	s.Held = false
	s.Released = true
	t.keys[k] = s
}

// PressMouse records a mouse button going down
func (t *Tracker) PressMouse(b MouseButton) {
	s := t.mouse[b]
	if !s.Held {
		s.Pressed = true
	}
	s.Held = true
	t.mouse[b] = s
}

// ReleaseMouse records a mouse button going up
func (t *Tracker) ReleaseMouse(b MouseButton) {
	s := t.mouse[b]
	if !s.Held {
		return
	}
	s.Held = false
	s.Released = true
	t.mouse[b] = s
}

// MouseDown reports whether b is currently held
func (t *Tracker) MouseDown(b MouseButton) bool {
	return t.mouse[b].Held
}

// MoveMouse records the cursor position in world coordinates
func (t *Tracker) MoveMouse(pos vmath.Vector2) {
	t.mousePos = pos
}

// Snapshot copies the current state for one simulation step
func (t *Tracker) Snapshot() *Snapshot {
	snap := &Snapshot{
		Keys:     make(map[Key]ButtonState, len(t.keys)),
		Mouse:    make(map[MouseButton]ButtonState, len(t.mouse)),
		MousePos: t.mousePos,
	}
	for k, s := range t.keys {
		snap.Keys[k] = s
	}
	for b, s := range t.mouse {
		snap.Mouse[b] = s
	}
	return snap
}

// EndFrame ages edges after a simulation step
// Terminals report no key release, so held keys auto-release here
func (t *Tracker) EndFrame() {
	for k, s := range t.keys {
		switch {
		case s.Held:
			t.keys[k] = ButtonState{Released: true}
		default:
			delete(t.keys, k)
		}
	}
	for b, s := range t.mouse {
		s.Pressed = false
		s.Released = false
		if s.IsZero() {
			delete(t.mouse, b)
			continue
		}
		t.mouse[b] = s
	}
}
