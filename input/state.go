package input

import (
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// ButtonState is the per-frame edge state of a key or mouse button
type ButtonState struct {
	Pressed  bool // Went down this frame
	Held     bool // Currently down
	Released bool // Went up this frame
}

// IsZero reports whether the button carries no state at all
func (b ButtonState) IsZero() bool {
	return !b.Pressed && !b.Held && !b.Released
}

// Key identifies a keyboard key
// Printable keys are their lowercase rune; named keys are negative
type Key rune

const (
	KeyNone Key = 0

	KeyUp     Key = -1
	KeyDown   Key = -2
	KeyLeft   Key = -3
	KeyRight  Key = -4
	KeyEnter  Key = -5
	KeyEscape Key = -6
	KeyQuit   Key = -7 // Ctrl+C
)

// Game bindings for printable keys
const (
	KeyFire       Key = ' '
	KeyVolley     Key = 'b'
	KeyNextWeapon Key = 'q'
	KeyPrevWeapon Key = 'e'
)

// String returns a readable key name for logs
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "escape"
	case KeyQuit:
		return "quit"
	case KeyFire:
		return "space"
	}
	if k > 0 {
		return string(rune(k))
	}
	return "unknown"
}

// MouseButton identifies a mouse button
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// Snapshot is the immutable view of input handed to one frame of simulation
// A nil snapshot reads as "no input"
type Snapshot struct {
	Keys     map[Key]ButtonState
	Mouse    map[MouseButton]ButtonState
	MousePos vmath.Vector2
}

// Key returns the state of k
func (s *Snapshot) Key(k Key) ButtonState {
	if s == nil {
		return ButtonState{}
	}
	return s.Keys[k]
}

// Button returns the state of mouse button b
func (s *Snapshot) Button(b MouseButton) ButtonState {
	if s == nil {
		return ButtonState{}
	}
	return s.Mouse[b]
}

// KeyPressed reports whether k went down this frame
func (s *Snapshot) KeyPressed(k Key) bool {
	return s.Key(k).Pressed
}

// MousePressed reports whether b went down this frame
func (s *Snapshot) MousePressed(b MouseButton) bool {
	return s.Button(b).Pressed
}

// DidClick reports a left click this frame
func (s *Snapshot) DidClick() bool {
	return s.MousePressed(MouseLeft)
}

// Confirmed reports a left click or Enter this frame
func (s *Snapshot) Confirmed() bool {
	return s.DidClick() || s.KeyPressed(KeyEnter)
}

// Cursor returns the mouse position in world coordinates
func (s *Snapshot) Cursor() vmath.Vector2 {
	if s == nil {
		return vmath.Vector2{}
	}
	return s.MousePos
}
