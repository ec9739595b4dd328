package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// specialKeys maps terminal named keys to game keys
var specialKeys = map[tcell.Key]Key{
	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyEnter:  KeyEnter,
	tcell.KeyEscape: KeyEscape,
	tcell.KeyCtrlC:  KeyQuit,
}

// mouseButtons maps tcell button masks to game buttons
var mouseButtons = [mouseButtonCount]struct {
	mask   tcell.ButtonMask
	button MouseButton
}{
	{tcell.Button1, MouseLeft},
	{tcell.Button2, MouseRight},
	{tcell.Button3, MouseMiddle},
}

// KeyFromRune returns the game key for a printable rune
// Letters are case-folded so Shift does not change bindings
func KeyFromRune(r rune) Key {
	return Key(unicode.ToLower(r))
}

// keyFromEvent resolves a tcell key event; KeyNone when unbound
func keyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return KeyFromRune(ev.Rune())
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k
	}
	return KeyNone
}
