package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/GamesFromRust/piston-shooty/vmath"
)

// CellToWorld converts a terminal cell to world coordinates
type CellToWorld func(x, y int) vmath.Vector2

// FromTcell feeds one tcell event into the tracker
// Mouse masks are diffed against the tracker's held buttons to synthesize edges
// Returns false for events the tracker ignores
func FromTcell(ev tcell.Event, t *Tracker, toWorld CellToWorld) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := keyFromEvent(ev)
		if k == KeyNone {
			return false
		}
		t.Press(k)
		return true

	case *tcell.EventMouse:
		if toWorld != nil {
			x, y := ev.Position()
			t.MoveMouse(toWorld(x, y))
		}
		mask := ev.Buttons()
		for _, mb := range mouseButtons {
			down := mask&mb.mask != 0
			switch {
			case down && !t.MouseDown(mb.button):
				t.PressMouse(mb.button)
			case !down && t.MouseDown(mb.button):
				t.ReleaseMouse(mb.button)
			}
		}
		return true
	}
	return false
}
