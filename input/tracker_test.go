package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/GamesFromRust/piston-shooty/vmath"
)

func TestTrackerKeyEdges(t *testing.T) {
	tr := NewTracker()

	tr.Press(KeyFire)
	snap := tr.Snapshot()
	if s := snap.Key(KeyFire); !s.Pressed || !s.Held || s.Released {
		t.Fatalf("frame 1 state = %+v, want pressed+held", s)
	}

	// Repeat within the next frame must not re-press
	tr.EndFrame()
	if s := tr.Snapshot().Key(KeyFire); s.Pressed || s.Held || !s.Released {
		t.Fatalf("after EndFrame state = %+v, want auto-released", s)
	}

	tr.EndFrame()
	if s := tr.Snapshot().Key(KeyFire); !s.IsZero() {
		t.Fatalf("after second EndFrame state = %+v, want zero", s)
	}
}

func TestTrackerPressIsIdempotentWhileHeld(t *testing.T) {
	tr := NewTracker()
	tr.Press(KeyUp)
	tr.Press(KeyUp)
	if s := tr.Snapshot().Key(KeyUp); !s.Pressed || !s.Held {
		t.Fatalf("state = %+v", s)
	}
	tr.Release(KeyUp)
	if s := tr.Snapshot().Key(KeyUp); s.Held || !s.Released {
		t.Fatalf("after release state = %+v", s)
	}
}

func TestTrackerMouseEdges(t *testing.T) {
	tr := NewTracker()
	tr.PressMouse(MouseLeft)

	snap := tr.Snapshot()
	if !snap.DidClick() {
		t.Fatal("expected click on press frame")
	}

	tr.EndFrame()
	snap = tr.Snapshot()
	if snap.DidClick() {
		t.Error("click must not persist past its frame")
	}
	if !snap.Button(MouseLeft).Held {
		t.Error("button should remain held until released")
	}

	tr.ReleaseMouse(MouseLeft)
	if s := tr.Snapshot().Button(MouseLeft); !s.Released || s.Held {
		t.Errorf("release state = %+v", s)
	}
	tr.EndFrame()
	if s := tr.Snapshot().Button(MouseLeft); !s.IsZero() {
		t.Errorf("state after release frame = %+v, want zero", s)
	}
}

func TestTrackerClickWithinOneFrame(t *testing.T) {
	tr := NewTracker()
	tr.PressMouse(MouseRight)
	tr.ReleaseMouse(MouseRight)
	if !tr.Snapshot().MousePressed(MouseRight) {
		t.Error("press followed by release in the same frame must still report pressed")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	tr := NewTracker()
	tr.Press(KeyEnter)
	snap := tr.Snapshot()
	tr.EndFrame()
	if !snap.KeyPressed(KeyEnter) {
		t.Error("snapshot changed after EndFrame")
	}
}

func TestNilSnapshot(t *testing.T) {
	var snap *Snapshot
	if snap.DidClick() || snap.Confirmed() || snap.KeyPressed(KeyFire) {
		t.Error("nil snapshot must report no input")
	}
	if snap.Cursor() != (vmath.Vector2{}) {
		t.Error("nil snapshot cursor must be zero")
	}
}

func TestFromTcellKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Key
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), KeyNextWeapon},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'E', tcell.ModShift), KeyPrevWeapon},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyFire},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyEnter},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), KeyEscape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			if !FromTcell(tt.ev, tr, nil) {
				t.Fatal("event ignored")
			}
			if !tr.Snapshot().KeyPressed(tt.want) {
				t.Errorf("key %v not pressed", tt.want)
			}
		})
	}
}

func TestFromTcellMouse(t *testing.T) {
	tr := NewTracker()
	toWorld := func(x, y int) vmath.Vector2 {
		return vmath.V2(float64(x)*10, float64(y)*20)
	}

	FromTcell(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), tr, toWorld)
	snap := tr.Snapshot()
	if !snap.DidClick() {
		t.Fatal("left button down not reported as click")
	}
	if got := snap.Cursor(); got != vmath.V2(30, 80) {
		t.Errorf("cursor = %v, want (30, 80)", got)
	}

	// Motion with the button still down is not a second click
	tr.EndFrame()
	FromTcell(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone), tr, toWorld)
	if tr.Snapshot().DidClick() {
		t.Error("drag reported as a new click")
	}

	FromTcell(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone), tr, toWorld)
	if !tr.Snapshot().Button(MouseLeft).Released {
		t.Error("button up not reported as release")
	}

	FromTcell(tcell.NewEventMouse(5, 4, tcell.Button2, tcell.ModNone), tr, toWorld)
	if !tr.Snapshot().MousePressed(MouseRight) {
		t.Error("right button not reported")
	}
}

func TestFromTcellIgnoresOtherEvents(t *testing.T) {
	tr := NewTracker()
	if FromTcell(tcell.NewEventResize(80, 24), tr, nil) {
		t.Error("resize should be ignored")
	}
	if FromTcell(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), tr, nil) {
		t.Error("unbound key should be ignored")
	}
}
