package game

import (
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

const menuLineHeight = 60.0

// MenuScreen lists the levels; confirming reports the selected index
type MenuScreen struct {
	Levels   []string
	Selected int
}

// NewMenuScreen creates a menu over the level names
func NewMenuScreen(levels []string) *MenuScreen {
	return &MenuScreen{Levels: levels}
}

func (m *MenuScreen) Type() StateType { return TypeWorldSelect }

// Update moves the cursor and confirms on click or Enter
func (m *MenuScreen) Update(snap *input.Snapshot, _ float64) UpdateResult {
	switch {
	case snap.KeyPressed(input.KeyUp):
		if m.Selected > 0 {
			m.Selected--
		}
	case snap.KeyPressed(input.KeyDown):
		if m.Selected < len(m.Levels)-1 {
			m.Selected++
		}
	}

	// Clicking an entry picks it directly
	if snap.DidClick() {
		if i, ok := m.entryAt(snap.Cursor()); ok {
			m.Selected = i
		}
	}

	if snap.Confirmed() && len(m.Levels) > 0 {
		return Success(m.Selected)
	}
	return Running()
}

func (m *MenuScreen) Render(c Canvas) {
	w, h := c.Size()
	c.DrawText(vmath.V2(w/2, h/4), "PISTON SHOOTY", TextTitle, AlignCenter)

	for i, name := range m.Levels {
		style := TextNormal
		label := "  " + name + "  "
		if i == m.Selected {
			style = TextHighlight
			label = "> " + name + " <"
		}
		c.DrawText(m.entryPos(w, h, i), label, style, AlignCenter)
	}

	c.DrawText(vmath.V2(w/2, h-menuLineHeight), "Up/Down to choose, Enter or click to play", TextNormal, AlignCenter)
}

func (m *MenuScreen) entryPos(w, h float64, i int) vmath.Vector2 {
	return vmath.V2(w/2, h/2+float64(i)*menuLineHeight)
}

// entryAt maps a click to an entry by its row band
func (m *MenuScreen) entryAt(pos vmath.Vector2) (int, bool) {
	for i := range m.Levels {
		y := m.entryPos(parameter.ScreenWidth, parameter.ScreenHeight, i).Y
		if pos.Y >= y-menuLineHeight/2 && pos.Y < y+menuLineHeight/2 {
			return i, true
		}
	}
	return 0, false
}
