package game

import (
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// VictoryScreen is shown after the last level
type VictoryScreen struct{}

func (v *VictoryScreen) Type() StateType { return TypeVictory }

func (v *VictoryScreen) Update(snap *input.Snapshot, _ float64) UpdateResult {
	if snap.DidClick() {
		return Success(0)
	}
	return Running()
}

func (v *VictoryScreen) Render(c Canvas) {
	w, h := c.Size()
	c.DrawText(vmath.V2(w/2, h/2), "VICTORY!", TextTitle, AlignCenter)
	c.DrawText(vmath.V2(w/2, h/2+60), "Every level cleared. Esc to quit", TextNormal, AlignCenter)
}
