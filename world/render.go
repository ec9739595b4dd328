package world

import (
	"fmt"
	"strings"

	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// DrawList returns every visible renderable in layer order
func (w *World) DrawList() []game.DrawCommand {
	cmds := make([]game.DrawCommand, 0, w.objects.Len())
	for _, layer := range w.layers {
		for _, e := range layer {
			obj, ok := w.objects.Get(e)
			if !ok {
				continue
			}
			r := obj.(component.Renderable)
			if !r.Visible() {
				continue
			}
			cmds = append(cmds, game.DrawCommand{
				Texture:  r.RenderableObject().Texture,
				Position: r.Position(),
				Rotation: r.Rotation(),
				Scale:    r.Scale(),
			})
		}
	}
	return cmds
}

// ShowLevelName reports whether the level banner is still up
func (w *World) ShowLevelName() bool {
	return w.elapsed < parameter.LevelNameDuration.Seconds()
}

// Render draws the world, the weapon HUD and any banner
func (w *World) Render(c game.Canvas) {
	for _, cmd := range w.DrawList() {
		c.DrawSprite(cmd)
	}

	width, height := c.Size()
	w.renderHUD(c, height)

	center := vmath.V2(width/2, height/2)
	switch {
	case w.ended.GameEnded && w.ended.Won:
		c.DrawText(center, "Level cleared! Click to continue", game.TextTitle, game.AlignCenter)
	case w.ended.GameEnded:
		c.DrawText(center, "Out of shots! Click to retry", game.TextTitle, game.AlignCenter)
	case w.ShowLevelName():
		c.DrawText(center, w.name, game.TextTitle, game.AlignCenter)
	}
}

// renderHUD lists the weapons along the bottom row, current one bracketed
func (w *World) renderHUD(c game.Canvas, height float64) {
	if w.player == nil {
		return
	}
	labels := make([]string, len(w.player.Concepts))
	for i, concept := range w.player.Concepts {
		label := string(concept.Icon().Glyph) + " " + concept.Name()
		switch {
		case concept.HasShotBullet:
			label += " (spent)"
		case concept.Behavior.HasGunDepth():
			label += fmt.Sprintf(" %d/%d", concept.ShotsTaken, concept.Behavior.GunDepth())
		}
		if i == w.player.Current {
			label = "[" + label + "]"
		}
		labels[i] = label
	}
	pos := vmath.V2(float64(parameter.CellWidth)/2, height-float64(parameter.CellHeight)/2)
	c.DrawText(pos, strings.Join(labels, "  "), game.TextHighlight, game.AlignLeft)
}
