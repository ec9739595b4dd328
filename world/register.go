package world

import (
	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// RegisterStatic adds level geometry; kinds other than wall and ground are ignored
func (w *World) RegisterStatic(kind core.ObjectType, center vmath.Vector2) {
	switch kind {
	case core.ObjectWall:
		wall := component.NewWall(center, w.textures.Wall)
		w.AddRenderableAtLayer(wall, parameter.LayerWall)
		w.AddCollidable(wall)
	case core.ObjectGround:
		w.addGround(center)
	default:
		w.log().WithFields(logrus.Fields{"kind": kind}).Warn("Ignoring static registration")
	}
}

// RegisterPlayerSpawn adds ground and places the player
// A second spawn cell moves the existing player instead of creating another
func (w *World) RegisterPlayerSpawn(pos vmath.Vector2) {
	w.addGround(pos)

	if w.player != nil {
		w.log().WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Warn("Multiple player spawns, moving player")
		w.player.Pos = pos
		return
	}

	w.player = w.newPlayer(pos)
	w.AddRenderableAtLayer(w.player, parameter.LayerPlayer)
	w.AddUpdatable(w.player)
}

// RegisterEnemy adds ground and an enemy
func (w *World) RegisterEnemy(pos vmath.Vector2) {
	w.addGround(pos)

	enemy := component.NewEnemy(pos, w.textures.Enemy)
	w.AddRenderableAtLayer(enemy, parameter.LayerEnemy)
	w.AddCollidable(enemy)
}

func (w *World) addGround(pos vmath.Vector2) {
	w.AddRenderableAtLayer(component.NewGround(pos, w.textures.Ground), parameter.LayerGround)
}
