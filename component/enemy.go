package component

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Enemy is a stationary target; the level is won when none remain
type Enemy struct {
	Transform
	Deletable
	renderable RenderableObject
	collidable CollidableObject
}

// NewEnemy creates an enemy centered at pos
func NewEnemy(pos vmath.Vector2, tex *asset.Texture) *Enemy {
	return &Enemy{
		Transform:  Transform{Pos: pos, Scl: parameter.EnemyScale},
		renderable: RenderableObject{Texture: tex},
		collidable: CollidableFromTexture(tex),
	}
}

func (e *Enemy) ObjectType() core.ObjectType        { return core.ObjectEnemy }
func (e *Enemy) RenderableObject() RenderableObject { return e.renderable }
func (e *Enemy) CollidableObject() CollidableObject { return e.collidable }
func (e *Enemy) Visible() bool                      { return true }

// Collide kills the enemy on contact with a bullet or a thrown gun axe
func (e *Enemy) Collide(other core.ObjectType) {
	if other == core.ObjectBullet || other == core.ObjectGunAxe {
		e.SetShouldDelete(true)
	}
}
