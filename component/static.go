package component

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Wall blocks projectiles and never moves or dies
type Wall struct {
	Transform
	Permanent
	renderable RenderableObject
	collidable CollidableObject
}

// NewWall creates a wall centered at pos
func NewWall(pos vmath.Vector2, tex *asset.Texture) *Wall {
	return &Wall{
		Transform:  Transform{Pos: pos, Scl: parameter.WallScale},
		renderable: RenderableObject{Texture: tex},
		collidable: CollidableFromTexture(tex),
	}
}

func (w *Wall) ObjectType() core.ObjectType        { return core.ObjectWall }
func (w *Wall) RenderableObject() RenderableObject { return w.renderable }
func (w *Wall) CollidableObject() CollidableObject { return w.collidable }
func (w *Wall) Visible() bool                      { return true }
func (w *Wall) Collide(core.ObjectType)            {}

// Ground is floor decoration under every non-wall cell
type Ground struct {
	Transform
	Permanent
	renderable RenderableObject
}

// NewGround creates a ground tile centered at pos
func NewGround(pos vmath.Vector2, tex *asset.Texture) *Ground {
	return &Ground{
		Transform:  Transform{Pos: pos, Scl: parameter.GroundScale},
		renderable: RenderableObject{Texture: tex},
	}
}

func (g *Ground) ObjectType() core.ObjectType        { return core.ObjectGround }
func (g *Ground) RenderableObject() RenderableObject { return g.renderable }
func (g *Ground) Visible() bool                      { return true }
