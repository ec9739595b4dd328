package component

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// GameObject is the base capability every entity in the world carries
type GameObject interface {
	Position() vmath.Vector2
	Rotation() float64
	Scale() float64
	ShouldDelete() bool
	SetShouldDelete(bool)
	ObjectType() core.ObjectType
}

// Renderable entities are drawn every frame while visible
type Renderable interface {
	GameObject
	RenderableObject() RenderableObject
	Visible() bool
}

// Updatable entities advance once per frame and may request new entities
type Updatable interface {
	GameObject
	Update(snap *input.Snapshot, dt float64) []SpawnRequest
}

// Collidable entities take part in the pairwise overlap test
type Collidable interface {
	GameObject
	CollidableObject() CollidableObject
	Collide(other core.ObjectType)
}

// RenderableObject is the draw projection of an entity
type RenderableObject struct {
	Texture *asset.Texture
}

// CollidableObject holds unscaled collision extents in pixels
type CollidableObject struct {
	Width  float64
	Height float64
}

// CollidableFromTexture sizes a collision box to a texture's nominal size
func CollidableFromTexture(tex *asset.Texture) CollidableObject {
	w, h := tex.Size()
	return CollidableObject{Width: w, Height: h}
}
