package component

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Bullet flies in a straight line until it hits a wall or an enemy
type Bullet struct {
	Transform
	Deletable
	Velocity   vmath.Vector2
	renderable RenderableObject
	collidable CollidableObject
}

// NewBullet creates a bullet at pos travelling along rot at BulletVelocity
func NewBullet(pos vmath.Vector2, rot float64, tex *asset.Texture) *Bullet {
	return &Bullet{
		Transform:  Transform{Pos: pos, Rot: rot, Scl: parameter.BulletScale},
		Velocity:   vmath.FromAngle(rot).Scale(parameter.BulletVelocity),
		renderable: RenderableObject{Texture: tex},
		collidable: CollidableFromTexture(tex),
	}
}

func (b *Bullet) ObjectType() core.ObjectType        { return core.ObjectBullet }
func (b *Bullet) RenderableObject() RenderableObject { return b.renderable }
func (b *Bullet) CollidableObject() CollidableObject { return b.collidable }
func (b *Bullet) Visible() bool                      { return true }

// Collide removes the bullet on walls and enemies
func (b *Bullet) Collide(other core.ObjectType) {
	if other == core.ObjectWall || other == core.ObjectEnemy {
		b.SetShouldDelete(true)
	}
}

// Update moves the bullet; bullets never spawn anything
func (b *Bullet) Update(_ *input.Snapshot, dt float64) []SpawnRequest {
	b.Pos = b.Pos.Add(b.Velocity.Scale(dt))
	return nil
}
