package gun

import (
	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Textures is the sprite set of one weapon
type Textures struct {
	Gun         *asset.Texture
	GunSelected *asset.Texture
	Bullet      *asset.Texture
}

// Gun is a thrown, spinning gun in flight
type Gun struct {
	component.Transform
	Velocity vmath.Vector2
	Depth    int
	Selected bool
	Behavior Behavior

	// Entity is the world handle, zero until the spawn request is applied
	Entity core.Entity

	textures   Textures
	collidable component.CollidableObject
}

// New creates a gun; the collision box follows the unselected texture
func New(pos vmath.Vector2, rot float64, vel vmath.Vector2, depth int, b Behavior, tex Textures) *Gun {
	return &Gun{
		Transform:  component.Transform{Pos: pos, Rot: rot, Scl: parameter.GunScale},
		Velocity:   vel,
		Depth:      depth,
		Behavior:   b,
		textures:   tex,
		collidable: component.CollidableFromTexture(tex.Gun),
	}
}

func (g *Gun) ShouldDelete() bool                           { return g.Behavior.ShouldDelete() }
func (g *Gun) SetShouldDelete(b bool)                       { g.Behavior.SetShouldDelete(b) }
func (g *Gun) ObjectType() core.ObjectType                  { return g.Behavior.ObjectType() }
func (g *Gun) Collide(other core.ObjectType)                { g.Behavior.Collide(other) }
func (g *Gun) CollidableObject() component.CollidableObject { return g.collidable }
func (g *Gun) Visible() bool                                { return true }

// RenderableObject draws the highlight variant while the gun heads the chain
func (g *Gun) RenderableObject() component.RenderableObject {
	if g.Selected {
		return component.RenderableObject{Texture: g.textures.GunSelected}
	}
	return component.RenderableObject{Texture: g.textures.Gun}
}

// SetEntity records the world handle
func (g *Gun) SetEntity(e core.Entity) {
	g.Entity = e
}

// Update moves and spins the gun
func (g *Gun) Update(_ *input.Snapshot, dt float64) []component.SpawnRequest {
	g.Pos = g.Pos.Add(g.Velocity.Scale(dt))
	g.Rot += parameter.GunRotationalVelocity * dt
	return nil
}

// ShootGun spawns the next guns of the chain from this one
// Forking kinds offset each gun around the facing; every new gun flies along the facing
func (g *Gun) ShootGun() []*Gun {
	facing := vmath.FromAngle(g.Rot)
	vel := facing.Scale(parameter.ProjectileVelocity)

	forks := g.Behavior.Forks()
	if forks == 1 {
		pos := g.Pos.Add(facing.Normalize().Scale(parameter.ChainOffset))
		return []*Gun{New(pos, g.Rot, vel, g.Depth+1, g.Behavior.Clone(), g.textures)}
	}

	// Spread evenly from +ShotGunForkAngle to -ShotGunForkAngle
	step := 2 * parameter.ShotGunForkAngle / float64(forks-1)
	guns := make([]*Gun, 0, forks)
	for i := 0; i < forks; i++ {
		angle := g.Rot + parameter.ShotGunForkAngle - float64(i)*step
		offset := vmath.FromAngle(angle).Scale(parameter.ChainOffset)
		guns = append(guns, New(g.Pos.Add(offset), g.Rot, vel, g.Depth+1, g.Behavior.Clone(), g.textures))
	}
	return guns
}

// ShootBullet creates a bullet at the gun's pose
func (g *Gun) ShootBullet() *component.Bullet {
	return component.NewBullet(g.Pos, g.Rot, g.textures.Bullet)
}
