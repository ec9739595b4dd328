package gun

import (
	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/audio"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/logger"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Concept is one equippable weapon: its behavior template and the chain of guns it has in flight
type Concept struct {
	Behavior      Behavior
	Guns          []*Gun
	ShotsTaken    int
	HasShotBullet bool
	Selected      bool

	textures    Textures
	gunSound    audio.Sound
	bulletSound audio.Sound
}

// NewConcept creates a weapon; nil sounds are replaced with silent ones
func NewConcept(b Behavior, tex Textures, gunSound, bulletSound audio.Sound) *Concept {
	if gunSound == nil {
		gunSound = audio.Silent{}
	}
	if bulletSound == nil {
		bulletSound = audio.Silent{}
	}
	return &Concept{
		Behavior:    b,
		textures:    tex,
		gunSound:    gunSound,
		bulletSound: bulletSound,
	}
}

// Name is the weapon's display name
func (c *Concept) Name() string {
	return c.Behavior.Kind.String()
}

// Icon is the HUD sprite of the weapon
func (c *Concept) Icon() *asset.Texture {
	return c.textures.Gun
}

// CanShootGun reports whether a firing action would succeed
func (c *Concept) CanShootGun() bool {
	if c.HasShotBullet {
		return false
	}
	if c.Behavior.HasGunDepth() && c.ShotsTaken >= c.Behavior.GunDepth() {
		return false
	}
	return true
}

// CanShootBullet reports whether a bullet volley would succeed
func (c *Concept) CanShootBullet() bool {
	if c.HasShotBullet {
		return false
	}
	return len(c.Guns) > 0
}

// HasGunsInPlay reports whether any gun of this weapon is still alive
func (c *Concept) HasGunsInPlay() bool {
	for _, g := range c.Guns {
		if !g.ShouldDelete() {
			return true
		}
	}
	return false
}

// ShootGun performs one firing action
// Empty chain: one gun from the player towards the mouse
// Otherwise the chain head spawns the next guns; forking kinds fork every gun at the deepest depth
func (c *Concept) ShootGun(playerPos vmath.Vector2, playerRot float64, mouse vmath.Vector2) []component.SpawnRequest {
	if !c.CanShootGun() {
		return nil
	}

	var spawned []*Gun
	switch {
	case len(c.Guns) == 0:
		vel := mouse.Sub(playerPos).Normalize().Scale(parameter.ProjectileVelocity)
		spawned = []*Gun{New(playerPos, playerRot, vel, 0, c.Behavior.Clone(), c.textures)}

	case c.Behavior.Forks() > 1:
		deepest := c.Guns[len(c.Guns)-1].Depth
		for i := len(c.Guns) - 1; i >= 0 && c.Guns[i].Depth == deepest; i-- {
			spawned = append(spawned, c.Guns[i].ShootGun()...)
		}

	default:
		spawned = c.Guns[len(c.Guns)-1].ShootGun()
	}

	for _, g := range c.Guns {
		g.Selected = false
	}
	spawned[len(spawned)-1].Selected = true
	c.Guns = append(c.Guns, spawned...)
	c.ShotsTaken++
	c.gunSound.Play()

	logger.Log.WithFields(logrus.Fields{
		"weapon":      c.Name(),
		"shots_taken": c.ShotsTaken,
		"spawned":     len(spawned),
	}).Debug("Gun fired")

	requests := make([]component.SpawnRequest, 0, 2*len(spawned))
	for _, g := range spawned {
		requests = append(requests, component.SpawnAll(g)...)
	}
	return requests
}

// ShootBullets converts every in-flight gun into a bullet and latches the weapon
// Rejected volleys return nil and play nothing
func (c *Concept) ShootBullets() []component.SpawnRequest {
	if !c.CanShootBullet() {
		return nil
	}

	requests := make([]component.SpawnRequest, 0, 2*len(c.Guns))
	for _, g := range c.Guns {
		if g.ShouldDelete() {
			continue
		}
		b := g.ShootBullet()
		g.SetShouldDelete(true)
		c.bulletSound.Play()
		requests = append(requests, component.SpawnAll(b)...)
	}
	c.HasShotBullet = true

	logger.Log.WithFields(logrus.Fields{
		"weapon":  c.Name(),
		"bullets": len(requests) / 2,
	}).Debug("Bullet volley fired")

	return requests
}

// Update prunes guns marked for deletion and re-highlights the chain head
func (c *Concept) Update() {
	kept := c.Guns[:0]
	for _, g := range c.Guns {
		if !g.ShouldDelete() {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(c.Guns); i++ {
		c.Guns[i] = nil
	}
	c.Guns = kept

	if len(c.Guns) > 0 {
		c.Guns[len(c.Guns)-1].Selected = c.Selected
	}
}

// SetSelected marks the weapon as the player's current one
func (c *Concept) SetSelected(selected bool) {
	c.Selected = selected
	if len(c.Guns) > 0 {
		c.Guns[len(c.Guns)-1].Selected = selected
	}
}
