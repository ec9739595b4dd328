package player

import (
	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/gun"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/logger"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Textures is the player's sprite pair
type Textures struct {
	Player         *asset.Texture
	PlayerSelected *asset.Texture
}

// Player faces the mouse and owns the weapons
type Player struct {
	component.Transform
	component.Permanent
	Concepts []*gun.Concept
	Current  int

	textures Textures
}

// New creates a player at pos holding concepts; the first one starts selected
func New(pos vmath.Vector2, tex Textures, concepts []*gun.Concept) *Player {
	p := &Player{
		Transform: component.Transform{Pos: pos, Scl: parameter.PlayerScale},
		Concepts:  concepts,
		textures:  tex,
	}
	for i, c := range concepts {
		c.SetSelected(i == 0)
	}
	return p
}

func (p *Player) ObjectType() core.ObjectType { return core.ObjectPlayer }
func (p *Player) Visible() bool               { return true }

// RenderableObject highlights the player while the current weapon is ready in hand
func (p *Player) RenderableObject() component.RenderableObject {
	if c := p.CurrentConcept(); c != nil && !c.HasGunsInPlay() {
		return component.RenderableObject{Texture: p.textures.PlayerSelected}
	}
	return component.RenderableObject{Texture: p.textures.Player}
}

// CurrentConcept returns the selected weapon, nil when the player is unarmed
func (p *Player) CurrentConcept() *gun.Concept {
	if len(p.Concepts) == 0 {
		return nil
	}
	return p.Concepts[p.Current]
}

// CanShootGun reports whether any weapon can still fire a gun
func (p *Player) CanShootGun() bool {
	for _, c := range p.Concepts {
		if c.CanShootGun() {
			return true
		}
	}
	return false
}

// CanShootBullet reports whether any weapon can still fire a volley
func (p *Player) CanShootBullet() bool {
	for _, c := range p.Concepts {
		if c.CanShootBullet() {
			return true
		}
	}
	return false
}

// Update prunes every weapon, turns to the mouse, then applies this frame's actions
func (p *Player) Update(snap *input.Snapshot, _ float64) []component.SpawnRequest {
	for _, c := range p.Concepts {
		c.Update()
	}

	mouse := snap.Cursor()
	if d := mouse.Sub(p.Pos); d.MagnitudeSq() > 0 {
		p.Rot = d.Angle()
	}

	current := p.CurrentConcept()
	if current == nil {
		return nil
	}

	var requests []component.SpawnRequest
	if snap.MousePressed(input.MouseLeft) || snap.KeyPressed(input.KeyFire) {
		requests = append(requests, current.ShootGun(p.Pos, p.Rot, mouse)...)
	}
	if snap.MousePressed(input.MouseRight) || snap.KeyPressed(input.KeyVolley) {
		requests = append(requests, current.ShootBullets()...)
	}

	switch {
	case snap.KeyPressed(input.KeyNextWeapon):
		p.selectConcept(p.Current + 1)
	case snap.KeyPressed(input.KeyPrevWeapon):
		p.selectConcept(p.Current - 1)
	}

	return requests
}

// selectConcept switches weapons, wrapping at both ends
func (p *Player) selectConcept(i int) {
	n := len(p.Concepts)
	i = ((i % n) + n) % n
	if i == p.Current {
		return
	}

	p.Concepts[p.Current].SetSelected(false)
	p.Current = i
	p.Concepts[p.Current].SetSelected(true)

	logger.Log.WithFields(logrus.Fields{"weapon": p.Concepts[i].Name()}).Debug("Weapon switched")
}
