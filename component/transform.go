package component

import (
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// Transform is the embedded position, rotation and scale of an entity
type Transform struct {
	Pos vmath.Vector2
	Rot float64 // Radians
	Scl float64
}

func (t *Transform) Position() vmath.Vector2 {
	return t.Pos
}

func (t *Transform) Rotation() float64 {
	return t.Rot
}

func (t *Transform) Scale() float64 {
	return t.Scl
}

// Deletable is embedded by entities that can be removed from the world
type Deletable struct {
	deleted bool
}

func (d *Deletable) ShouldDelete() bool {
	return d.deleted
}

func (d *Deletable) SetShouldDelete(b bool) {
	d.deleted = b
}

// Permanent is embedded by entities that are never removed
type Permanent struct{}

func (Permanent) ShouldDelete() bool {
	return false
}

func (Permanent) SetShouldDelete(bool) {}
