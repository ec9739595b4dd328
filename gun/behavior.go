package gun

import (
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/parameter"
)

// Kind is the closed set of weapon behaviors
type Kind uint8

const (
	KindHandGun Kind = iota // No depth limit, one gun per shot
	KindGunAxe              // Depth limited, kills enemies on contact
	KindShotGun             // No depth limit, forks two guns per chain head
)

func (k Kind) String() string {
	switch k {
	case KindHandGun:
		return "HandGun"
	case KindGunAxe:
		return "GunAxe"
	case KindShotGun:
		return "ShotGun"
	}
	return "unknown"
}

// Behavior is the per-gun rule set, dispatched on Kind
// Each in-flight gun owns its own copy so deletion is tracked independently
type Behavior struct {
	Kind         Kind
	depth        int
	shouldDelete bool
}

// NewBehavior creates a behavior; gunAxeDepth is only used by KindGunAxe
func NewBehavior(kind Kind, gunAxeDepth int) Behavior {
	b := Behavior{Kind: kind}
	if kind == KindGunAxe {
		b.depth = gunAxeDepth
		if b.depth <= 0 {
			b.depth = parameter.GunAxeDepth
		}
	}
	return b
}

// Clone returns a fresh copy that is not marked for deletion
func (b Behavior) Clone() Behavior {
	b.shouldDelete = false
	return b
}

func (b Behavior) ShouldDelete() bool {
	return b.shouldDelete
}

func (b *Behavior) SetShouldDelete(v bool) {
	b.shouldDelete = v
}

// ObjectType is the collision tag of a gun with this behavior
func (b Behavior) ObjectType() core.ObjectType {
	switch b.Kind {
	case KindGunAxe:
		return core.ObjectGunAxe
	case KindShotGun:
		return core.ObjectShotGun
	default:
		return core.ObjectHandGun
	}
}

// Collide applies the gun's reaction; every kind breaks on walls
func (b *Behavior) Collide(other core.ObjectType) {
	switch b.Kind {
	case KindHandGun, KindGunAxe, KindShotGun:
		if other == core.ObjectWall {
			b.shouldDelete = true
		}
	}
}

// HasGunDepth reports whether firing actions are capped
func (b Behavior) HasGunDepth() bool {
	return b.Kind == KindGunAxe
}

// GunDepth is the firing-action cap, zero when uncapped
func (b Behavior) GunDepth() int {
	if !b.HasGunDepth() {
		return 0
	}
	return b.depth
}

// Forks is the number of guns spawned from each chain head per action
func (b Behavior) Forks() int {
	if b.Kind == KindShotGun {
		return parameter.ShotGunForks
	}
	return 1
}
