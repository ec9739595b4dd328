package world

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/asset"
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/engine"
	"github.com/GamesFromRust/piston-shooty/game"
	"github.com/GamesFromRust/piston-shooty/gun"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/logger"
	"github.com/GamesFromRust/piston-shooty/parameter"
	"github.com/GamesFromRust/piston-shooty/player"
	"github.com/GamesFromRust/piston-shooty/vmath"
)

// EndedState records how an attempt finished
type EndedState struct {
	GameEnded bool
	Won       bool
}

// Textures is the sprite set for level geometry
type Textures struct {
	Wall   *asset.Texture
	Ground *asset.Texture
	Enemy  *asset.Texture
}

// PlayerFactory builds the player for a spawn cell
type PlayerFactory func(pos vmath.Vector2) *player.Player

// entityAware objects want their world handle
type entityAware interface {
	SetEntity(core.Entity)
}

// World is one attempt at one level
// Every entity lives once in the arena; layers and lists hold handles
type World struct {
	name    string
	attempt uuid.UUID

	alloc   *engine.Allocator
	objects *engine.Store[component.GameObject]
	handles map[component.GameObject]core.Entity

	layers      [parameter.LayerCount][]core.Entity
	collidables []core.Entity
	updatables  []core.Entity

	ended   EndedState
	player  *player.Player
	elapsed float64 // Seconds since the attempt started

	textures  Textures
	newPlayer PlayerFactory
}

// New creates an empty world; populate it through the Register methods
func New(name string, tex Textures, newPlayer PlayerFactory) *World {
	w := &World{
		name:      name,
		attempt:   uuid.New(),
		alloc:     engine.NewAllocator(),
		objects:   engine.NewStore[component.GameObject](),
		handles:   make(map[component.GameObject]core.Entity),
		textures:  tex,
		newPlayer: newPlayer,
	}
	w.log().Info("Attempt started")
	return w
}

func (w *World) log() *logrus.Entry {
	return logger.Log.WithFields(logrus.Fields{"level": w.name, "attempt": w.attempt.String()})
}

func (w *World) Name() string              { return w.name }
func (w *World) Type() game.StateType      { return game.TypeWorld }
func (w *World) Player() *player.Player    { return w.player }
func (w *World) Ended() bool               { return w.ended.GameEnded }
func (w *World) Won() bool                 { return w.ended.GameEnded && w.ended.Won }
func (w *World) EndedState() EndedState    { return w.ended }
func (w *World) EntityCount() int          { return w.objects.Len() }
func (w *World) Layer(i int) []core.Entity { return w.layers[i] }

// Object resolves a handle; false for stale handles
func (w *World) Object(e core.Entity) (component.GameObject, bool) {
	return w.objects.Get(e)
}

// Add places obj in the arena, returning its existing handle if already present
func (w *World) Add(obj component.GameObject) core.Entity {
	if e, ok := w.handles[obj]; ok {
		return e
	}
	e := w.alloc.Reserve()
	w.objects.Set(e, obj)
	w.handles[obj] = e
	if ea, ok := obj.(entityAware); ok {
		ea.SetEntity(e)
	}
	return e
}

// AddRenderableAtLayer draws obj in the given layer
func (w *World) AddRenderableAtLayer(obj component.Renderable, layer int) core.Entity {
	if layer < 0 || layer >= parameter.LayerCount {
		panic(fmt.Sprintf("render layer %d out of range", layer))
	}
	e := w.Add(obj)
	w.layers[layer] = appendUnique(w.layers[layer], e)
	return e
}

// AddCollidable enters obj into the collision pass
func (w *World) AddCollidable(obj component.Collidable) core.Entity {
	e := w.Add(obj)
	w.collidables = appendUnique(w.collidables, e)
	return e
}

// AddUpdatable enters obj into the update pass
func (w *World) AddUpdatable(obj component.Updatable) core.Entity {
	e := w.Add(obj)
	w.updatables = appendUnique(w.updatables, e)
	return e
}

func appendUnique(list []core.Entity, e core.Entity) []core.Entity {
	for _, x := range list {
		if x == e {
			return list
		}
	}
	return append(list, e)
}

// Update advances the attempt by one frame
func (w *World) Update(snap *input.Snapshot, dt float64) game.UpdateResult {
	switch w.ended {
	case EndedState{}:
		w.elapsed += dt
		w.step(snap, dt)
		return game.Running()

	case EndedState{GameEnded: true, Won: true}:
		if snap.Confirmed() {
			return game.Success(0)
		}
		return game.Running()

	case EndedState{GameEnded: true, Won: false}:
		if snap.Confirmed() {
			return game.Fail()
		}
		return game.Running()
	}
	panic(fmt.Sprintf("world %q: impossible ended state %+v", w.name, w.ended))
}

// step runs one frame of simulation while the attempt is live
func (w *World) step(snap *input.Snapshot, dt float64) {
	if w.IsVictorious() {
		w.ended = EndedState{GameEnded: true, Won: true}
		w.log().WithField("elapsed", w.elapsed).Info("Level won")
		return
	}
	if w.WasDefeated() {
		w.ended = EndedState{GameEnded: true, Won: false}
		w.log().WithField("elapsed", w.elapsed).Info("Level lost")
		return
	}

	w.collide()
	w.sweep()
	requests := w.update(snap, dt)
	w.apply(requests)
}

// IsVictorious reports whether no enemy remains in the enemy layer
func (w *World) IsVictorious() bool {
	for _, e := range w.layers[parameter.LayerEnemy] {
		obj, ok := w.objects.Get(e)
		if ok && obj.ObjectType() == core.ObjectEnemy {
			return false
		}
	}
	return true
}

// WasDefeated reports whether no weapon can act and nothing that can still kill is in flight
func (w *World) WasDefeated() bool {
	if w.player != nil && (w.player.CanShootGun() || w.player.CanShootBullet()) {
		return false
	}
	for _, e := range w.objects.Entities() {
		obj, _ := w.objects.Get(e)
		if obj.ShouldDelete() {
			continue
		}
		if obj.ObjectType() == core.ObjectBullet || w.isDepthLimitedGun(obj) {
			return false
		}
	}
	return true
}

func (w *World) isDepthLimitedGun(obj component.GameObject) bool {
	g, ok := obj.(*gun.Gun)
	return ok && g.Behavior.HasGunDepth()
}
