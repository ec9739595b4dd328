package world

import (
	"github.com/GamesFromRust/piston-shooty/component"
	"github.com/GamesFromRust/piston-shooty/core"
	"github.com/GamesFromRust/piston-shooty/input"
	"github.com/GamesFromRust/piston-shooty/parameter"
)

// collide tests every unordered pair once; both sides react independently
// Objects already marked for deletion take no part
func (w *World) collide() {
	n := len(w.collidables)
	objs := make([]component.Collidable, 0, n)
	boxes := make([]AABB, 0, n)
	for _, e := range w.collidables {
		obj, ok := w.objects.Get(e)
		if !ok {
			continue
		}
		if obj.ShouldDelete() {
			continue
		}
		c := obj.(component.Collidable)
		objs = append(objs, c)
		boxes = append(boxes, BoundingBox(c))
	}

	for i := 0; i < len(objs); i++ {
		for j := i + 1; j < len(objs); j++ {
			if !Intersects(boxes[i], boxes[j]) {
				continue
			}
			a, b := objs[i], objs[j]
			a.Collide(b.ObjectType())
			b.Collide(a.ObjectType())
		}
	}
}

// sweep removes every entity marked for deletion from all lists and the arena
func (w *World) sweep() {
	var dead []core.Entity
	for _, e := range w.objects.Entities() {
		if obj, _ := w.objects.Get(e); obj.ShouldDelete() {
			dead = append(dead, e)
		}
	}
	if len(dead) == 0 {
		return
	}

	gone := make(map[core.Entity]struct{}, len(dead))
	for _, e := range dead {
		gone[e] = struct{}{}
	}
	for i := range w.layers {
		w.layers[i] = without(w.layers[i], gone)
	}
	w.collidables = without(w.collidables, gone)
	w.updatables = without(w.updatables, gone)

	for _, e := range dead {
		obj, _ := w.objects.Get(e)
		delete(w.handles, obj)
		w.alloc.Release(e)
	}
	w.objects.RemoveBatch(dead)
}

// without filters list in place, keeping order
func without(list []core.Entity, gone map[core.Entity]struct{}) []core.Entity {
	kept := list[:0]
	for _, e := range list {
		if _, ok := gone[e]; !ok {
			kept = append(kept, e)
		}
	}
	return kept
}

// update runs every updatable and collects their spawn requests
// Nothing is added to the world until every updatable has run
func (w *World) update(snap *input.Snapshot, dt float64) []component.SpawnRequest {
	var requests []component.SpawnRequest
	for _, e := range w.updatables {
		obj, ok := w.objects.Get(e)
		if !ok {
			continue
		}
		requests = append(requests, obj.(component.Updatable).Update(snap, dt)...)
	}
	return requests
}

// apply routes each request into its lists; dynamic renderables always land in the projectile layer
func (w *World) apply(requests []component.SpawnRequest) {
	for _, req := range requests {
		switch req.Type {
		case component.AddDynamicRenderable:
			w.AddRenderableAtLayer(req.Renderable, parameter.LayerProjectile)
			w.AddCollidable(req.Collidable)
		case component.AddUpdatable:
			w.AddUpdatable(req.Updatable)
		}
	}
}
