package engine

import (
	"github.com/GamesFromRust/piston-shooty/core"
)

// Allocator issues generational entity handles
// Freed slots are recycled with a bumped generation so stale handles never alias a new entity
type Allocator struct {
	generations []uint32
	alive       []bool
	free        []uint32
}

// NewAllocator creates an empty allocator
// Slot 0 is reserved so that the zero handle is never issued
func NewAllocator() *Allocator {
	return &Allocator{
		generations: []uint32{0},
		alive:       []bool{false},
	}
}

// Reserve allocates a new handle
func (a *Allocator) Reserve() core.Entity {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.alive[idx] = true
		return core.NewEntity(idx, a.generations[idx])
	}

	idx := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	a.alive = append(a.alive, true)
	return core.NewEntity(idx, 1)
}

// Release frees a handle; releasing a stale or unknown handle is a no-op
func (a *Allocator) Release(e core.Entity) {
	if !a.IsAlive(e) {
		return
	}
	idx := e.Index()
	a.alive[idx] = false
	a.generations[idx]++
	a.free = append(a.free, idx)
}

// IsAlive reports whether e refers to a currently allocated slot
func (a *Allocator) IsAlive(e core.Entity) bool {
	idx := e.Index()
	if e.IsZero() || int(idx) >= len(a.generations) {
		return false
	}
	return a.alive[idx] && a.generations[idx] == e.Generation()
}

// Count returns number of live handles
func (a *Allocator) Count() int {
	return len(a.generations) - 1 - len(a.free)
}
