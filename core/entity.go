package core

import "fmt"

// Entity is a generational handle into the world arena
// Low 32 bits hold the slot index, high 32 bits the slot generation
// Zero is never issued and means "no entity"
type Entity uint64

// NewEntity packs an index and generation into a handle
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether e is the null handle
func (e Entity) IsZero() bool {
	return e == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("#%d.%d", e.Index(), e.Generation())
}
