package component

// SpawnRequestType selects which world lists a spawned entity joins
type SpawnRequestType uint8

const (
	// AddDynamicRenderable adds to the projectile layer and the collidable list
	AddDynamicRenderable SpawnRequestType = iota
	// AddUpdatable adds to the updatable list
	AddUpdatable
)

func (t SpawnRequestType) String() string {
	switch t {
	case AddDynamicRenderable:
		return "add_dynamic_renderable"
	case AddUpdatable:
		return "add_updatable"
	}
	return "unknown"
}

// SpawnRequest is a deferred request to add an entity to the world
// Requests are applied only after every updatable has run for the frame
type SpawnRequest struct {
	Type       SpawnRequestType
	Renderable Renderable
	Collidable Collidable
	Updatable  Updatable
}

// DynamicObject is an entity that is drawn, collides and updates
type DynamicObject interface {
	Renderable
	Collidable
	Updatable
}

// SpawnDynamic requests obj be drawn in the projectile layer and collide
func SpawnDynamic(obj interface {
	Renderable
	Collidable
}) SpawnRequest {
	return SpawnRequest{Type: AddDynamicRenderable, Renderable: obj, Collidable: obj}
}

// SpawnUpdatable requests obj be updated every frame
func SpawnUpdatable(obj Updatable) SpawnRequest {
	return SpawnRequest{Type: AddUpdatable, Updatable: obj}
}

// SpawnAll returns both requests for a dynamic object
func SpawnAll(obj DynamicObject) []SpawnRequest {
	return []SpawnRequest{SpawnDynamic(obj), SpawnUpdatable(obj)}
}
