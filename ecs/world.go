package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, components, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	transforms   *SparseSet
	velocities   *SparseSet
	spins        *SparseSet
	sprites      *SparseSet
	wrapTrackers *SparseSet
	touchables   *SparseSet
	labels       *SparseSet
	lifetimes    *SparseSet
	ships        *SparseSet
	rocks        *SparseSet
	shots        *SparseSet
	physBodies   *SparseSet
	inputs       *SparseSet
	sessions     *SparseSet

	physicsWorld *PhysicsWorld
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity marks an entity as dead and drops its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, set := range w.storages() {
		set.Remove(e.ID)
	}
	if w.physicsWorld != nil {
		w.physicsWorld.RemoveBody(e.ID)
	}
	return true
}

// Handle rebuilds the live entity handle for a raw sparse-set id.
func (w *World) Handle(id int) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	return w.entities.handleFor(id)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// SetPhysicsWorld attaches a physics world to this ECS world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	if w == nil {
		return
	}
	w.physicsWorld = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	if w == nil {
		return nil
	}
	return w.physicsWorld
}

func (w *World) storages() []*SparseSet {
	if w == nil {
		return nil
	}
	return []*SparseSet{
		w.transforms, w.velocities, w.spins, w.sprites, w.wrapTrackers,
		w.touchables, w.labels, w.lifetimes, w.ships, w.rocks, w.shots,
		w.physBodies, w.inputs, w.sessions,
	}
}
