package ecs

import "github.com/milk9111/astrodrift/ecs/components"

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Velocities returns the velocity storage.
func (w *World) Velocities() *SparseSet {
	if w == nil {
		return nil
	}
	if w.velocities == nil {
		w.velocities = &SparseSet{}
	}
	return w.velocities
}

// Spins returns the spin storage.
func (w *World) Spins() *SparseSet {
	if w == nil {
		return nil
	}
	if w.spins == nil {
		w.spins = &SparseSet{}
	}
	return w.spins
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// WrapTrackers returns the wrap tracker storage.
func (w *World) WrapTrackers() *SparseSet {
	if w == nil {
		return nil
	}
	if w.wrapTrackers == nil {
		w.wrapTrackers = &SparseSet{}
	}
	return w.wrapTrackers
}

// Touchables returns the touchable storage.
func (w *World) Touchables() *SparseSet {
	if w == nil {
		return nil
	}
	if w.touchables == nil {
		w.touchables = &SparseSet{}
	}
	return w.touchables
}

// Labels returns the label stack storage.
func (w *World) Labels() *SparseSet {
	if w == nil {
		return nil
	}
	if w.labels == nil {
		w.labels = &SparseSet{}
	}
	return w.labels
}

// Lifetimes returns the lifetime storage.
func (w *World) Lifetimes() *SparseSet {
	if w == nil {
		return nil
	}
	if w.lifetimes == nil {
		w.lifetimes = &SparseSet{}
	}
	return w.lifetimes
}

// Ships returns the ship storage.
func (w *World) Ships() *SparseSet {
	if w == nil {
		return nil
	}
	if w.ships == nil {
		w.ships = &SparseSet{}
	}
	return w.ships
}

// Rocks returns the rock storage.
func (w *World) Rocks() *SparseSet {
	if w == nil {
		return nil
	}
	if w.rocks == nil {
		w.rocks = &SparseSet{}
	}
	return w.rocks
}

// Shots returns the shot storage.
func (w *World) Shots() *SparseSet {
	if w == nil {
		return nil
	}
	if w.shots == nil {
		w.shots = &SparseSet{}
	}
	return w.shots
}

// PhysicsBodies returns the physics body storage.
func (w *World) PhysicsBodies() *SparseSet {
	if w == nil {
		return nil
	}
	if w.physBodies == nil {
		w.physBodies = &SparseSet{}
	}
	return w.physBodies
}

// Inputs returns the input state storage.
func (w *World) Inputs() *SparseSet {
	if w == nil {
		return nil
	}
	if w.inputs == nil {
		w.inputs = &SparseSet{}
	}
	return w.inputs
}

// Sessions returns the session storage.
func (w *World) Sessions() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sessions == nil {
		w.sessions = &SparseSet{}
	}
	return w.sessions
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *components.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e.ID, t)
}

// GetTransform returns a transform component.
func (w *World) GetTransform(e Entity) *components.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e.ID).(*components.Transform); ok {
		return t
	}
	return nil
}

// SetVelocity attaches a velocity component.
func (w *World) SetVelocity(e Entity, v *components.Velocity) {
	if w == nil || v == nil {
		return
	}
	w.Velocities().Set(e.ID, v)
}

// GetVelocity returns a velocity component.
func (w *World) GetVelocity(e Entity) *components.Velocity {
	if w == nil {
		return nil
	}
	if v, ok := w.Velocities().Get(e.ID).(*components.Velocity); ok {
		return v
	}
	return nil
}

// SetSpin attaches a spin component.
func (w *World) SetSpin(e Entity, s *components.Spin) {
	if w == nil || s == nil {
		return
	}
	w.Spins().Set(e.ID, s)
}

// GetSpin returns a spin component.
func (w *World) GetSpin(e Entity) *components.Spin {
	if w == nil {
		return nil
	}
	if s, ok := w.Spins().Get(e.ID).(*components.Spin); ok {
		return s
	}
	return nil
}

// SetSprite attaches a sprite component.
func (w *World) SetSprite(e Entity, s *components.Sprite) {
	if w == nil || s == nil {
		return
	}
	w.Sprites().Set(e.ID, s)
}

// GetSprite returns a sprite component.
func (w *World) GetSprite(e Entity) *components.Sprite {
	if w == nil {
		return nil
	}
	if s, ok := w.Sprites().Get(e.ID).(*components.Sprite); ok {
		return s
	}
	return nil
}

// SetWrapTracker attaches a wrap tracker component.
func (w *World) SetWrapTracker(e Entity, t *components.WrapTracker) {
	if w == nil || t == nil {
		return
	}
	w.WrapTrackers().Set(e.ID, t)
}

// GetWrapTracker returns a wrap tracker component.
func (w *World) GetWrapTracker(e Entity) *components.WrapTracker {
	if w == nil {
		return nil
	}
	if t, ok := w.WrapTrackers().Get(e.ID).(*components.WrapTracker); ok {
		return t
	}
	return nil
}

// SetTouchable attaches a touchable component.
func (w *World) SetTouchable(e Entity, t *components.Touchable) {
	if w == nil || t == nil {
		return
	}
	w.Touchables().Set(e.ID, t)
}

// GetTouchable returns a touchable component.
func (w *World) GetTouchable(e Entity) *components.Touchable {
	if w == nil {
		return nil
	}
	if t, ok := w.Touchables().Get(e.ID).(*components.Touchable); ok {
		return t
	}
	return nil
}

// SetLabelStack attaches a label stack component.
func (w *World) SetLabelStack(e Entity, l *components.LabelStack) {
	if w == nil || l == nil {
		return
	}
	w.Labels().Set(e.ID, l)
}

// GetLabelStack returns a label stack component.
func (w *World) GetLabelStack(e Entity) *components.LabelStack {
	if w == nil {
		return nil
	}
	if l, ok := w.Labels().Get(e.ID).(*components.LabelStack); ok {
		return l
	}
	return nil
}

// SetLifetime attaches a lifetime component.
func (w *World) SetLifetime(e Entity, l *components.Lifetime) {
	if w == nil || l == nil {
		return
	}
	w.Lifetimes().Set(e.ID, l)
}

// GetLifetime returns a lifetime component.
func (w *World) GetLifetime(e Entity) *components.Lifetime {
	if w == nil {
		return nil
	}
	if l, ok := w.Lifetimes().Get(e.ID).(*components.Lifetime); ok {
		return l
	}
	return nil
}

// SetShip attaches a ship component.
func (w *World) SetShip(e Entity, s *components.Ship) {
	if w == nil || s == nil {
		return
	}
	w.Ships().Set(e.ID, s)
}

// GetShip returns a ship component.
func (w *World) GetShip(e Entity) *components.Ship {
	if w == nil {
		return nil
	}
	if s, ok := w.Ships().Get(e.ID).(*components.Ship); ok {
		return s
	}
	return nil
}

// SetRock attaches a rock component.
func (w *World) SetRock(e Entity, r *components.Rock) {
	if w == nil || r == nil {
		return
	}
	w.Rocks().Set(e.ID, r)
}

// GetRock returns a rock component.
func (w *World) GetRock(e Entity) *components.Rock {
	if w == nil {
		return nil
	}
	if r, ok := w.Rocks().Get(e.ID).(*components.Rock); ok {
		return r
	}
	return nil
}

// SetShot attaches a shot component.
func (w *World) SetShot(e Entity, s *components.Shot) {
	if w == nil || s == nil {
		return
	}
	w.Shots().Set(e.ID, s)
}

// GetShot returns a shot component.
func (w *World) GetShot(e Entity) *components.Shot {
	if w == nil {
		return nil
	}
	if s, ok := w.Shots().Get(e.ID).(*components.Shot); ok {
		return s
	}
	return nil
}

// SetPhysicsBody attaches a physics body component.
func (w *World) SetPhysicsBody(e Entity, b *components.PhysicsBody) {
	if w == nil || b == nil {
		return
	}
	w.PhysicsBodies().Set(e.ID, b)
}

// GetPhysicsBody returns a physics body component.
func (w *World) GetPhysicsBody(e Entity) *components.PhysicsBody {
	if w == nil {
		return nil
	}
	if b, ok := w.PhysicsBodies().Get(e.ID).(*components.PhysicsBody); ok {
		return b
	}
	return nil
}

// SetInput attaches an input state component.
func (w *World) SetInput(e Entity, i *components.InputState) {
	if w == nil || i == nil {
		return
	}
	w.Inputs().Set(e.ID, i)
}

// GetInput returns an input state component.
func (w *World) GetInput(e Entity) *components.InputState {
	if w == nil {
		return nil
	}
	if i, ok := w.Inputs().Get(e.ID).(*components.InputState); ok {
		return i
	}
	return nil
}

// SetSession attaches a session component.
func (w *World) SetSession(e Entity, s *components.Session) {
	if w == nil || s == nil {
		return
	}
	w.Sessions().Set(e.ID, s)
}

// GetSession returns a session component.
func (w *World) GetSession(e Entity) *components.Session {
	if w == nil {
		return nil
	}
	if s, ok := w.Sessions().Get(e.ID).(*components.Session); ok {
		return s
	}
	return nil
}

// FirstInput returns the singleton input state component, if present.
func (w *World) FirstInput() *components.InputState {
	if w == nil {
		return nil
	}
	for _, v := range w.Inputs().Values() {
		if s, ok := v.(*components.InputState); ok && s != nil {
			return s
		}
	}
	return nil
}

// FirstSession returns the singleton session component, if present.
func (w *World) FirstSession() *components.Session {
	if w == nil {
		return nil
	}
	for _, v := range w.Sessions().Values() {
		if s, ok := v.(*components.Session); ok && s != nil {
			return s
		}
	}
	return nil
}
