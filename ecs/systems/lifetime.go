package systems

import (
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// LifetimeSystem decrements frame-based lifetimes and destroys
// entities when they expire.
type LifetimeSystem struct{}

// NewLifetimeSystem creates a LifetimeSystem.
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Update ages every entity with a Lifetime component.
func (s *LifetimeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	lifetimes := w.Lifetimes()

	var expired []int
	for _, id := range lifetimes.Entities() {
		lt, ok := lifetimes.Get(id).(*components.Lifetime)
		if !ok || lt == nil {
			continue
		}
		lt.Frames--
		if lt.Frames <= 0 {
			expired = append(expired, id)
		}
	}
	// destroy after iterating: removal swaps dense slots around
	for _, id := range expired {
		if e, ok := w.Handle(id); ok {
			w.DestroyEntity(e)
		}
	}
}
