package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// PhysicsSystem mirrors transforms into the chipmunk space, steps it,
// and forwards the overlaps it reported as ECS events.
type PhysicsSystem struct{}

// NewPhysicsSystem creates a PhysicsSystem.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update runs one physics tick. Without an attached physics world
// this is a no-op.
func (s *PhysicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	bodies := w.PhysicsBodies()
	trs := w.Transforms()
	for _, id := range bodies.Entities() {
		body, ok := bodies.Get(id).(*components.PhysicsBody)
		if !ok || body == nil || body.Body == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		body.Body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})
	}

	pw.Step(1.0 / common.TPS)
	pw.DrainContacts(w)
}
