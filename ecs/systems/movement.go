package systems

import (
	"math"

	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// MovementSystem applies velocities and spins to transforms.
type MovementSystem struct{}

// NewMovementSystem creates a MovementSystem.
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update integrates one tick of motion.
func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	vels := w.Velocities()
	trs := w.Transforms()

	for _, id := range vels.Entities() {
		vel, ok := vels.Get(id).(*components.Velocity)
		if !ok || vel == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}

		if vel.Damping > 0 {
			vel.VX *= vel.Damping
			vel.VY *= vel.Damping
		}
		if vel.MaxSpeed > 0 {
			speed := math.Hypot(vel.VX, vel.VY)
			if speed > vel.MaxSpeed {
				scale := vel.MaxSpeed / speed
				vel.VX *= scale
				vel.VY *= scale
			}
		}

		tr.X += vel.VX
		tr.Y += vel.VY
	}

	spins := w.Spins()
	for _, id := range spins.Entities() {
		spin, ok := spins.Get(id).(*components.Spin)
		if !ok || spin == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		tr.Angle += spin.Rate
	}
}
