package systems

import (
	"github.com/milk9111/astrodrift/audio"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// ShipControlSystem steers the ship from the mirrored input state and
// fires shots.
type ShipControlSystem struct {
	Sounds *audio.Player
}

// NewShipControlSystem creates a ShipControlSystem.
func NewShipControlSystem(sounds *audio.Player) *ShipControlSystem {
	return &ShipControlSystem{Sounds: sounds}
}

// Update applies turn, thrust, and fire for every ship.
func (s *ShipControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	input := firstInput(w)
	if input == nil {
		return
	}

	ships := w.Ships()
	for _, id := range ships.Entities() {
		ship, ok := ships.Get(id).(*components.Ship)
		if !ok || ship == nil {
			continue
		}
		e, ok := w.Handle(id)
		if !ok {
			continue
		}
		tr := w.GetTransform(e)
		vel := w.GetVelocity(e)
		if tr == nil || vel == nil {
			continue
		}

		tr.Angle += input.TurnAxis * ship.TurnSpeed

		ship.Thrusting = input.ThrustHeld
		if ship.Thrusting {
			dirX, dirY := headingVector(tr.Angle)
			vel.VX += dirX * ship.ThrustAccel
			vel.VY += dirY * ship.ThrustAccel
		}

		if ship.CooldownLeft > 0 {
			ship.CooldownLeft--
		}
		if input.FireHeld && ship.CooldownLeft <= 0 {
			dirX, dirY := headingVector(tr.Angle)
			spr := w.GetSprite(e)
			nose := 0.0
			if spr != nil {
				nose = spr.Radius
			}
			SpawnShot(w, tr.X+dirX*nose, tr.Y+dirY*nose, tr.Angle, vel.VX, vel.VY, ship.ShotSpeed, ship.ShotLife)
			ship.CooldownLeft = ship.FireDelay
			s.Sounds.Play(audio.SoundFire)
		}

		if ship.GraceLeft > 0 {
			ship.GraceLeft--
			if spr := w.GetSprite(e); spr != nil {
				// blink while invulnerable
				spr.Hidden = (ship.GraceLeft/6)%2 == 1
				if ship.GraceLeft == 0 {
					spr.Hidden = false
				}
			}
		}
	}
}
