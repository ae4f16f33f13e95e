package systems

import (
	"math/rand"

	"github.com/milk9111/astrodrift/audio"
	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
	"github.com/milk9111/astrodrift/prefabs"
)

// ResolveSystem consumes the frame's contact events: shots break
// rocks, rocks break ships.
type ResolveSystem struct {
	RockSpec *prefabs.RockSpec
	ShipSpec *prefabs.ShipSpec
	Sounds   *audio.Player

	rng *rand.Rand
}

// NewResolveSystem creates a ResolveSystem.
func NewResolveSystem(rockSpec *prefabs.RockSpec, shipSpec *prefabs.ShipSpec, sounds *audio.Player, rng *rand.Rand) *ResolveSystem {
	return &ResolveSystem{
		RockSpec: rockSpec,
		ShipSpec: shipSpec,
		Sounds:   sounds,
		rng:      rng,
	}
}

// Update drains and applies contact events.
func (s *ResolveSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := w.Events().Drain()
	if len(events) == 0 {
		return
	}
	session := w.FirstSession()

	for _, evt := range events {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		switch evt.Type {
		case ecs.EventShotHitRock:
			s.resolveShotHit(w, session, contact.A, contact.B)
		case ecs.EventShipHitRock:
			s.resolveShipHit(w, session, contact.A, contact.B)
		}
	}
}

func (s *ResolveSystem) resolveShotHit(w *ecs.World, session *components.Session, shot, rockEnt ecs.Entity) {
	// a rock may already be gone if two shots hit it the same frame
	if !w.IsAlive(shot) || !w.IsAlive(rockEnt) {
		return
	}
	rock := w.GetRock(rockEnt)
	if rock == nil {
		return
	}
	if session != nil {
		session.Score += rock.Score
	}
	s.breakRock(w, rockEnt, rock)
	w.DestroyEntity(shot)
	s.Sounds.Play(audio.SoundExplosion)
}

func (s *ResolveSystem) resolveShipHit(w *ecs.World, session *components.Session, shipEnt, rockEnt ecs.Entity) {
	if !w.IsAlive(shipEnt) || !w.IsAlive(rockEnt) {
		return
	}
	ship := w.GetShip(shipEnt)
	rock := w.GetRock(rockEnt)
	if ship == nil || rock == nil {
		return
	}
	if ship.GraceLeft > 0 {
		return
	}

	s.breakRock(w, rockEnt, rock)
	s.Sounds.Play(audio.SoundShipHit)

	if session != nil {
		session.Lives--
		if session.Lives <= 0 {
			session.Over = true
			w.DestroyEntity(shipEnt)
			return
		}
	}

	// respawn in the middle of the field with grace
	if tr := w.GetTransform(shipEnt); tr != nil {
		tr.X = common.BaseWidth / 2
		tr.Y = common.BaseHeight / 2
		tr.Angle = 0
	}
	if vel := w.GetVelocity(shipEnt); vel != nil {
		vel.VX = 0
		vel.VY = 0
	}
	if s.ShipSpec != nil {
		ship.GraceLeft = s.ShipSpec.GraceFrames
	}
}

func (s *ResolveSystem) breakRock(w *ecs.World, rockEnt ecs.Entity, rock *components.Rock) {
	tr := w.GetTransform(rockEnt)
	size := rock.Size
	w.DestroyEntity(rockEnt)
	if tr != nil {
		SpawnRockSplits(w, s.RockSpec, size, tr.X, tr.Y, 1, s.rng)
	}
}
