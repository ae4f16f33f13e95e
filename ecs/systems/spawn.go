package systems

import (
	"math"
	"math/rand"

	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
	"github.com/milk9111/astrodrift/prefabs"
)

// Render layers, back to front.
const (
	LayerRocks = iota
	LayerShots
	LayerShip
	LayerHUD
)

// SpawnShip creates the player ship at the given position.
func SpawnShip(w *ecs.World, spec *prefabs.ShipSpec, x, y float64) ecs.Entity {
	if w == nil || spec == nil {
		return ecs.Entity{}
	}
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: x, Y: y})
	w.SetVelocity(e, &components.Velocity{Damping: spec.Damping, MaxSpeed: spec.MaxSpeed})
	w.SetShip(e, &components.Ship{
		TurnSpeed:   spec.TurnSpeed,
		ThrustAccel: spec.ThrustAccel,
		ShotSpeed:   spec.ShotSpeed,
		ShotLife:    spec.ShotLife,
		FireDelay:   spec.FireDelay,
		GraceLeft:   spec.GraceFrames,
	})
	w.SetSprite(e, &components.Sprite{
		Kind:   components.SpriteShip,
		Radius: spec.Radius,
		Color:  spec.Color,
		Layer:  LayerShip,
	})
	// the ship spawns mid-field, already on screen
	w.SetWrapTracker(e, &components.WrapTracker{WasOnScreen: true})
	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.AddCircleBody(e.ID, w.GetTransform(e), spec.Radius*0.8, ecs.CollisionTypeShip); body != nil {
			w.SetPhysicsBody(e, body)
		}
	}
	return e
}

// SpawnShot fires a projectile from (x, y) along the heading.
func SpawnShot(w *ecs.World, x, y, angle, baseVX, baseVY, speed float64, life int) ecs.Entity {
	if w == nil {
		return ecs.Entity{}
	}
	dirX, dirY := headingVector(angle)

	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: x, Y: y, Angle: angle})
	w.SetVelocity(e, &components.Velocity{
		VX: baseVX + dirX*speed,
		VY: baseVY + dirY*speed,
	})
	w.SetShot(e, &components.Shot{})
	w.SetLifetime(e, &components.Lifetime{Frames: life})
	w.SetSprite(e, &components.Sprite{
		Kind:   components.SpriteShot,
		Radius: 2,
		Layer:  LayerShots,
	})
	w.SetWrapTracker(e, &components.WrapTracker{WasOnScreen: true})
	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.AddCircleBody(e.ID, w.GetTransform(e), 2, ecs.CollisionTypeShot); body != nil {
			w.SetPhysicsBody(e, body)
		}
	}
	return e
}

// SpawnRock creates one rock of the given size. onScreen seeds the
// wrap tracker: wave rocks start outside the frame and must not wrap
// until they have fully entered it, split shards are born inside.
func SpawnRock(w *ecs.World, spec *prefabs.RockSpec, size components.RockSize, x, y, vx, vy float64, onScreen bool, rng *rand.Rand) ecs.Entity {
	if w == nil || spec == nil {
		return ecs.Entity{}
	}
	sz := sizeSpec(spec, size)

	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: x, Y: y, Angle: rng.Float64() * 2 * math.Pi})
	w.SetVelocity(e, &components.Velocity{VX: vx, VY: vy})
	w.SetSpin(e, &components.Spin{Rate: (rng.Float64()*2 - 1) * sz.MaxSpin})
	w.SetRock(e, &components.Rock{Size: size, Score: sz.Score})
	w.SetSprite(e, &components.Sprite{
		Kind:   components.SpriteRock,
		Radius: sz.Radius,
		Points: rockOutline(rng, sz.Radius, sz.Points, sz.Jag),
		Color:  spec.Color,
		Layer:  LayerRocks,
	})
	w.SetWrapTracker(e, &components.WrapTracker{WasOnScreen: onScreen})
	if pw := w.PhysicsWorld(); pw != nil {
		if body := pw.AddCircleBody(e.ID, w.GetTransform(e), sz.Radius*0.9, ecs.CollisionTypeRock); body != nil {
			w.SetPhysicsBody(e, body)
		}
	}
	return e
}

// SpawnRockWave places count large rocks just outside random playfield
// edges, drifting inward.
func SpawnRockWave(w *ecs.World, spec *prefabs.RockSpec, playfield common.Rect, count int, speedScale float64, rng *rand.Rand) {
	if w == nil || spec == nil || playfield.Empty() || count <= 0 {
		return
	}
	sz := spec.Large
	for i := 0; i < count; i++ {
		var x, y float64
		switch rng.Intn(4) {
		case 0: // left
			x = playfield.MinX() - sz.Radius
			y = playfield.MinY() + rng.Float64()*playfield.Height
		case 1: // right
			x = playfield.MaxX() + sz.Radius
			y = playfield.MinY() + rng.Float64()*playfield.Height
		case 2: // top
			x = playfield.MinX() + rng.Float64()*playfield.Width
			y = playfield.MinY() - sz.Radius
		default: // bottom
			x = playfield.MinX() + rng.Float64()*playfield.Width
			y = playfield.MaxY() + sz.Radius
		}

		// aim at a point in the middle third so every rock enters the
		// frame instead of skimming past it
		tx := playfield.MinX() + playfield.Width*(1.0/3.0+rng.Float64()/3.0)
		ty := playfield.MinY() + playfield.Height*(1.0/3.0+rng.Float64()/3.0)
		dx, dy := tx-x, ty-y
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}
		speed := rockSpeed(sz, speedScale, rng)
		SpawnRock(w, spec, components.RockLarge, x, y, dx/dist*speed, dy/dist*speed, false, rng)
	}
}

// SpawnRockSplits creates the shards of a destroyed rock, inside the
// frame and immediately wrappable.
func SpawnRockSplits(w *ecs.World, spec *prefabs.RockSpec, parent components.RockSize, x, y float64, speedScale float64, rng *rand.Rand) {
	if w == nil || spec == nil || parent >= components.RockSmall {
		return
	}
	next := parent + 1
	sz := sizeSpec(spec, next)
	count := spec.SplitCount
	if count <= 0 {
		count = 2
	}
	base := rng.Float64() * 2 * math.Pi
	for i := 0; i < count; i++ {
		ang := base + 2*math.Pi*float64(i)/float64(count)
		speed := rockSpeed(sz, speedScale, rng)
		SpawnRock(w, spec, next, x, y, math.Sin(ang)*speed, -math.Cos(ang)*speed, true, rng)
	}
}

func sizeSpec(spec *prefabs.RockSpec, size components.RockSize) prefabs.RockSizeSpec {
	switch size {
	case components.RockMedium:
		return spec.Medium
	case components.RockSmall:
		return spec.Small
	default:
		return spec.Large
	}
}

func rockSpeed(sz prefabs.RockSizeSpec, scale float64, rng *rand.Rand) float64 {
	if scale <= 0 {
		scale = 1
	}
	spread := sz.MaxSpeed - sz.MinSpeed
	if spread < 0 {
		spread = 0
	}
	return (sz.MinSpeed + rng.Float64()*spread) * scale
}

// rockOutline builds a jagged closed polygon around the origin.
func rockOutline(rng *rand.Rand, radius float64, points int, jag float64) [][2]float64 {
	if points < 3 {
		points = 8
	}
	out := make([][2]float64, points)
	for i := 0; i < points; i++ {
		ang := 2 * math.Pi * float64(i) / float64(points)
		r := radius * (1 - jag*rng.Float64())
		out[i] = [2]float64{math.Sin(ang) * r, -math.Cos(ang) * r}
	}
	return out
}

// headingVector converts an angle (0 = up, clockwise positive) to a
// unit vector in screen space.
func headingVector(angle float64) (float64, float64) {
	return math.Sin(angle), -math.Cos(angle)
}
