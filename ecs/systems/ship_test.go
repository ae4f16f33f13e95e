package systems

import (
	"math"
	"testing"

	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

func newShipWorld(t *testing.T) (*ecs.World, ecs.Entity, *components.InputState) {
	t.Helper()
	w := ecs.NewWorld()
	inputEnt := w.CreateEntity()
	in := &components.InputState{}
	w.SetInput(inputEnt, in)

	ship := SpawnShip(w, testShipSpec(), 100, 100)
	w.GetShip(ship).GraceLeft = 0
	return w, ship, in
}

func TestShipTurns(t *testing.T) {
	w, ship, in := newShipWorld(t)
	s := NewShipControlSystem(nil)

	in.TurnAxis = 1
	s.Update(w)
	s.Update(w)

	got := w.GetTransform(ship).Angle
	if math.Abs(got-0.14) > 1e-9 {
		t.Fatalf("angle %v after two ticks at 0.07, want 0.14", got)
	}
}

func TestShipThrustAccelerates(t *testing.T) {
	w, ship, in := newShipWorld(t)
	s := NewShipControlSystem(nil)

	in.ThrustHeld = true
	s.Update(w)

	vel := w.GetVelocity(ship)
	// angle 0 points up, so thrust is straight -Y
	if math.Abs(vel.VX) > 1e-9 || math.Abs(vel.VY+0.14) > 1e-9 {
		t.Fatalf("thrust velocity (%v, %v), want (0, -0.14)", vel.VX, vel.VY)
	}
	if !w.GetShip(ship).Thrusting {
		t.Fatalf("thrust flag should be set while held")
	}
}

func TestShipFireCooldown(t *testing.T) {
	w, _, in := newShipWorld(t)
	s := NewShipControlSystem(nil)
	spec := testShipSpec()

	in.FireHeld = true
	for i := 0; i < spec.FireDelay; i++ {
		s.Update(w)
	}

	// one shot on the first tick, the next only after the delay elapses
	if got := w.Shots().Len(); got != 1 {
		t.Fatalf("%d shots within one cooldown window, want 1", got)
	}

	s.Update(w)
	if got := w.Shots().Len(); got != 2 {
		t.Fatalf("%d shots after cooldown expiry, want 2", got)
	}

	shot := w.Shots().Entities()[0]
	if lt, _ := w.Lifetimes().Get(shot).(*components.Lifetime); lt == nil || lt.Frames <= 0 {
		t.Fatalf("shots must carry a positive lifetime")
	}
}

func TestShipGraceBlinkRunsOut(t *testing.T) {
	w := ecs.NewWorld()
	inputEnt := w.CreateEntity()
	w.SetInput(inputEnt, &components.InputState{})
	ship := SpawnShip(w, testShipSpec(), 100, 100)

	s := NewShipControlSystem(nil)
	for i := 0; i < testShipSpec().GraceFrames; i++ {
		s.Update(w)
	}

	if w.GetShip(ship).GraceLeft != 0 {
		t.Fatalf("grace should run out, got %d", w.GetShip(ship).GraceLeft)
	}
	if w.GetSprite(ship).Hidden {
		t.Fatalf("sprite must be visible once grace ends")
	}
}
