package ecs

import (
	"testing"

	"github.com/milk9111/astrodrift/ecs/components"
)

func TestPhysicsWorldBodyLifecycle(t *testing.T) {
	pw := NewPhysicsWorld()
	tr := &components.Transform{X: 10, Y: 20}

	body := pw.AddCircleBody(1, tr, 5, CollisionTypeRock)
	if body == nil || body.Body == nil || body.Shape == nil {
		t.Fatalf("expected a populated body")
	}
	if !body.Shape.Sensor() {
		t.Fatalf("shapes must be sensors")
	}
	if pos := body.Body.Position(); pos.X != 10 || pos.Y != 20 {
		t.Fatalf("body spawned at (%v, %v), want (10, 20)", pos.X, pos.Y)
	}

	// adding the same id twice returns the existing body
	if again := pw.AddCircleBody(1, tr, 5, CollisionTypeRock); again != body {
		t.Fatalf("duplicate add should return the registered body")
	}

	pw.RemoveBody(1)
	if len(pw.bodies) != 0 || len(pw.shapeToEntity) != 0 {
		t.Fatalf("remove left bookkeeping behind")
	}
	// removing again is a no-op
	pw.RemoveBody(1)
}

func TestPhysicsWorldRejectsBadInput(t *testing.T) {
	pw := NewPhysicsWorld()
	if pw.AddCircleBody(0, &components.Transform{}, 5, CollisionTypeRock) != nil {
		t.Fatalf("id 0 is invalid")
	}
	if pw.AddCircleBody(1, nil, 5, CollisionTypeRock) != nil {
		t.Fatalf("nil transform is invalid")
	}
	if pw.AddCircleBody(1, &components.Transform{}, 0, CollisionTypeRock) != nil {
		t.Fatalf("zero radius is invalid")
	}
}

func TestDrainContactsSkipsDeadEntities(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	alive := w.CreateEntity()
	dead := w.CreateEntity()
	w.DestroyEntity(dead)

	pw.shotRock = append(pw.shotRock, contact{a: alive.ID, b: dead.ID})
	pw.shipRock = append(pw.shipRock, contact{a: alive.ID, b: alive.ID})
	pw.DrainContacts(w)

	events := w.Events().Drain()
	if len(events) != 1 {
		t.Fatalf("expected only the all-alive contact, got %d events", len(events))
	}
	if events[0].Type != EventShipHitRock {
		t.Fatalf("surviving event has type %s", events[0].Type)
	}
	if len(pw.shotRock) != 0 || len(pw.shipRock) != 0 {
		t.Fatalf("drain should clear the contact buffers")
	}
}
