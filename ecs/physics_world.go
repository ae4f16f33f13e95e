package ecs

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/astrodrift/ecs/components"
)

// Collision types for the sensor shapes in the space.
const (
	CollisionTypeShip cp.CollisionType = iota + 1
	CollisionTypeRock
	CollisionTypeShot
)

type contact struct {
	a int
	b int
}

// PhysicsWorld owns the chipmunk space. All bodies are kinematic
// mirrors of entity transforms and every shape is a sensor: the space
// detects overlaps, gameplay systems decide what they mean.
type PhysicsWorld struct {
	space         *cp.Space
	handlersReady bool

	shapeToEntity map[*cp.Shape]int
	bodies        map[int]*components.PhysicsBody

	shotRock []contact
	shipRock []contact
}

// NewPhysicsWorld creates a zero-gravity sensor space.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]int),
		bodies:        make(map[int]*components.PhysicsBody),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// AddCircleBody registers a kinematic circle sensor for an entity.
func (pw *PhysicsWorld) AddCircleBody(id int, t *components.Transform, radius float64, collisionType cp.CollisionType) *components.PhysicsBody {
	if pw == nil || pw.space == nil || id <= 0 || t == nil || radius <= 0 {
		return nil
	}
	if body, ok := pw.bodies[id]; ok {
		return body
	}

	cpBody := cp.NewKinematicBody()
	cpBody.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	shape := cp.NewCircle(cpBody, radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionType)

	pw.space.AddBody(cpBody)
	pw.space.AddShape(shape)

	body := &components.PhysicsBody{Body: cpBody, Shape: shape}
	pw.shapeToEntity[shape] = id
	pw.bodies[id] = body
	return body
}

// RemoveBody detaches an entity's body and shape from the space.
func (pw *PhysicsWorld) RemoveBody(id int) {
	if pw == nil || pw.space == nil {
		return
	}
	body, ok := pw.bodies[id]
	if !ok || body == nil {
		return
	}
	if body.Shape != nil {
		pw.space.RemoveShape(body.Shape)
		delete(pw.shapeToEntity, body.Shape)
	}
	if body.Body != nil {
		pw.space.RemoveBody(body.Body)
	}
	delete(pw.bodies, id)
}

// Step advances the space and collects the frame's sensor overlaps.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// DrainContacts moves buffered overlaps into the world event queue.
func (pw *PhysicsWorld) DrainContacts(w *World) {
	if pw == nil || w == nil {
		return
	}
	for _, c := range pw.shotRock {
		a, okA := w.Handle(c.a)
		b, okB := w.Handle(c.b)
		if !okA || !okB {
			continue
		}
		w.Events().Push(Event{Type: EventShotHitRock, Data: ContactEvent{A: a, B: b}})
	}
	for _, c := range pw.shipRock {
		a, okA := w.Handle(c.a)
		b, okB := w.Handle(c.b)
		if !okA || !okB {
			continue
		}
		w.Events().Push(Event{Type: EventShipHitRock, Data: ContactEvent{A: a, B: b}})
	}
	pw.shotRock = pw.shotRock[:0]
	pw.shipRock = pw.shipRock[:0]
}

func (pw *PhysicsWorld) setupHandlers() {
	if pw == nil || pw.handlersReady || pw.space == nil {
		return
	}

	shotRock := pw.space.NewCollisionHandler(CollisionTypeShot, CollisionTypeRock)
	shotRock.UserData = pw
	shotRock.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		shotID, okA := world.shapeToEntity[shapeA]
		rockID, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return false
		}
		world.shotRock = append(world.shotRock, contact{a: shotID, b: rockID})
		return false
	}

	shipRock := pw.space.NewCollisionHandler(CollisionTypeShip, CollisionTypeRock)
	shipRock.UserData = pw
	shipRock.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		shipID, okA := world.shapeToEntity[shapeA]
		rockID, okB := world.shapeToEntity[shapeB]
		if !okA || !okB {
			return false
		}
		world.shipRock = append(world.shipRock, contact{a: shipID, b: rockID})
		return false
	}

	pw.handlersReady = true
}
