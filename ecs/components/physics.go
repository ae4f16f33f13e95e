package components

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its chipmunk body and sensor shape.
// Bodies are kinematic mirrors of the Transform; gameplay systems own
// position, the space only reports overlaps.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape
}
