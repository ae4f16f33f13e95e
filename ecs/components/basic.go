package components

import "image/color"

// Transform stores position and heading in world space. Angle is in
// radians, 0 pointing up, increasing clockwise.
type Transform struct {
	X, Y  float64
	Angle float64
}

// Velocity stores linear velocity in units per tick.
type Velocity struct {
	VX, VY float64
	// Damping is multiplied into the velocity every tick when > 0.
	Damping float64
	// MaxSpeed caps the velocity magnitude when > 0.
	MaxSpeed float64
}

// Spin stores angular velocity in radians per tick.
type Spin struct {
	Rate float64
}

// SpriteKind selects which procedural shape the render system draws.
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteRock
	SpriteShot
)

// Sprite stores render data. Rocks carry a jagged outline as points
// relative to the transform; ship and shot are drawn from Radius.
type Sprite struct {
	Kind   SpriteKind
	Radius float64
	Points [][2]float64
	Color  color.Color
	Layer  int
	// Hidden suppresses drawing without removing the component
	// (respawn grace blink).
	Hidden bool
}

// Lifetime stores a frame-based time to live.
type Lifetime struct {
	Frames int
}
