package components

// Ship stores the player ship's tuning and per-frame fire state.
// Tuning fields come from the ship prefab.
type Ship struct {
	TurnSpeed   float64 // radians per tick at full deflection
	ThrustAccel float64 // units per tick^2 along the heading
	ShotSpeed   float64
	ShotLife    int // frames a shot lives
	FireDelay   int // frames between shots

	CooldownLeft int
	// GraceLeft > 0 means the ship just respawned and ignores rock
	// contacts; the render system blinks the sprite while it runs out.
	GraceLeft int
	Thrusting bool
}

// RockSize orders rock generations from largest to smallest.
type RockSize int

const (
	RockLarge RockSize = iota
	RockMedium
	RockSmall
)

// Rock marks an entity as a destructible rock.
type Rock struct {
	Size  RockSize
	Score int
}

// Shot marks an entity as a live projectile.
type Shot struct{}
