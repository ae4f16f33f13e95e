package components

// WrapTracker subjects an entity to playfield wrapping.
//
// WasOnScreen latches the first time the entity's position is observed
// inside the playfield rect and is never cleared. Until then the wrap
// system leaves the entity alone, so rocks that spawn outside the
// frame drift in instead of teleporting across it.
type WrapTracker struct {
	WasOnScreen bool
}
