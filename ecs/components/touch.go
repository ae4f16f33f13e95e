package components

// Touchable marks an entity as touch-sensitive over a rect centered on
// its transform (plus offset). Attaching the component is what enables
// touch; there is no disabled state.
//
// OnTouch fires exactly once per press edge (mouse down or touch
// start) inside the rect. Movement, held state, and release are
// deliberately inert so a press can never double-fire or acquire
// drag semantics. A nil OnTouch swallows the press.
type Touchable struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	OnTouch func()
}
