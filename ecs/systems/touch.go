package systems

import (
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// TouchSystem delivers press edges to Touchable entities.
//
// Only the frame a press begins counts: the callback of every
// touchable whose rect contains the press point fires once,
// synchronously, in that frame. Cursor movement, held buttons, and
// release produce nothing, so a press can never fire twice.
type TouchSystem struct{}

// NewTouchSystem creates a TouchSystem.
func NewTouchSystem() *TouchSystem {
	return &TouchSystem{}
}

// Update hit-tests the frame's press edge, if any.
func (s *TouchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	input := firstInput(w)
	if input == nil || !input.PressStarted {
		return
	}

	touchables := w.Touchables()
	trs := w.Transforms()

	for _, id := range ecs.IntersectEntities(touchables, trs) {
		tch, ok := touchables.Get(id).(*components.Touchable)
		if !ok || tch == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}
		if !touchableContains(tch, tr, input.PressX, input.PressY) {
			continue
		}
		if tch.OnTouch != nil {
			tch.OnTouch()
		}
	}
}

// touchableContains reports whether the point is inside the hit rect
// centered on the transform.
func touchableContains(tch *components.Touchable, tr *components.Transform, x, y float64) bool {
	if tch == nil || tr == nil || tch.Width <= 0 || tch.Height <= 0 {
		return false
	}
	cx := tr.X + tch.OffsetX
	cy := tr.Y + tch.OffsetY
	return x >= cx-tch.Width/2 && x <= cx+tch.Width/2 &&
		y >= cy-tch.Height/2 && y <= cy+tch.Height/2
}

// firstInput returns the mirrored input state, if any entity holds one.
func firstInput(w *ecs.World) *components.InputState {
	return w.FirstInput()
}
