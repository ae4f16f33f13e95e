package systems

import (
	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

// wrapHysteresis is how far past a playfield edge a position must be
// before it wraps. Without the margin an entity drifting along the
// exact edge would flip back and forth every tick under float jitter.
const wrapHysteresis = 3

// PlayfieldWrapSystem moves tracked entities across playfield edges so
// the field behaves as a torus.
//
// An entity is only ever wrapped after its position has been inside
// the playfield at least once; entities that spawn outside the frame
// drift in untouched. Each axis is tested independently, so leaving
// through a corner wraps both coordinates in the same tick.
type PlayfieldWrapSystem struct {
	playfield common.Rect
	hasRect   bool
}

// NewPlayfieldWrapSystem creates a wrap system with no playfield yet.
func NewPlayfieldWrapSystem() *PlayfieldWrapSystem {
	return &PlayfieldWrapSystem{}
}

// SetPlayfield attaches the playfield rect.
func (s *PlayfieldWrapSystem) SetPlayfield(r common.Rect) {
	if s == nil {
		return
	}
	s.playfield = r
	s.hasRect = true
}

// Playfield returns the current playfield rect and whether one is set.
func (s *PlayfieldWrapSystem) Playfield() (common.Rect, bool) {
	if s == nil {
		return common.Rect{}, false
	}
	return s.playfield, s.hasRect
}

// Update wraps every entity with a Transform and a WrapTracker. With
// no playfield attached there is nothing to wrap against and the tick
// is a no-op.
func (s *PlayfieldWrapSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	if !s.hasRect || s.playfield.Empty() {
		return
	}

	trackers := w.WrapTrackers()
	trs := w.Transforms()

	for _, id := range ecs.IntersectEntities(trackers, trs) {
		tracker, ok := trackers.Get(id).(*components.WrapTracker)
		if !ok || tracker == nil {
			continue
		}
		tr, ok := trs.Get(id).(*components.Transform)
		if !ok || tr == nil {
			continue
		}

		// Edges count as inside.
		if s.playfield.Contains(tr.X, tr.Y) {
			tracker.WasOnScreen = true
		}
		if !tracker.WasOnScreen {
			continue
		}

		if tr.X < s.playfield.MinX()-wrapHysteresis {
			tr.X += s.playfield.Width
		} else if tr.X > s.playfield.MaxX()+wrapHysteresis {
			tr.X -= s.playfield.Width
		}

		if tr.Y < s.playfield.MinY()-wrapHysteresis {
			tr.Y += s.playfield.Height
		} else if tr.Y > s.playfield.MaxY()+wrapHysteresis {
			tr.Y -= s.playfield.Height
		}
	}
}
