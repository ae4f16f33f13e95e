package systems

import (
	"testing"

	"github.com/milk9111/astrodrift/common"
	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

func newWrapWorld(t *testing.T, x, y float64, seen bool) (*ecs.World, *components.Transform, *components.WrapTracker) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	tr := &components.Transform{X: x, Y: y}
	tracker := &components.WrapTracker{WasOnScreen: seen}
	w.SetTransform(e, tr)
	w.SetWrapTracker(e, tracker)
	return w, tr, tracker
}

func TestWrapSeenEntities(t *testing.T) {
	field := common.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	cases := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside_untouched", 50, 50, 50, 50},
		{"on_left_edge", 0, 50, 0, 50},
		{"on_right_edge", 100, 50, 100, 50},
		{"just_left_within_margin", -2, 50, -2, 50},
		{"just_left_past_margin", -4, 50, 96, 50},
		{"just_right_past_margin", 104, 50, 4, 50},
		{"above_past_margin", 50, -3.5, 50, 96.5},
		{"below_past_margin", 50, 104, 50, 4},
		{"corner_wraps_both_axes", -5, 106, 95, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, tr, _ := newWrapWorld(t, c.x, c.y, true)
			s := NewPlayfieldWrapSystem()
			s.SetPlayfield(field)

			s.Update(w)

			if tr.X != c.wantX || tr.Y != c.wantY {
				t.Fatalf("(%v, %v) wrapped to (%v, %v), want (%v, %v)",
					c.x, c.y, tr.X, tr.Y, c.wantX, c.wantY)
			}
		})
	}
}

func TestWrapIgnoresNeverSeenEntities(t *testing.T) {
	field := common.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	w, tr, tracker := newWrapWorld(t, -40, 50, false)
	s := NewPlayfieldWrapSystem()
	s.SetPlayfield(field)

	for i := 0; i < 10; i++ {
		s.Update(w)
	}

	if tr.X != -40 || tr.Y != 50 {
		t.Fatalf("never-seen entity moved to (%v, %v)", tr.X, tr.Y)
	}
	if tracker.WasOnScreen {
		t.Fatalf("tracker flipped without entering the playfield")
	}
}

func TestWrapSeenFlagLatches(t *testing.T) {
	field := common.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	w, tr, tracker := newWrapWorld(t, -40, 50, false)
	s := NewPlayfieldWrapSystem()
	s.SetPlayfield(field)

	// drift in, then leave again
	tr.X = 50
	s.Update(w)
	if !tracker.WasOnScreen {
		t.Fatalf("entering the playfield should set the flag")
	}

	tr.X = -40
	s.Update(w)
	if !tracker.WasOnScreen {
		t.Fatalf("flag must stay set after leaving")
	}
	if tr.X != 60 {
		t.Fatalf("seen entity at -40 should wrap to 60, got %v", tr.X)
	}
}

func TestWrapEdgeCountsAsInside(t *testing.T) {
	field := common.Rect{X: 0, Y: 0, Width: 100, Height: 100}

	w, _, tracker := newWrapWorld(t, 100, 0, false)
	s := NewPlayfieldWrapSystem()
	s.SetPlayfield(field)

	s.Update(w)

	if !tracker.WasOnScreen {
		t.Fatalf("a position on the boundary should count as on screen")
	}
}

func TestWrapWithoutPlayfieldIsNoop(t *testing.T) {
	w, tr, _ := newWrapWorld(t, -500, -500, true)
	s := NewPlayfieldWrapSystem()

	s.Update(w)

	if tr.X != -500 || tr.Y != -500 {
		t.Fatalf("no playfield set, entity moved to (%v, %v)", tr.X, tr.Y)
	}

	s.SetPlayfield(common.Rect{})
	s.Update(w)
	if tr.X != -500 || tr.Y != -500 {
		t.Fatalf("empty playfield, entity moved to (%v, %v)", tr.X, tr.Y)
	}
}

func TestWrapOffsetPlayfield(t *testing.T) {
	field := common.Rect{X: 200, Y: 100, Width: 400, Height: 300}

	w, tr, _ := newWrapWorld(t, 196, 250, true)
	s := NewPlayfieldWrapSystem()
	s.SetPlayfield(field)

	s.Update(w)

	if tr.X != 596 || tr.Y != 250 {
		t.Fatalf("offset field wrap got (%v, %v), want (596, 250)", tr.X, tr.Y)
	}
}
