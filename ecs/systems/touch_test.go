package systems

import (
	"testing"

	"github.com/milk9111/astrodrift/ecs"
	"github.com/milk9111/astrodrift/ecs/components"
)

func newTouchWorld(t *testing.T) (*ecs.World, *components.InputState) {
	t.Helper()
	w := ecs.NewWorld()
	e := w.CreateEntity()
	in := &components.InputState{}
	w.SetInput(e, in)
	return w, in
}

func addTouchable(w *ecs.World, x, y, width, height float64, onTouch func()) ecs.Entity {
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: x, Y: y})
	w.SetTouchable(e, &components.Touchable{Width: width, Height: height, OnTouch: onTouch})
	return e
}

func TestTouchFiresOncePerPress(t *testing.T) {
	w, in := newTouchWorld(t)
	s := NewTouchSystem()

	fired := 0
	addTouchable(w, 50, 50, 40, 40, func() { fired++ })

	// press begins inside the rect
	in.PressStarted = true
	in.PressX, in.PressY = 50, 50
	s.Update(w)
	if fired != 1 {
		t.Fatalf("expected 1 callback after press, got %d", fired)
	}

	// held and moving: no edge, no callback
	in.PressStarted = false
	for i := 0; i < 5; i++ {
		in.PressX += 3
		s.Update(w)
	}
	if fired != 1 {
		t.Fatalf("movement after press fired %d extra callbacks", fired-1)
	}

	// a second press fires again
	in.PressStarted = true
	in.PressX, in.PressY = 55, 45
	s.Update(w)
	if fired != 2 {
		t.Fatalf("expected 2 callbacks after second press, got %d", fired)
	}
}

func TestTouchHitTest(t *testing.T) {
	cases := []struct {
		name     string
		px, py   float64
		wantFire bool
	}{
		{"center", 100, 100, true},
		{"on_edge", 120, 100, true},
		{"outside_x", 121, 100, false},
		{"outside_y", 100, 131, false},
		{"far_away", 0, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, in := newTouchWorld(t)
			s := NewTouchSystem()

			fired := false
			addTouchable(w, 100, 100, 40, 60, func() { fired = true })

			in.PressStarted = true
			in.PressX, in.PressY = c.px, c.py
			s.Update(w)

			if fired != c.wantFire {
				t.Fatalf("press at (%v, %v): fired=%v, want %v", c.px, c.py, fired, c.wantFire)
			}
		})
	}
}

func TestTouchNilCallbackIsInert(t *testing.T) {
	w, in := newTouchWorld(t)
	s := NewTouchSystem()

	addTouchable(w, 50, 50, 40, 40, nil)

	in.PressStarted = true
	in.PressX, in.PressY = 50, 50
	s.Update(w) // must not panic
}

func TestTouchCallbackReplaceable(t *testing.T) {
	w, in := newTouchWorld(t)
	s := NewTouchSystem()

	var got string
	e := addTouchable(w, 50, 50, 40, 40, func() { got = "first" })

	in.PressStarted = true
	in.PressX, in.PressY = 50, 50
	s.Update(w)
	if got != "first" {
		t.Fatalf("expected first callback, got %q", got)
	}

	w.GetTouchable(e).OnTouch = func() { got = "second" }
	s.Update(w)
	if got != "second" {
		t.Fatalf("expected replacement callback, got %q", got)
	}
}

func TestTouchOffsetRect(t *testing.T) {
	w, in := newTouchWorld(t)
	s := NewTouchSystem()

	fired := false
	e := w.CreateEntity()
	w.SetTransform(e, &components.Transform{X: 100, Y: 100})
	w.SetTouchable(e, &components.Touchable{
		Width: 20, Height: 20,
		OffsetX: 50, OffsetY: -30,
		OnTouch: func() { fired = true },
	})

	in.PressStarted = true
	in.PressX, in.PressY = 150, 70
	s.Update(w)
	if !fired {
		t.Fatalf("press inside the offset rect should fire")
	}

	fired = false
	in.PressX, in.PressY = 100, 100
	s.Update(w)
	if fired {
		t.Fatalf("press on the transform but outside the offset rect fired")
	}
}
