package common

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 60, 45, true},
		{"min_corner", 10, 20, true},
		{"max_corner", 110, 70, true},
		{"left_of", 9.9, 45, false},
		{"below", 60, 70.1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.x, c.y); got != c.want {
				t.Fatalf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if (Rect{Width: 10, Height: 10}).Empty() {
		t.Fatalf("10x10 rect should not be empty")
	}
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Fatalf("zero-width rect should be empty")
	}
	if !(Rect{Width: 10, Height: -1}).Empty() {
		t.Fatalf("negative-height rect should be empty")
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Fatalf("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 0, Width: 5, Height: 5}) {
		t.Fatalf("disjoint rects should not intersect")
	}
	// touching edges do not overlap
	if a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Fatalf("edge-touching rects should not intersect")
	}
}

func TestClampAndLerp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5, 0, 3) = %v", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1, 0, 3) = %v", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Fatalf("Lerp(10, 20, 0.5) = %v", got)
	}
}
