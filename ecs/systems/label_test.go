package systems

import (
	"math"
	"testing"
)

func TestLayoutOffsets(t *testing.T) {
	cases := []struct {
		name       string
		n          int
		lineHeight float64
		want       []float64
	}{
		{"empty", 0, 30, nil},
		{"negative", -2, 30, nil},
		{"single_line_centered", 1, 30, []float64{0}},
		{"two_lines", 2, 30, []float64{15, -15}},
		{"three_lines", 3, 30, []float64{30, 0, -30}},
		{"four_lines_custom_height", 4, 10, []float64{15, 5, -5, -15}},
		{"zero_height_collapses", 3, 0, []float64{0, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LayoutOffsets(c.n, c.lineHeight)
			if len(got) != len(c.want) {
				t.Fatalf("got %d offsets, want %d", len(got), len(c.want))
			}
			for i := range got {
				if math.Abs(got[i]-c.want[i]) > 1e-9 {
					t.Fatalf("offset[%d] = %v, want %v", i, got[i], c.want[i])
				}
			}
		})
	}
}

func TestLayoutOffsetsInvariants(t *testing.T) {
	for n := 1; n <= 7; n++ {
		offsets := LayoutOffsets(n, 24)

		// consecutive lines are exactly one line height apart, downward
		for i := 1; i < n; i++ {
			if diff := offsets[i-1] - offsets[i]; math.Abs(diff-24) > 1e-9 {
				t.Fatalf("n=%d: line spacing %v, want 24", n, diff)
			}
		}

		// block midpoint sits on the anchor
		mid := (offsets[0] + offsets[n-1]) / 2
		if math.Abs(mid) > 1e-9 {
			t.Fatalf("n=%d: midpoint %v, want 0", n, mid)
		}
	}
}
