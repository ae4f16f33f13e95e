package common

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rect. Points on
// the outer edges count as inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX() && x <= r.MaxX() && y >= r.MinY() && y <= r.MaxY()
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
