package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in screen pixels. X, Y is the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectFromBB converts a chipmunk bounding box into a Rect. B is treated as
// the top edge since screen Y grows downward.
func RectFromBB(bb cp.BB) Rect {
	return Rect{X: bb.L, Y: bb.B, Width: bb.R - bb.L, Height: bb.T - bb.B}
}

// RectCentered returns a w x h rect centered on (cx, cy).
func RectCentered(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the interiors overlap. Rects that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// BB returns the chipmunk bounding box covering r.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.Width, T: r.Y + r.Height}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
