package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching_right_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"touching_bottom_edge", Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("Intersects is not symmetric for %+v", c.other)
			}
		})
	}
}

func TestRectBBRoundTrip(t *testing.T) {
	r := Rect{X: 3, Y: 4, Width: 5, Height: 6}
	if got := RectFromBB(r.BB()); got != r {
		t.Fatalf("RectFromBB(BB()) = %+v, want %+v", got, r)
	}
}

func TestRectCentered(t *testing.T) {
	r := RectCentered(10, 20, 4, 6)
	c := r.Center()
	if c.X != 10 || c.Y != 20 {
		t.Fatalf("center = %v, want (10,20)", c)
	}
	if r.Left() != 8 || r.Right() != 12 || r.Top() != 17 || r.Bottom() != 23 {
		t.Fatalf("unexpected edges %+v", r)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(7, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("clamp out of range")
	}
}
