package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsInclusive(t *testing.T) {
	// Shop hitbox for the first item: x in [100, 300], y in [100, 140]
	r := NewRect(100, 100, 200, 40)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 150, 120, true},
		{"top-left corner", 100, 100, true},
		{"bottom-right corner", 300, 140, true},
		{"left of box", 99, 120, false},
		{"below box", 150, 141, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(50, 300, 20)

	if b.Left != 30 || b.Right != 70 || b.Top != 280 || b.Bottom != 320 {
		t.Errorf("BoxAround(50, 300, 20) = %+v", b)
	}
	if b.Width() != 40 || b.Height() != 40 {
		t.Errorf("Expected 40x40 box, got %vx%v", b.Width(), b.Height())
	}
}

func TestBoxIntersects(t *testing.T) {
	a := BoxAt(0, 0, 10, 10)

	if !a.Intersects(BoxAt(9.5, 9.5, 10, 10)) {
		t.Error("Boxes sharing a corner region should intersect")
	}
	if a.Intersects(BoxAt(10, 0, 10, 10)) {
		t.Error("Touching edges should not count as an intersection")
	}
	if !a.OverlapsX(BoxAt(5, 100, 10, 10)) {
		t.Error("Horizontal extents should overlap regardless of vertical position")
	}
	if a.OverlapsY(BoxAt(5, 100, 10, 10)) {
		t.Error("Vertical extents should not overlap")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should keep in-range values")
	}
	if Clamp(-3, 0, 10) != 0 {
		t.Error("Clamp should raise values to the minimum")
	}
	if Clamp(30, 0, 10) != 10 {
		t.Error("Clamp should lower values to the maximum")
	}
}

func TestAbsFAndMax(t *testing.T) {
	if AbsF(-2.5) != 2.5 || AbsF(1.5) != 1.5 {
		t.Error("AbsF returned wrong magnitude")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max returned wrong value")
	}
}
