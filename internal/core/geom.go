// Package core provides fundamental types and utilities shared by the simulation
// and the platform layer. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect represents an integer axis-aligned rectangle, used for terminal cells and
// for click hitboxes expressed in world units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) lies inside the rectangle, edges included.
// Hitboxes treat both edges as inside so a click on the border still counts.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Box is a floating-point axis-aligned bounding box in world units.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAt builds a box from its top-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// BoxAround builds a square box of half-size r centered on (cx, cy).
func BoxAround(cx, cy, r float64) Box {
	return Box{Left: cx - r, Top: cy - r, Right: cx + r, Bottom: cy + r}
}

// Width returns the horizontal extent.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// OverlapsX reports whether the open horizontal extents of two boxes overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.Right > other.Left && b.Left < other.Right
}

// OverlapsY reports whether the open vertical extents of two boxes overlap.
func (b Box) OverlapsY(other Box) bool {
	return b.Bottom > other.Top && b.Top < other.Bottom
}

// Intersects reports whether two boxes overlap with positive area.
func (b Box) Intersects(other Box) bool {
	return b.OverlapsX(other) && b.OverlapsY(other)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
