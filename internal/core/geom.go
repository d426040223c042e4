// Package core provides the host-neutral contracts shared by the simulation
// and its platform hosts: input polling, the rendering surface, colours,
// geometry and the runtime configuration. It contains no terminal or window
// dependencies so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in pixel space used for collision tests.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether two boxes overlap using half-open intervals:
// boxes that only touch along an edge do not intersect. Boxes that share a
// left or top coordinate always overlap on that axis, even when degenerate.
func (r Rect) Intersects(other Rect) bool {
	if r.X < other.X && r.Right() <= other.X {
		return false
	}
	if r.X > other.X && other.Right() <= r.X {
		return false
	}
	if r.Y < other.Y && r.Bottom() <= other.Y {
		return false
	}
	if r.Y > other.Y && other.Bottom() <= r.Y {
		return false
	}
	return true
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
