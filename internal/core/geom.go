// Package core provides the geometry and drawing primitives shared by the
// game logic and its hosts. It has no UI dependencies so game code stays
// pure and testable.
package core

// Point is an integer coordinate pair in play-area units.
type Point struct {
	X, Y int
}

// Size is a width/height pair in play-area units.
type Size struct {
	W, H int
}

// Known reports whether both dimensions carry a usable measurement.
// Hosts report 0 or 1 before their layout has been computed.
func (s Size) Known() bool {
	return s.W > 1 && s.H > 1
}

// Rect represents an axis-aligned box used for layout and hit testing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt places a box of the given size with its top-left corner at p.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Offset returns the rectangle translated by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Centered returns a box of size s centered inside r.
// Odd remainders go to the right and bottom.
func (r Rect) Centered(s Size) Rect {
	return Rect{
		X: r.X + (r.W-s.W)/2,
		Y: r.Y + (r.H-s.H)/2,
		W: s.W,
		H: s.H,
	}
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
