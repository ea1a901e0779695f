// Package graphics defines the value types shared by layout and drawing:
// vectors, rectangles, per-side thickness and packed colors.
package graphics

import "github.com/chewxy/math32"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Vec2 is a 2D point, offset or size in surface units.
type Vec2 struct {
	X float32
	Y float32
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Max returns the per-axis maximum of v and o.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: math32.Max(v.X, o.X), Y: math32.Max(v.Y, o.Y)}
}

// Min returns the per-axis minimum of v and o.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: math32.Min(v.X, o.X), Y: math32.Min(v.Y, o.Y)}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l <= epsilon {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Perp returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// ApproxEqual reports whether v and o differ by less than epsilon per axis.
func (v Vec2) ApproxEqual(o Vec2) bool {
	return floatEqual(v.X, o.X) && floatEqual(v.Y, o.Y)
}

// IsFinite reports whether both components are finite numbers.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// floatEqual returns true if two float32 values are approximately equal.
func floatEqual(a, b float32) bool {
	return math32.Abs(a-b) <= epsilon
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// RectFromPosSize constructs a Rect from a position and a size.
func RectFromPosSize(pos, size Vec2) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Position returns the top-left corner.
func (r Rect) Position() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Corners returns the corners in order: top-left, top-right, bottom-right,
// bottom-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns a new rect offset by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Deflate shrinks r by t on each side. The result never has negative size.
func (r Rect) Deflate(t Thickness) Rect {
	return Rect{
		X: r.X + t.Left,
		Y: r.Y + t.Top,
		W: math32.Max(0, r.W-t.Horizontal()),
		H: math32.Max(0, r.H-t.Vertical()),
	}
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math32.Max(r.X, other.X)
	top := math32.Max(r.Y, other.Y)
	right := math32.Min(r.Right(), other.Right())
	bottom := math32.Min(r.Bottom(), other.Bottom())
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	left := math32.Min(r.X, other.X)
	top := math32.Min(r.Y, other.Y)
	right := math32.Max(r.Right(), other.Right())
	bottom := math32.Max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Thickness holds a per-side distance, used for margins and borders.
type Thickness struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Uniform returns a Thickness with the same value on every side.
func Uniform(v float32) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (t Thickness) Horizontal() float32 {
	return t.Left + t.Right
}

// Vertical returns Top + Bottom.
func (t Thickness) Vertical() float32 {
	return t.Top + t.Bottom
}

// Sum returns the total horizontal and vertical thickness as a vector.
func (t Thickness) Sum() Vec2 {
	return Vec2{X: t.Horizontal(), Y: t.Vertical()}
}

// Offset returns the top-left displacement (Left, Top).
func (t Thickness) Offset() Vec2 {
	return Vec2{X: t.Left, Y: t.Top}
}
