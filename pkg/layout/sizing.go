// Package layout holds the policy math used by the measure and arrange
// passes: size sanitizing, alignment, stacking and grid track resolution,
// plus the PipelineOwner that tracks which nodes need layout.
package layout

import (
	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
)

// Unbounded is the available size used on an axis with no limit.
var Unbounded = math32.Inf(1)

// IsAuto reports whether an explicit dimension is unset (NaN).
func IsAuto(v float32) bool {
	return math32.IsNaN(v)
}

// Auto returns the value used for an unset explicit dimension.
func Auto() float32 {
	return math32.NaN()
}

// SanitizeAvailable clamps an available size offered to a node. Negative
// and NaN components become zero; +Inf is kept and means "unbounded".
func SanitizeAvailable(v graphics.Vec2) graphics.Vec2 {
	return graphics.Vec2{X: sanitizeAvailable(v.X), Y: sanitizeAvailable(v.Y)}
}

func sanitizeAvailable(f float32) float32 {
	if math32.IsNaN(f) || f < 0 {
		return 0
	}
	return f
}

// SanitizeDesired clamps a size produced by a node. Negative, NaN and
// infinite components become zero.
func SanitizeDesired(v graphics.Vec2) graphics.Vec2 {
	return graphics.Vec2{X: sanitizeDesired(v.X), Y: sanitizeDesired(v.Y)}
}

func sanitizeDesired(f float32) float32 {
	if math32.IsNaN(f) || math32.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// SanitizeThickness clamps per-side spacing such as margins and stroke
// widths. Negative, NaN and infinite sides become zero.
func SanitizeThickness(t graphics.Thickness) graphics.Thickness {
	return graphics.Thickness{
		Left:   sanitizeDesired(t.Left),
		Top:    sanitizeDesired(t.Top),
		Right:  sanitizeDesired(t.Right),
		Bottom: sanitizeDesired(t.Bottom),
	}
}

// Clamp limits v to [min, max] per axis. Max wins when min > max.
func Clamp(v, min, max graphics.Vec2) graphics.Vec2 {
	return graphics.Vec2{X: clamp(v.X, min.X, max.X), Y: clamp(v.Y, min.Y, max.Y)}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// ApplyExplicit replaces the components of v with the explicit width and
// height where those are set.
func ApplyExplicit(v graphics.Vec2, width, height float32) graphics.Vec2 {
	if !IsAuto(width) {
		v.X = width
	}
	if !IsAuto(height) {
		v.Y = height
	}
	return v
}

// Shrink subtracts amount from v, never going below zero. Unbounded axes
// stay unbounded.
func Shrink(v, amount graphics.Vec2) graphics.Vec2 {
	return graphics.Vec2{X: shrink(v.X, amount.X), Y: shrink(v.Y, amount.Y)}
}

func shrink(v, amount float32) float32 {
	if math32.IsInf(v, 1) {
		return v
	}
	return math32.Max(0, v-amount)
}
