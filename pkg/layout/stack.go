package layout

import (
	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
)

// StackChildAvailable returns the space offered to each child of a stack:
// unbounded along the stacking axis, the stack's own space across it.
func StackChildAvailable(o Orientation, available graphics.Vec2) graphics.Vec2 {
	if o == Horizontal {
		return graphics.Vec2{X: Unbounded, Y: available.Y}
	}
	return graphics.Vec2{X: available.X, Y: Unbounded}
}

// StackAccumulate adds a child's desired size to a running stack total:
// summed along the stacking axis, maximum across it.
func StackAccumulate(o Orientation, total, child graphics.Vec2) graphics.Vec2 {
	if o == Horizontal {
		return graphics.Vec2{X: total.X + child.X, Y: math32.Max(total.Y, child.Y)}
	}
	return graphics.Vec2{X: math32.Max(total.X, child.X), Y: total.Y + child.Y}
}

// StackSlot returns the rect for the next child of a stack whose final size
// is final, starting at cursor along the stacking axis, and the cursor for
// the child after it.
func StackSlot(o Orientation, final graphics.Vec2, cursor float32, desired graphics.Vec2) (graphics.Rect, float32) {
	if o == Horizontal {
		return graphics.Rect{X: cursor, Y: 0, W: desired.X, H: final.Y}, cursor + desired.X
	}
	return graphics.Rect{X: 0, Y: cursor, W: final.X, H: desired.Y}, cursor + desired.Y
}
