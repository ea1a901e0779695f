package ui

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/rendering"
)

// Widget is the state shared by every node: layout inputs and results,
// color, visibility and the links to parent and children.
//
// The zero Widget is usable: automatic size, no min or max, visible and
// enabled. Setters that affect layout mark the widget dirty; the
// UserInterface invalidates its ancestors before the next layout pass.
type Widget struct {
	name string

	desiredSize         graphics.Vec2
	actualSize          graphics.Vec2
	actualLocalPosition graphics.Vec2
	screenPosition      graphics.Vec2

	width, height           float32
	fixedWidth, fixedHeight bool
	minSize                 graphics.Vec2
	maxSize                 graphics.Vec2
	hasMaxSize              bool
	margin                  graphics.Thickness
	horizontalAlignment     layout.HorizontalAlignment
	verticalAlignment       layout.VerticalAlignment
	row, column             int
	position                graphics.Vec2

	color    graphics.Color
	hidden   bool
	disabled bool

	owner    *UserInterface
	self     Handle
	parent   Handle
	children []Handle

	measureValid     bool
	arrangeValid     bool
	prevMeasure      graphics.Vec2
	prevArrange      graphics.Rect
	prevParentScreen graphics.Vec2
	dirty            bool
}

// AsWidget returns w. Variants embed Widget and inherit this method.
func (w *Widget) AsWidget() *Widget {
	return w
}

// MeasureOverride is the default measure: the per-axis maximum of the
// children's desired sizes measured against available. A childless widget
// desires zero, which min size and explicit size then raise.
func (w *Widget) MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2 {
	var size graphics.Vec2
	for _, child := range w.children {
		size = size.Max(ctx.Measure(child, available))
	}
	return size
}

// ArrangeOverride is the default arrange: every child gets the whole final
// rect and aligns itself inside it.
func (w *Widget) ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2 {
	rect := graphics.Rect{W: final.X, H: final.Y}
	for _, child := range w.children {
		ctx.Arrange(child, rect)
	}
	return final
}

// Draw draws nothing.
func (w *Widget) Draw(dc *rendering.DrawingContext) {}

// Update does nothing.
func (w *Widget) Update(dt float32) {}

func (w *Widget) invalidate() {
	w.measureValid = false
	w.arrangeValid = false
	w.dirty = true
}

// Name returns the widget name used by lookups and snapshots.
func (w *Widget) Name() string { return w.name }

// SetName sets the widget name.
func (w *Widget) SetName(name string) { w.name = name }

// DesiredSize returns the size computed by the last measure pass,
// margin included.
func (w *Widget) DesiredSize() graphics.Vec2 { return w.desiredSize }

// ActualSize returns the size assigned by the last arrange pass.
func (w *Widget) ActualSize() graphics.Vec2 { return w.actualSize }

// ActualLocalPosition returns the position relative to the parent.
func (w *Widget) ActualLocalPosition() graphics.Vec2 { return w.actualLocalPosition }

// ScreenPosition returns the position on the UI surface.
func (w *Widget) ScreenPosition() graphics.Vec2 { return w.screenPosition }

// ScreenBounds returns the rect on the UI surface. It is only meaningful
// after a layout pass has arranged the widget.
func (w *Widget) ScreenBounds() graphics.Rect {
	return graphics.RectFromPosSize(w.screenPosition, w.actualSize)
}

// Width returns the explicit width, or NaN when automatic.
func (w *Widget) Width() float32 {
	if !w.fixedWidth {
		return layout.Auto()
	}
	return w.width
}

// SetWidth sets an explicit width. NaN or a negative value restores
// automatic width.
func (w *Widget) SetWidth(v float32) {
	w.fixedWidth = !math32.IsNaN(v) && v >= 0
	w.width = v
	w.invalidate()
}

// Height returns the explicit height, or NaN when automatic.
func (w *Widget) Height() float32 {
	if !w.fixedHeight {
		return layout.Auto()
	}
	return w.height
}

// SetHeight sets an explicit height. NaN or a negative value restores
// automatic height.
func (w *Widget) SetHeight(v float32) {
	w.fixedHeight = !math32.IsNaN(v) && v >= 0
	w.height = v
	w.invalidate()
}

// MinSize returns the minimum size.
func (w *Widget) MinSize() graphics.Vec2 { return w.minSize }

// SetMinSize sets the minimum size. Negative components are treated as zero.
func (w *Widget) SetMinSize(v graphics.Vec2) {
	w.minSize = layout.SanitizeDesired(v)
	w.invalidate()
}

// MaxSize returns the maximum size; unset axes are +Inf.
func (w *Widget) MaxSize() graphics.Vec2 {
	if !w.hasMaxSize {
		return graphics.Vec2{X: layout.Unbounded, Y: layout.Unbounded}
	}
	return w.maxSize
}

// SetMaxSize sets the maximum size. Use layout.Unbounded for no limit.
func (w *Widget) SetMaxSize(v graphics.Vec2) {
	w.maxSize = layout.SanitizeAvailable(v)
	w.hasMaxSize = true
	w.invalidate()
}

// Margin returns the space kept around the widget.
func (w *Widget) Margin() graphics.Thickness { return w.margin }

// SetMargin sets the space kept around the widget. Negative, NaN and
// infinite sides are treated as zero.
func (w *Widget) SetMargin(m graphics.Thickness) {
	w.margin = layout.SanitizeThickness(m)
	w.invalidate()
}

// HorizontalAlignment returns the horizontal alignment.
func (w *Widget) HorizontalAlignment() layout.HorizontalAlignment { return w.horizontalAlignment }

// SetHorizontalAlignment sets the horizontal alignment.
func (w *Widget) SetHorizontalAlignment(a layout.HorizontalAlignment) {
	w.horizontalAlignment = a
	w.invalidate()
}

// VerticalAlignment returns the vertical alignment.
func (w *Widget) VerticalAlignment() layout.VerticalAlignment { return w.verticalAlignment }

// SetVerticalAlignment sets the vertical alignment.
func (w *Widget) SetVerticalAlignment(a layout.VerticalAlignment) {
	w.verticalAlignment = a
	w.invalidate()
}

// Row returns the grid row the widget occupies in a Grid parent.
func (w *Widget) Row() int { return w.row }

// SetRow sets the grid row.
func (w *Widget) SetRow(row int) {
	w.row = row
	w.invalidate()
}

// Column returns the grid column the widget occupies in a Grid parent.
func (w *Widget) Column() int { return w.column }

// SetColumn sets the grid column.
func (w *Widget) SetColumn(column int) {
	w.column = column
	w.invalidate()
}

// Position returns the position used by a Canvas parent.
func (w *Widget) Position() graphics.Vec2 { return w.position }

// SetPosition sets the position used by a Canvas parent.
func (w *Widget) SetPosition(p graphics.Vec2) {
	w.position = p
	w.invalidate()
}

// Color returns the widget color.
func (w *Widget) Color() graphics.Color { return w.color }

// SetColor sets the widget color. Color does not affect layout.
func (w *Widget) SetColor(c graphics.Color) { w.color = c }

// Visible reports whether the widget takes part in layout and drawing.
func (w *Widget) Visible() bool { return !w.hidden }

// SetVisibility shows or hides the widget and its subtree. Hidden widgets
// desire zero size and are not drawn.
func (w *Widget) SetVisibility(visible bool) {
	if w.hidden == !visible {
		return
	}
	w.hidden = !visible
	w.invalidate()
}

// Enabled reports whether the widget accepts interaction.
func (w *Widget) Enabled() bool { return !w.disabled }

// SetEnabled enables or disables the widget.
func (w *Widget) SetEnabled(enabled bool) { w.disabled = !enabled }

// Parent returns the parent handle, which may be stale or none.
func (w *Widget) Parent() Handle { return w.parent }

// Children returns a copy of the child handles in order.
func (w *Widget) Children() []Handle { return slices.Clone(w.children) }

// ChildCount returns the number of children.
func (w *Widget) ChildCount() int { return len(w.children) }

// NeedsLayout reports whether the widget changed since its last layout.
func (w *Widget) NeedsLayout() bool { return w.dirty || !w.measureValid || !w.arrangeValid }

// explicitSize returns the explicit width and height, NaN where automatic.
func (w *Widget) explicitSize() (float32, float32) {
	return w.Width(), w.Height()
}

func (w *Widget) removeChild(h Handle) {
	w.children = slices.DeleteFunc(w.children, func(c Handle) bool { return c == h })
}
