package ui

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/rendering"
)

// Border fills its bounds with the widget color, strokes its edges and
// insets its children by the stroke thickness.
type Border struct {
	Widget
	strokeColor     graphics.Color
	strokeThickness graphics.Thickness
}

func (b *Border) kind() NodeKind { return KindBorder }

// StrokeColor returns the edge color.
func (b *Border) StrokeColor() graphics.Color { return b.strokeColor }

// SetStrokeColor sets the edge color.
func (b *Border) SetStrokeColor(c graphics.Color) { b.strokeColor = c }

// StrokeThickness returns the per-side edge thickness.
func (b *Border) StrokeThickness() graphics.Thickness { return b.strokeThickness }

// SetStrokeThickness sets the per-side edge thickness.
func (b *Border) SetStrokeThickness(t graphics.Thickness) {
	b.strokeThickness = layout.SanitizeThickness(t)
	b.invalidate()
}

func (b *Border) MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2 {
	stroke := b.strokeThickness.Sum()
	inner := layout.Shrink(available, stroke)
	var size graphics.Vec2
	for _, child := range b.children {
		size = size.Max(ctx.Measure(child, inner))
	}
	return size.Add(stroke)
}

func (b *Border) ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2 {
	rect := graphics.Rect{W: final.X, H: final.Y}.Deflate(b.strokeThickness)
	for _, child := range b.children {
		ctx.Arrange(child, rect)
	}
	return final
}

// Draw emits the background and the four stroke strips as one command.
func (b *Border) Draw(dc *rendering.DrawingContext) {
	bounds := b.ScreenBounds()
	dc.PushRectFilled(bounds, nil, b.Color())
	dc.PushRect(bounds, b.strokeThickness, b.strokeColor)
	dc.Commit(rendering.Geometry, nil)
}

// BorderBuilder builds a Border.
type BorderBuilder struct {
	widgetBuilder   *WidgetBuilder
	strokeColor     graphics.Color
	strokeThickness graphics.Thickness
}

// NewBorderBuilder returns a builder with a one pixel black stroke.
func NewBorderBuilder(wb *WidgetBuilder) *BorderBuilder {
	return &BorderBuilder{
		widgetBuilder:   orDefault(wb),
		strokeColor:     graphics.ColorBlack,
		strokeThickness: graphics.Uniform(1),
	}
}

// WithStrokeColor sets the edge color.
func (b *BorderBuilder) WithStrokeColor(c graphics.Color) *BorderBuilder {
	b.strokeColor = c
	return b
}

// WithStrokeThickness sets the per-side edge thickness.
func (b *BorderBuilder) WithStrokeThickness(t graphics.Thickness) *BorderBuilder {
	b.strokeThickness = t
	return b
}

// Build adds the border to ui and returns its handle.
func (b *BorderBuilder) Build(ui *UserInterface) Handle {
	node := &Border{
		Widget:          b.widgetBuilder.Build(),
		strokeColor:     b.strokeColor,
		strokeThickness: layout.SanitizeThickness(b.strokeThickness),
	}
	return b.widgetBuilder.add(ui, node)
}
