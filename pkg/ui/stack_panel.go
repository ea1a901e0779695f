package ui

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
)

// StackPanel places its children one after another along its orientation.
type StackPanel struct {
	Widget
	orientation layout.Orientation
}

func (s *StackPanel) kind() NodeKind { return KindStackPanel }

// Orientation returns the stacking direction.
func (s *StackPanel) Orientation() layout.Orientation { return s.orientation }

// SetOrientation sets the stacking direction.
func (s *StackPanel) SetOrientation(o layout.Orientation) {
	s.orientation = o
	s.invalidate()
}

// MeasureOverride gives every child unbounded space along the stacking axis.
func (s *StackPanel) MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2 {
	childAvailable := layout.StackChildAvailable(s.orientation, available)
	var total graphics.Vec2
	for _, child := range s.children {
		total = layout.StackAccumulate(s.orientation, total, ctx.Measure(child, childAvailable))
	}
	return total
}

func (s *StackPanel) ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2 {
	var cursor float32
	for _, child := range s.children {
		var rect graphics.Rect
		rect, cursor = layout.StackSlot(s.orientation, final, cursor, ctx.DesiredSize(child))
		ctx.Arrange(child, rect)
	}
	return final
}

// StackPanelBuilder builds a StackPanel.
type StackPanelBuilder struct {
	widgetBuilder *WidgetBuilder
	orientation   layout.Orientation
}

// NewStackPanelBuilder returns a builder for a vertical stack.
func NewStackPanelBuilder(wb *WidgetBuilder) *StackPanelBuilder {
	return &StackPanelBuilder{widgetBuilder: orDefault(wb), orientation: layout.Vertical}
}

// WithOrientation sets the stacking direction.
func (b *StackPanelBuilder) WithOrientation(o layout.Orientation) *StackPanelBuilder {
	b.orientation = o
	return b
}

// Build adds the stack panel to ui and returns its handle.
func (b *StackPanelBuilder) Build(ui *UserInterface) Handle {
	node := &StackPanel{Widget: b.widgetBuilder.Build(), orientation: b.orientation}
	return b.widgetBuilder.add(ui, node)
}
