package ui

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
)

// Canvas places each child at its own Position with its desired size. The
// canvas itself desires no space. The root of every UserInterface is a
// Canvas.
type Canvas struct {
	Widget
}

func (c *Canvas) kind() NodeKind { return KindCanvas }

func (c *Canvas) MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2 {
	unbounded := graphics.Vec2{X: layout.Unbounded, Y: layout.Unbounded}
	for _, child := range c.children {
		ctx.Measure(child, unbounded)
	}
	return graphics.Vec2{}
}

func (c *Canvas) ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2 {
	for _, child := range c.children {
		var pos graphics.Vec2
		if n, ok := ctx.Node(child); ok {
			pos = n.AsWidget().Position()
		}
		ctx.Arrange(child, graphics.RectFromPosSize(pos, ctx.DesiredSize(child)))
	}
	return final
}

// CanvasBuilder builds a Canvas.
type CanvasBuilder struct {
	widgetBuilder *WidgetBuilder
}

// NewCanvasBuilder returns a builder for a Canvas.
func NewCanvasBuilder(wb *WidgetBuilder) *CanvasBuilder {
	return &CanvasBuilder{widgetBuilder: orDefault(wb)}
}

// Build adds the canvas to ui and returns its handle.
func (b *CanvasBuilder) Build(ui *UserInterface) Handle {
	return b.widgetBuilder.add(ui, &Canvas{Widget: b.widgetBuilder.Build()})
}
