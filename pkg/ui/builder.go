package ui

import (
	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
)

// WidgetBuilder collects the widget settings shared by every variant
// builder. Its methods chain:
//
//	img := ui.NewImageBuilder(ui.NewWidgetBuilder().
//		WithWidth(32).
//		WithMargin(graphics.Uniform(4))).
//		WithTexture(tex).
//		Build(u)
type WidgetBuilder struct {
	widget   Widget
	children []Handle
}

// NewWidgetBuilder returns a builder for a visible white widget with
// automatic size.
func NewWidgetBuilder() *WidgetBuilder {
	return &WidgetBuilder{widget: Widget{color: graphics.ColorWhite}}
}

func orDefault(wb *WidgetBuilder) *WidgetBuilder {
	if wb == nil {
		return NewWidgetBuilder()
	}
	return wb
}

func (b *WidgetBuilder) WithName(name string) *WidgetBuilder {
	b.widget.name = name
	return b
}

func (b *WidgetBuilder) WithWidth(v float32) *WidgetBuilder {
	b.widget.SetWidth(v)
	return b
}

func (b *WidgetBuilder) WithHeight(v float32) *WidgetBuilder {
	b.widget.SetHeight(v)
	return b
}

func (b *WidgetBuilder) WithMinSize(v graphics.Vec2) *WidgetBuilder {
	b.widget.SetMinSize(v)
	return b
}

func (b *WidgetBuilder) WithMaxSize(v graphics.Vec2) *WidgetBuilder {
	b.widget.SetMaxSize(v)
	return b
}

func (b *WidgetBuilder) WithMargin(m graphics.Thickness) *WidgetBuilder {
	b.widget.margin = layout.SanitizeThickness(m)
	return b
}

func (b *WidgetBuilder) WithHorizontalAlignment(a layout.HorizontalAlignment) *WidgetBuilder {
	b.widget.horizontalAlignment = a
	return b
}

func (b *WidgetBuilder) WithVerticalAlignment(a layout.VerticalAlignment) *WidgetBuilder {
	b.widget.verticalAlignment = a
	return b
}

func (b *WidgetBuilder) OnRow(row int) *WidgetBuilder {
	b.widget.row = row
	return b
}

func (b *WidgetBuilder) OnColumn(column int) *WidgetBuilder {
	b.widget.column = column
	return b
}

// WithPosition sets the position used when the parent is a Canvas.
func (b *WidgetBuilder) WithPosition(p graphics.Vec2) *WidgetBuilder {
	b.widget.position = p
	return b
}

func (b *WidgetBuilder) WithColor(c graphics.Color) *WidgetBuilder {
	b.widget.color = c
	return b
}

func (b *WidgetBuilder) WithVisibility(visible bool) *WidgetBuilder {
	b.widget.hidden = !visible
	return b
}

func (b *WidgetBuilder) WithEnabled(enabled bool) *WidgetBuilder {
	b.widget.disabled = !enabled
	return b
}

// WithChild appends a child. The child is moved under the built node.
func (b *WidgetBuilder) WithChild(h Handle) *WidgetBuilder {
	b.children = append(b.children, h)
	return b
}

// WithChildren appends children in order.
func (b *WidgetBuilder) WithChildren(hs ...Handle) *WidgetBuilder {
	b.children = append(b.children, hs...)
	return b
}

// Build returns the configured widget. The widget has no links; those are
// made when the node is added to a UserInterface.
func (b *WidgetBuilder) Build() Widget {
	w := b.widget
	w.parent = NoHandle()
	w.children = nil
	w.invalidate()
	return w
}

// add inserts n and links the collected children under it. A child that no
// longer resolves is reported and skipped. The children are consumed, so
// a builder reused for another node starts without any.
func (b *WidgetBuilder) add(ui *UserInterface, n Node) Handle {
	h := ui.AddNode(n)
	for _, child := range b.children {
		if err := ui.link(child, h); err != nil {
			errors.Report(err)
		}
	}
	b.children = nil
	return h
}
