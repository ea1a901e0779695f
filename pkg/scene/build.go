package scene

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/resource"
	"github.com/go-drift/uicore/pkg/ui"
)

// builder turns validated specs into nodes. Parse errors cannot occur here.
type builder struct {
	ui       *ui.UserInterface
	textures map[string]*resource.Texture
}

func (b *builder) build(n *NodeSpec) ui.Handle {
	children := make([]ui.Handle, 0, len(n.Children))
	for i := range n.Children {
		children = append(children, b.build(&n.Children[i]))
	}
	wb := b.widget(n).WithChildren(children...)

	switch n.Kind {
	case "image":
		return ui.NewImageBuilder(wb).WithTexture(b.texture(n.Texture)).Build(b.ui)
	case "border":
		bb := ui.NewBorderBuilder(wb)
		if n.StrokeColor != "" {
			bb.WithStrokeColor(mustColor(n.StrokeColor))
		}
		if n.StrokeThickness != nil {
			bb.WithStrokeThickness(graphics.Thickness(*n.StrokeThickness))
		}
		return bb.Build(b.ui)
	case "stack":
		o, _ := parseOrientation(n.Orientation)
		return ui.NewStackPanelBuilder(wb).WithOrientation(o).Build(b.ui)
	case "grid":
		rows, _ := parseTracks(n.Rows)
		columns, _ := parseTracks(n.Columns)
		gb := ui.NewGridBuilder(wb).AddRows(rows...).AddColumns(columns...)
		if n.DrawBorder != "" {
			gb.DrawBorder(mustColor(n.DrawBorder))
		}
		return gb.Build(b.ui)
	default:
		return ui.NewCanvasBuilder(wb).Build(b.ui)
	}
}

func (b *builder) widget(n *NodeSpec) *ui.WidgetBuilder {
	wb := ui.NewWidgetBuilder().
		WithName(n.Name).
		WithMinSize(graphics.V2(n.MinWidth, n.MinHeight)).
		WithMargin(graphics.Thickness(n.Margin)).
		WithPosition(graphics.V2(n.X, n.Y)).
		OnRow(n.Row).
		OnColumn(n.Column)
	if n.Width != nil {
		wb.WithWidth(*n.Width)
	}
	if n.Height != nil {
		wb.WithHeight(*n.Height)
	}
	if n.MaxWidth != nil || n.MaxHeight != nil {
		maxSize := graphics.V2(layout.Unbounded, layout.Unbounded)
		if n.MaxWidth != nil {
			maxSize.X = *n.MaxWidth
		}
		if n.MaxHeight != nil {
			maxSize.Y = *n.MaxHeight
		}
		wb.WithMaxSize(maxSize)
	}
	if h, ok := layout.ParseHorizontalAlignment(n.HorizontalAlignment); ok {
		wb.WithHorizontalAlignment(h)
	}
	if v, ok := layout.ParseVerticalAlignment(n.VerticalAlignment); ok {
		wb.WithVerticalAlignment(v)
	}
	if n.Color != "" {
		wb.WithColor(mustColor(n.Color))
	}
	if n.Visible != nil {
		wb.WithVisibility(*n.Visible)
	}
	if n.Enabled != nil {
		wb.WithEnabled(*n.Enabled)
	}
	return wb
}

func (b *builder) texture(name string) *resource.Texture {
	if name == "" {
		return nil
	}
	if t, ok := b.textures[name]; ok {
		return t
	}
	t := resource.NewTexture(name)
	b.textures[name] = t
	return t
}

// mustColor parses a color already checked by validate.
func mustColor(s string) graphics.Color {
	c, _ := graphics.ParseColor(s)
	return c
}
