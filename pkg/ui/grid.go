package ui

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/rendering"
)

// Grid places children in cells chosen by their Row and Column. Indices
// past the last track land in the last track. A grid without rows or
// columns behaves as if it had one stretch track on that axis.
type Grid struct {
	Widget
	rows, columns []layout.GridDimension
	drawBorder    bool
	borderColor   graphics.Color

	// per-track content extents from the last measure
	rowContent, columnContent []float32
	// per-track extents from the last arrange
	rowExtents, columnExtents []float32
}

func (g *Grid) kind() NodeKind { return KindGrid }

var defaultTracks = []layout.GridDimension{layout.Stretch()}

func tracksOrDefault(t []layout.GridDimension) []layout.GridDimension {
	if len(t) == 0 {
		return defaultTracks
	}
	return t
}

// Rows returns a copy of the row definitions.
func (g *Grid) Rows() []layout.GridDimension { return slices.Clone(g.rows) }

// Columns returns a copy of the column definitions.
func (g *Grid) Columns() []layout.GridDimension { return slices.Clone(g.columns) }

// SetRows replaces the row definitions.
func (g *Grid) SetRows(rows []layout.GridDimension) {
	g.rows = slices.Clone(rows)
	g.invalidate()
}

// SetColumns replaces the column definitions.
func (g *Grid) SetColumns(columns []layout.GridDimension) {
	g.columns = slices.Clone(columns)
	g.invalidate()
}

// RowExtents returns the row heights from the last arrange.
func (g *Grid) RowExtents() []float32 { return slices.Clone(g.rowExtents) }

// ColumnExtents returns the column widths from the last arrange.
func (g *Grid) ColumnExtents() []float32 { return slices.Clone(g.columnExtents) }

func trackAvailable(t layout.GridDimension, share float32) float32 {
	switch t.Mode {
	case layout.SizeStrict:
		return t.Size
	case layout.SizeAuto:
		return layout.Unbounded
	default:
		return share
	}
}

func (g *Grid) cell(ctx LayoutContext, child Handle, rows, columns int) (row, column int) {
	n, ok := ctx.Node(child)
	if !ok {
		return 0, 0
	}
	w := n.AsWidget()
	return layout.TrackIndex(w.Row(), rows), layout.TrackIndex(w.Column(), columns)
}

// MeasureOverride measures each child against its cell. Strict tracks offer
// their size, auto tracks offer unbounded space and stretch tracks offer an
// equal share of what strict tracks leave.
func (g *Grid) MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2 {
	rows, columns := tracksOrDefault(g.rows), tracksOrDefault(g.columns)
	rowShare := layout.StretchShare(rows, nil, available.Y)
	columnShare := layout.StretchShare(columns, nil, available.X)

	g.rowContent = make([]float32, len(rows))
	g.columnContent = make([]float32, len(columns))
	for _, child := range g.children {
		r, c := g.cell(ctx, child, len(rows), len(columns))
		cellAvailable := graphics.Vec2{
			X: trackAvailable(columns[c], columnShare),
			Y: trackAvailable(rows[r], rowShare),
		}
		desired := ctx.Measure(child, cellAvailable)
		g.columnContent[c] = math32.Max(g.columnContent[c], desired.X)
		g.rowContent[r] = math32.Max(g.rowContent[r], desired.Y)
	}

	return graphics.Vec2{
		X: sum(layout.ResolveTracks(columns, g.columnContent, layout.Unbounded)),
		Y: sum(layout.ResolveTracks(rows, g.rowContent, layout.Unbounded)),
	}
}

func (g *Grid) ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2 {
	rows, columns := tracksOrDefault(g.rows), tracksOrDefault(g.columns)
	g.rowExtents = layout.ResolveTracks(rows, g.rowContent, final.Y)
	g.columnExtents = layout.ResolveTracks(columns, g.columnContent, final.X)
	rowOffsets := layout.TrackOffsets(g.rowExtents)
	columnOffsets := layout.TrackOffsets(g.columnExtents)

	for _, child := range g.children {
		r, c := g.cell(ctx, child, len(rows), len(columns))
		ctx.Arrange(child, graphics.Rect{
			X: columnOffsets[c],
			Y: rowOffsets[r],
			W: g.columnExtents[c],
			H: g.rowExtents[r],
		})
	}
	return final
}

// Draw outlines every cell when the border is enabled.
func (g *Grid) Draw(dc *rendering.DrawingContext) {
	if !g.drawBorder {
		return
	}
	bounds := g.ScreenBounds()
	dc.PushRect(bounds, graphics.Uniform(1), g.borderColor)
	x := bounds.X
	for _, w := range g.columnExtents[:max(0, len(g.columnExtents)-1)] {
		x += w
		dc.PushLine(graphics.V2(x, bounds.Y), graphics.V2(x, bounds.Bottom()), 1, g.borderColor)
	}
	y := bounds.Y
	for _, h := range g.rowExtents[:max(0, len(g.rowExtents)-1)] {
		y += h
		dc.PushLine(graphics.V2(bounds.X, y), graphics.V2(bounds.Right(), y), 1, g.borderColor)
	}
	dc.Commit(rendering.Geometry, nil)
}

func sum(v []float32) float32 {
	var s float32
	for _, f := range v {
		s += f
	}
	return s
}

// GridBuilder builds a Grid.
type GridBuilder struct {
	widgetBuilder *WidgetBuilder
	rows, columns []layout.GridDimension
	drawBorder    bool
	borderColor   graphics.Color
}

// NewGridBuilder returns a builder for a Grid.
func NewGridBuilder(wb *WidgetBuilder) *GridBuilder {
	return &GridBuilder{widgetBuilder: orDefault(wb), borderColor: graphics.ColorBlack}
}

// AddRow appends a row definition.
func (b *GridBuilder) AddRow(d layout.GridDimension) *GridBuilder {
	b.rows = append(b.rows, d)
	return b
}

// AddColumn appends a column definition.
func (b *GridBuilder) AddColumn(d layout.GridDimension) *GridBuilder {
	b.columns = append(b.columns, d)
	return b
}

// AddRows appends row definitions.
func (b *GridBuilder) AddRows(d ...layout.GridDimension) *GridBuilder {
	b.rows = append(b.rows, d...)
	return b
}

// AddColumns appends column definitions.
func (b *GridBuilder) AddColumns(d ...layout.GridDimension) *GridBuilder {
	b.columns = append(b.columns, d...)
	return b
}

// DrawBorder enables cell outlines in the given color.
func (b *GridBuilder) DrawBorder(c graphics.Color) *GridBuilder {
	b.drawBorder = true
	b.borderColor = c
	return b
}

// Build adds the grid to ui and returns its handle.
func (b *GridBuilder) Build(ui *UserInterface) Handle {
	node := &Grid{
		Widget:      b.widgetBuilder.Build(),
		rows:        slices.Clone(b.rows),
		columns:     slices.Clone(b.columns),
		drawBorder:  b.drawBorder,
		borderColor: b.borderColor,
	}
	return b.widgetBuilder.add(ui, node)
}
