package rendering

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/resource"
)

// fullQuad maps a rect's corners to the whole texture.
var fullQuad = [4]graphics.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// DrawingContext accumulates geometry and the commands that batch it.
//
// Push methods append triangles to the pending batch. Commit closes the
// batch as one command; the next push starts a new one. Batching is
// explicit so that consecutive primitives sharing a texture become one
// draw call while a texture change always starts a new command.
type DrawingContext struct {
	vertices  []Vertex
	triangles []Triangle
	commands  []Command
	// pending is the index of the first triangle not yet committed.
	pending int
}

// NewDrawingContext returns an empty context.
func NewDrawingContext() *DrawingContext {
	return &DrawingContext{}
}

// Clear drops all geometry and commands, keeping buffer capacity.
func (d *DrawingContext) Clear() {
	d.vertices = d.vertices[:0]
	d.triangles = d.triangles[:0]
	d.commands = d.commands[:0]
	d.pending = 0
}

func (d *DrawingContext) pushVertex(pos, uv graphics.Vec2, color graphics.Color) uint32 {
	d.vertices = append(d.vertices, Vertex{Pos: pos, TexCoord: uv, Color: color})
	return uint32(len(d.vertices) - 1)
}

func (d *DrawingContext) pushQuad(corners, uv [4]graphics.Vec2, color graphics.Color) {
	i0 := d.pushVertex(corners[0], uv[0], color)
	i1 := d.pushVertex(corners[1], uv[1], color)
	i2 := d.pushVertex(corners[2], uv[2], color)
	i3 := d.pushVertex(corners[3], uv[3], color)
	d.triangles = append(d.triangles, Triangle{i0, i1, i2}, Triangle{i0, i2, i3})
}

// PushRectFilled appends a filled rectangle. texCoords gives the texture
// coordinates of the top-left, top-right, bottom-right and bottom-left
// corners; nil maps the rect to the whole texture.
func (d *DrawingContext) PushRectFilled(rect graphics.Rect, texCoords *[4]graphics.Vec2, color graphics.Color) {
	uv := fullQuad
	if texCoords != nil {
		uv = *texCoords
	}
	d.pushQuad(rect.Corners(), uv, color)
}

// PushRect appends the outline of rect as four filled strips lying inside
// it, each as wide as the matching side of thickness. Zero sides are skipped.
func (d *DrawingContext) PushRect(rect graphics.Rect, thickness graphics.Thickness, color graphics.Color) {
	inner := rect.Deflate(thickness)
	strips := [4]graphics.Rect{
		{X: rect.X, Y: rect.Y, W: rect.W, H: thickness.Top},
		{X: rect.X, Y: rect.Bottom() - thickness.Bottom, W: rect.W, H: thickness.Bottom},
		{X: rect.X, Y: inner.Y, W: thickness.Left, H: inner.H},
		{X: rect.Right() - thickness.Right, Y: inner.Y, W: thickness.Right, H: inner.H},
	}
	for _, s := range strips {
		if s.IsEmpty() {
			continue
		}
		d.PushRectFilled(s, nil, color)
	}
}

// PushLine appends a line from a to b as a quad of the given thickness.
// Degenerate lines are skipped.
func (d *DrawingContext) PushLine(a, b graphics.Vec2, thickness float32, color graphics.Color) {
	dir := b.Sub(a).Normalize()
	if dir == (graphics.Vec2{}) || thickness <= 0 {
		return
	}
	n := dir.Perp().Scale(thickness * 0.5)
	corners := [4]graphics.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	d.pushQuad(corners, fullQuad, color)
}

// PushTriangle appends a single untextured triangle.
func (d *DrawingContext) PushTriangle(a, b, c graphics.Vec2, color graphics.Color) {
	i0 := d.pushVertex(a, graphics.Vec2{}, color)
	i1 := d.pushVertex(b, graphics.Vec2{}, color)
	i2 := d.pushVertex(c, graphics.Vec2{}, color)
	d.triangles = append(d.triangles, Triangle{i0, i1, i2})
}

// PendingTriangles returns the number of triangles pushed since the last
// commit.
func (d *DrawingContext) PendingTriangles() int {
	return len(d.triangles) - d.pending
}

// Commit closes the pending geometry into a new command tagged with kind
// and texture (nil for none). It reports false and emits nothing when no
// geometry is pending.
func (d *DrawingContext) Commit(kind CommandKind, texture *resource.Texture) bool {
	count := d.PendingTriangles()
	if count == 0 {
		return false
	}
	d.commands = append(d.commands, Command{
		Kind:          kind,
		Texture:       texture,
		StartTriangle: d.pending,
		TriangleCount: count,
	})
	d.pending = len(d.triangles)
	return true
}

// Commands returns the committed commands in paint order.
func (d *DrawingContext) Commands() []Command {
	return d.commands
}

// Vertices returns the shared vertex buffer.
func (d *DrawingContext) Vertices() []Vertex {
	return d.vertices
}

// Triangles returns the shared triangle buffer.
func (d *DrawingContext) Triangles() []Triangle {
	return d.triangles
}

// CommandTriangles returns the triangles covered by cmd.
func (d *DrawingContext) CommandTriangles(cmd *Command) []Triangle {
	return d.triangles[cmd.StartTriangle : cmd.StartTriangle+cmd.TriangleCount]
}
