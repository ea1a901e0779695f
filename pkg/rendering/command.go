// Package rendering implements the draw pipeline: nodes push geometry into
// a DrawingContext and commit it as ordered draw commands, which an
// external renderer replays.
//
// Command schema (SchemaVersion):
//
//   - Commands are replayed in slice order. Later commands paint over
//     earlier ones; nothing is sorted by depth or texture.
//   - Each command covers TriangleCount triangles starting at
//     StartTriangle in the context's Triangles buffer; triangle indices
//     address the shared Vertices buffer.
//   - Texture is nil for untextured geometry. Vertex colors always apply;
//     a textured command modulates the sampled texel by the vertex color.
//   - During UI traversal a node's own commands precede its children's,
//     and children follow their order in the parent.
package rendering

import (
	"fmt"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/resource"
)

// CommandKind tags what a command's geometry is for.
type CommandKind uint8

const (
	// Geometry is visible geometry to be rasterized.
	Geometry CommandKind = iota
	// Clip is geometry that defines a clip region for following commands.
	Clip
)

func (k CommandKind) String() string {
	switch k {
	case Geometry:
		return "geometry"
	case Clip:
		return "clip"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Vertex is a single geometry vertex.
type Vertex struct {
	Pos      graphics.Vec2
	TexCoord graphics.Vec2
	Color    graphics.Color
}

// Triangle holds three indices into a vertex buffer.
type Triangle [3]uint32

// Command is one batch of triangles sharing a kind and texture.
type Command struct {
	Kind          CommandKind
	Texture       *resource.Texture
	StartTriangle int
	TriangleCount int
}

// Textured reports whether the command samples a texture.
func (c *Command) Textured() bool {
	return c.Texture != nil
}

// TextureName returns the texture name or "" when untextured.
func (c *Command) TextureName() string {
	if c.Texture == nil {
		return ""
	}
	return c.Texture.Name()
}
