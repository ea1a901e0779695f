package testing

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/rendering"
)

// DisplayOp is a serialized draw command.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingRenderer implements rendering.Renderer and records every command
// it receives as a DisplayOp. FailAt makes the n-th command (1-based) fail.
type RecordingRenderer struct {
	Ops    []DisplayOp
	FailAt int
}

// DrawCommand records cmd.
func (r *RecordingRenderer) DrawCommand(cmd *rendering.Command, vertices []rendering.Vertex, triangles []rendering.Triangle) error {
	if r.FailAt > 0 && len(r.Ops)+1 == r.FailAt {
		return fmt.Errorf("recording renderer: command %d rejected", r.FailAt)
	}
	r.Ops = append(r.Ops, serializeCommand(cmd, vertices, triangles))
	return nil
}

// serializeCommand records the kind, texture, triangle count, the bounding
// rect of the command's vertices and the color of its first vertex.
func serializeCommand(cmd *rendering.Command, vertices []rendering.Vertex, triangles []rendering.Triangle) DisplayOp {
	params := sortedMap("triangles", len(triangles))
	if cmd.Textured() {
		params["texture"] = cmd.TextureName()
	}
	if bounds, ok := triangleBounds(vertices, triangles); ok {
		params["bounds"] = serializeRect(bounds)
	}
	if len(triangles) > 0 {
		params["color"] = serializeColor(vertices[triangles[0][0]].Color)
	}
	return DisplayOp{Op: cmd.Kind.String(), Params: params}
}

func triangleBounds(vertices []rendering.Vertex, triangles []rendering.Triangle) (graphics.Rect, bool) {
	if len(triangles) == 0 {
		return graphics.Rect{}, false
	}
	minX, minY := math32.Inf(1), math32.Inf(1)
	maxX, maxY := math32.Inf(-1), math32.Inf(-1)
	for _, tri := range triangles {
		for _, idx := range tri {
			p := vertices[idx].Pos
			minX, minY = math32.Min(minX, p.X), math32.Min(minY, p.Y)
			maxX, maxY = math32.Max(maxX, p.X), math32.Max(maxY, p.Y)
		}
	}
	return graphics.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.X),
		"top", round2(r.Y),
		"right", round2(r.Right()),
		"bottom", round2(r.Bottom()),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds to 2 decimal places.
func round2(f float32) float64 {
	return math.Round(float64(f)*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. The snapshot
// encoder writes map keys in sorted order.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
