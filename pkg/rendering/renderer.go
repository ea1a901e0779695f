package rendering

import (
	"fmt"

	"github.com/go-drift/uicore/pkg/errors"
)

// Renderer consumes draw commands. Implementations live outside the core;
// the core performs no GPU or platform calls.
type Renderer interface {
	// DrawCommand draws one command. triangles are the command's own
	// triangles; their indices address vertices.
	DrawCommand(cmd *Command, vertices []Vertex, triangles []Triangle) error
}

// Replay hands every committed command to r in paint order. It stops at the
// first failure and returns it as a KindDraw error naming the command index.
// Uncommitted geometry is not replayed.
func (d *DrawingContext) Replay(r Renderer) error {
	for i := range d.commands {
		cmd := &d.commands[i]
		if cmd.Kind != Geometry && cmd.Kind != Clip {
			return errors.New("rendering.Replay", errors.KindDraw,
				fmt.Errorf("command %d: unknown kind %s", i, cmd.Kind))
		}
		if err := r.DrawCommand(cmd, d.vertices, d.CommandTriangles(cmd)); err != nil {
			return errors.New("rendering.Replay", errors.KindDraw,
				fmt.Errorf("command %d: %w", i, err))
		}
	}
	return nil
}
