package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/rendering"
	"github.com/go-drift/uicore/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:    "frame",
		Summary: "Run one frame of a scene and print its draw commands",
		Details: `Build a scene, run one update, layout and draw pass, and print the
draw commands in paint order.

Each command lists its kind, texture, triangle count and the bounding
rect of its vertices. With --json the commands are printed together
with the frame stats and the schema version.

Settings are read from uicore.yaml in the scene's directory or the
nearest parent directory, or from the directory given by --config.`,
		Usage: "uicore frame <scene.yaml> [--config DIR] [--width W] [--height H] [--json]",
		Examples: []string{
			"uicore frame scene.yaml",
			"uicore frame scene.yaml --json --width 1280 --height 720",
		},
		Run: runFrame,
	})
}

// commandInfo is the printed form of a draw command.
type commandInfo struct {
	Index     int           `json:"index"`
	Kind      string        `json:"kind"`
	Texture   string        `json:"texture,omitempty"`
	Triangles int           `json:"triangles"`
	Bounds    graphics.Rect `json:"bounds"`
}

// frameReport is the --json output.
type frameReport struct {
	Schema   string        `json:"schema"`
	Screen   graphics.Vec2 `json:"screen"`
	Stats    ui.FrameStats `json:"stats"`
	Textures []string      `json:"textures,omitempty"`
	Commands []commandInfo `json:"commands"`
}

// collector is a rendering.Renderer that keeps what it is sent.
type collector struct {
	commands []commandInfo
}

func (c *collector) DrawCommand(cmd *rendering.Command, vertices []rendering.Vertex, triangles []rendering.Triangle) error {
	var bounds graphics.Rect
	for i, tri := range triangles {
		for j, idx := range tri {
			r := graphics.RectFromPosSize(vertices[idx].Pos, graphics.Vec2{})
			if i == 0 && j == 0 {
				bounds = r
				continue
			}
			bounds = bounds.Union(r)
		}
	}
	c.commands = append(c.commands, commandInfo{
		Index:     len(c.commands),
		Kind:      cmd.Kind.String(),
		Texture:   cmd.TextureName(),
		Triangles: cmd.TriangleCount,
		Bounds:    bounds,
	})
	return nil
}

func runFrame(args []string) error {
	opts, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	sess, err := openSession(opts)
	if err != nil {
		return err
	}

	dc := sess.ui.Frame(0)
	var c collector
	if err := dc.Replay(&c); err != nil {
		return err
	}

	if opts.json {
		return writeJSON(stdout, frameReport{
			Schema:   sess.cfg.Schema,
			Screen:   sess.ui.ScreenSize(),
			Stats:    sess.ui.LastFrame(),
			Textures: textureNames(sess),
			Commands: c.commands,
		})
	}

	stats := sess.ui.LastFrame()
	fmt.Fprintf(stdout, "%d nodes, %d commands, %d triangles\n", stats.Nodes, stats.Commands, stats.Triangles)
	for _, cmd := range c.commands {
		texture := cmd.Texture
		if texture == "" {
			texture = "-"
		}
		b := cmd.Bounds
		fmt.Fprintf(stdout, "%3d %-8s %-12s %4d tris  [%g %g %g %g]\n",
			cmd.Index, cmd.Kind, texture, cmd.Triangles, b.X, b.Y, b.W, b.H)
	}
	return nil
}

func textureNames(sess *session) []string {
	names := make([]string, 0, len(sess.textures))
	for name := range sess.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
