// Package scene builds UI trees from YAML descriptions.
//
// A scene lists top-level nodes; each node names its kind and carries the
// widget settings and variant options, plus nested children:
//
//	nodes:
//	  - kind: border
//	    name: panel
//	    x: 10
//	    y: 10
//	    color: "#202020"
//	    strokeColor: white
//	    children:
//	      - kind: stack
//	        orientation: horizontal
//	        children:
//	          - {kind: image, texture: logo, width: 32, height: 32}
//	          - {kind: image, color: tomato, width: 64, margin: [4, 0, 4, 0]}
package scene

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/resource"
	"github.com/go-drift/uicore/pkg/ui"
)

// Scene is a parsed scene description.
type Scene struct {
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec describes one node and its subtree.
type NodeSpec struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name,omitempty"`

	Width     *float32  `yaml:"width,omitempty"`
	Height    *float32  `yaml:"height,omitempty"`
	MinWidth  float32   `yaml:"minWidth,omitempty"`
	MinHeight float32   `yaml:"minHeight,omitempty"`
	MaxWidth  *float32  `yaml:"maxWidth,omitempty"`
	MaxHeight *float32  `yaml:"maxHeight,omitempty"`
	Margin    Thickness `yaml:"margin,omitempty"`

	HorizontalAlignment string `yaml:"horizontalAlignment,omitempty"`
	VerticalAlignment   string `yaml:"verticalAlignment,omitempty"`

	X      float32 `yaml:"x,omitempty"`
	Y      float32 `yaml:"y,omitempty"`
	Row    int     `yaml:"row,omitempty"`
	Column int     `yaml:"column,omitempty"`

	Color   string `yaml:"color,omitempty"`
	Visible *bool  `yaml:"visible,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`

	// image
	Texture string `yaml:"texture,omitempty"`
	// border
	StrokeColor     string     `yaml:"strokeColor,omitempty"`
	StrokeThickness *Thickness `yaml:"strokeThickness,omitempty"`
	// stack
	Orientation string `yaml:"orientation,omitempty"`
	// grid
	Rows       []string `yaml:"rows,omitempty"`
	Columns    []string `yaml:"columns,omitempty"`
	DrawBorder string   `yaml:"drawBorder,omitempty"`

	Children []NodeSpec `yaml:"children,omitempty"`
}

// Thickness decodes either a single number applied to every side, a
// [horizontal, vertical] pair or a [left, top, right, bottom] list.
type Thickness graphics.Thickness

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Thickness) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := value.Decode(&v); err != nil {
			return err
		}
		*t = Thickness(graphics.Uniform(v))
		return nil
	case yaml.SequenceNode:
		var vs []float32
		if err := value.Decode(&vs); err != nil {
			return err
		}
		switch len(vs) {
		case 2:
			*t = Thickness{Left: vs[0], Top: vs[1], Right: vs[0], Bottom: vs[1]}
		case 4:
			*t = Thickness{Left: vs[0], Top: vs[1], Right: vs[2], Bottom: vs[3]}
		default:
			return fmt.Errorf("line %d: thickness needs 1, 2 or 4 values, got %d", value.Line, len(vs))
		}
		return nil
	default:
		return fmt.Errorf("line %d: thickness must be a number or a list", value.Line)
	}
}

// Parse decodes a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.New("scene.Parse", errors.KindScene, err)
	}
	return &s, nil
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("scene.Load", errors.KindScene, err)
	}
	return Parse(data)
}

// Count returns the number of nodes in the scene.
func (s *Scene) Count() int {
	var count func([]NodeSpec) int
	count = func(specs []NodeSpec) int {
		n := 0
		for i := range specs {
			n += 1 + count(specs[i].Children)
		}
		return n
	}
	return count(s.Nodes)
}

// Validate checks the whole scene without building it.
func (s *Scene) Validate() error {
	for i := range s.Nodes {
		if err := s.Nodes[i].validate(fmt.Sprintf("nodes[%d]", i)); err != nil {
			return errors.New("scene.Validate", errors.KindScene, err)
		}
	}
	return nil
}

// Build validates the scene and adds its nodes under the root of u, in
// order. Textures are looked up by name in textures; a name that is not
// there gets a new unloaded texture, which is added to textures so the host
// can populate it later. With a nil map the created textures are still
// shared by name within the scene but are not visible to the caller. It
// returns the handles of the top-level nodes.
func (s *Scene) Build(u *ui.UserInterface, textures map[string]*resource.Texture) ([]ui.Handle, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if textures == nil {
		textures = make(map[string]*resource.Texture)
	}
	b := &builder{ui: u, textures: textures}
	handles := make([]ui.Handle, 0, len(s.Nodes))
	for i := range s.Nodes {
		handles = append(handles, b.build(&s.Nodes[i]))
	}
	return handles, nil
}

func (n *NodeSpec) validate(path string) error {
	switch n.Kind {
	case "image", "border", "stack", "grid", "canvas":
	case "":
		return fmt.Errorf("%s: missing kind", path)
	default:
		return fmt.Errorf("%s: unknown kind %q", path, n.Kind)
	}
	if _, ok := layout.ParseHorizontalAlignment(n.HorizontalAlignment); !ok {
		return fmt.Errorf("%s: unknown horizontalAlignment %q", path, n.HorizontalAlignment)
	}
	if _, ok := layout.ParseVerticalAlignment(n.VerticalAlignment); !ok {
		return fmt.Errorf("%s: unknown verticalAlignment %q", path, n.VerticalAlignment)
	}
	for _, c := range []struct{ field, value string }{
		{"color", n.Color},
		{"strokeColor", n.StrokeColor},
		{"drawBorder", n.DrawBorder},
	} {
		if c.value == "" {
			continue
		}
		if _, err := graphics.ParseColor(c.value); err != nil {
			return fmt.Errorf("%s: %s: %w", path, c.field, err)
		}
	}
	if _, err := parseOrientation(n.Orientation); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, tracks := range [][]string{n.Rows, n.Columns} {
		if _, err := parseTracks(tracks); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	if !validThickness(n.Margin) {
		return fmt.Errorf("%s: margin must be finite and not negative", path)
	}
	if n.StrokeThickness != nil && !validThickness(*n.StrokeThickness) {
		return fmt.Errorf("%s: strokeThickness must be finite and not negative", path)
	}
	if n.Row < 0 || n.Column < 0 {
		return fmt.Errorf("%s: row and column must not be negative", path)
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func parseOrientation(s string) (layout.Orientation, error) {
	switch s {
	case "", "vertical":
		return layout.Vertical, nil
	case "horizontal":
		return layout.Horizontal, nil
	default:
		return layout.Vertical, fmt.Errorf("unknown orientation %q", s)
	}
}

func parseTracks(specs []string) ([]layout.GridDimension, error) {
	out := make([]layout.GridDimension, 0, len(specs))
	for _, s := range specs {
		d, err := layout.ParseGridDimension(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func validThickness(t Thickness) bool {
	return layout.SanitizeThickness(graphics.Thickness(t)) == graphics.Thickness(t)
}
