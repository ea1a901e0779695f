package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/uicore/pkg/ui"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the node tree with its layout results and the draw
// commands of the last frame.
type Snapshot struct {
	Tree     *SnapshotNode `json:"tree"`
	Commands []DisplayOp   `json:"commands,omitempty"`
}

// SnapshotNode is a node in the serialized tree.
type SnapshotNode struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Name       string          `json:"name,omitempty"`
	Size       [2]float64      `json:"size"`
	Offset     [2]float64      `json:"offset"`
	Hidden     bool            `json:"hidden,omitempty"`
	Properties map[string]any  `json:"props,omitempty"`
	Children   []*SnapshotNode `json:"children,omitempty"`
}

// CaptureSnapshot captures the tree and replays the last frame's commands
// through a RecordingRenderer.
func (t *Tester) CaptureSnapshot() *Snapshot {
	counter := &kindCounter{}
	snap := &Snapshot{Tree: captureNode(t.ui, t.ui.Root(), counter)}
	if rec, err := t.Replay(); err == nil {
		snap.Commands = rec.Ops
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// UICORE_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("UICORE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: UICORE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: UICORE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// JSON returns the indented JSON form of the snapshot.
func (s *Snapshot) JSON() ([]byte, error) {
	return marshalSnapshot(s)
}

// Diff returns a line diff between this snapshot and other, or "" when
// they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

// kindCounter assigns stable IDs like "Image#0", "Image#1".
type kindCounter struct {
	counts map[string]int
}

func (c *kindCounter) next(kind string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[kind]
	c.counts[kind] = n + 1
	return fmt.Sprintf("%s#%d", kind, n)
}

func captureNode(u *ui.UserInterface, h ui.Handle, counter *kindCounter) *SnapshotNode {
	n, ok := u.Node(h)
	if !ok {
		return nil
	}
	w := n.AsWidget()
	kind := ui.KindOf(n).String()
	size := w.ActualSize()
	offset := w.ActualLocalPosition()

	node := &SnapshotNode{
		ID:     counter.next(kind),
		Kind:   kind,
		Name:   w.Name(),
		Size:   [2]float64{round2(size.X), round2(size.Y)},
		Offset: [2]float64{round2(offset.X), round2(offset.Y)},
		Hidden: !w.Visible(),
	}
	if props := captureProperties(n); len(props) > 0 {
		node.Properties = props
	}
	for _, child := range w.Children() {
		if c := captureNode(u, child, counter); c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// captureProperties records the variant settings that affect output.
func captureProperties(n ui.Node) map[string]any {
	switch v := n.(type) {
	case *ui.Image:
		props := sortedMap("color", serializeColor(v.Color()))
		if t := v.Texture(); t != nil {
			props["texture"] = t.Name()
		}
		return props
	case *ui.Border:
		return sortedMap(
			"color", serializeColor(v.Color()),
			"strokeColor", serializeColor(v.StrokeColor()),
			"strokeThickness", fmt.Sprintf("%v", v.StrokeThickness()),
		)
	case *ui.StackPanel:
		return sortedMap("orientation", v.Orientation().String())
	case *ui.Grid:
		return sortedMap(
			"rows", len(v.Rows()),
			"columns", len(v.Columns()),
		)
	default:
		return nil
	}
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e == a {
			continue
		}
		if i < len(expectedLines) {
			fmt.Fprintf(&buf, "-%s\n", e)
		}
		if i < len(actualLines) {
			fmt.Fprintf(&buf, "+%s\n", a)
		}
	}
	return buf.String()
}
