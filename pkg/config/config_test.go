package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/rendering"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ScreenSize != graphics.V2(800, 600) {
		t.Errorf("ScreenSize = %v, want (800, 600)", r.ScreenSize)
	}
	if r.PoolCapacity != 256 {
		t.Errorf("PoolCapacity = %d, want 256", r.PoolCapacity)
	}
	if r.Schema != rendering.SchemaVersion {
		t.Errorf("Schema = %q, want %q", r.Schema, rendering.SchemaVersion)
	}
	if r.Root != dir {
		t.Errorf("Root = %q, want %q", r.Root, dir)
	}
}

func TestResolveFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
screen:
  width: 1024
  height: 768
pool:
  capacity: 64
frame:
  budget: 8ms
  logOverBudget: true
  traceSamples: 30
errors:
  verbose: true
renderer:
  schema: v1.0.0
`)
	r, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	opts := r.Options()
	if opts.ScreenSize != graphics.V2(1024, 768) {
		t.Errorf("ScreenSize = %v, want (1024, 768)", opts.ScreenSize)
	}
	if opts.PoolCapacity != 64 {
		t.Errorf("PoolCapacity = %d, want 64", opts.PoolCapacity)
	}
	if opts.FrameBudget != 8*time.Millisecond {
		t.Errorf("FrameBudget = %v, want 8ms", opts.FrameBudget)
	}
	if !opts.LogOverBudget || opts.TraceSamples != 30 {
		t.Errorf("frame options = %+v", opts)
	}
	h, ok := r.ErrorHandler().(*errors.LogHandler)
	if !ok || !h.Verbose {
		t.Errorf("ErrorHandler = %#v, want verbose LogHandler", r.ErrorHandler())
	}
}

func TestResolveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative width", "screen: {width: -1}"},
		{"negative capacity", "pool: {capacity: -4}"},
		{"bad budget", "frame: {budget: soon}"},
		{"negative budget", "frame: {budget: -5ms}"},
		{"newer schema", "renderer: {schema: v1.4.0}"},
		{"other major", "renderer: {schema: v2.0.0}"},
		{"invalid schema", "renderer: {schema: latest}"},
		{"unknown key", "screne: {width: 10}"},
		{"malformed", "screen: [1, 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.body)
			_, err := Resolve(dir)
			if err == nil {
				t.Fatal("Resolve succeeded, want error")
			}
			var uiErr *errors.UIError
			if !stderrors.As(err, &uiErr) || uiErr.Kind != errors.KindConfig {
				t.Errorf("err = %v, want KindConfig UIError", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if _, err := cfg.Resolve(); err != nil {
		t.Errorf("Resolve: %v", err)
	}
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "pool: {capacity: 8}\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if got := FindRoot(nested); got != root {
		t.Errorf("FindRoot = %q, want %q", got, root)
	}
}
