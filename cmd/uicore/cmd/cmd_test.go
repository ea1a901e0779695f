package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
nodes:
  - kind: border
    name: panel
    x: 10
    y: 10
    children:
      - {kind: image, texture: logo, width: 16, height: 16}
`

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func writeScene(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSceneArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    sceneOptions
		wantErr bool
	}{
		{"path only", []string{"a.yaml"}, sceneOptions{path: "a.yaml"}, false},
		{"all flags", []string{"a.yaml", "--config", "cfg", "--width=320", "--height", "240", "--json"},
			sceneOptions{path: "a.yaml", configDir: "cfg", width: 320, height: 240, json: true}, false},
		{"missing path", []string{"--json"}, sceneOptions{}, true},
		{"bad width", []string{"a.yaml", "--width", "wide"}, sceneOptions{}, true},
		{"zero height", []string{"a.yaml", "--height=0"}, sceneOptions{}, true},
		{"missing value", []string{"a.yaml", "--config"}, sceneOptions{}, true},
		{"unknown flag", []string{"a.yaml", "--fast"}, sceneOptions{}, true},
		{"two paths", []string{"a.yaml", "b.yaml"}, sceneOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSceneArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("opts = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFrameCommand(t *testing.T) {
	out := captureOutput(t)
	path := writeScene(t, t.TempDir(), testScene)

	if err := run([]string{"frame", path}); err != nil {
		t.Fatalf("frame: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %d, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "3 nodes, 2 commands") {
		t.Errorf("summary = %q", lines[0])
	}
	if !strings.Contains(lines[2], "logo") || !strings.Contains(lines[2], "[11 11 16 16]") {
		t.Errorf("image line = %q", lines[2])
	}
}

func TestFrameCommandJSON(t *testing.T) {
	out := captureOutput(t)
	dir := t.TempDir()
	path := writeScene(t, dir, testScene)
	if err := os.WriteFile(filepath.Join(dir, "uicore.yaml"), []byte("screen: {width: 320, height: 200}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"frame", path, "--json", "--height", "100"}); err != nil {
		t.Fatalf("frame: %v", err)
	}
	var report frameReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if report.Screen.X != 320 || report.Screen.Y != 100 {
		t.Errorf("screen = %v, want 320x100", report.Screen)
	}
	if len(report.Commands) != 2 || report.Commands[1].Texture != "logo" {
		t.Errorf("commands = %+v", report.Commands)
	}
	if len(report.Textures) != 1 || report.Textures[0] != "logo" {
		t.Errorf("textures = %v, want [logo]", report.Textures)
	}
	if report.Schema != "v1.0.0" {
		t.Errorf("schema = %q", report.Schema)
	}
}

func TestCheckCommand(t *testing.T) {
	out := captureOutput(t)
	dir := t.TempDir()

	if err := run([]string{"check", writeScene(t, dir, testScene)}); err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.HasPrefix(out.String(), "ok: 2 nodes") {
		t.Errorf("output = %q", out)
	}

	bad := writeScene(t, dir, "nodes: [{kind: image, children: [{kind: widget}]}]")
	err := run([]string{"check", bad})
	if err == nil || !strings.Contains(err.Error(), "nodes[0].children[0]") {
		t.Errorf("check(bad) = %v, want error naming nodes[0].children[0]", err)
	}
}

func TestVersionAndUnknown(t *testing.T) {
	out := captureOutput(t)
	if err := run([]string{"version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out)
	}
	if err := run([]string{"explode"}); err == nil {
		t.Error("unknown command succeeded")
	}
}

func TestHelp(t *testing.T) {
	out := captureOutput(t)
	if err := run(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"frame", "check"} {
		if !strings.Contains(out.String(), "  "+name+" ") {
			t.Errorf("overview does not list %q:\n%s", name, out)
		}
	}

	out.Reset()
	if err := run([]string{"frame", "--help"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Examples:") || !strings.Contains(out.String(), "--json") {
		t.Errorf("frame help = %q", out)
	}
}
