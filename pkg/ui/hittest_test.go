package ui

import (
	"testing"

	"github.com/go-drift/uicore/pkg/graphics"
)

func TestHitTest(t *testing.T) {
	ui := newTestUI()
	back := NewImageBuilder(NewWidgetBuilder().
		WithPosition(graphics.V2(0, 0)).
		WithWidth(100).
		WithHeight(100)).Build(ui)
	front := NewImageBuilder(NewWidgetBuilder().
		WithPosition(graphics.V2(50, 50)).
		WithWidth(100).
		WithHeight(100)).Build(ui)
	ui.UpdateLayout()

	tests := []struct {
		name string
		p    graphics.Vec2
		want Handle
		ok   bool
	}{
		{"back only", graphics.V2(10, 10), back, true},
		{"overlap picks later sibling", graphics.V2(75, 75), front, true},
		{"front only", graphics.V2(140, 140), front, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ui.HitTest(tt.p)
			if ok != tt.ok || got != tt.want {
				t.Errorf("HitTest(%v) = %v, %v, want %v, %v", tt.p, got, ok, tt.want, tt.ok)
			}
		})
	}

	// root covers the whole screen
	if got, _ := ui.HitTest(graphics.V2(700, 500)); got != ui.Root() {
		t.Errorf("HitTest(empty area) = %v, want root", got)
	}
	if _, ok := ui.HitTest(graphics.V2(900, 900)); ok {
		t.Error("HitTest outside the screen found a node")
	}
}

func TestHitTestSkipsDisabledAndHidden(t *testing.T) {
	ui := newTestUI()
	back := NewImageBuilder(NewWidgetBuilder().WithWidth(50).WithHeight(50)).Build(ui)
	disabled := NewImageBuilder(NewWidgetBuilder().WithWidth(50).WithHeight(50).WithEnabled(false)).Build(ui)
	hidden := NewImageBuilder(NewWidgetBuilder().WithWidth(50).WithHeight(50).WithVisibility(false)).Build(ui)
	ui.UpdateLayout()

	entries := ui.HitTestAll(graphics.V2(10, 10)).Entries
	if len(entries) != 3 || entries[0] != disabled || entries[1] != back || entries[2] != ui.Root() {
		t.Errorf("entries = %v, want [%v %v root]", entries, disabled, back)
	}
	for _, h := range entries {
		if h == hidden {
			t.Error("hidden node was hit")
		}
	}
	if got, _ := ui.HitTest(graphics.V2(10, 10)); got != back {
		t.Errorf("HitTest = %v, want %v (disabled node skipped)", got, back)
	}
}
