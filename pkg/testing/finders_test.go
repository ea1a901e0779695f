package testing

import (
	"testing"

	"github.com/go-drift/uicore/pkg/ui"
)

func buildFinderTree(tester *Tester) (panel, inner, outer ui.Handle) {
	u := tester.UI()
	inner = ui.NewImageBuilder(ui.NewWidgetBuilder().WithName("icon")).Build(u)
	panel = ui.NewBorderBuilder(ui.NewWidgetBuilder().WithName("panel").WithChild(inner)).Build(u)
	outer = ui.NewImageBuilder(ui.NewWidgetBuilder().WithName("icon")).Build(u)
	return panel, inner, outer
}

func TestByName(t *testing.T) {
	tester := NewTesterWithT(t)
	_, inner, outer := buildFinderTree(tester)

	result := tester.Find(ByName("icon"))
	if result.Count() != 2 {
		t.Fatalf("Count = %d, want 2", result.Count())
	}
	if result.First() != inner || result.At(1) != outer {
		t.Errorf("matches = %v, want [%v %v]", result.All(), inner, outer)
	}
	if result.Widget().Name() != "icon" {
		t.Errorf("Widget().Name() = %q, want icon", result.Widget().Name())
	}
}

func TestByKind(t *testing.T) {
	tester := NewTesterWithT(t)
	buildFinderTree(tester)

	if got := tester.Find(ByKind(ui.KindImage)).Count(); got != 2 {
		t.Errorf("images = %d, want 2", got)
	}
	if got := tester.Find(ByKind(ui.KindCanvas)).Count(); got != 1 {
		t.Errorf("canvases = %d, want 1 (root)", got)
	}
}

func TestDescendant(t *testing.T) {
	tester := NewTesterWithT(t)
	_, inner, _ := buildFinderTree(tester)

	result := tester.Find(Descendant(ByName("panel"), ByName("icon")))
	if result.Count() != 1 || result.First() != inner {
		t.Errorf("matches = %v, want [%v]", result.All(), inner)
	}
	if tester.Find(Descendant(ByName("missing"), ByName("icon"))).Exists() {
		t.Error("descendant of missing node found")
	}
}

func TestByPredicate(t *testing.T) {
	tester := NewTesterWithT(t)
	buildFinderTree(tester)

	result := tester.Find(ByPredicate(func(n ui.Node) bool {
		return n.AsWidget().ChildCount() > 0
	}))
	// root and panel
	if result.Count() != 2 {
		t.Errorf("Count = %d, want 2", result.Count())
	}
}

func TestFirstPanicsWhenEmpty(t *testing.T) {
	tester := NewTesterWithT(t)
	defer func() {
		if recover() == nil {
			t.Error("First on empty result did not panic")
		}
	}()
	tester.Find(ByName("nothing")).First()
}
