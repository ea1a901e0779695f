package ui

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
)

// countingNode is a test-only variant that counts updates and can run a hook.
type countingNode struct {
	Widget
	updates  int
	onUpdate func()
}

func (p *countingNode) kind() NodeKind { return KindCanvas }

func (p *countingNode) Update(dt float32) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate()
	}
}

func newTestUI() *UserInterface {
	opts := DefaultOptions()
	opts.ScreenSize = graphics.V2(800, 600)
	return New(opts)
}

func TestNewHasRootCanvas(t *testing.T) {
	ui := newTestUI()
	if got := ui.NodeCount(); got != 1 {
		t.Fatalf("NodeCount = %d, want 1", got)
	}
	if _, ok := As[*Canvas](ui, ui.Root()); !ok {
		t.Error("root is not a Canvas")
	}
	if !ui.NeedsLayout() {
		t.Error("new UI should need layout")
	}
}

func TestAddNodeLinksToRoot(t *testing.T) {
	ui := newTestUI()
	a := NewImageBuilder(NewWidgetBuilder().WithName("a")).Build(ui)
	b := NewImageBuilder(NewWidgetBuilder().WithName("b")).Build(ui)

	root, _ := ui.Widget(ui.Root())
	children := root.Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("root children = %v, want [%v %v]", children, a, b)
	}
	w, _ := ui.Widget(a)
	if w.Parent() != ui.Root() {
		t.Errorf("parent = %v, want root %v", w.Parent(), ui.Root())
	}
}

func TestBuilderLinksChildren(t *testing.T) {
	ui := newTestUI()
	c1 := NewImageBuilder(nil).Build(ui)
	c2 := NewImageBuilder(nil).Build(ui)
	panel := NewStackPanelBuilder(NewWidgetBuilder().WithChildren(c1, c2)).Build(ui)

	w, _ := ui.Widget(panel)
	if got := w.Children(); len(got) != 2 || got[0] != c1 || got[1] != c2 {
		t.Errorf("panel children = %v, want [%v %v]", got, c1, c2)
	}
	root, _ := ui.Widget(ui.Root())
	if got := root.Children(); len(got) != 1 || got[0] != panel {
		t.Errorf("root children = %v, want [%v]", got, panel)
	}
}

func TestReusedBuilderStartsWithoutChildren(t *testing.T) {
	ui := newTestUI()
	child := NewImageBuilder(nil).Build(ui)
	wb := NewWidgetBuilder().WithChild(child)
	a := NewBorderBuilder(wb).Build(ui)
	b := NewBorderBuilder(wb).Build(ui)

	aw, _ := ui.Widget(a)
	bw, _ := ui.Widget(b)
	if got := aw.Children(); len(got) != 1 || got[0] != child {
		t.Errorf("first node children = %v, want [%v]", got, child)
	}
	if got := bw.ChildCount(); got != 0 {
		t.Errorf("second node has %d children, want 0", got)
	}
}

func TestStaleHandleAfterRemove(t *testing.T) {
	ui := newTestUI()
	old := NewImageBuilder(nil).Build(ui)
	if _, ok := ui.RemoveNode(old); !ok {
		t.Fatal("RemoveNode failed")
	}
	fresh := NewImageBuilder(nil).Build(ui)

	if fresh.Index() != old.Index() {
		t.Fatalf("slot not reused: %v vs %v", fresh, old)
	}
	if _, ok := ui.Node(old); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if _, ok := ui.Node(fresh); !ok {
		t.Error("fresh handle did not resolve")
	}

	err := ui.Link(old, ui.Root())
	if !stderrors.Is(err, errors.ErrStaleHandle) {
		t.Errorf("Link(stale) = %v, want ErrStaleHandle", err)
	}
	var uiErr *errors.UIError
	if !stderrors.As(err, &uiErr) || uiErr.Kind != errors.KindPool {
		t.Errorf("Link(stale) kind = %v, want %v", uiErr, errors.KindPool)
	}
}

func TestRemoveNodeRemovesSubtree(t *testing.T) {
	ui := newTestUI()
	leaf := NewImageBuilder(nil).Build(ui)
	mid := NewBorderBuilder(NewWidgetBuilder().WithChild(leaf)).Build(ui)
	top := NewStackPanelBuilder(NewWidgetBuilder().WithChild(mid)).Build(ui)

	if got := ui.NodeCount(); got != 4 {
		t.Fatalf("NodeCount = %d, want 4", got)
	}
	if _, ok := ui.RemoveNode(top); !ok {
		t.Fatal("RemoveNode failed")
	}
	if got := ui.NodeCount(); got != 1 {
		t.Errorf("NodeCount after remove = %d, want 1", got)
	}
	for _, h := range []Handle{top, mid, leaf} {
		if _, ok := ui.Node(h); ok {
			t.Errorf("%v still resolves", h)
		}
	}
	root, _ := ui.Widget(ui.Root())
	if root.ChildCount() != 0 {
		t.Errorf("root still has %d children", root.ChildCount())
	}
}

type reportedErrors struct{ errs []*errors.UIError }

func (r *reportedErrors) HandleError(err *errors.UIError)    { r.errs = append(r.errs, err) }
func (r *reportedErrors) HandlePanic(err *errors.PanicError) {}

func captureReports(t *testing.T) *reportedErrors {
	t.Helper()
	r := &reportedErrors{}
	old := errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(old) })
	return r
}

func TestAddNodeTwiceKeepsTree(t *testing.T) {
	reports := captureReports(t)
	ui := newTestUI()
	child := NewImageBuilder(nil).Build(ui)
	parent := NewBorderBuilder(NewWidgetBuilder().WithChild(child)).Build(ui)
	n, _ := ui.Node(parent)

	if got := ui.AddNode(n); got != parent {
		t.Errorf("AddNode(stored) = %v, want existing handle %v", got, parent)
	}
	if len(reports.errs) != 1 || !stderrors.Is(reports.errs[0], errors.ErrAlreadyAdded) {
		t.Errorf("reported = %v, want one ErrAlreadyAdded", reports.errs)
	}
	if got := ui.NodeCount(); got != 3 {
		t.Errorf("NodeCount = %d, want 3", got)
	}
	pw, _ := ui.Widget(parent)
	if kids := pw.Children(); len(kids) != 1 || kids[0] != child {
		t.Errorf("parent children = %v, want [%v]", kids, child)
	}

	other := newTestUI()
	if got := other.AddNode(n); !got.IsNone() {
		t.Errorf("AddNode into another UI = %v, want none", got)
	}
	if got := other.NodeCount(); got != 1 {
		t.Errorf("other NodeCount = %d, want 1", got)
	}

	ui.RemoveNode(parent)
	if got := ui.NodeCount(); got != 1 {
		t.Fatalf("NodeCount after remove = %d, want 1", got)
	}
	again := ui.AddNode(n)
	if _, ok := ui.Node(again); !ok || again == parent {
		t.Errorf("re-adding a removed node gave %v", again)
	}
}

func TestRemoveRootRefused(t *testing.T) {
	ui := newTestUI()
	if _, ok := ui.RemoveNode(ui.Root()); ok {
		t.Error("root was removed")
	}
}

func TestLinkCycle(t *testing.T) {
	ui := newTestUI()
	child := NewImageBuilder(nil).Build(ui)
	parent := NewBorderBuilder(NewWidgetBuilder().WithChild(child)).Build(ui)

	tests := []struct {
		name          string
		child, parent Handle
	}{
		{"self", parent, parent},
		{"descendant", parent, child},
		{"root", ui.Root(), parent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ui.Link(tt.child, tt.parent)
			if !stderrors.Is(err, errors.ErrCycle) {
				t.Errorf("Link = %v, want ErrCycle", err)
			}
		})
	}
}

func TestUnlinkDetaches(t *testing.T) {
	ui := newTestUI()
	h := NewImageBuilder(NewWidgetBuilder().WithWidth(10).WithHeight(10)).Build(ui)
	ui.Unlink(h)

	w, _ := ui.Widget(h)
	if !w.Parent().IsNone() {
		t.Errorf("parent = %v, want none", w.Parent())
	}
	dc := ui.Frame(0)
	if got := len(dc.Commands()); got != 0 {
		t.Errorf("detached node drew %d commands", got)
	}
}

func TestUpdateVisitsEveryNodeOnce(t *testing.T) {
	ui := newTestUI()
	attached := &countingNode{}
	detached := &countingNode{}
	ui.AddNode(attached)
	dh := ui.AddNode(detached)
	ui.Unlink(dh)

	ui.Update(0.016)
	ui.Update(0.016)

	if attached.updates != 2 || detached.updates != 2 {
		t.Errorf("updates = %d, %d, want 2, 2", attached.updates, detached.updates)
	}
}

func TestMutationDuringUpdatePanics(t *testing.T) {
	ui := newTestUI()
	p := &countingNode{}
	p.onUpdate = func() { ui.AddNode(&Image{}) }
	ui.AddNode(p)

	defer func() {
		r := recover()
		pe, ok := r.(*errors.PhaseError)
		if !ok {
			t.Fatalf("recovered %v, want *errors.PhaseError", r)
		}
		if pe.Op != "ui.AddNode" || pe.Phase != "update" {
			t.Errorf("PhaseError = %+v", pe)
		}
	}()
	ui.Update(0)
}

func TestPhaseResetsAfterFrame(t *testing.T) {
	ui := newTestUI()
	ui.Frame(0)
	if ui.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want idle", ui.Phase())
	}
	NewImageBuilder(nil).Build(ui)
}

func TestFindByName(t *testing.T) {
	ui := newTestUI()
	inner := NewImageBuilder(NewWidgetBuilder().WithName("icon")).Build(ui)
	NewBorderBuilder(NewWidgetBuilder().WithName("frame").WithChild(inner)).Build(ui)

	h, ok := ui.FindByName("icon")
	if !ok || h != inner {
		t.Errorf("FindByName(icon) = %v, %v, want %v", h, ok, inner)
	}
	if _, ok := ui.FindByName("missing"); ok {
		t.Error("FindByName(missing) found a node")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		node Node
		want NodeKind
	}{
		{&Image{}, KindImage},
		{&Border{}, KindBorder},
		{&StackPanel{}, KindStackPanel},
		{&Grid{}, KindGrid},
		{&Canvas{}, KindCanvas},
	}
	for _, tt := range tests {
		if got := KindOf(tt.node); got != tt.want {
			t.Errorf("KindOf(%T) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestAsWrongVariant(t *testing.T) {
	ui := newTestUI()
	h := NewImageBuilder(nil).Build(ui)
	if _, ok := As[*Border](ui, h); ok {
		t.Error("As[*Border] on an Image succeeded")
	}
	if img, ok := As[*Image](ui, h); !ok || img == nil {
		t.Error("As[*Image] failed")
	}
}

func TestFrameStats(t *testing.T) {
	ui := newTestUI()
	NewImageBuilder(NewWidgetBuilder().WithWidth(10).WithHeight(10)).Build(ui)

	ui.Frame(0)
	first := ui.LastFrame()
	if first.LayoutSkipped {
		t.Error("first frame skipped layout")
	}
	if first.Commands != 1 || first.Triangles != 2 || first.Nodes != 2 {
		t.Errorf("stats = %+v, want 1 command, 2 triangles, 2 nodes", first)
	}

	ui.Frame(0)
	if !ui.LastFrame().LayoutSkipped {
		t.Error("clean frame did not skip layout")
	}
	if got := len(ui.FrameTrace().Snapshot().Samples); got != 2 {
		t.Errorf("trace samples = %d, want 2", got)
	}
}

func TestFrameTraceWraps(t *testing.T) {
	trace := NewFrameTrace(2, 0)
	for i := 1; i <= 3; i++ {
		trace.Add(FrameStats{Nodes: i, OverBudget: i == 3})
	}
	snap := trace.Snapshot()
	if len(snap.Samples) != 2 || snap.Samples[0].Nodes != 2 || snap.Samples[1].Nodes != 3 {
		t.Errorf("samples = %+v, want nodes 2, 3", snap.Samples)
	}
	if snap.OverBudget != 1 {
		t.Errorf("OverBudget = %d, want 1", snap.OverBudget)
	}
}
