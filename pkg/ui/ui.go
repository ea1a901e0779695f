package ui

import (
	"time"

	"github.com/go-drift/uicore/pkg/errors"
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
	"github.com/go-drift/uicore/pkg/pool"
	"github.com/go-drift/uicore/pkg/rendering"
)

// Phase is the frame step a UserInterface is running.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUpdate
	PhaseLayout
	PhaseDraw
)

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseLayout:
		return "layout"
	case PhaseDraw:
		return "draw"
	default:
		return "idle"
	}
}

// Options configures a UserInterface.
type Options struct {
	// ScreenSize is the size of the surface the root fills.
	ScreenSize graphics.Vec2
	// PoolCapacity is the initial node pool capacity.
	PoolCapacity int
	// FrameBudget is the time one Frame is expected to take. Zero disables
	// the over-budget check.
	FrameBudget time.Duration
	// LogOverBudget logs frames that exceed FrameBudget.
	LogOverBudget bool
	// TraceSamples is the number of recent frames kept by FrameTrace.
	TraceSamples int
}

// DefaultOptions returns an 800x600 surface with a 60 fps frame budget.
func DefaultOptions() Options {
	return Options{
		ScreenSize:   graphics.V2(800, 600),
		PoolCapacity: 256,
		FrameBudget:  time.Second / 60,
	}
}

// UserInterface owns the node pool, the root canvas and the drawing
// context. It is not safe for concurrent use.
//
// Per frame the host calls Update, UpdateLayout and Draw in that order, or
// Frame which runs all three. While one of them is running the tree must
// not change: AddNode, Link, Unlink, RemoveNode and SetScreenSize panic
// with *errors.PhaseError.
type UserInterface struct {
	opts       Options
	nodes      *pool.Pool[Node]
	root       Handle
	screenSize graphics.Vec2
	pipeline   *layout.PipelineOwner[Handle]
	drawing    *rendering.DrawingContext
	pass       *layoutPass
	phase      Phase
	stats      FrameStats
	trace      *FrameTrace
}

// New returns a UserInterface containing only the root canvas.
func New(opts Options) *UserInterface {
	defaults := DefaultOptions()
	if opts.PoolCapacity <= 0 {
		opts.PoolCapacity = defaults.PoolCapacity
	}
	ui := &UserInterface{
		opts:       opts,
		nodes:      pool.New[Node](opts.PoolCapacity),
		screenSize: layout.SanitizeDesired(opts.ScreenSize),
		drawing:    rendering.NewDrawingContext(),
		trace:      NewFrameTrace(opts.TraceSamples, opts.FrameBudget),
	}
	ui.pass = &layoutPass{ui: ui}
	ui.pipeline = layout.NewPipelineOwner(ui.depth)

	root := &Canvas{Widget: NewWidgetBuilder().WithName("root").Build()}
	ui.root = ui.nodes.Insert(root)
	root.owner, root.self = ui, ui.root
	ui.pipeline.ScheduleLayout(ui.root)
	return ui
}

// Options returns the options the UserInterface was created with.
func (ui *UserInterface) Options() Options { return ui.opts }

// Root returns the handle of the root canvas.
func (ui *UserInterface) Root() Handle { return ui.root }

// Phase returns the frame step currently running.
func (ui *UserInterface) Phase() Phase { return ui.phase }

// NodeCount returns the number of live nodes, root included.
func (ui *UserInterface) NodeCount() int { return ui.nodes.Len() }

// ScreenSize returns the surface size.
func (ui *UserInterface) ScreenSize() graphics.Vec2 { return ui.screenSize }

// SetScreenSize resizes the surface. Negative or non-finite components are
// treated as zero.
func (ui *UserInterface) SetScreenSize(size graphics.Vec2) {
	ui.mustBeIdle("ui.SetScreenSize")
	size = layout.SanitizeDesired(size)
	if size == ui.screenSize {
		return
	}
	ui.screenSize = size
	ui.InvalidateLayout(ui.root)
}

// DrawingContext returns the context filled by the last Draw.
func (ui *UserInterface) DrawingContext() *rendering.DrawingContext { return ui.drawing }

func (ui *UserInterface) mustBeIdle(op string) {
	if ui.phase != PhaseIdle {
		panic(&errors.PhaseError{Op: op, Phase: ui.phase.String()})
	}
}

func (ui *UserInterface) enter(p Phase) {
	ui.mustBeIdle("ui." + p.String())
	ui.phase = p
}

func (ui *UserInterface) leave() {
	ui.phase = PhaseIdle
}

// Node looks up h.
func (ui *UserInterface) Node(h Handle) (Node, bool) {
	return ui.nodes.Get(h)
}

// Widget looks up the widget base of h.
func (ui *UserInterface) Widget(h Handle) (*Widget, bool) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return nil, false
	}
	return n.AsWidget(), true
}

// As looks up h and returns it as the variant T.
func As[T Node](ui *UserInterface, h Handle) (T, bool) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := n.(T)
	return t, ok
}

// AddNode stores n, links it under the root canvas and returns its handle.
// Links n already carries are dropped. A node that is still stored is not
// stored twice: errors.ErrAlreadyAdded is reported and its current handle
// is returned, or NoHandle when it belongs to another UserInterface.
func (ui *UserInterface) AddNode(n Node) Handle {
	ui.mustBeIdle("ui.AddNode")
	w := n.AsWidget()
	if w.owner != nil {
		errors.Report(&errors.UIError{
			Op:   "ui.AddNode",
			Kind: errors.KindPool,
			Err:  errors.ErrAlreadyAdded,
		})
		if w.owner == ui {
			return w.self
		}
		return NoHandle()
	}
	w.parent = NoHandle()
	w.children = nil
	w.invalidate()
	h := ui.nodes.Insert(n)
	w.owner, w.self = ui, h
	if err := ui.link(h, ui.root); err != nil {
		errors.Report(err)
	}
	return h
}

// Link moves child to the end of parent's children. It fails with
// errors.ErrStaleHandle when either handle does not resolve and with
// errors.ErrCycle when parent is child or one of its descendants.
func (ui *UserInterface) Link(child, parent Handle) error {
	ui.mustBeIdle("ui.Link")
	if err := ui.link(child, parent); err != nil {
		return err
	}
	return nil
}

func (ui *UserInterface) link(child, parent Handle) *errors.UIError {
	childNode, ok := ui.nodes.Get(child)
	if !ok {
		return errors.New("ui.Link", errors.KindPool, errors.ErrStaleHandle)
	}
	parentNode, ok := ui.nodes.Get(parent)
	if !ok {
		return errors.New("ui.Link", errors.KindPool, errors.ErrStaleHandle)
	}
	if child == ui.root || ui.isAncestorOrSelf(child, parent) {
		return errors.New("ui.Link", errors.KindPool, errors.ErrCycle)
	}
	ui.detach(child, childNode.AsWidget())
	pw := parentNode.AsWidget()
	pw.children = append(pw.children, child)
	childNode.AsWidget().parent = parent
	ui.InvalidateLayout(child)
	return nil
}

// Unlink detaches child from its parent. A detached node stays in the pool
// and is updated but not laid out or drawn until linked again.
func (ui *UserInterface) Unlink(child Handle) {
	ui.mustBeIdle("ui.Unlink")
	n, ok := ui.nodes.Get(child)
	if !ok {
		return
	}
	ui.detach(child, n.AsWidget())
}

func (ui *UserInterface) detach(h Handle, w *Widget) {
	if parent, ok := ui.nodes.Get(w.parent); ok {
		parent.AsWidget().removeChild(h)
		ui.InvalidateLayout(w.parent)
	}
	w.parent = NoHandle()
}

// RemoveNode removes h and its whole subtree and returns the removed node.
// The root cannot be removed. Handles to removed nodes become stale.
func (ui *UserInterface) RemoveNode(h Handle) (Node, bool) {
	ui.mustBeIdle("ui.RemoveNode")
	n, ok := ui.nodes.Get(h)
	if !ok || h == ui.root {
		return nil, false
	}
	ui.detach(h, n.AsWidget())

	stack := []Handle{h}
	for len(stack) > 0 {
		last := len(stack) - 1
		cur := stack[last]
		stack = stack[:last]
		if removed, ok := ui.nodes.Remove(cur); ok {
			rw := removed.AsWidget()
			rw.owner, rw.self = nil, NoHandle()
			stack = append(stack, rw.children...)
			ui.pipeline.Forget(cur)
		}
	}
	return n, true
}

// isAncestorOrSelf reports whether a is h or one of its ancestors.
func (ui *UserInterface) isAncestorOrSelf(a, h Handle) bool {
	for i := 0; i <= ui.nodes.Len(); i++ {
		if h == a {
			return true
		}
		n, ok := ui.nodes.Get(h)
		if !ok {
			return false
		}
		h = n.AsWidget().parent
	}
	return false
}

// depth returns the number of ancestors of h.
func (ui *UserInterface) depth(h Handle) int {
	d := 0
	for {
		n, ok := ui.nodes.Get(h)
		if !ok {
			return max(0, d-1)
		}
		h = n.AsWidget().parent
		d++
	}
}

// FindByName returns the first node in tree order whose widget has name.
func (ui *UserInterface) FindByName(name string) (Handle, bool) {
	found := NoHandle()
	ui.Walk(func(h Handle, n Node, _ int) bool {
		if n.AsWidget().name == name {
			found = h
			return false
		}
		return true
	})
	return found, !found.IsNone()
}

// Walk visits the tree depth first from the root, parents before children.
// Returning false from fn stops the walk.
func (ui *UserInterface) Walk(fn func(h Handle, n Node, depth int) bool) {
	ui.walk(ui.root, 0, fn)
}

func (ui *UserInterface) walk(h Handle, depth int, fn func(Handle, Node, int) bool) bool {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return true
	}
	if !fn(h, n, depth) {
		return false
	}
	for _, child := range n.AsWidget().children {
		if !ui.walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}
