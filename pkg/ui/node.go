// Package ui is the UI tree engine: the widget base shared by every node,
// the closed set of node variants, and the UserInterface that owns the node
// pool and runs update, layout and draw once per frame.
//
// Nodes are stored in a generational pool and refer to each other by
// Handle. A parent link is a handle lookup, never an owning reference, so
// removing a node leaves stale handles that simply stop resolving.
package ui

import (
	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/pool"
	"github.com/go-drift/uicore/pkg/rendering"
)

// Handle refers to a node stored in a UserInterface.
type Handle = pool.Handle[Node]

// NoHandle returns the handle that never resolves.
func NoHandle() Handle {
	return pool.None[Node]()
}

// NodeKind identifies a node variant.
type NodeKind int

const (
	KindCanvas NodeKind = iota
	KindImage
	KindBorder
	KindStackPanel
	KindGrid
)

func (k NodeKind) String() string {
	switch k {
	case KindCanvas:
		return "Canvas"
	case KindImage:
		return "Image"
	case KindBorder:
		return "Border"
	case KindStackPanel:
		return "StackPanel"
	case KindGrid:
		return "Grid"
	default:
		return "Unknown"
	}
}

// Node is implemented by every node variant. The set of variants is closed:
// the unexported kind method keeps types outside this package from
// implementing Node. A new widget is a new variant here, not a change to the
// pool or the engine.
type Node interface {
	// AsWidget returns the widget base embedded in the node.
	AsWidget() *Widget
	// MeasureOverride returns the size the node wants inside available,
	// measuring its children through ctx.
	MeasureOverride(ctx LayoutContext, available graphics.Vec2) graphics.Vec2
	// ArrangeOverride positions the children inside final through ctx and
	// returns the size the node actually uses.
	ArrangeOverride(ctx LayoutContext, final graphics.Vec2) graphics.Vec2
	// Draw emits the node's own geometry using the bounds from the last
	// layout pass. Children are drawn by the engine afterwards.
	Draw(dc *rendering.DrawingContext)
	// Update advances time-dependent state by dt seconds.
	Update(dt float32)

	kind() NodeKind
}

// KindOf returns the variant of n.
func KindOf(n Node) NodeKind {
	return n.kind()
}

// LayoutContext is the view of the tree given to MeasureOverride and
// ArrangeOverride. It can measure, arrange and read nodes but cannot add or
// remove them.
type LayoutContext interface {
	// Measure runs the measure pass for h against available and returns its
	// desired size, or zero when h does not resolve.
	Measure(h Handle, available graphics.Vec2) graphics.Vec2
	// Arrange runs the arrange pass for h inside rect, given in the
	// caller's local coordinates.
	Arrange(h Handle, rect graphics.Rect)
	// DesiredSize returns the last measured size of h, or zero.
	DesiredSize(h Handle) graphics.Vec2
	// Node looks up h.
	Node(h Handle) (Node, bool)
}
