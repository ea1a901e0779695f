package ui

import (
	"github.com/chewxy/math32"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/layout"
)

// layoutPass is the LayoutContext handed to overrides.
type layoutPass struct {
	ui *UserInterface
}

func (p *layoutPass) Measure(h Handle, available graphics.Vec2) graphics.Vec2 {
	return p.ui.measure(h, available)
}

func (p *layoutPass) Arrange(h Handle, rect graphics.Rect) {
	p.ui.arrange(h, rect)
}

func (p *layoutPass) DesiredSize(h Handle) graphics.Vec2 {
	if n, ok := p.ui.nodes.Get(h); ok {
		return n.AsWidget().desiredSize
	}
	return graphics.Vec2{}
}

func (p *layoutPass) Node(h Handle) (Node, bool) {
	return p.ui.nodes.Get(h)
}

// InvalidateLayout marks h and every ancestor up to the root as needing
// measure and arrange, and schedules a layout pass.
func (ui *UserInterface) InvalidateLayout(h Handle) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return
	}
	n.AsWidget().dirty = false
	ui.pipeline.ScheduleLayout(h)
	for i := 0; i <= ui.nodes.Len(); i++ {
		w := n.AsWidget()
		w.measureValid = false
		w.arrangeValid = false
		if n, ok = ui.nodes.Get(w.parent); !ok {
			return
		}
	}
}

// NeedsLayout reports whether UpdateLayout has work to do.
func (ui *UserInterface) NeedsLayout() bool {
	return ui.pipeline.NeedsLayout()
}

// propagateDirty turns widget dirty flags set by setters into
// invalidations.
func (ui *UserInterface) propagateDirty() {
	for h, n := range ui.nodes.All() {
		if n.AsWidget().dirty {
			ui.InvalidateLayout(h)
		}
	}
}

// UpdateLayout measures and arranges the tree from the root against the
// screen size. Nodes whose inputs did not change keep their cached
// results. It returns the number of nodes that were scheduled, or -1 when
// nothing was dirty and the pass was skipped.
func (ui *UserInterface) UpdateLayout() int {
	ui.enter(PhaseLayout)
	defer ui.leave()

	ui.propagateDirty()

	if !ui.pipeline.NeedsLayout() {
		return -1
	}
	flushed := ui.pipeline.FlushLayoutForRoot(ui.root, func(root Handle) {
		ui.measure(root, ui.screenSize)
		ui.arrange(root, graphics.Rect{W: ui.screenSize.X, H: ui.screenSize.Y})
	})
	return len(flushed)
}

func (ui *UserInterface) measure(h Handle, available graphics.Vec2) graphics.Vec2 {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return graphics.Vec2{}
	}
	w := n.AsWidget()
	available = layout.SanitizeAvailable(available)
	if w.measureValid && w.prevMeasure == available {
		return w.desiredSize
	}
	w.measureValid = true
	w.arrangeValid = false
	w.prevMeasure = available

	if w.hidden {
		w.desiredSize = graphics.Vec2{}
		return w.desiredSize
	}

	width, height := w.explicitSize()
	minSize, maxSize := w.minSize, w.MaxSize()
	margin := w.margin.Sum()

	inner := layout.Shrink(available, margin)
	inner = layout.ApplyExplicit(inner, width, height)
	inner = layout.Clamp(inner, minSize, maxSize)

	desired := n.MeasureOverride(ui.pass, inner)
	desired = layout.ApplyExplicit(desired, width, height)
	desired = layout.Clamp(desired, minSize, maxSize)
	desired = layout.SanitizeDesired(desired)
	desired = desired.Add(margin).Min(available)

	w.desiredSize = desired
	return desired
}

func (ui *UserInterface) arrange(h Handle, rect graphics.Rect) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return
	}
	w := n.AsWidget()
	rect = sanitizeRect(rect)

	var parentScreen graphics.Vec2
	if parent, ok := ui.nodes.Get(w.parent); ok {
		parentScreen = parent.AsWidget().screenPosition
	}
	if w.arrangeValid && w.prevArrange == rect && w.prevParentScreen == parentScreen {
		return
	}
	w.arrangeValid = true
	w.prevArrange = rect
	w.prevParentScreen = parentScreen

	if w.hidden {
		w.actualLocalPosition = rect.Position()
		w.screenPosition = parentScreen.Add(w.actualLocalPosition)
		w.actualSize = graphics.Vec2{}
		return
	}

	width, height := w.explicitSize()
	minSize, maxSize := w.minSize, w.MaxSize()
	margin := w.margin.Sum()

	offered := layout.Shrink(rect.Size(), margin)
	size := layout.AlignedSize(offered, layout.Shrink(w.desiredSize, margin), w.horizontalAlignment, w.verticalAlignment)
	size = layout.ApplyExplicit(size, width, height)
	size = layout.Clamp(size, minSize, maxSize)
	size = layout.SanitizeDesired(size)

	offset := layout.AlignOffset(offered, size, w.horizontalAlignment, w.verticalAlignment)
	w.actualLocalPosition = rect.Position().Add(w.margin.Offset()).Add(offset)
	w.screenPosition = parentScreen.Add(w.actualLocalPosition)

	actual := n.ArrangeOverride(ui.pass, size)
	w.actualSize = layout.SanitizeDesired(layout.Clamp(actual, minSize, maxSize))
}

func sanitizeRect(r graphics.Rect) graphics.Rect {
	if !isFinite(r.X) {
		r.X = 0
	}
	if !isFinite(r.Y) {
		r.Y = 0
	}
	size := layout.SanitizeDesired(r.Size())
	r.W, r.H = size.X, size.Y
	return r
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
