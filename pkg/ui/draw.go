package ui

import "github.com/go-drift/uicore/pkg/rendering"

// Draw clears the drawing context and fills it by walking the tree from
// the root. Each node emits its own geometry before its children, so a
// container's background lies under its content. Hidden subtrees are
// skipped. Geometry a node leaves uncommitted is committed untextured
// once its Draw returns.
func (ui *UserInterface) Draw() *rendering.DrawingContext {
	ui.enter(PhaseDraw)
	defer ui.leave()

	ui.drawing.Clear()
	ui.drawNode(ui.root)
	return ui.drawing
}

func (ui *UserInterface) drawNode(h Handle) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return
	}
	w := n.AsWidget()
	if w.hidden {
		return
	}
	n.Draw(ui.drawing)
	if ui.drawing.PendingTriangles() > 0 {
		ui.drawing.Commit(rendering.Geometry, nil)
	}
	for _, child := range w.children {
		ui.drawNode(child)
	}
}
