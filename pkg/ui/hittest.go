package ui

import "github.com/go-drift/uicore/pkg/graphics"

// HitTestResult lists the nodes under a point, topmost first.
type HitTestResult struct {
	Entries []Handle
}

// HitTestAll collects every visible node whose screen bounds contain p,
// using the bounds of the last layout pass. A node drawn later lies on top
// of one drawn earlier, so children come before their parent and later
// siblings before earlier ones.
func (ui *UserInterface) HitTestAll(p graphics.Vec2) *HitTestResult {
	result := &HitTestResult{}
	ui.hitTest(ui.root, p, result)
	return result
}

// HitTest returns the topmost enabled node under p.
func (ui *UserInterface) HitTest(p graphics.Vec2) (Handle, bool) {
	for _, h := range ui.HitTestAll(p).Entries {
		if w, ok := ui.Widget(h); ok && w.Enabled() {
			return h, true
		}
	}
	return NoHandle(), false
}

func (ui *UserInterface) hitTest(h Handle, p graphics.Vec2, result *HitTestResult) {
	n, ok := ui.nodes.Get(h)
	if !ok {
		return
	}
	w := n.AsWidget()
	if w.hidden {
		return
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		ui.hitTest(w.children[i], p, result)
	}
	if w.ScreenBounds().Contains(p) {
		result.Entries = append(result.Entries, h)
	}
}
