package layout

import "slices"

// PipelineOwner tracks nodes that need layout.
//
// MarkNeedsLayout on a node walks up to the root invalidating each ancestor;
// the node itself is scheduled here. The owner also carries the global
// "needs layout" flag, which can be raised without a node (a surface resize).
// FlushLayoutForRoot runs one full layout from the root and clears both.
type PipelineOwner[K comparable] struct {
	dirtyLayout    []K        // scheduled nodes, in scheduling order
	dirtyLayoutSet map[K]bool // O(1) dedup check
	needsLayout    bool
	depth          func(K) int
}

// NewPipelineOwner returns an owner that sorts flushed nodes with depth.
// A nil depth keeps scheduling order.
func NewPipelineOwner[K comparable](depth func(K) int) *PipelineOwner[K] {
	return &PipelineOwner[K]{depth: depth}
}

// ScheduleLayout marks a node as needing layout.
func (p *PipelineOwner[K]) ScheduleLayout(node K) {
	if p.dirtyLayoutSet == nil {
		p.dirtyLayoutSet = make(map[K]bool)
	}
	p.needsLayout = true
	if p.dirtyLayoutSet[node] {
		return
	}
	p.dirtyLayoutSet[node] = true
	p.dirtyLayout = append(p.dirtyLayout, node)
}

// RequestLayout raises the global flag without scheduling a node.
func (p *PipelineOwner[K]) RequestLayout() {
	p.needsLayout = true
}

// NeedsLayout reports if a layout pass is pending.
func (p *PipelineOwner[K]) NeedsLayout() bool {
	return p.needsLayout
}

// DirtyLayoutCount returns the number of scheduled nodes.
func (p *PipelineOwner[K]) DirtyLayoutCount() int {
	return len(p.dirtyLayout)
}

// IsScheduled reports whether node is waiting for layout.
func (p *PipelineOwner[K]) IsScheduled(node K) bool {
	return p.dirtyLayoutSet[node]
}

// FlushLayoutForRoot runs layout from root if anything is pending and
// returns the nodes that were scheduled, shallowest first. Nodes scheduled
// while run executes stay pending for the next flush.
func (p *PipelineOwner[K]) FlushLayoutForRoot(root K, run func(root K)) []K {
	if !p.needsLayout {
		return nil
	}

	dirty := p.dirtyLayout
	p.dirtyLayout = nil
	p.dirtyLayoutSet = nil
	p.needsLayout = false

	run(root)

	if p.depth != nil {
		slices.SortStableFunc(dirty, func(a, b K) int {
			return p.depth(a) - p.depth(b)
		})
	}
	return dirty
}

// Forget drops a node from the schedule, used when the node is removed.
func (p *PipelineOwner[K]) Forget(node K) {
	if !p.dirtyLayoutSet[node] {
		return
	}
	delete(p.dirtyLayoutSet, node)
	p.dirtyLayout = slices.DeleteFunc(p.dirtyLayout, func(k K) bool { return k == node })
}
