package ui

import (
	"log"
	"sync"
	"time"

	"github.com/go-drift/uicore/pkg/rendering"
)

const frameTraceSamplesDefault = 240

// FrameStats describes one Frame.
type FrameStats struct {
	UpdateMs float64 `json:"updateMs"`
	LayoutMs float64 `json:"layoutMs"`
	DrawMs   float64 `json:"drawMs"`
	FrameMs  float64 `json:"frameMs"`

	Nodes       int `json:"nodes"`
	DirtyLayout int `json:"dirtyLayout"`
	Commands    int `json:"commands"`
	Triangles   int `json:"triangles"`

	LayoutSkipped bool `json:"layoutSkipped"`
	OverBudget    bool `json:"overBudget"`
}

// FrameTimeline is a chronological copy of recent frame stats.
type FrameTimeline struct {
	Samples    []FrameStats `json:"samples"`
	OverBudget int          `json:"overBudget"`
	BudgetMs   float64      `json:"budgetMs"`
}

// FrameTrace keeps the most recent frame stats in a ring buffer. It may be
// read from another goroutine while frames run.
type FrameTrace struct {
	mu         sync.RWMutex
	samples    []FrameStats
	index      int
	count      int
	overBudget int
	budget     time.Duration
}

// NewFrameTrace returns a trace holding capacity samples.
func NewFrameTrace(capacity int, budget time.Duration) *FrameTrace {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	return &FrameTrace{samples: make([]FrameStats, capacity), budget: budget}
}

// Capacity returns the buffer capacity.
func (t *FrameTrace) Capacity() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.samples)
}

// Add records a sample.
func (t *FrameTrace) Add(s FrameStats) {
	t.mu.Lock()
	t.samples[t.index] = s
	t.index = (t.index + 1) % len(t.samples)
	if t.count < len(t.samples) {
		t.count++
	}
	if s.OverBudget {
		t.overBudget++
	}
	t.mu.Unlock()
}

// Snapshot returns the samples oldest first.
func (t *FrameTrace) Snapshot() FrameTimeline {
	t.mu.RLock()
	defer t.mu.RUnlock()

	timeline := FrameTimeline{OverBudget: t.overBudget, BudgetMs: durationToMillis(t.budget)}
	if t.count == 0 {
		return timeline
	}
	result := make([]FrameStats, t.count)
	if t.count < len(t.samples) {
		copy(result, t.samples[:t.count])
	} else {
		copy(result, t.samples[t.index:])
		copy(result[len(t.samples)-t.index:], t.samples[:t.index])
	}
	timeline.Samples = result
	return timeline
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Update calls Update on every live node once, attached or not, in pool
// order.
func (ui *UserInterface) Update(dt float32) {
	ui.enter(PhaseUpdate)
	defer ui.leave()

	for _, n := range ui.nodes.All() {
		n.Update(dt)
	}
}

// Frame runs Update, UpdateLayout and Draw and records their timings.
func (ui *UserInterface) Frame(dt float32) *rendering.DrawingContext {
	start := time.Now()
	ui.Update(dt)
	updated := time.Now()
	dirty := ui.UpdateLayout()
	laidOut := time.Now()
	dc := ui.Draw()
	end := time.Now()

	stats := FrameStats{
		UpdateMs:      durationToMillis(updated.Sub(start)),
		LayoutMs:      durationToMillis(laidOut.Sub(updated)),
		DrawMs:        durationToMillis(end.Sub(laidOut)),
		FrameMs:       durationToMillis(end.Sub(start)),
		Nodes:         ui.nodes.Len(),
		DirtyLayout:   max(0, dirty),
		Commands:      len(dc.Commands()),
		Triangles:     len(dc.Triangles()),
		LayoutSkipped: dirty < 0,
	}
	if budget := ui.opts.FrameBudget; budget > 0 && end.Sub(start) > budget {
		stats.OverBudget = true
		if ui.opts.LogOverBudget {
			log.Printf("uicore: frame took %.2fms, budget %.2fms", stats.FrameMs, durationToMillis(budget))
		}
	}
	ui.stats = stats
	ui.trace.Add(stats)
	return dc
}

// LastFrame returns the stats of the most recent Frame.
func (ui *UserInterface) LastFrame() FrameStats { return ui.stats }

// FrameTrace returns the trace of recent frames.
func (ui *UserInterface) FrameTrace() *FrameTrace { return ui.trace }
