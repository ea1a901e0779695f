package testing

import (
	"testing"
	"time"

	"github.com/go-drift/uicore/pkg/graphics"
	"github.com/go-drift/uicore/pkg/rendering"
	"github.com/go-drift/uicore/pkg/ui"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
	// FrameDuration is how far Pump advances the clock.
	FrameDuration = 16 * time.Millisecond
)

// Tester drives a UserInterface through frames with a fake clock and keeps
// the draw output of the last frame.
type Tester struct {
	ui      *ui.UserInterface
	clock   *FakeClock
	drawing *rendering.DrawingContext
	frames  int
}

// NewTester creates a tester with a default-sized surface.
func NewTester() *Tester {
	opts := ui.DefaultOptions()
	opts.ScreenSize = graphics.V2(DefaultTestWidth, DefaultTestHeight)
	opts.FrameBudget = 0
	return &Tester{ui: ui.New(opts), clock: NewFakeClock()}
}

// NewTesterWithT creates a tester and fails t if a frame is left running
// when the test ends.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(func() {
		if p := tester.ui.Phase(); p != ui.PhaseIdle {
			t.Errorf("test ended during %v phase", p)
		}
	})
	return tester
}

// UI returns the UserInterface under test.
func (t *Tester) UI() *ui.UserInterface {
	return t.ui
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// SetSize resizes the surface.
func (t *Tester) SetSize(size graphics.Vec2) {
	t.ui.SetScreenSize(size)
}

// Pump advances the clock by one frame and runs update, layout and draw.
func (t *Tester) Pump() {
	t.clock.Advance(FrameDuration)
	t.drawing = t.ui.Frame(t.clock.Tick())
	t.frames++
}

// PumpLayout runs only the layout pass. It reports whether layout ran.
func (t *Tester) PumpLayout() bool {
	return t.ui.UpdateLayout() >= 0
}

// Frames returns the number of frames pumped.
func (t *Tester) Frames() int {
	return t.frames
}

// Commands returns the draw commands of the last pumped frame.
func (t *Tester) Commands() []rendering.Command {
	if t.drawing == nil {
		return nil
	}
	return t.drawing.Commands()
}

// Drawing returns the drawing context of the last pumped frame, or nil.
func (t *Tester) Drawing() *rendering.DrawingContext {
	return t.drawing
}

// Replay sends the last frame's commands to a recording renderer and
// returns it.
func (t *Tester) Replay() (*RecordingRenderer, error) {
	r := &RecordingRenderer{}
	if t.drawing == nil {
		return r, nil
	}
	return r, t.drawing.Replay(r)
}

// Find evaluates a finder against the tree.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		matches: finder.Evaluate(t.ui),
		finder:  finder,
		ui:      t.ui,
	}
}

// FindByName returns the first node named name.
func (t *Tester) FindByName(name string) (ui.Handle, bool) {
	return t.ui.FindByName(name)
}
