// Package testing provides a harness for exercising a UserInterface in
// tests without a real renderer.
//
// # Quick Start
//
// Build a tree, pump a frame, then assert on layout and draw output:
//
//	func TestPanel(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    ui.NewImageBuilder(ui.NewWidgetBuilder().WithName("logo").WithWidth(32)).
//	        Build(tester.UI())
//	    tester.Pump()
//
//	    logo := tester.Find(uitest.ByName("logo")).Widget()
//	    if logo.ActualSize().X != 32 {
//	        t.Errorf("width = %v, want 32", logo.ActualSize().X)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the node tree with its bounds and the draw commands of the last
// frame, and compare them with a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/panel.snapshot.json")
//
// Update snapshots with:
//
//	UICORE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Time
//
// Each Pump advances the fake clock by one frame and passes the elapsed
// time to Update. Advance the clock to simulate longer gaps:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/uicore/pkg/testing"
package testing
