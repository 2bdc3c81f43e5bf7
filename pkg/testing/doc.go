// Package testing provides a harness for testing widget trees.
//
// # Quick Start
//
// Create a tester, mount a widget, interact and wait for the result:
//
//	func TestSubmit(t *testing.T) {
//	    tester := weavetest.NewTesterWithT(t)
//	    clicked := make(chan struct{}, 1)
//	    button := widgets.NewButton().
//	        WithChild(widgets.NewLabel().WithText("Submit").MustBuild()).
//	        OnClick(func() { clicked <- struct{}{} }).
//	        MustBuild()
//	    if err := tester.PumpWidget(button); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if err := tester.Tap(weavetest.ByText("Submit")); err != nil {
//	        t.Fatalf("Tap failed: %v", err)
//	    }
//	    <-clicked
//	}
//
// Widgets run concurrently with the test. After sending input, wait for
// its effect with PumpUntil rather than asserting immediately.
//
// # Snapshot Testing
//
// Capture and compare the laid out tree and its drawing operations:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/form.snapshot.json")
//
// Update snapshots with:
//
//	WEAVE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import weavetest "github.com/go-drift/weave/pkg/testing"
package testing
