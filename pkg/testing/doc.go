// Package testing drives widgets on a headless scene for tests.
//
// # Quick Start
//
// Create a tester, build widgets with its toolkit, and feed it input:
//
//	func TestSubmit(t *testing.T) {
//	    tester := wktest.NewWidgetTesterWithT(t)
//	    btn := tester.Toolkit().NewButton()
//	    btn.Label("Submit")
//
//	    clicked := false
//	    btn.OnClick(func(widgets.ClickEvent) { clicked = true })
//	    tester.Tap(btn.Bounds().Center())
//
//	    if !clicked {
//	        t.Error("expected click")
//	    }
//	}
//
// # Keyboard
//
// Type sends one key event per rune; spaces arrive as Space key presses:
//
//	box.Focus()
//	tester.Type("hi there")
//	tester.Backspace()
//
// # Snapshot Testing
//
// Capture the visible scene and compare it with a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/form.snapshot.json")
//
// Update golden files with:
//
//	WIDGETKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The tester installs a fake animation clock. Advance moves it and steps
// running animations:
//
//	tester.Advance(250 * time.Millisecond)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wktest "github.com/go-drift/widgetkit/pkg/testing"
package testing
