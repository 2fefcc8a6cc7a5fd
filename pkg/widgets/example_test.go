package widgets_test

import (
	"fmt"
	"os"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

// This example wires a button and reacts to clicks.
func ExampleToolkit_NewButton() {
	sc := memscene.New()
	tk := widgets.New(sc)

	btn := tk.NewButton()
	btn.Label("Save")
	btn.Move(10, 10)
	btn.OnClick(func(widgets.ClickEvent) { fmt.Println("saved") })

	sc.Click(btn.Bounds().Center())
	fmt.Println(btn.Bounds())
	// Output:
	// saved
	// (10, 10)-(238, 60)
}

// This example selects the second option of a radio group.
func ExampleToolkit_NewRadioGroup() {
	sc := memscene.New()
	rg := widgets.New(sc).NewRadioGroup(3)
	rg.Label(1, "Small")
	rg.Label(2, "Medium")
	rg.Label(3, "Large")
	rg.OnClick(func(ev widgets.RadioEvent) { fmt.Println("clicked option", ev.Option) })

	sc.Click(graphics.Pt(15, 55))
	fmt.Println("selected", rg.Selected())
	// Output:
	// clicked option 2
	// selected 2
}

// This example shows how configuration problems are reported instead of
// panicking.
func ExampleToolkit_NewRadioGroup_tooFewOptions() {
	prev := errors.SetHandler(&errors.LogHandler{Out: os.Stdout})
	defer errors.SetHandler(prev)

	rg := widgets.New(memscene.New()).NewRadioGroup(1)
	fmt.Println("options:", rg.Len())
	// Output:
	// [widgetkit error] widgets.RadioGroup.New: got 1: radio group needs at least 2 options
	// options: 1
}

// This example types into a focused text box.
func ExampleToolkit_NewTextBox() {
	sc := memscene.New()
	tb := widgets.New(sc).NewTextBox()
	tb.OnChange(func(ev widgets.TextEvent) { fmt.Printf("%q\n", ev.Text) })

	tb.Focus()
	sc.Key(scene.KeyEvent{Code: "KeyH", Key: "h"})
	sc.Key(scene.KeyEvent{Code: "KeyI", Key: "i"})
	sc.Key(scene.KeyEvent{Code: scene.CodeBackspace, Key: "Backspace"})
	// Output:
	// "h"
	// "hi"
	// "h"
}

// This example reports when the fill drifts from the declared percentage.
func ExampleProgressBar_Increment() {
	pb := widgets.New(memscene.New()).NewProgressBar()
	pb.SetWidth(300)
	pb.SetInc(0)
	pb.OnIncrement(func(ev widgets.IncrementEvent) {
		fmt.Printf("fill %.0f (%.1f%%)\n", ev.FillWidth, ev.Percent)
	})

	for i := 0; i < 3; i++ {
		pb.Increment(20)
	}
	// Output:
	// fill 20 (6.7%)
	// fill 40 (13.3%)
	// fill 60 (20.0%)
}

// This example shows how a long definition is split over two lines.
func ExampleFlashCard_SetDefinition() {
	fc := widgets.New(memscene.New()).NewFlashCard()
	fc.SetTerm("User Experience (UX)")
	fc.SetDefinition("How a person feels when interacting with a product or service")

	first, second := fc.Definition()
	fmt.Println(fc.Term())
	fmt.Println(first)
	fmt.Println(second)
	// Output:
	// User Experience (UX)
	// How a person feels when
	// interacting with a product or servic
}
