// Package widgets provides retained-mode UI components drawn into a scene.
//
// Widgets are created through a Toolkit bound to one scene.Scene. Each
// widget builds its visuals from scene primitives, listens to the raw
// pointer and keyboard events it needs, and reports semantic events
// through single-handler slots.
//
// # Construction
//
//	tk := widgets.New(sc, widgets.WithTheme(th))
//
//	btn := tk.NewButton()
//	btn.Label("Submit")
//	btn.Move(40, 40)
//	btn.OnClick(func(widgets.ClickEvent) { submit() })
//
// Constructors place widgets at the scene origin; Move positions them.
//
// # Handlers
//
// Every On* method registers exactly one handler. Registering again
// replaces the previous handler and registering nil clears it:
//
//	cb.OnClick(logClick)
//	cb.OnClick(countClick) // logClick no longer runs
//
// Handlers run synchronously on the goroutine delivering the input.
//
// # State
//
// Every widget carries a WidgetState (Idle, Ready, Executing, Active)
// driven by a per-kind TransitionTable. Visuals are recomputed from the
// state on each transition, before OnStateChange runs:
//
//	Button       Idle ⇄ Ready ⇄ Executing       hover, press, release
//	Checkbox     Idle ⇄ Active                  each click
//	RadioGroup   Idle → Active                  first selection
//	TextBox      Idle ⇄ Ready                   hover
//	ScrollBar    Idle ⇄ Ready, * → Executing    hover, drag
//	ProgressBar  Idle, Executing, Active        empty, partial, full
//	FlashCard    Idle ⇄ Active                  each flip
//
// # Keyboard Focus
//
// A scene has a single keyboard stream. Text boxes register with the
// toolkit's focus.FocusManager and only the focused box edits its buffer.
// Pressing a text box focuses it; pressing anywhere else blurs it.
//
// # Errors
//
// Invalid configuration, such as a radio group with fewer than two options
// or a label for an option that does not exist, is reported through
// errors.Report with KindConfig. The widget stays usable in a degraded form
// and nothing panics.
//
// Out-of-range input (text past the length cap, progress past the track,
// percentages outside 0..100) is clamped, wrapped or ignored silently.
package widgets
