package widgets

import "fmt"

// WidgetState is the interaction phase shared by every widget.
type WidgetState uint8

const (
	// Idle is the initial resting state.
	Idle WidgetState = iota
	// Ready means the pointer is hovering over the widget.
	Ready
	// Executing means the pointer is pressed or an interaction is in progress.
	Executing
	// Active is a persistent toggled-on state, such as a checked checkbox.
	Active
)

func (s WidgetState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Executing:
		return "executing"
	case Active:
		return "active"
	default:
		return fmt.Sprintf("WidgetState(%d)", int(s))
	}
}

// Trigger is an input that may move a widget between states.
type Trigger uint8

const (
	TriggerEnter Trigger = iota
	TriggerLeave
	TriggerPress
	TriggerRelease
	// TriggerReleaseOver is a release with the pointer still on the widget.
	TriggerReleaseOver
	TriggerToggle
	TriggerSelect
	TriggerEmpty
	TriggerProgress
	TriggerComplete
)

func (t Trigger) String() string {
	switch t {
	case TriggerEnter:
		return "enter"
	case TriggerLeave:
		return "leave"
	case TriggerPress:
		return "press"
	case TriggerRelease:
		return "release"
	case TriggerReleaseOver:
		return "release-over"
	case TriggerToggle:
		return "toggle"
	case TriggerSelect:
		return "select"
	case TriggerEmpty:
		return "empty"
	case TriggerProgress:
		return "progress"
	case TriggerComplete:
		return "complete"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// TransitionTable maps a state and a trigger to the next state.
// Missing entries mean the trigger is ignored in that state.
type TransitionTable map[WidgetState]map[Trigger]WidgetState

// Next returns the state reached from s on t, and whether the table has an
// entry for it.
func (tt TransitionTable) Next(s WidgetState, t Trigger) (WidgetState, bool) {
	next, ok := tt[s][t]
	return next, ok
}

// Transition tables for each widget kind.
var (
	// ButtonTransitions: hover, press and release.
	//
	//	Idle ──enter──► Ready ──press──► Executing
	//	  ▲               │  ▲              │
	//	  └─────leave─────┘  └───release────┤
	//	  ▲                                 │
	//	  └──────────────leave──────────────┘
	ButtonTransitions = TransitionTable{
		Idle:      {TriggerEnter: Ready},
		Ready:     {TriggerLeave: Idle, TriggerPress: Executing},
		Executing: {TriggerRelease: Ready, TriggerLeave: Idle},
	}

	// ToggleTransitions flip between Idle and Active. Checkboxes and flash
	// cards use it; hover does not participate.
	ToggleTransitions = TransitionTable{
		Idle:   {TriggerToggle: Active},
		Active: {TriggerToggle: Idle},
	}

	// RadioTransitions become Active on the first selection and stay there.
	RadioTransitions = TransitionTable{
		Idle:   {TriggerSelect: Active},
		Active: {TriggerSelect: Active},
	}

	// HoverTransitions track only whether the pointer is over the widget.
	HoverTransitions = TransitionTable{
		Idle:  {TriggerEnter: Ready},
		Ready: {TriggerLeave: Idle},
	}

	// DragTransitions: a press starts a drag that only a release ends,
	// whatever the pointer crosses meanwhile. A release over the widget
	// leaves it hovered.
	DragTransitions = TransitionTable{
		Idle:      {TriggerEnter: Ready, TriggerPress: Executing},
		Ready:     {TriggerLeave: Idle, TriggerPress: Executing},
		Executing: {TriggerRelease: Idle, TriggerReleaseOver: Ready},
	}

	// ProgressTransitions follow the fill: empty, partial or full.
	ProgressTransitions = TransitionTable{
		Idle:      {TriggerProgress: Executing, TriggerComplete: Active},
		Executing: {TriggerEmpty: Idle, TriggerComplete: Active},
		Active:    {TriggerEmpty: Idle, TriggerProgress: Executing},
	}
)

type stateMachine struct {
	state WidgetState
	table TransitionTable
}

// fire applies t and reports the resulting transition. changed is false
// when the table ignores t or maps it back onto the current state.
func (m *stateMachine) fire(t Trigger) (from, to WidgetState, changed bool) {
	from = m.state
	next, ok := m.table.Next(from, t)
	if !ok {
		return from, from, false
	}
	m.state = next
	return from, next, next != from
}
