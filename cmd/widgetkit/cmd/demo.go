package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/config"
	"github.com/go-drift/widgetkit/cmd/widgetkit/internal/termview"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/scene"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Run the terminal widget demo",
		Long: `Run every widget in a full-screen terminal demo.

The mouse hovers, presses and drags. Keys go to the focused text box;
tab moves focus and esc or ctrl+c quits.

Flags:
  -theme FILE   Theme file (default: ./widgetkit.yaml if present)
  -verbose      Include stack traces in error reports

Defaults come from ~/.config/widgetkit/config.toml (or $WIDGETKIT_CONFIG)
and WIDGETKIT_THEME, WIDGETKIT_VERBOSE and WIDGETKIT_FRAME.`,
		Usage: "widgetkit demo [-theme FILE] [-verbose]",
		Run:   runDemo,
	})
}

type frameMsg time.Time

func frame(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg { return frameMsg(t) })
}

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d62828")).Bold(true)
)

func runDemo(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	themePath := fs.String("theme", cfg.Theme, "theme file")
	verbose := fs.Bool("verbose", cfg.Verbose, "include stack traces in error reports")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, restore := prepareDemo(*themePath, *verbose)
	defer restore()
	defer errors.Recover("widgetkit.demo")
	m.frameEvery = cfg.Frame

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo: %w", err)
	}
	return nil
}

// prepareDemo routes error reports into the status line log, then loads the
// theme and builds the model. restore puts the previous handler back.
func prepareDemo(themePath string, verbose bool) (m *demoModel, restore func()) {
	errs := &bytes.Buffer{}
	prev := errors.SetHandler(&errors.LogHandler{Verbose: verbose, Out: errs})

	th, err := loadTheme(themePath)
	if err != nil {
		errors.Report(&errors.ToolkitError{Op: "widgetkit.demo", Kind: errors.KindTheme, Err: err})
		th = theme.DefaultTheme()
	}
	m = newDemoModel(th)
	m.errs = errs
	return m, func() { errors.SetHandler(prev) }
}

func loadTheme(path string) (*theme.ThemeData, error) {
	if path == "" {
		return theme.LoadOptional(".")
	}
	return theme.LoadFile(path)
}

// demoModel is the bubbletea model hosting the widget scene.
type demoModel struct {
	scene  *memscene.Scene
	tk     *widgets.Toolkit
	canvas *termview.Canvas
	status string
	errs   *bytes.Buffer
	// frameEvery paces animation steps.
	frameEvery time.Duration

	progress *widgets.ProgressBar
	card     *widgets.FlashCard
}

type deck struct {
	term, definition string
}

var decks = []deck{
	{"User Experience (UX)", "How a person feels when interacting with a product or service"},
	{"Affordance", "A property that suggests how an object should be used"},
	{"Feedback", "Information returned to a user about the result of an action"},
	{"Latency", "Time between a request and its response"},
	{"Idempotent", "An operation that has the same effect when repeated"},
}

func newDemoModel(th *theme.ThemeData) *demoModel {
	sc := memscene.New()
	m := &demoModel{
		scene:      sc,
		tk:         widgets.New(sc, widgets.WithTheme(th)),
		canvas:     termview.New(120, 40),
		errs:       &bytes.Buffer{},
		status:     "hover, click or drag the widgets",
		frameEvery: time.Second / 30,
	}
	m.build()
	return m
}

// build lays the widgets out on a grid of terminal cells.
func (m *demoModel) build() {
	at := func(col, row int) (float64, float64) {
		return float64(col * termview.CellWidth), float64(row * termview.CellHeight)
	}

	m.progress = m.tk.NewProgressBar()
	m.progress.Move(at(40, 1))
	m.progress.SetInc(0)
	m.progress.OnIncrement(func(ev widgets.IncrementEvent) {
		m.status = fmt.Sprintf("progress %.0f%%", ev.Percent)
	})

	btn := m.tk.NewButton()
	btn.Label("Click!")
	btn.Move(at(2, 1))
	btn.OnClick(func(widgets.ClickEvent) { m.progress.Increment(20) })

	cb := m.tk.NewCheckbox()
	cb.Label("hi")
	cb.Move(at(2, 7))
	cb.OnStateChange(func(ev widgets.StateEvent) {
		m.progress.SetIndeterminate(ev.To == widgets.Active)
		m.status = fmt.Sprintf("busy: %v", ev.To == widgets.Active)
	})

	rg := m.tk.NewRadioGroup(len(decks))
	for i := range decks {
		rg.Label(i+1, fmt.Sprintf("Choice %d", i+1))
	}
	rg.Move(at(2, 13))
	rg.OnClick(func(ev widgets.RadioEvent) {
		if ev.Option == 0 {
			return
		}
		d := decks[ev.Option-1]
		m.card.SetTerm(d.term)
		m.card.SetDefinition(d.definition)
		if m.card.Flipped() {
			m.card.Flip()
		}
		m.status = "card: " + d.term
	})

	tb := m.tk.NewTextBox()
	tb.Move(at(2, 30))
	tb.OnChange(func(ev widgets.TextEvent) {
		m.status = fmt.Sprintf("typed %q", strings.ReplaceAll(ev.Text, "\u00a0", " "))
	})

	m.card = m.tk.NewFlashCard()
	m.card.Move(at(40, 5))
	m.card.OnFlip(func(ev widgets.FlipEvent) {
		m.status = fmt.Sprintf("flipped: %v", ev.Flipped)
	})
	rg.Select(1)
	m.card.SetTerm(decks[0].term)
	m.card.SetDefinition(decks[0].definition)

	sb := m.tk.NewScrollBar(m.tk.Theme().ScrollBar.Height)
	sb.Move(at(86, 1))
	sb.OnScroll(func(ev widgets.ScrollEvent) {
		m.status = fmt.Sprintf("scroll %s %s", sb.ScrollPosition(), ev.Direction)
	})
}

func (m *demoModel) Init() tea.Cmd {
	return frame(m.frameEvery)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Leave room for the status line.
		m.canvas.Resize(msg.Width, max(msg.Height-1, 0))
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.tk.Focus().MoveFocus(1)
			return m, nil
		}
		if ev, ok := keyEvent(msg); ok {
			m.scene.Key(ev)
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case frameMsg:
		m.scene.Pump()
		return m, frame(m.frameEvery)
	}
	return m, nil
}

func (m *demoModel) mouse(msg tea.MouseMsg) {
	p := termview.ToScene(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.scene.PointerMove(p)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.scene.PointerDown(p)
		}
	case tea.MouseActionRelease:
		m.scene.PointerUp(p)
	}
}

// keyEvent translates a terminal key into a scene key event. Terminals do
// not report modifier keys on their own, so shift never arrives.
func keyEvent(msg tea.KeyMsg) (scene.KeyEvent, bool) {
	switch msg.Type {
	case tea.KeyBackspace:
		return scene.KeyEvent{Code: scene.CodeBackspace, Key: "Backspace"}, true
	case tea.KeySpace:
		return scene.KeyEvent{Code: scene.CodeSpace, Key: " "}, true
	case tea.KeyEnter:
		return scene.KeyEvent{Code: scene.CodeEnter, Key: "Enter"}, true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return scene.KeyEvent{}, false
		}
		r := msg.Runes[0]
		return scene.KeyEvent{Code: keyCode(r), Key: string(r)}, true
	}
	return scene.KeyEvent{}, false
}

func keyCode(r rune) string {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r))
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	default:
		return "Unidentified"
	}
}

func (m *demoModel) View() string {
	m.canvas.Clear()
	m.canvas.Draw(m.scene)
	status := statusStyle.Render(m.status)
	if line := lastReport(m.errs.String()); line != "" {
		status = errorStyle.Render(line)
	}
	return m.canvas.String() + "\n" + status
}

// lastReport returns the headline of the most recent error report,
// skipping stack trace lines.
func lastReport(log string) string {
	lines := strings.Split(log, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], "[widgetkit ") {
			return lines[i]
		}
	}
	return ""
}
