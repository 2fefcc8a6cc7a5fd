// Package theme holds the colors, sizes and limits widgets are built with.
//
// A ThemeData is plain data: widgets copy what they need at construction.
// DefaultTheme is the pastel look; LoadFile overlays a YAML file on top
// of it.
package theme

import "github.com/go-drift/widgetkit/pkg/graphics"

// ThemeData contains all theme configuration for a toolkit.
type ThemeData struct {
	// Version is the theme file schema version, e.g. "v1.0.0".
	Version string `yaml:"version,omitempty"`

	// ColorScheme defines the shared palette.
	ColorScheme ColorScheme `yaml:"colors"`

	Button      ButtonThemeData      `yaml:"button"`
	Checkbox    CheckboxThemeData    `yaml:"checkbox"`
	Radio       RadioThemeData       `yaml:"radio"`
	TextBox     TextBoxThemeData     `yaml:"textBox"`
	ScrollBar   ScrollBarThemeData   `yaml:"scrollBar"`
	ProgressBar ProgressBarThemeData `yaml:"progressBar"`
	FlashCard   FlashCardThemeData   `yaml:"flashCard"`
}

// ColorScheme is the palette shared by every widget.
type ColorScheme struct {
	// Idle is the resting fill.
	Idle graphics.Color `yaml:"idle"`
	// Hover is the fill while the pointer is over a widget, and the
	// "on" fill of toggles.
	Hover graphics.Color `yaml:"hover"`
	// Pressed is the fill while pressed and the selected radio fill.
	Pressed graphics.Color `yaml:"pressed"`
	// Surface is the background of text boxes and cards.
	Surface graphics.Color `yaml:"surface"`
	// OnSurface is the text and caret color.
	OnSurface graphics.Color `yaml:"onSurface"`
}

// DefaultColorScheme returns the pastel palette.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Idle:      graphics.MustHex("#fcd5ce"),
		Hover:     graphics.MustHex("#ffb5a7"),
		Pressed:   graphics.MustHex("#e0fbfc"),
		Surface:   graphics.ColorWhite,
		OnSurface: graphics.ColorBlack,
	}
}

// DefaultTheme returns the default theme.
func DefaultTheme() *ThemeData {
	colors := DefaultColorScheme()
	return &ThemeData{
		Version:     SchemaVersion,
		ColorScheme: colors,
		Button:      DefaultButtonTheme(),
		Checkbox:    DefaultCheckboxTheme(),
		Radio:       DefaultRadioTheme(),
		TextBox:     DefaultTextBoxTheme(),
		ScrollBar:   DefaultScrollBarTheme(),
		ProgressBar: DefaultProgressBarTheme(),
		FlashCard:   DefaultFlashCardTheme(),
	}
}
