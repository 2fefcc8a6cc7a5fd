package theme

import "time"

// ButtonThemeData defines default sizing for buttons.
type ButtonThemeData struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BorderRadius float64 `yaml:"borderRadius"`
	// LabelMargin is added to the width, on top of the text length, each
	// time a label is set.
	LabelMargin float64 `yaml:"labelMargin"`
}

// DefaultButtonTheme returns the default button theme.
func DefaultButtonTheme() ButtonThemeData {
	return ButtonThemeData{Width: 100, Height: 50, BorderRadius: 10, LabelMargin: 100}
}

// CheckboxThemeData defines default sizing for checkboxes.
type CheckboxThemeData struct {
	Size float64 `yaml:"size"`
	// LabelGap is the distance from the box's left edge to its caption.
	LabelGap float64 `yaml:"labelGap"`
	// Mark is the glyph shown while checked.
	Mark string `yaml:"mark"`
}

// DefaultCheckboxTheme returns the default checkbox theme.
func DefaultCheckboxTheme() CheckboxThemeData {
	return CheckboxThemeData{Size: 50, LabelGap: 60, Mark: "✓"}
}

// RadioThemeData defines default sizing for radio groups.
type RadioThemeData struct {
	Diameter float64 `yaml:"diameter"`
	// Pitch is the vertical distance between option origins.
	Pitch    float64 `yaml:"pitch"`
	LabelGap float64 `yaml:"labelGap"`
}

// DefaultRadioTheme returns the default radio theme.
func DefaultRadioTheme() RadioThemeData {
	return RadioThemeData{Diameter: 30, Pitch: 40, LabelGap: 60}
}

// TextBoxThemeData defines sizing and editing limits for text boxes.
type TextBoxThemeData struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BorderWidth float64 `yaml:"borderWidth"`
	// Padding is the horizontal inset of the text and caret.
	Padding float64 `yaml:"padding"`
	// MaxLength caps the buffer length in characters.
	MaxLength int `yaml:"maxLength"`
	// SpaceAdvance is how far the caret moves for a space.
	SpaceAdvance float64 `yaml:"spaceAdvance"`
	CaretWidth   float64 `yaml:"caretWidth"`
	CaretHeight  float64 `yaml:"caretHeight"`
	// CaretBlink is the duration of one on or off phase.
	CaretBlink time.Duration `yaml:"caretBlink"`
}

// DefaultTextBoxTheme returns the default text box theme.
func DefaultTextBoxTheme() TextBoxThemeData {
	return TextBoxThemeData{
		Width:        300,
		Height:       50,
		BorderWidth:  3,
		Padding:      20,
		MaxLength:    250,
		SpaceAdvance: 5,
		CaretWidth:   2,
		CaretHeight:  15,
		CaretBlink:   500 * time.Millisecond,
	}
}

// ScrollBarThemeData defines default sizing for scroll bars.
type ScrollBarThemeData struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultScrollBarTheme returns the default scroll bar theme.
func DefaultScrollBarTheme() ScrollBarThemeData {
	return ScrollBarThemeData{Width: 50, Height: 300}
}

// ProgressBarThemeData defines default sizing for progress bars.
type ProgressBarThemeData struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// IndeterminatePeriod is the duration of one sweep of the indeterminate fill.
	IndeterminatePeriod time.Duration `yaml:"indeterminatePeriod"`
}

// DefaultProgressBarTheme returns the default progress bar theme.
func DefaultProgressBarTheme() ProgressBarThemeData {
	return ProgressBarThemeData{Width: 300, Height: 26, IndeterminatePeriod: time.Second}
}

// FlashCardThemeData defines sizing and truncation limits for flash cards.
type FlashCardThemeData struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// TermMax is the maximum term length in characters.
	TermMax int `yaml:"termMax"`
	// DefinitionLine is the column limit of the first definition line.
	DefinitionLine int `yaml:"definitionLine"`
	// DefinitionMax is the total number of definition characters kept.
	DefinitionMax int `yaml:"definitionMax"`
}

// DefaultFlashCardTheme returns the default flash card theme.
func DefaultFlashCardTheme() FlashCardThemeData {
	return FlashCardThemeData{Width: 280, Height: 150, TermMax: 26, DefinitionLine: 30, DefinitionMax: 60}
}
