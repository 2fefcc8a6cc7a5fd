package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SchemaVersion is the theme file version written by this package.
// Files with the same major version are accepted.
const SchemaVersion = "v1.0.0"

// FileName is the theme file LoadOptional looks for.
const FileName = "widgetkit.yaml"

// Parse overlays the YAML document data on the default theme.
// Keys missing from the document keep their default values. Unknown keys
// are ignored; Lint reports them.
func Parse(data []byte) (*ThemeData, error) {
	t := DefaultTheme()
	t.Version = ""
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	if t.Version == "" {
		t.Version = SchemaVersion
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile reads and parses the theme file at path.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadOptional reads widgetkit.yaml from dir if present and returns the
// default theme otherwise.
func LoadOptional(dir string) (*ThemeData, error) {
	t, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return DefaultTheme(), nil
	}
	return t, err
}

// Validate checks the version and the limits widgets rely on.
func (t *ThemeData) Validate() error {
	if !semver.IsValid(t.Version) {
		return fmt.Errorf("invalid theme version %q", t.Version)
	}
	if want := semver.Major(SchemaVersion); semver.Major(t.Version) != want {
		return fmt.Errorf("unsupported theme version %s (want %s.x.x)", t.Version, want)
	}
	if t.TextBox.MaxLength < 0 {
		return fmt.Errorf("textBox.maxLength must not be negative, got %d", t.TextBox.MaxLength)
	}
	if t.FlashCard.TermMax < 0 {
		return fmt.Errorf("flashCard.termMax must not be negative, got %d", t.FlashCard.TermMax)
	}
	if t.FlashCard.DefinitionLine <= 0 || t.FlashCard.DefinitionMax < t.FlashCard.DefinitionLine {
		return fmt.Errorf("flashCard definition limits must satisfy 0 < definitionLine <= definitionMax, got %d and %d",
			t.FlashCard.DefinitionLine, t.FlashCard.DefinitionMax)
	}
	if t.TextBox.CaretBlink <= 0 || t.ProgressBar.IndeterminatePeriod <= 0 {
		return fmt.Errorf("animation periods must be positive, got caretBlink %v and indeterminatePeriod %v",
			t.TextBox.CaretBlink, t.ProgressBar.IndeterminatePeriod)
	}
	if t.ScrollBar.Height <= 0 {
		return fmt.Errorf("scrollBar.height must be positive, got %v", t.ScrollBar.Height)
	}
	return nil
}

// Encode returns t as a YAML document that Parse accepts.
func Encode(t *ThemeData) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode theme: %w", err)
	}
	return data, nil
}
