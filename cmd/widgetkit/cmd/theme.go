package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/widgetkit/pkg/theme"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Create or validate theme files",
		Long: `Create or validate widgetkit theme files.

A theme file is YAML. Keys it leaves out keep their default values.

Usage:
  widgetkit theme init [dir] [--force]   # Write dir/widgetkit.yaml with the defaults
  widgetkit theme check <file>           # Parse and validate a theme file

check also warns about keys that match no theme field, since those are
ignored when the file is loaded.`,
		Usage: "widgetkit theme <init|check> [args]",
		Run:   runTheme,
	})
}

func runTheme(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("subcommand is required (init or check)\n\nUsage: widgetkit theme <init|check> [args]")
	}
	switch args[0] {
	case "init":
		return themeInit(args[1:])
	case "check":
		if len(args) != 2 {
			return fmt.Errorf("check takes exactly one file")
		}
		return themeCheck(args[1])
	default:
		return fmt.Errorf("unknown theme subcommand %q (use init or check)", args[0])
	}
}

func themeInit(args []string) error {
	dir, force := ".", false
	for _, arg := range args {
		if arg == "--force" {
			force = true
			continue
		}
		dir = arg
	}

	path := filepath.Join(dir, theme.FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := theme.Encode(theme.DefaultTheme())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme: %w", err)
	}
	fmt.Fprintf(stdout, "Wrote %s\n", path)
	return nil
}

func themeCheck(path string) error {
	t, err := theme.LoadFile(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	warnings, err := theme.Lint(data)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(stdout, "%s: %s\n", path, w)
	}
	fmt.Fprintf(stdout, "%s: ok (version %s)\n", path, t.Version)
	return nil
}
