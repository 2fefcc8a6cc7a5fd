// Package config loads demo settings from a TOML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Demo holds the terminal demo settings.
type Demo struct {
	// Theme is a theme file path. Empty means ./widgetkit.yaml if present.
	Theme string
	// Verbose adds stack traces to error reports.
	Verbose bool
	// Frame is the interval between animation steps.
	Frame time.Duration
}

// Load reads configuration from file and env. Env var overrides use prefix
// WIDGETKIT_. The file is $WIDGETKIT_CONFIG, or config.toml under
// ~/.config/widgetkit when that is unset.
func Load() (Demo, error) {
	v := viper.New()

	v.SetDefault("theme", "")
	v.SetDefault("verbose", false)
	v.SetDefault("frame", time.Second/30)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WIDGETKIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "widgetkit"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WIDGETKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Demo{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Demo
	if err := v.Unmarshal(&c); err != nil {
		return Demo{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Frame <= 0 {
		return Demo{}, fmt.Errorf("frame must be positive, got %v", c.Frame)
	}
	return c, nil
}
