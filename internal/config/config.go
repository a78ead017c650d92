// Package config provides configuration types, defaults, and persistence for glint.
package config

import (
	"fmt"
	"regexp"
)

// Config holds all configuration options for glint.
type Config struct {
	AutoReload         bool        `mapstructure:"auto_reload"`
	AutoReloadDebounce int         `mapstructure:"auto_reload_debounce"` // milliseconds
	UI                 UIConfig    `mapstructure:"ui"`
	Theme              ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`
	ShowStatusBar   bool `mapstructure:"show_status_bar"`
	TabWidth        int  `mapstructure:"tab_width"`
}

// ThemeConfig holds theme customization options. Colors maps style-class
// names (keyword, type, preprocess, comment, string, identifier, number,
// function) to hex colors; unset classes keep the built-in palette.
type ThemeConfig struct {
	Colors map[string]string `mapstructure:"colors"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload:         true,
		AutoReloadDebounce: 300,
		UI: UIConfig{
			ShowLineNumbers: true,
			ShowStatusBar:   true,
			TabWidth:        8,
		},
		Theme: ThemeConfig{},
	}
}

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// styleClasses are the color keys a theme may override.
var styleClasses = map[string]struct{}{
	"keyword":    {},
	"type":       {},
	"preprocess": {},
	"comment":    {},
	"string":     {},
	"identifier": {},
	"number":     {},
	"function":   {},
}

// Validate checks the configuration for values that would fail later in
// less obvious ways.
func (c Config) Validate() error {
	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		return fmt.Errorf("ui.tab_width must be between 1 and 16, got %d", c.UI.TabWidth)
	}
	if c.AutoReloadDebounce < 0 {
		return fmt.Errorf("auto_reload_debounce must not be negative, got %d", c.AutoReloadDebounce)
	}
	for class, color := range c.Theme.Colors {
		if _, ok := styleClasses[class]; !ok {
			return fmt.Errorf("unknown style class in theme.colors: %s", class)
		}
		if !hexColorRegex.MatchString(color) {
			return fmt.Errorf("invalid hex color for %s: %s", class, color)
		}
	}
	return nil
}
