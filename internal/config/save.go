package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config with yaml tags for persistence.
type fileConfig struct {
	AutoReload         bool              `yaml:"auto_reload"`
	AutoReloadDebounce int               `yaml:"auto_reload_debounce"`
	UI                 fileUIConfig      `yaml:"ui"`
	Theme              fileThemeConfig   `yaml:"theme"`
}

type fileUIConfig struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
	ShowStatusBar   bool `yaml:"show_status_bar"`
	TabWidth        int  `yaml:"tab_width"`
}

type fileThemeConfig struct {
	Colors map[string]string `yaml:"colors,omitempty"`
}

// WriteDefaultConfig writes the default configuration to the given path,
// creating parent directories as needed. Used on first run when no config
// file exists anywhere in the lookup order.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaults := Defaults()
	out := fileConfig{
		AutoReload:         defaults.AutoReload,
		AutoReloadDebounce: defaults.AutoReloadDebounce,
		UI: fileUIConfig{
			ShowLineNumbers: defaults.UI.ShowLineNumbers,
			ShowStatusBar:   defaults.UI.ShowStatusBar,
			TabWidth:        defaults.UI.TabWidth,
		},
		Theme: fileThemeConfig{Colors: defaults.Theme.Colors},
	}

	var buf bytes.Buffer
	buf.WriteString("# glint configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing encoder: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil { //nolint:gosec // G306: config file is not sensitive
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
