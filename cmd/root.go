// Package cmd contains the glint command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/glintdev/glint/internal/config"
	"github.com/glintdev/glint/internal/log"
	"github.com/glintdev/glint/internal/ui/styles"
	"github.com/glintdev/glint/internal/ui/viewer"

	// Register the built-in syntax modes.
	_ "github.com/glintdev/glint/internal/syntax/algol68"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts, so the OSC 11 response cannot race with
	// Bubble Tea's input loop.
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "glint [file]",
	Short:   "A terminal viewer with incremental syntax colorization",
	Long: `glint displays source files in the terminal with incremental, resumable
syntax colorization and vim-style navigation. Algol68 is supported out of
the box; other files display unstyled.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runViewer,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/glint/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write a debug log to glint.log")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic reload when the file changes on disk")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.tab_width", defaults.UI.TabWidth)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .glint/config.yaml (current directory)
		// 2. ~/.config/glint/config.yaml (user config)
		if _, err := os.Stat(".glint/config.yaml"); err == nil {
			viper.SetConfigFile(".glint/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "glint"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a default user config.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "glint", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
				// If the write fails, just continue with defaults.
			}
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup validates config, applies the theme, and initializes logging.
// Shared by the view and dump commands.
func setup() (func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(cfg.Theme.Colors); err != nil {
		return nil, fmt.Errorf("applying theme: %w", err)
	}

	cleanup := func() {}
	if debug || os.Getenv("GLINT_DEBUG") != "" {
		c, err := log.InitWithTeaLog("glint.log", "glint")
		if err != nil {
			return nil, fmt.Errorf("initializing debug log: %w", err)
		}
		cleanup = c
		log.Info(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed())
	}
	return cleanup, nil
}

func runViewer(cmd *cobra.Command, args []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}

	model, err := viewer.New(args[0], cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
