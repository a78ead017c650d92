package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/glintdev/glint/internal/syntax"
	"github.com/glintdev/glint/internal/ui/styles"
)

var dumpColor string

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Write the colorized file to stdout as ANSI text",
	Long: `Colorize a file and write it to stdout with ANSI escape sequences,
for use in pipelines or pagers. Color defaults to the terminal's detected
profile and is disabled when stdout is not a terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpColor, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	switch dumpColor {
	case "auto":
		lipgloss.SetColorProfile(termenv.ColorProfile())
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("invalid --color value: %s (want auto, always, or never)", dumpColor)
	}

	path := args[0]
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	doc := syntax.NewDocument(syntax.ForPath(path), string(data))
	out := cmd.OutOrStdout()
	for i := 0; i < doc.LineCount(); i++ {
		if _, err := fmt.Fprintln(out, renderANSILine(doc.Runes(i), doc.Spans(i))); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

// renderANSILine styles a line's spans without width constraints; gaps pass
// through unstyled.
func renderANSILine(runes []rune, spans []syntax.Span) string {
	var out string
	pos := 0
	for _, sp := range spans {
		out += string(runes[pos:sp.Start])
		out += styles.ForStyle(sp.Style).Render(string(runes[sp.Start:sp.End]))
		pos = sp.End
	}
	out += string(runes[pos:])
	return out
}
