package viewer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/glintdev/glint/internal/syntax"
	"github.com/glintdev/glint/internal/ui/styles"
)

// renderLine turns one document line and its styled spans into a terminal
// string. Spans are rune ranges, so styling happens on the rune slice before
// tab expansion; the expansion tracks the visual column so tab stops stay
// aligned across styled and unstyled segments.
func renderLine(runes []rune, spans []syntax.Span, width, tabWidth int) string {
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	col := 0
	pos := 0
	emit := func(end int, style syntax.Style) {
		if end <= pos {
			return
		}
		text := expandTabs(runes[pos:end], &col, tabWidth)
		if style == syntax.StyleText {
			b.WriteString(text)
		} else {
			b.WriteString(styles.ForStyle(style).Render(text))
		}
		pos = end
	}

	for _, sp := range spans {
		emit(sp.Start, syntax.StyleText)
		emit(sp.End, sp.Style)
	}
	emit(len(runes), syntax.StyleText)

	out := b.String()
	if ansi.StringWidth(out) > width {
		out = ansi.Truncate(out, width, "…")
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next tab stop, advancing
// the shared visual column.
func expandTabs(rs []rune, col *int, tabWidth int) string {
	var sb strings.Builder
	for _, r := range rs {
		if r == '\t' {
			n := tabWidth - (*col % tabWidth)
			sb.WriteString(strings.Repeat(" ", n))
			*col += n
			continue
		}
		sb.WriteRune(r)
		*col += runewidth.RuneWidth(r)
	}
	return sb.String()
}
