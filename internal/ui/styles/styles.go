// Package styles contains Lip Gloss style definitions for the viewer.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintdev/glint/internal/syntax"
)

// Default palette. Colors are hex so they survive terminals with different
// ANSI palettes; ApplyTheme may override any of them.
var (
	KeywordColor    = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"}
	TypeColor       = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"}
	PreprocessColor = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"}
	CommentColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"}
	StringColor     = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
	IdentifierColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}
	NumberColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	FunctionColor   = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"}

	StatusBarColor     = lipgloss.AdaptiveColor{Light: "#E6E9EF", Dark: "#313244"}
	StatusBarTextColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"}
	LineNumberColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#585B70"}
	HelpTextColor      = lipgloss.AdaptiveColor{Light: "#8C8FA1", Dark: "#7F849C"}
)

// Style objects rebuilt by rebuildStyles after theme changes.
var (
	Keyword    lipgloss.Style
	Type       lipgloss.Style
	Preprocess lipgloss.Style
	Comment    lipgloss.Style
	String     lipgloss.Style
	Identifier lipgloss.Style
	Number     lipgloss.Style
	Function   lipgloss.Style

	StatusBar  lipgloss.Style
	LineNumber lipgloss.Style
	HelpText   lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	Keyword = lipgloss.NewStyle().Foreground(KeywordColor).Bold(true)
	Type = lipgloss.NewStyle().Foreground(TypeColor)
	Preprocess = lipgloss.NewStyle().Foreground(PreprocessColor)
	Comment = lipgloss.NewStyle().Foreground(CommentColor).Italic(true)
	String = lipgloss.NewStyle().Foreground(StringColor)
	Identifier = lipgloss.NewStyle().Foreground(IdentifierColor)
	Number = lipgloss.NewStyle().Foreground(NumberColor)
	Function = lipgloss.NewStyle().Foreground(FunctionColor)

	StatusBar = lipgloss.NewStyle().Background(StatusBarColor).Foreground(StatusBarTextColor)
	LineNumber = lipgloss.NewStyle().Foreground(LineNumberColor)
	HelpText = lipgloss.NewStyle().Foreground(HelpTextColor)
}

// ForStyle returns the lipgloss style for a syntax style class.
// StyleText (and anything unknown) renders unstyled.
func ForStyle(s syntax.Style) lipgloss.Style {
	switch s {
	case syntax.StyleKeyword:
		return Keyword
	case syntax.StyleType:
		return Type
	case syntax.StylePreprocess:
		return Preprocess
	case syntax.StyleComment:
		return Comment
	case syntax.StyleString:
		return String
	case syntax.StyleIdentifier:
		return Identifier
	case syntax.StyleNumber:
		return Number
	case syntax.StyleFunction:
		return Function
	default:
		return lipgloss.NewStyle()
	}
}

// ApplyTheme overrides palette colors from a style-class -> hex color map
// and rebuilds all Style objects. Unknown classes are rejected so config
// typos surface instead of silently doing nothing.
func ApplyTheme(colors map[string]string) error {
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	for class, hex := range colors {
		switch class {
		case "keyword":
			KeywordColor = makeColor(hex)
		case "type":
			TypeColor = makeColor(hex)
		case "preprocess":
			PreprocessColor = makeColor(hex)
		case "comment":
			CommentColor = makeColor(hex)
		case "string":
			StringColor = makeColor(hex)
		case "identifier":
			IdentifierColor = makeColor(hex)
		case "number":
			NumberColor = makeColor(hex)
		case "function":
			FunctionColor = makeColor(hex)
		default:
			return fmt.Errorf("unknown style class: %s", class)
		}
	}
	rebuildStyles()
	return nil
}
