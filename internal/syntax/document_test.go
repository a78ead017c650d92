package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintdev/glint/internal/syntax"
	"github.com/glintdev/glint/internal/syntax/algol68"
)

// countingMode wraps the Algol68 mode and counts colorize calls so tests can
// observe how far recoloring propagates.
func countingMode(calls *int) *syntax.Mode {
	return &syntax.Mode{
		Name:     "counting",
		Keywords: algol68.Mode.Keywords,
		Types:    algol68.Mode.Types,
		Colorize: func(line []rune, st syntax.LineState, m *syntax.Mode) ([]syntax.Span, syntax.LineState) {
			*calls++
			return algol68.Colorize(line, st, algol68.Mode)
		},
	}
}

func styleAt(spans []syntax.Span, i int) syntax.Style {
	for _, sp := range spans {
		if i >= sp.Start && i < sp.End {
			return sp.Style
		}
	}
	return syntax.StyleText
}

func TestDocument_ReloadColorizesAllLines(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "{ open\nstill inside\n} int i")

	require.Equal(t, 3, doc.LineCount())
	require.Equal(t, syntax.StateCommentBrace, doc.StateAfter(0).Kind)
	require.Equal(t, syntax.StateCommentBrace, doc.StateAfter(1).Kind)
	require.True(t, doc.StateAfter(2).IsZero())

	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(1), 0))
	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(2), 0), "closing brace")
	require.Equal(t, syntax.StyleType, styleAt(doc.Spans(2), 2), "int after the comment closes")
}

func TestDocument_CRLFLineEndings(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "begin\r\nend\r\n")

	require.Equal(t, 3, doc.LineCount())
	require.Equal(t, "begin", doc.Line(0))
	require.Equal(t, "end", doc.Line(1))
}

func TestDocument_SetLinePropagatesDownward(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "x\ny\nz")
	require.Equal(t, syntax.StyleIdentifier, styleAt(doc.Spans(1), 0))

	// Opening a comment on line 0 pulls every following line into it.
	doc.SetLine(0, "{ open")
	require.Equal(t, syntax.StateCommentBrace, doc.StateAfter(0).Kind)
	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(1), 0))
	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(2), 0))

	// Closing it again restores the lines below.
	doc.SetLine(0, "{ closed }")
	require.True(t, doc.StateAfter(0).IsZero())
	require.Equal(t, syntax.StyleIdentifier, styleAt(doc.Spans(1), 0))
	require.Equal(t, syntax.StyleIdentifier, styleAt(doc.Spans(2), 0))
}

func TestDocument_PropagationStopsWhenStateStabilizes(t *testing.T) {
	calls := 0
	doc := syntax.NewDocument(countingMode(&calls), "a\nb\nc\nd\ne")
	require.Equal(t, 5, calls, "initial colorize visits every line")

	// Editing a line without changing carried state recolors that line and
	// checks the next, but goes no further.
	calls = 0
	doc.SetLine(1, "bb")
	require.Equal(t, 1, calls, "steady outgoing state stops propagation at the next line")
}

func TestDocument_PropagationRunsWhileStateChanges(t *testing.T) {
	calls := 0
	doc := syntax.NewDocument(countingMode(&calls), "a\nb\nc\nd")

	calls = 0
	doc.SetLine(0, "{ open")
	require.Equal(t, 4, calls, "an opened comment recolors everything below")

	calls = 0
	doc.SetLine(0, "a")
	require.Equal(t, 4, calls, "closing it recolors everything below again")

	calls = 0
	doc.SetLine(3, "{ open")
	require.Equal(t, 1, calls, "the last line has nothing below")
}

func TestDocument_InsertLine(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "x\n}")

	doc.InsertLine(0, "{ open")
	require.Equal(t, 3, doc.LineCount())
	require.Equal(t, "{ open", doc.Line(0))
	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(1), 0), "x is now inside the comment")
	require.True(t, doc.StateAfter(2).IsZero(), "the } closes it")
}

func TestDocument_InsertLineAppend(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "x")
	doc.InsertLine(1, "int")

	require.Equal(t, 2, doc.LineCount())
	require.Equal(t, syntax.StyleType, styleAt(doc.Spans(1), 0))
}

func TestDocument_DeleteLine(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "{ open\nx\n} y")
	require.Equal(t, syntax.StyleComment, styleAt(doc.Spans(1), 0))

	doc.DeleteLine(0)
	require.Equal(t, 2, doc.LineCount())
	require.Equal(t, syntax.StyleIdentifier, styleAt(doc.Spans(0), 0), "x leaves the comment")
	require.Equal(t, syntax.StyleText, styleAt(doc.Spans(1), 0), "} is plain text outside a comment")
}

func TestDocument_DeleteLastLine(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "x\ny")
	doc.DeleteLine(1)
	require.Equal(t, 1, doc.LineCount())
}

func TestDocument_NilModeYieldsNoSpans(t *testing.T) {
	doc := syntax.NewDocument(nil, "begin int i end")

	require.Equal(t, 1, doc.LineCount())
	require.Empty(t, doc.Spans(0))
	require.True(t, doc.StateAfter(0).IsZero())
	doc.SetLine(0, "{ open")
	require.Empty(t, doc.Spans(0))
}

func TestDocument_StringContinuationAcrossLines(t *testing.T) {
	doc := syntax.NewDocument(algol68.Mode, "\"abc\\\ndef\" x")

	require.Equal(t, syntax.StateString, doc.StateAfter(0).Kind)
	require.Equal(t, syntax.StyleString, styleAt(doc.Spans(1), 0))
	require.Equal(t, syntax.StyleIdentifier, styleAt(doc.Spans(1), 5))
}
