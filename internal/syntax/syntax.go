// Package syntax defines the contract between the viewer and the per-line
// syntax colorizers: style classes, styled spans, the carried line state that
// makes colorization resumable across line boundaries, and the mode
// descriptors that bind all of it to a file type.
package syntax

// Style classifies a span of characters for display.
type Style int

const (
	// StyleText is the default style; unstyled spans render as plain text.
	StyleText Style = iota
	// StyleKeyword marks reserved words and comment/pragma delimiters.
	StyleKeyword
	// StyleType marks mode (type) names.
	StyleType
	// StylePreprocess marks pragma text between PR delimiters.
	StylePreprocess
	// StyleComment marks comment interiors.
	StyleComment
	// StyleString marks string literals.
	StyleString
	// StyleIdentifier marks plain identifiers.
	StyleIdentifier
	// StyleNumber marks numeric literals.
	StyleNumber
	// StyleFunction marks identifiers in call position.
	StyleFunction
)

// String returns a human-readable name for the style.
func (s Style) String() string {
	switch s {
	case StyleText:
		return "text"
	case StyleKeyword:
		return "keyword"
	case StyleType:
		return "type"
	case StylePreprocess:
		return "preprocess"
	case StyleComment:
		return "comment"
	case StyleString:
		return "string"
	case StyleIdentifier:
		return "identifier"
	case StyleNumber:
		return "number"
	case StyleFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Span is a styled region within a line of text.
// Colorizers must produce spans that satisfy the following contract:
//   - Spans MUST be non-overlapping
//   - Spans MUST be sorted by Start position (ascending)
//   - Gaps between spans render as plain text
//   - An empty slice means no highlighting for this line
type Span struct {
	// Start is the starting rune offset within the line (0-indexed).
	Start int

	// End is the ending rune offset within the line (exclusive, like Go slices).
	End int

	// Style is the style class to apply to this span.
	Style Style
}

// StateKind identifies which multi-line construct, if any, is open at a line
// boundary. At most one construct can be open when a line ends, so a single
// tag (plus a nesting level for the two nestable kinds) captures the whole
// carried state.
type StateKind int

const (
	// StateNone means no construct spans the line break.
	StateNone StateKind = iota
	// StateCommentWord is an open COMMENT..COMMENT comment.
	StateCommentWord
	// StateCommentCo is an open CO..CO comment.
	StateCommentCo
	// StateCommentPR is an open PR..PR pragma comment.
	StateCommentPR
	// StateCommentNote is an open NOTE..ETON comment; Level holds the depth.
	StateCommentNote
	// StateCommentSharp is an open #..# comment.
	StateCommentSharp
	// StateCommentCent is an open ¢..¢ comment.
	StateCommentCent
	// StateCommentPound is an open £..£ comment.
	StateCommentPound
	// StateCommentBrace is an open {..} comment; Level holds the depth.
	StateCommentBrace
	// StateString is a string continued by a trailing backslash.
	StateString
	// StateContinuation is an identifier broken by a trailing backslash.
	StateContinuation
)

// String returns a human-readable name for the state kind.
func (k StateKind) String() string {
	switch k {
	case StateNone:
		return "none"
	case StateCommentWord:
		return "comment-word"
	case StateCommentCo:
		return "comment-co"
	case StateCommentPR:
		return "comment-pr"
	case StateCommentNote:
		return "comment-note"
	case StateCommentSharp:
		return "comment-sharp"
	case StateCommentCent:
		return "comment-cent"
	case StateCommentPound:
		return "comment-pound"
	case StateCommentBrace:
		return "comment-brace"
	case StateString:
		return "string"
	case StateContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// LineState is the carried colorize state threaded between consecutive lines
// of a buffer. The zero value means no open construct and is the correct
// state for the first line of a buffer.
type LineState struct {
	// Kind tags the construct left open at the end of the previous line.
	Kind StateKind

	// Level is the unmatched nesting depth. It is meaningful only when Kind
	// is StateCommentBrace or StateCommentNote and is zero otherwise.
	Level int
}

// IsZero reports whether no construct is open.
func (s LineState) IsZero() bool {
	return s == LineState{}
}

// ColorizeFunc colorizes a single line given the state carried out of the
// previous line. It returns the styled spans for the line and the state to
// carry into the next line. Implementations must be pure: same line and
// state in, same spans and state out, with no hidden dependencies between
// calls.
type ColorizeFunc func(line []rune, state LineState, mode *Mode) ([]Span, LineState)

// Mode describes a colorizable language: its display name, the file
// extensions it claims, its keyword and type vocabularies, and its colorize
// entry point. A Mode is registered once at startup and is read-only
// afterwards.
type Mode struct {
	// Name is the display name shown in the status bar.
	Name string

	// Extensions lists the file extensions (without dot) this mode claims.
	Extensions []string

	// Keywords is the reserved-word vocabulary, lower-cased.
	Keywords WordSet

	// Types is the type-word vocabulary, lower-cased.
	Types WordSet

	// Colorize is the per-line colorize entry point.
	Colorize ColorizeFunc
}

// ColorizeLine colorizes one line with this mode.
func (m *Mode) ColorizeLine(line []rune, state LineState) ([]Span, LineState) {
	return m.Colorize(line, state, m)
}
