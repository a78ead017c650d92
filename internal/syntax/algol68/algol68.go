// Package algol68 implements incremental lexical colorization for Algol68.
//
// Algol68 has six independent comment bracketing styles: three word-delimited
// (COMMENT..COMMENT, CO..CO, PR..PR for pragmas), one word-delimited and
// nestable (NOTE..ETON), three delimited by a repeated single character
// (#, ¢, £), and one brace-delimited and nestable ({..}). Any of them, plus
// string literals and identifiers broken by a trailing backslash, can span a
// line break. The colorizer is resumable: each line is colorized
// independently from the compact state carried out of the line above, so the
// host never re-scans the whole buffer.
package algol68

import "github.com/glintdev/glint/internal/syntax"

// Comment delimiter code points compared exactly, never case-folded.
const (
	centSign  = 0x00A2 // ¢
	poundSign = 0x00A3 // £
)

// tagBufSize bounds the stored copy of a scanned token at 15 characters.
// Longer tokens are classified on their truncated text; the scan still
// consumes the full run. No vocabulary word comes close to the limit.
const tagBufSize = 15

// keywords is the reserved-word vocabulary, drawn from the unrevised and
// revised reports plus the ALGOL 68R/68C and ga68 extensions.
var keywords = []string{
	// Algol68 Final Report, unrevised
	"priority", "thef",
	"btb", "ctb", "conj", "quote", "ct", "ctab", "either", "sign",

	// Algol68 Revised Report
	"true", "false",
	"if", "then", "else", "elif", "fi",
	"case", "in", "out", "ouse", "esac",
	"nil", "skip", "empty",
	"mode", "op", "prio", "proc",
	"goto",
	"not", "up", "down", "lwb", "upb",
	"abs", "bin", "entier", "leng", "level", "odd", "repr", "round", "shorten",
	"shl", "shr",
	"over", "mod", "elem",
	"lt", "le", "ge", "gt",
	"eq", "ne",
	"and", "or",
	"andf", "orf", "andth", "orel", "andthen", "orelse",
	"minusab", "plusab", "timesab", "divab", "overab", "modab", "plusto",
	"is", "isnt", "of", "at",
	"for", "from", "by", "upto", "downto", "to", "while", "do", "od",
	"par", "begin", "exit", "end",
	"struct", "union", "ref",
	"vector",

	"todo", "fixme", "xxx", "debug", "note",
	// ALGOL 68R
	"decs", "context", "configinfo", "a68config", "keep", "finish", "use",
	"sysprocs", "iostate", "forall",
	// ALGOL 68C
	"using", "environ", "foreach", "assert",
	// ga68
	"module", "def", "fed", "pub", "postlude", "access",
}

// types is the mode-word vocabulary.
var types = []string{
	"flex", "heap", "loc", "long", "short",
	"bits", "bool", "bytes", "char", "compl", "int", "real", "complex",
	"sema", "string", "void",
	"channel", "file", "format",
}

// Mode is the Algol68 mode descriptor.
var Mode = &syntax.Mode{
	Name:       "Algol68",
	Extensions: []string{"a68"},
	Keywords:   syntax.NewWordSet(keywords...),
	Types:      syntax.NewWordSet(types...),
	Colorize:   Colorize,
}

func init() {
	syntax.Register(Mode)
}

// scanTag copies a run of word characters into dest, lower-casing every
// character; c is the run's first character, already consumed from the line,
// and pos is the offset of the next one. The run may be longer than dest, in
// which case the stored copy is truncated but the scan continues so the
// returned skip still covers the whole run. skip is the number of source
// runes consumed after pos, n the stored length, and upper reports whether
// the original run held an upper-case letter (checked only on the stored
// portion).
func scanTag(dest []byte, c rune, line []rune, pos int) (skip, n int, upper bool) {
	j := pos
	for {
		if n < len(dest) {
			if syntax.IsUpper(c) {
				upper = true
				c = syntax.ToLower(c)
			}
			dest[n] = byte(c)
			n++
		}
		if j >= len(line) {
			break
		}
		c = line[j]
		if !syntax.IsWord(c) {
			break
		}
		j++
	}
	return j - pos, n, upper
}

// Colorize is the per-line colorize entry point for Algol68. It is total:
// malformed source degrades to plausible styling, never to an error.
func Colorize(line []rune, state syntax.LineState, mode *syntax.Mode) ([]syntax.Span, syntax.LineState) {
	s := &scanner{line: line, state: state, mode: mode}
	s.resume()
	s.scan()
	return s.spans, s.state
}

// scanner colorizes one line. The tag buffer is the only scratch storage, so
// concurrent calls on independent lines are safe by construction.
type scanner struct {
	line  []rune
	i     int
	spans []syntax.Span
	state syntax.LineState
	mode  *syntax.Mode
	tag   [tagBufSize]byte
}

func (s *scanner) emit(start, end int, style syntax.Style) {
	if end > start {
		s.spans = append(s.spans, syntax.Span{Start: start, End: end, Style: style})
	}
}

// resume re-enters the scanning routine for whatever construct the previous
// line left open, then falls through to normal scanning.
func (s *scanner) resume() {
	switch s.state.Kind {
	case syntax.StateCommentWord:
		s.wordComment(0, "comment", syntax.StateCommentWord, syntax.StyleComment)
	case syntax.StateCommentCo:
		s.wordComment(0, "co", syntax.StateCommentCo, syntax.StyleComment)
	case syntax.StateCommentPR:
		s.wordComment(0, "pr", syntax.StateCommentPR, syntax.StylePreprocess)
	case syntax.StateCommentNote:
		s.noteComment(0, s.state.Level)
	case syntax.StateCommentBrace:
		s.braceComment(0, s.state.Level)
	case syntax.StateCommentSharp:
		s.charComment(0, '#', syntax.StateCommentSharp)
	case syntax.StateCommentCent:
		s.charComment(0, centSign, syntax.StateCommentCent)
	case syntax.StateCommentPound:
		s.charComment(0, poundSign, syntax.StateCommentPound)
	case syntax.StateString:
		s.stringLiteral(0)
	case syntax.StateContinuation:
		// A line that does not start with a word character drops the stale
		// continuation; otherwise the token scan continues where it broke.
		s.state = syntax.LineState{}
		if len(s.line) > 0 && syntax.IsWord(s.line[0]) {
			s.i = 1
			skip, _, upper := scanTag(s.tag[:], s.line[0], s.line, s.i)
			s.i += skip
			if s.i == len(s.line)-1 && s.line[s.i] == '\\' {
				s.i++
				s.state = syntax.LineState{Kind: syntax.StateContinuation}
			}
			if upper {
				s.emit(0, s.i, syntax.StyleType)
			} else {
				s.emit(0, s.i, syntax.StyleIdentifier)
			}
		}
	}
}

// scan is the normal tokenization loop, one code point at a time.
func (s *scanner) scan() {
	for s.i < len(s.line) {
		start := s.i
		c := s.line[s.i]
		s.i++
		switch {
		case c == '#':
			s.charComment(start, '#', syntax.StateCommentSharp)
		case c == centSign:
			s.charComment(start, centSign, syntax.StateCommentCent)
		case c == poundSign:
			s.charComment(start, poundSign, syntax.StateCommentPound)
		case c == '{':
			s.braceComment(start, 1)
		case c == '"':
			s.stringLiteral(start)
		case c == '$':
			// TODO: lex $-delimited format texts; for now a '$' passes
			// through unstyled.
		case syntax.IsDigit(c):
			s.number(start)
		case syntax.IsAlpha(c):
			s.word(start, c)
		}
	}
}

// charComment scans a comment delimited by a repeated single character. The
// comment closes on the next occurrence of the same delimiter; otherwise the
// kind carries to the next line.
func (s *scanner) charComment(start int, delim rune, kind syntax.StateKind) {
	s.state = syntax.LineState{Kind: kind}
	for s.i < len(s.line) {
		c := s.line[s.i]
		s.i++
		if c == delim {
			s.state = syntax.LineState{}
			break
		}
	}
	s.emit(start, s.i, syntax.StyleComment)
}

// braceComment scans a {..} comment at the given nesting level. Each '{'
// increments and each '}' decrements; the comment closes when the level
// returns to zero.
func (s *scanner) braceComment(start, level int) {
	s.state = syntax.LineState{Kind: syntax.StateCommentBrace, Level: level}
	for s.i < len(s.line) {
		c := s.line[s.i]
		s.i++
		if c == '{' {
			level++
		} else if c == '}' {
			level--
			if level == 0 {
				s.state = syntax.LineState{}
				break
			}
		}
	}
	if s.state.Kind == syntax.StateCommentBrace {
		s.state.Level = level
	}
	s.emit(start, s.i, syntax.StyleComment)
}

// stringLiteral scans a string literal. A backslash as the very last
// character of a line enters continuation; once continued, the string stays
// open until its closing quote regardless of how later lines end. Interior
// backslashes are not treated as escapes.
func (s *scanner) stringLiteral(start int) {
	for s.i < len(s.line) {
		c := s.line[s.i]
		s.i++
		if c == '\\' && s.i == len(s.line) {
			s.state = syntax.LineState{Kind: syntax.StateString}
			break
		}
		if c == '"' {
			s.state = syntax.LineState{}
			break
		}
	}
	s.emit(start, s.i, syntax.StyleString)
}

// number consumes a maximal run of alphanumerics and '.', plus an exponent
// sign directly after an 'e'. This loosely covers Algol68 numerals with
// radix prefixes and exponents without validating the overall grammar.
func (s *scanner) number(start int) {
	for s.i < len(s.line) {
		c := s.line[s.i]
		if syntax.IsAlnum(c) || c == '.' {
			s.i++
			continue
		}
		if (c == '+' || c == '-') && syntax.ToLower(s.line[s.i-1]) == 'e' {
			s.i++
			continue
		}
		break
	}
	s.emit(start, s.i, syntax.StyleNumber)
}

// word scans and classifies an identifier or keyword whose first character c
// has already been consumed.
func (s *scanner) word(start int, c rune) {
	skip, n, upper := scanTag(s.tag[:], c, s.line, s.i)
	s.i += skip
	tok := string(s.tag[:n])

	if s.i == len(s.line)-1 && s.line[s.i] == '\\' {
		// Broken tag: the token resumes on the next line, so it cannot be
		// classified as a keyword here.
		s.i++
		s.state = syntax.LineState{Kind: syntax.StateContinuation}
		if upper {
			s.emit(start, s.i, syntax.StyleType)
		} else {
			s.emit(start, s.i, syntax.StyleIdentifier)
		}
		return
	}

	switch {
	case tok == "note":
		s.emit(start, s.i, syntax.StyleKeyword)
		s.noteComment(s.i, 1)
	case tok == "comment":
		s.emit(start, s.i, syntax.StyleKeyword)
		s.wordComment(s.i, "comment", syntax.StateCommentWord, syntax.StyleComment)
	case tok == "co":
		s.emit(start, s.i, syntax.StyleKeyword)
		s.wordComment(s.i, "co", syntax.StateCommentCo, syntax.StyleComment)
	case tok == "pr":
		s.emit(start, s.i, syntax.StyleKeyword)
		s.wordComment(s.i, "pr", syntax.StateCommentPR, syntax.StylePreprocess)
	case s.mode.Keywords.Contains(tok):
		s.emit(start, s.i, syntax.StyleKeyword)
	case s.mode.Types.Contains(tok) || upper:
		// Upper-case letters mark mode names by convention, whether or not
		// the word is in the type vocabulary.
		s.emit(start, s.i, syntax.StyleType)
	default:
		k := s.i
		if k < len(s.line) && syntax.IsBlank(s.line[k]) {
			k++
		}
		// A '(' begins a call unless it opens a parenthesized comment.
		if k < len(s.line) && s.line[k] == '(' && !(k+1 < len(s.line) && s.line[k+1] == '*') {
			s.emit(start, s.i, syntax.StyleFunction)
		} else {
			s.emit(start, s.i, syntax.StyleIdentifier)
		}
	}
}

// wordComment scans a word-delimited comment whose terminator is the keyword
// term. The interior is styled with the given style, the terminator as a
// keyword; an unterminated comment carries kind to the next line.
func (s *scanner) wordComment(start int, term string, kind syntax.StateKind, style syntax.Style) {
	s.state = syntax.LineState{Kind: kind}
	for s.i < len(s.line) {
		c := s.line[s.i]
		s.i++
		if !syntax.IsAlpha(c) {
			continue
		}
		j := s.i - 1
		skip, n, _ := scanTag(s.tag[:], c, s.line, s.i)
		s.i += skip
		if string(s.tag[:n]) == term {
			s.emit(start, j, style)
			s.emit(j, s.i, syntax.StyleKeyword)
			s.state = syntax.LineState{}
			return
		}
	}
	s.emit(start, s.i, style)
}

// noteComment scans a NOTE..ETON comment at the given nesting level. Inner
// NOTEs nest; the ETON that returns the level to zero closes the comment and
// is styled as a keyword.
func (s *scanner) noteComment(start, level int) {
	for s.i < len(s.line) {
		c := s.line[s.i]
		s.i++
		if !syntax.IsAlpha(c) {
			continue
		}
		j := s.i - 1
		skip, n, _ := scanTag(s.tag[:], c, s.line, s.i)
		s.i += skip
		switch string(s.tag[:n]) {
		case "note":
			level++
		case "eton":
			level--
			if level == 0 {
				s.emit(start, j, syntax.StyleComment)
				s.emit(j, s.i, syntax.StyleKeyword)
				s.state = syntax.LineState{}
				return
			}
		}
	}
	s.state = syntax.LineState{Kind: syntax.StateCommentNote, Level: level}
	s.emit(start, s.i, syntax.StyleComment)
}
