package syntax

import "strings"

// Document threads carried colorize state through the lines of a buffer.
// It owns the per-line span cache and the recorded incoming/outgoing state
// for every line, and implements the host side of the colorizer contract:
// lines are colorized top to bottom, and an edit recolors downward only
// until some line's incoming state matches its previously recorded value.
//
// Document is not safe for concurrent use; the colorize functions it calls
// are pure, so callers needing parallelism can shard by document.
type Document struct {
	mode  *Mode
	lines [][]rune
	spans [][]Span
	in    []LineState
	out   []LineState
}

// NewDocument builds a document for the given mode from the full buffer
// text. A nil mode is valid and yields no highlighting.
func NewDocument(mode *Mode, text string) *Document {
	d := &Document{mode: mode}
	d.Reload(text)
	return d
}

// Mode returns the document's mode, which may be nil.
func (d *Document) Mode() *Mode {
	return d.mode
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i.
func (d *Document) Line(i int) string {
	return string(d.lines[i])
}

// Runes returns the code points of line i. The caller must not modify the
// returned slice.
func (d *Document) Runes(i int) []rune {
	return d.lines[i]
}

// Spans returns the styled spans of line i.
func (d *Document) Spans(i int) []Span {
	return d.spans[i]
}

// StateAfter returns the colorize state carried out of line i.
func (d *Document) StateAfter(i int) LineState {
	return d.out[i]
}

// Reload replaces the whole buffer and recolors every line.
func (d *Document) Reload(text string) {
	raw := strings.Split(text, "\n")
	d.lines = make([][]rune, len(raw))
	for i, l := range raw {
		d.lines[i] = []rune(strings.TrimSuffix(l, "\r"))
	}
	d.spans = make([][]Span, len(d.lines))
	d.in = make([]LineState, len(d.lines))
	d.out = make([]LineState, len(d.lines))

	if d.mode == nil {
		return
	}
	st := LineState{}
	for i := range d.lines {
		d.in[i] = st
		d.spans[i], st = d.mode.ColorizeLine(d.lines[i], st)
		d.out[i] = st
	}
}

// SetLine replaces the text of line i and recolors it, propagating downward
// while the carried state keeps changing.
func (d *Document) SetLine(i int, text string) {
	d.lines[i] = []rune(text)
	d.recolorFrom(i)
}

// InsertLine inserts a line before index i (i == LineCount appends).
func (d *Document) InsertLine(i int, text string) {
	d.lines = append(d.lines, nil)
	copy(d.lines[i+1:], d.lines[i:])
	d.lines[i] = []rune(text)
	d.spans = append(d.spans, nil)
	copy(d.spans[i+1:], d.spans[i:])
	d.spans[i] = nil
	d.in = append(d.in, LineState{})
	copy(d.in[i+1:], d.in[i:])
	d.out = append(d.out, LineState{})
	copy(d.out[i+1:], d.out[i:])
	d.recolorFrom(i)
}

// DeleteLine removes line i.
func (d *Document) DeleteLine(i int) {
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	d.spans = append(d.spans[:i], d.spans[i+1:]...)
	d.in = append(d.in[:i], d.in[i+1:]...)
	d.out = append(d.out[:i], d.out[i+1:]...)
	if i < len(d.lines) {
		d.recolorFrom(i)
	}
}

// stateBefore returns the state carried into line i.
func (d *Document) stateBefore(i int) LineState {
	if i == 0 {
		return LineState{}
	}
	return d.out[i-1]
}

// recolorFrom recolors line start and continues downward. A line below the
// starting one is recolored only while its incoming state differs from the
// value recorded when it was last colorized; once they match, every line
// further down is unchanged too and propagation stops.
func (d *Document) recolorFrom(start int) {
	if d.mode == nil {
		return
	}
	for i := start; i < len(d.lines); i++ {
		input := d.stateBefore(i)
		if i > start && input == d.in[i] {
			return
		}
		d.in[i] = input
		d.spans[i], d.out[i] = d.mode.ColorizeLine(d.lines[i], input)
	}
}
