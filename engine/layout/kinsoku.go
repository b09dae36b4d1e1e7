package layout

import (
	"strings"
)

// Blank is the ideographic space U+3000, used to pad lines and pages.
const Blank = "　"

// Line is a sequence of character cells.
type Line []string

func (l Line) String() string {
	return strings.Join(l, "")
}

// closingMarks must not start a wrapped line.
var closingMarks = map[string]bool{
	"。": true,
	"、": true,
}

// IsClosingMark is true for closing ideographic punctuation.
func IsClosingMark(cell string) bool {
	return closingMarks[cell]
}

type wrapState int

const (
	normal      wrapState = iota
	justWrapped           // the current line follows a finished line
)

// lineWrapper collects output lines of at most rowLength cells. With padding
// set, lines ended by a hard line break are filled up with Blank.
type lineWrapper struct {
	rowLength int
	padding   bool
	lines     []Line
	current   Line
	state     wrapState
}

func (w *lineWrapper) place(cell string) {
	if len(w.current) == w.rowLength {
		w.lines = append(w.lines, w.current)
		w.current = make(Line, 0, w.rowLength)
		w.state = justWrapped
	}
	if w.state == justWrapped && IsClosingMark(cell) {
		w.pushOut()
	}
	w.current = append(w.current, cell)
	w.state = normal
}

// pushOut moves the last cell of the preceding line to the start of the
// current line, so that a closing mark does not start the line on its own.
// After a hard line break in padding mode the moved cell is a Blank.
// Nothing is moved if the preceding line would become empty or if its last
// cell is itself a closing mark.
func (w *lineWrapper) pushOut() {
	prev := w.lines[len(w.lines)-1]
	last := len(prev) - 1
	if last < 1 || IsClosingMark(prev[last]) {
		tracer().Debugf("kinsoku: cannot push out %q, mark stays at line start", prev.String())
		return
	}
	tracer().Debugf("kinsoku: pushing %q to next line", prev[last])
	w.current = append(w.current, prev[last])
	w.lines[len(w.lines)-1] = prev[:last]
}

// endLine terminates the current line at a hard line break. A closing mark
// at the start of the next input line is treated like one after a soft wrap.
func (w *lineWrapper) endLine() {
	if w.padding {
		w.current = Pad(w.current, w.rowLength)
	}
	w.lines = append(w.lines, w.current)
	w.current = make(Line, 0, w.rowLength)
	w.state = justWrapped
}

// wrap splits normalized text into lines of at most rowLength cells.
// Soft-wrapped lines are never padded.
func wrap(text string, rowLength int, padding bool) []Line {
	if rowLength <= 0 {
		tracer().Errorf("cannot wrap text to row length %d", rowLength)
		return nil
	}
	w := &lineWrapper{rowLength: rowLength, padding: padding, current: make(Line, 0, rowLength)}
	for _, input := range splitLines(text) {
		for _, cell := range Cells(input) {
			w.place(cell)
		}
		w.endLine() // empty input lines yield empty output lines
	}
	return w.lines
}

// Pad fills up a line with Blank cells to rowLength cells.
func Pad(line Line, rowLength int) Line {
	if len(line) >= rowLength {
		return line
	}
	padded := make(Line, len(line), rowLength)
	copy(padded, line)
	for len(padded) < rowLength {
		padded = append(padded, Blank)
	}
	return padded
}

// Wrap breaks text into lines of exactly rowLength cells, padded with Blank.
// Text is expected to be normalized already (see Normalize).
func Wrap(text string, rowLength int) []Line {
	lines := wrap(text, rowLength, true)
	for i, l := range lines {
		lines[i] = Pad(l, rowLength)
	}
	return lines
}

// BreakText wraps text like Wrap does, but without padding. Lines are
// joined with '\n'.
func BreakText(text string, rowLength int) string {
	lines := wrap(text, rowLength, false)
	s := make([]string, len(lines))
	for i, l := range lines {
		s[i] = l.String()
	}
	return strings.Join(s, "\n")
}
