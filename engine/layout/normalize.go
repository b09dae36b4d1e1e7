package layout

import (
	"strings"
	"sync"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// printableASCII is '!' … '~'. The space character is not part of it.
var printableASCII = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0x21, Hi: 0x7e, Stride: 1}},
	LatinOffset: 1,
}

// Normalize composes text to NFC and converts printable ASCII to full-width
// forms (U+FF01 … U+FF5E).
func Normalize(text string) string {
	widen := runes.If(runes.In(printableASCII), width.Widen, nil)
	s, _, err := transform.String(transform.Chain(norm.NFC, widen), text)
	if err != nil {
		tracer().Errorf("cannot normalize text: %v", err)
		return text
	}
	return s
}

var graphemeClassesSetup sync.Once

// Cells splits a line of text into character cells, one per grapheme cluster.
func Cells(line string) []string {
	if line == "" {
		return nil
	}
	graphemeClassesSetup.Do(func() { grapheme.SetupGraphemeClasses() })
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	splitter.Init(strings.NewReader(line))
	cells := make([]string, 0, len(line)/2)
	for splitter.Next() {
		grphm := splitter.Bytes()
		if uax11.Width(grphm, uax11.LatinContext) < 2 {
			tracer().Debugf("narrow cell %q will occupy a full cell", grphm)
		}
		cells = append(cells, string(grphm))
	}
	return cells
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines splits text at hard line breaks \n, \r\n and \r.
func splitLines(text string) []string {
	return strings.Split(lineBreaks.Replace(text), "\n")
}
