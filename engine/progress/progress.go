/*
Package progress draws a small progress bar below a page.

The bar is an icon-like bitmap of Height pixel rows, spanning the full width
of the display: a frame with rounded corners, and inside of it a bar which is
filled (dark) from the left according to a percentage.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package progress

import (
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/percent"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.progress'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.progress")
}

// Height is the number of pixel rows of a progress bar.
const Height = 12

// MinWidth is the smallest width a progress bar can be drawn with.
const MinWidth = 12

// Bits returns the progress bar for p as a bit string of width × Height bits
// in output polarity. The inner bar is width-12 pixels wide, of which
// p percent (rounded down) are dark.
func Bits(p percent.Percent, width int) bits.String {
	if width < MinWidth {
		tracer().Errorf("progress bar needs a width of at least %d, is %d", MinWidth, width)
		width = MinWidth
	}
	w, b := func(n int) bits.Run { return bits.Run{Bit: bits.White, N: n} },
		func(n int) bits.Run { return bits.Run{Bit: bits.Black, N: n} }
	inner := width - 12
	done := p.Of(inner)
	edge := []bits.Run{w(5), b(width - 10), w(5)}
	frame := []bits.Run{w(4), b(1), w(width - 10), b(1), w(4)}
	bar := []bits.Run{w(4), b(1), w(1), b(done), w(inner - done), w(1), b(1), w(4)}
	runs := []bits.Run{w(width)}
	runs = append(runs, edge...)
	runs = append(runs, frame...)
	runs = append(runs, bar...)
	runs = append(runs, bar...)
	runs = append(runs, frame...)
	runs = append(runs, edge...)
	runs = append(runs, w(width*5))
	return bits.Runs(runs...)
}

// Bar returns the packed progress bar for p. The width has to be even,
// which canvas.Config guarantees for display widths.
func Bar(p percent.Percent, width int) []byte {
	return bits.MustPack(Bits(p, width))
}

// AddBar appends a progress bar to every page buffer. The bar of page i shows
// the percentage round(i/len(pages)·100), except for the last page, which
// always shows 100%. The input slice is not modified.
func AddBar(pages [][]byte, width int) [][]byte {
	out := make([][]byte, len(pages))
	for i, page := range pages {
		p := percent.FromRatio(i, len(pages))
		if i == len(pages)-1 {
			p = percent.FromInt(100)
		}
		bar := Bar(p, width)
		buf := make([]byte, 0, len(page)+len(bar))
		buf = append(buf, page...)
		out[i] = append(buf, bar...)
		tracer().Debugf("page %d/%d: progress %v", i+1, len(pages), p)
	}
	return out
}
