/*
Package raster turns lines of character cells into pixel rows.

Glyph bitmaps are stored in font polarity (1 = ink). A rasterized line is
delivered in output polarity (1 = white), including its left and right
margins. The conversion between polarities happens exactly once per line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package raster

import (
	"strings"

	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/engine/layout"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.raster'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.raster")
}

// RasterizeLine renders a line of cells with font f. The result consists of
// FontSize pixel rows of cfg.RowWidth() bits each, in output polarity.
//
// Cells missing from f are rendered as blanks. A line shorter than
// cfg.RowLength() is padded with blanks, a longer one is cut.
func RasterizeLine(line layout.Line, cfg *canvas.Config, f font.Font) bits.String {
	n := cfg.RowLength()
	if len(line) > n {
		tracer().Errorf("line %q exceeds row length %d, cut", line.String(), n)
		line = line[:n]
	}
	line = layout.Pad(line, n)
	glyphs := make([]font.Glyph, n)
	for i, cell := range line {
		glyphs[i] = font.Lookup(f, cell)
	}
	// all glyph rows of the line in font polarity, row after row
	var ink strings.Builder
	ink.Grow(canvas.FontSize * n * font.GlyphSize)
	for row := 0; row < canvas.FontSize; row++ {
		for _, g := range glyphs {
			ink.WriteString(string(g.Row(row)))
		}
	}
	pixels := bits.Convert(bits.String(ink.String()), bits.FontPolarity, bits.OutputPolarity)
	//
	m := cfg.Margin()
	left, right := bits.Repeat(bits.White, m.Left), bits.Repeat(bits.White, m.Right)
	glyphWidth := n * font.GlyphSize
	var out strings.Builder
	out.Grow(canvas.FontSize * cfg.RowWidth())
	for row := 0; row < canvas.FontSize; row++ {
		out.WriteString(string(left))
		out.WriteString(string(pixels[row*glyphWidth : (row+1)*glyphWidth]))
		out.WriteString(string(right))
	}
	return bits.String(out.String())
}
