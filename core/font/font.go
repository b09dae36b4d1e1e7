/*
Package font is for bitmap glyph handling.

Text is rendered from square glyphs of GlyphSize × GlyphSize pixels. A glyph
is a stack of GlyphSize row strings, where each row holds GlyphSize bits in
font polarity, i.e. '1' denotes ink.

Glyphs are looked up by character cell, which is a single grapheme (usually a
single rune). Fonts come in two flavours:

* A Table is a fixed mapping from cell to glyph, loaded from a JSON resource
of the form { "あ": { "bitmap": [ "000000000000", … ] }, … }.

* A FaceFont derives glyphs from a golang.org/x/image/font.Face, such as
a BDF bitmap font or an OpenType font scaled to GlyphSize pixels.
Glyphs are rendered on first use and cached.

Fonts are read-only after construction and may be shared between concurrent
conversions. Lookup never fails: cells missing from a font are rendered using
the glyph for the ideographic space U+3000.

----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package font

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.fonts")
}

// GlyphSize is the edge length of a glyph in pixels.
const GlyphSize = 12

// Blank is the ideographic space, used for padding and as a substitute for
// missing glyphs.
const Blank = "　"

// Glyph is a bitmap of GlyphSize rows in font polarity.
type Glyph [GlyphSize]string

// BlankGlyph is a glyph without any ink.
var BlankGlyph = func() Glyph {
	var g Glyph
	for i := range g {
		g[i] = strings.Repeat("0", GlyphSize)
	}
	return g
}()

// Row returns row i of a glyph as a bit string in font polarity.
func (g Glyph) Row(i int) bits.String {
	return bits.String(g[i])
}

// Font maps character cells to glyphs.
type Font interface {
	Name() string
	// Glyph returns the glyph for a cell and true, or false if the font does
	// not contain a glyph for the cell.
	Glyph(cell string) (Glyph, bool)
}

// Lookup finds the glyph for a cell. If the cell is missing from f, the glyph
// for Blank is returned; if that one is missing too, BlankGlyph is returned.
func Lookup(f Font, cell string) Glyph {
	if g, ok := f.Glyph(cell); ok {
		return g
	}
	if g, ok := f.Glyph(Blank); ok {
		return g
	}
	return BlankGlyph
}

// ErrInvalidGlyph is returned for malformed glyph bitmaps.
var ErrInvalidGlyph = errors.New("invalid glyph bitmap")

// NewGlyph creates a glyph from bitmap rows. Rows narrower than GlyphSize
// (e.g., half-width glyphs) are filled up with paper bits on the right.
func NewGlyph(rows []string) (Glyph, error) {
	var g Glyph
	if len(rows) != GlyphSize {
		return g, fmt.Errorf("%w: %d rows instead of %d", ErrInvalidGlyph, len(rows), GlyphSize)
	}
	for i, row := range rows {
		if len(row) > GlyphSize {
			return g, fmt.Errorf("%w: row %d has %d bits", ErrInvalidGlyph, i, len(row))
		}
		if strings.Trim(row, "01") != "" {
			return g, fmt.Errorf("%w: row %d is %q", ErrInvalidGlyph, i, row)
		}
		g[i] = row + strings.Repeat("0", GlyphSize-len(row))
	}
	return g, nil
}

// Check returns an error if g has a row which is not exactly GlyphSize bits
// of '0' and '1'.
func (g Glyph) Check() error {
	for i, row := range g {
		if len(row) != GlyphSize || strings.Trim(row, "01") != "" {
			return fmt.Errorf("%w: row %d is %q", ErrInvalidGlyph, i, row)
		}
	}
	return nil
}

// --- Glyph tables ----------------------------------------------------------

// Table is a font with a fixed set of glyphs.
type Table struct {
	name   string
	glyphs map[string]Glyph
}

var _ Font = (*Table)(nil)

// NewTable creates a glyph table from a map. The map is copied. Glyphs
// which do not consist of GlyphSize rows of GlyphSize bits each are left
// out, so that their cells will be rendered as blanks.
func NewTable(name string, glyphs map[string]Glyph) *Table {
	t := &Table{name: name, glyphs: make(map[string]Glyph, len(glyphs))}
	for k, g := range glyphs {
		if err := g.Check(); err != nil {
			tracer().Errorf("glyph table %s, cell %q: %v", name, k, err)
			continue
		}
		t.glyphs[k] = g
	}
	return t
}

// Name returns the name of the table.
func (t *Table) Name() string {
	return t.name
}

// Glyph is part of interface Font.
func (t *Table) Glyph(cell string) (Glyph, bool) {
	g, ok := t.glyphs[cell]
	return g, ok
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.glyphs)
}

type jsonEntry struct {
	Bitmap []string `json:"bitmap"`
}

// LoadJSON reads a glyph table from a JSON resource.
func LoadJSON(name string, r io.Reader) (*Table, error) {
	var entries map[string]jsonEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode glyph table %s", name)
	}
	t := &Table{name: name, glyphs: make(map[string]Glyph, len(entries))}
	for cell, e := range entries {
		g, err := NewGlyph(e.Bitmap)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "glyph table %s, cell %q", name, cell)
		}
		t.glyphs[cell] = g
	}
	if _, ok := t.glyphs[Blank]; !ok {
		tracer().Infof("glyph table %s has no ideographic space, using blank glyph", name)
	}
	tracer().Debugf("loaded glyph table %s with %d glyphs", name, len(t.glyphs))
	return t, nil
}

// LoadJSONFile reads a glyph table from a JSON file.
func LoadJSONFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open glyph table %s", path)
	}
	defer f.Close()
	return LoadJSON(NormalizeFontname(path), f)
}

// NormalizeFontname strips path and extension from a font name and lower-cases it.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	if slash := strings.LastIndexAny(fname, `/\`); slash >= 0 {
		fname = fname[slash+1:]
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	return fname
}
