package font

import (
	"image"
	"image/draw"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/inkpage/core"
	"github.com/zachomedia/go-bdf"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// FaceFont renders glyphs from a font face. Glyphs are rendered centered into
// a square cell and cached. Full-width cells which are not covered by the face
// are folded to their narrow counterparts, as many bitmap faces come without
// full-width forms.
type FaceFont struct {
	name   string
	face   xfont.Face
	covers func(r rune) bool // nil: trust face.Glyph
	mu     sync.Mutex        // faces are not safe for concurrent use
	cache  map[string]cachedGlyph
}

type cachedGlyph struct {
	glyph Glyph
	ok    bool
}

var _ Font = (*FaceFont)(nil)

// NewFaceFont wraps a font face. covers reports whether the face has a glyph
// for a rune; it may be nil, in which case the face's Glyph method decides.
func NewFaceFont(name string, face xfont.Face, covers func(r rune) bool) *FaceFont {
	return &FaceFont{
		name:   name,
		face:   face,
		covers: covers,
		cache:  make(map[string]cachedGlyph),
	}
}

// Name returns the name of the font.
func (ff *FaceFont) Name() string {
	return ff.name
}

// Glyph is part of interface Font. Only cells consisting of a single rune
// are supported.
func (ff *FaceFont) Glyph(cell string) (Glyph, bool) {
	if cell == Blank {
		return BlankGlyph, true
	}
	ff.mu.Lock()
	defer ff.mu.Unlock()
	if c, ok := ff.cache[cell]; ok {
		return c.glyph, c.ok
	}
	g, ok := ff.render(cell)
	if !ok {
		if narrow := width.Narrow.String(cell); narrow != cell {
			g, ok = ff.render(narrow)
		}
	}
	ff.cache[cell] = cachedGlyph{glyph: g, ok: ok}
	return g, ok
}

func (ff *FaceFont) render(cell string) (Glyph, bool) {
	r, size := utf8.DecodeRuneInString(cell)
	if r == utf8.RuneError || size != len(cell) {
		return Glyph{}, false
	}
	if ff.covers != nil && !ff.covers(r) {
		return Glyph{}, false
	}
	adv, ok := ff.face.GlyphAdvance(r)
	if !ok {
		return Glyph{}, false
	}
	m := ff.face.Metrics()
	dot := fixed.Point26_6{
		X: (fixed.I(GlyphSize) - adv) / 2,
		Y: (fixed.I(GlyphSize)-m.Height)/2 + m.Ascent,
	}
	dr, mask, maskp, _, ok := ff.face.Glyph(dot, r)
	if !ok {
		return Glyph{}, false
	}
	dst := image.NewAlpha(image.Rect(0, 0, GlyphSize, GlyphSize))
	draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	var g Glyph
	var sb strings.Builder
	for y := 0; y < GlyphSize; y++ {
		sb.Reset()
		for x := 0; x < GlyphSize; x++ {
			if dst.AlphaAt(x, y).A > 128 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		g[y] = sb.String()
	}
	tracer().Debugf("rendered glyph %q from face %s", cell, ff.name)
	return g, true
}

// --- Fallback font ---------------------------------------------------------

// Fallback returns a font to be used if everything else fails. It is
// always present. Currently we use the 7×13 basic font of x/image, which
// covers printable ASCII and Latin-1 only.
func Fallback() *FaceFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *FaceFont

func loadFallbackFont() *FaceFont {
	face := basicfont.Face7x13
	covers := func(r rune) bool {
		for _, rng := range face.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
	return NewFaceFont("basic-7x13", face, covers)
}

// --- Font files ------------------------------------------------------------

// LoadBDF creates a font from the contents of a BDF bitmap font file,
// e.g. Shinonome 12.
func LoadBDF(name string, data []byte) (*FaceFont, error) {
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse BDF font %s", name)
	}
	tracer().Infof("loaded BDF font %s", name)
	return NewFaceFont(name, f.NewFace(), nil), nil
}

// LoadOpenType creates a font from the contents of an OpenType or TrueType
// font file, scaled to GlyphSize pixels.
func LoadOpenType(name string, data []byte) (*FaceFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse OpenType font %s", name)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    GlyphSize,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot scale OpenType font %s", name)
	}
	var buf sfnt.Buffer
	covers := func(r rune) bool { // called with FaceFont.mu held
		gid, err := f.GlyphIndex(&buf, r)
		return err == nil && gid != 0
	}
	tracer().Infof("loaded OpenType font %s", name)
	return NewFaceFont(name, face, covers), nil
}

// LoadFile loads a font file, selecting the format by file extension:
// .json for glyph tables, .bdf for BDF fonts, anything else is parsed as
// OpenType.
func LoadFile(path string) (Font, error) {
	name := NormalizeFontname(path)
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".json") {
		return LoadJSONFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font file %s", path)
	}
	if strings.HasSuffix(lower, ".bdf") {
		return LoadBDF(name, data)
	}
	return LoadOpenType(name, data)
}
