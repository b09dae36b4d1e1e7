/*
Package convert turns text and images into page buffers for a monochrome
e-paper display.

A Converter is set up once for a display geometry and a glyph font, and may
then be used for any number of conversions, also concurrently:

    cfg, err := canvas.New(296, 128, nil)
    …
    c := convert.New(cfg, nil)              // nil: use the fallback font
    pages, err := c.Text2Buffers("こんにちは、世界。")
    pages = c.AddProgressBar(pages)

Every page buffer holds Width × Height bits, packed most significant bit
first, where a 1 bit denotes a light pixel.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/core/locate/resources"
	"github.com/npillmayer/inkpage/engine/frame"
	"github.com/npillmayer/inkpage/engine/layout"
	"github.com/npillmayer/inkpage/engine/progress"
	"github.com/npillmayer/inkpage/engine/quantize"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.convert'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.convert")
}

// Converter renders text and images for a fixed canvas. It is immutable.
type Converter struct {
	cfg  *canvas.Config
	font font.Font
	proc resources.ImageProcessor
}

// New creates a converter for a canvas configuration. If f is nil, the
// fallback font is used. cfg must not be nil.
func New(cfg *canvas.Config, f font.Font) *Converter {
	if cfg == nil {
		panic("convert.New called without canvas configuration")
	}
	if f == nil {
		f = font.Fallback()
	}
	tracer().Debugf("converter for %v using font %s", cfg, f.Name())
	return &Converter{cfg: cfg, font: f, proc: resources.Imaging{}}
}

// WithImageProcessor returns a copy of c which decodes images with proc.
func (c *Converter) WithImageProcessor(proc resources.ImageProcessor) *Converter {
	cc := *c
	cc.proc = proc
	return &cc
}

// Config returns the canvas configuration of c.
func (c *Converter) Config() *canvas.Config {
	return c.cfg
}

// Font returns the glyph font of c.
func (c *Converter) Font() font.Font {
	return c.font
}

// Layout arranges text on the character grid of the canvas.
func (c *Converter) Layout(text string) layout.Grid {
	return layout.Layout(text, c.cfg.RowLength(), c.cfg.ColLength())
}

// Text2Binary renders text into one bit string per page. There is always at
// least one page, even for empty text.
func (c *Converter) Text2Binary(text string) []bits.String {
	grid := c.Layout(text)
	pages := frame.AssembleGrid(grid, c.cfg, c.font)
	tracer().Infof("text of %d bytes rendered on %d pages", len(text), len(pages))
	return pages
}

// Text2Buffers renders text into one packed buffer per page.
func (c *Converter) Text2Buffers(text string) ([][]byte, error) {
	pages := c.Text2Binary(text)
	buffers := make([][]byte, len(pages))
	for i, page := range pages {
		buf, err := Binary2Buffer(page)
		if err != nil {
			return nil, err
		}
		buffers[i] = buf
	}
	return buffers, nil
}

// Image2Binary renders an image file into a bit string of canvas size.
// Decoding errors are of kind core.ExternalDecodeError.
func (c *Converter) Image2Binary(path string) (bits.String, error) {
	s, err := quantize.ImageToBits(path, c.cfg, c.proc)
	if err != nil {
		tracer().Errorf("image %s: %v", path, err)
		return "", err
	}
	return s, nil
}

// Image2Buffer renders an image file into a packed buffer of canvas size.
func (c *Converter) Image2Buffer(path string) ([]byte, error) {
	s, err := c.Image2Binary(path)
	if err != nil {
		return nil, err
	}
	return Binary2Buffer(s)
}

// Binary2Buffer packs a bit string into bytes, most significant bit first.
// The length of s must be a multiple of 8.
func Binary2Buffer(s bits.String) ([]byte, error) {
	return bits.Pack(s)
}

// AddProgressBar appends a progress bar of canvas width to every page
// buffer. The input slice is left untouched.
func (c *Converter) AddProgressBar(pages [][]byte) [][]byte {
	return progress.AddBar(pages, c.cfg.Width())
}
