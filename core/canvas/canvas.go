package canvas

import (
	"errors"
	"fmt"

	"github.com/npillmayer/inkpage/core"
)

// FontSize is the edge length of a character cell in pixels. Glyphs are
// square.
const FontSize = 12

// Validation failures of New. All of them are of kind core.ConfigurationError.
var (
	ErrInvalidWidth  = errors.New("width is invalid")
	ErrInvalidHeight = errors.New("height is invalid")
	ErrInvalidMargin = errors.New("margin is invalid")
)

// Margin holds the number of pixels around the character grid.
type Margin struct {
	Top, Left, Right, Bottom int
}

func (m Margin) String() string {
	return fmt.Sprintf("margin{t=%d,l=%d,r=%d,b=%d}", m.Top, m.Left, m.Right, m.Bottom)
}

// Config is the geometry of a canvas. Use New to create one.
type Config struct {
	width, height int
	rowLength     int // characters per line
	colLength     int // lines per page
	margin        Margin
}

// New creates a canvas configuration for a display of width × height pixels.
// If margin is nil, margins are derived from the remainders of width and height
// modulo FontSize, with the odd pixel going to the right resp. bottom.
//
// New fails with a core.ConfigurationError if width is not a positive multiple
// of 8, if height is not positive, if the canvas cannot hold a single glyph, or
// if a supplied margin does not sum up to the remainders.
func New(width, height int, margin *Margin) (*Config, error) {
	if width <= 0 || width%8 != 0 {
		return nil, invalid(ErrInvalidWidth, "width must be a positive multiple of 8, is %d", width)
	}
	if width < FontSize {
		return nil, invalid(ErrInvalidWidth, "width %d cannot hold a glyph of %dpx", width, FontSize)
	}
	if height <= 0 {
		return nil, invalid(ErrInvalidHeight, "height must be positive, is %d", height)
	}
	if height < FontSize {
		return nil, invalid(ErrInvalidHeight, "height %d cannot hold a glyph of %dpx", height, FontSize)
	}
	cfg := &Config{
		width:     width,
		height:    height,
		rowLength: width / FontSize,
		colLength: height / FontSize,
	}
	if margin == nil {
		cfg.margin = deriveMargin(width, height)
	} else {
		m := *margin
		if m.Top < 0 || m.Left < 0 || m.Right < 0 || m.Bottom < 0 {
			return nil, invalid(ErrInvalidMargin, "margins must not be negative: %v", m)
		}
		if m.Top+m.Bottom != height%FontSize || m.Left+m.Right != width%FontSize {
			return nil, invalid(ErrInvalidMargin, "%v does not match remainders w=%d, h=%d",
				m, width%FontSize, height%FontSize)
		}
		cfg.margin = m
	}
	tracer().Debugf("canvas %dx%d, %d×%d cells, %v", width, height,
		cfg.rowLength, cfg.colLength, cfg.margin)
	return cfg, nil
}

func invalid(cause error, format string, v ...interface{}) error {
	return core.KindError(core.ConfigurationError, cause, core.EINVALID, format, v...)
}

func deriveMargin(width, height int) Margin {
	rw, rh := width%FontSize, height%FontSize
	m := Margin{
		Top:  rh / 2,
		Left: rw / 2,
	}
	m.Right = rw - m.Left
	m.Bottom = rh - m.Top
	return m
}

// Width of the canvas in pixels.
func (c *Config) Width() int { return c.width }

// Height of the canvas in pixels.
func (c *Config) Height() int { return c.height }

// FontSize returns the cell size in pixels.
func (c *Config) FontSize() int { return FontSize }

// RowLength is the number of character cells per line.
func (c *Config) RowLength() int { return c.rowLength }

// ColLength is the number of lines per page.
func (c *Config) ColLength() int { return c.colLength }

// Margin returns a copy of the margins.
func (c *Config) Margin() Margin { return c.margin }

// RowWidth is the width of a pixel row, margins included. It always equals Width.
func (c *Config) RowWidth() int {
	return c.margin.Left + c.rowLength*FontSize + c.margin.Right
}

// PageBits is the number of pixels on a page.
func (c *Config) PageBits() int {
	return c.RowWidth() * c.height
}

func (c *Config) String() string {
	return fmt.Sprintf("canvas(%dx%d, %d×%d, %v)", c.width, c.height,
		c.rowLength, c.colLength, c.margin)
}
