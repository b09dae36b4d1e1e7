package convert

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidTable(t *testing.T) font.Font {
	rows := make([]string, font.GlyphSize)
	for i := range rows {
		rows[i] = strings.Repeat("1", font.GlyphSize)
	}
	solid, err := font.NewGlyph(rows)
	require.NoError(t, err)
	return font.NewTable("solid", map[string]font.Glyph{
		"■":        solid,
		font.Blank: font.BlankGlyph,
	})
}

func TestHelloOnePage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.convert")
	defer teardown()
	//
	cfg, err := canvas.New(96, 12, nil)
	require.NoError(t, err)
	c := New(cfg, nil)
	assert.Same(t, font.Fallback(), c.Font())
	pages, err := c.Text2Buffers("Hello")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Len(t, pages[0], 144)
	assert.Contains(t, string(bits.Unpack(pages[0])), "0", "letters leave ink")
}

func TestTextPolarity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.convert")
	defer teardown()
	//
	cfg, err := canvas.New(24, 12, nil)
	require.NoError(t, err)
	c := New(cfg, solidTable(t))
	pages := c.Text2Binary("■")
	require.Len(t, pages, 1)
	row := strings.Repeat("0", 12) + strings.Repeat("1", 12)
	assert.Equal(t, strings.Repeat(row, 12), string(pages[0]))
}

func TestEmptyTextIsBlankPage(t *testing.T) {
	cfg, err := canvas.New(16, 12, nil)
	require.NoError(t, err)
	pages, err := New(cfg, solidTable(t)).Text2Buffers("")
	require.NoError(t, err)
	require.Len(t, pages, 1)
	for _, b := range pages[0] {
		assert.Equal(t, byte(0xff), b)
	}
}

func TestMultiplePagesWithProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.convert")
	defer teardown()
	//
	cfg, err := canvas.New(24, 12, nil)
	require.NoError(t, err)
	c := New(cfg, solidTable(t))
	pages, err := c.Text2Buffers("■■■■■")
	require.NoError(t, err)
	require.Len(t, pages, 3)
	withBar := c.AddProgressBar(pages)
	require.Len(t, withBar, 3)
	for i := range withBar {
		assert.Len(t, pages[i], 24*12/8)
		assert.Len(t, withBar[i], 2*24*12/8)
		assert.Equal(t, pages[i], withBar[i][:len(pages[i])])
	}
}

func TestBinary2Buffer(t *testing.T) {
	buf, err := Binary2Buffer("1000000011111111")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0xff}, buf)
	_, err = Binary2Buffer("101")
	assert.True(t, errors.Is(err, core.MisalignedBitLength))
}

func TestImage2Binary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.convert")
	defer teardown()
	//
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "white.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	//
	cfg, err := canvas.New(16, 12, nil)
	require.NoError(t, err)
	c := New(cfg, nil)
	s, err := c.Image2Binary(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("1", 16*12), string(s))
	buf, err := c.Image2Buffer(path)
	require.NoError(t, err)
	assert.Len(t, buf, 24)
	//
	_, err = c.Image2Binary(filepath.Join(t.TempDir(), "nothing.png"))
	assert.True(t, errors.Is(err, core.ExternalDecodeError))
}
