package frame

import (
	"strings"
	"testing"

	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/engine/layout"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid() font.Glyph {
	var g font.Glyph
	for i := range g {
		g[i] = strings.Repeat("1", font.GlyphSize)
	}
	return g
}

func TestAssemblePageMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.frame")
	defer teardown()
	//
	cfg, err := canvas.New(32, 29, nil) // margin t=2, b=3, l=4, r=4
	require.NoError(t, err)
	f := font.NewTable("solid", map[string]font.Glyph{"■": solid()})
	grid := layout.Paginate([]layout.Line{{"■", "■"}}, cfg.RowLength(), cfg.ColLength())
	require.Len(t, grid, 1)
	page := AssemblePage(grid[0], cfg, f)
	require.Len(t, page, 32*29)
	s := string(page)
	row := func(y int) string { return s[y*32 : (y+1)*32] }
	white := strings.Repeat("1", 32)
	assert.Equal(t, white, row(0))
	assert.Equal(t, white, row(1))
	for y := 2; y < 14; y++ {
		assert.Equal(t, "1111"+strings.Repeat("0", 24)+"1111", row(y), "row %d", y)
	}
	for y := 14; y < 29; y++ {
		assert.Equal(t, white, row(y), "row %d", y)
	}
}

func TestAssembleGridKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.frame")
	defer teardown()
	//
	cfg, err := canvas.New(24, 12, nil)
	require.NoError(t, err)
	f := font.NewTable("solid", map[string]font.Glyph{"■": solid()})
	lines := []layout.Line{{"■", "■"}, {"■"}, nil, {"■", "■"}}
	for i := range lines {
		lines[i] = layout.Pad(lines[i], 2)
	}
	pages := AssembleGrid(layout.Paginate(lines, 2, 1), cfg, f)
	require.Len(t, pages, 4)
	assert.Equal(t, strings.Repeat("0", 24*12), string(pages[0]))
	assert.Equal(t, strings.Repeat(strings.Repeat("0", 12)+strings.Repeat("1", 12), 12), string(pages[1]))
	assert.Equal(t, strings.Repeat("1", 24*12), string(pages[2]))
	assert.Equal(t, pages[0], pages[3])
}
