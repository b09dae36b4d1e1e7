package frame

import (
	"strings"
	"sync"

	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/engine/layout"
	"github.com/npillmayer/inkpage/engine/raster"
)

// AssemblePage renders a page of lines into a bit string of
// cfg.Width() × cfg.Height() bits.
func AssemblePage(page layout.Page, cfg *canvas.Config, f font.Font) bits.String {
	m := cfg.Margin()
	white := bits.Repeat(bits.White, cfg.RowWidth())
	var sb strings.Builder
	sb.Grow(cfg.PageBits())
	for i := 0; i < m.Top; i++ {
		sb.WriteString(string(white))
	}
	for _, line := range page {
		sb.WriteString(string(raster.RasterizeLine(line, cfg, f)))
	}
	for i := 0; i < m.Bottom; i++ {
		sb.WriteString(string(white))
	}
	if sb.Len() != cfg.PageBits() {
		tracer().Errorf("page has %d bits, expected %d", sb.Len(), cfg.PageBits())
	}
	return bits.String(sb.String())
}

// AssembleGrid renders all pages of a grid. Pages are rendered concurrently;
// the result keeps the order of the pages.
func AssembleGrid(grid layout.Grid, cfg *canvas.Config, f font.Font) []bits.String {
	pages := make([]bits.String, len(grid))
	var wg sync.WaitGroup
	for i, page := range grid {
		wg.Add(1)
		go func(i int, page layout.Page) {
			defer wg.Done()
			pages[i] = AssemblePage(page, cfg, f)
		}(i, page)
	}
	wg.Wait()
	tracer().Debugf("assembled %d pages", len(pages))
	return pages
}
