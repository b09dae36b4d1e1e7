package resources

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestImage writes a 4×2 PNG: left half black, right half white.
func writeTestImage(t *testing.T) string {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{A: 255}
			if x >= 2 {
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "halves.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func intensity(pix *Pixels, x, y int) byte {
	return pix.Buf[(y*pix.Width+x)*4]
}

func TestResolveImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.resources")
	defer teardown()
	//
	path := writeTestImage(t)
	pix, err := ResolveImage(path, 16, 16, nil).Pixels()
	require.NoError(t, err)
	require.Len(t, pix.Buf, 16*16*4)
	assert.Equal(t, byte(255), intensity(pix, 0, 0), "letterbox area must be white")
	assert.Equal(t, byte(255), intensity(pix, 15, 15), "letterbox area must be white")
	assert.Less(t, intensity(pix, 1, 8), byte(64))
	assert.Greater(t, intensity(pix, 14, 8), byte(191))
}

func TestImagePromiseIsReusable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.resources")
	defer teardown()
	//
	promise := ResolveImage(writeTestImage(t), 16, 16, nil)
	first, err := promise.Pixels()
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := promise.Pixels()
	require.NoError(t, err)
	assert.Same(t, first, second)
	//
	failing := ResolveImage(filepath.Join(t.TempDir(), "missing.png"), 16, 16, nil)
	_, err = failing.Pixels()
	require.Error(t, err)
	pix, err := failing.Pixels()
	assert.Nil(t, pix)
	assert.True(t, errors.Is(err, core.ExternalDecodeError))
}

func TestResolveImageDecodeFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.resources")
	defer teardown()
	//
	_, err := ResolveImage(filepath.Join(t.TempDir(), "missing.png"), 16, 16, nil).Pixels()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ExternalDecodeError))
	assert.Equal(t, core.EDECODE, core.Code(err))
	//
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("no image at all"), 0644))
	_, err = ResolveImage(garbage, 16, 16, Imaging{}).Pixels()
	assert.True(t, errors.Is(err, core.ExternalDecodeError))
}

const blankTable = `{ "　": { "bitmap": ["000000000000","000000000000","000000000000",
  "000000000000","000000000000","000000000000","000000000000","000000000000",
  "000000000000","000000000000","000000000000","000000000000"] } }`

func TestResolveFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.resources")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "resolve-test-table.json")
	require.NoError(t, os.WriteFile(path, []byte(blankTable), 0644))
	f, err := ResolveFont(path).Font()
	require.NoError(t, err)
	table, ok := f.(*font.Table)
	require.True(t, ok)
	assert.Equal(t, 1, table.Len())
	again, err := ResolveFont("resolve-test-table").Font() // now in registry
	require.NoError(t, err)
	assert.Same(t, table, again)
	promise := ResolveFont("resolve-test-table")
	for i := 0; i < 2; i++ {
		f, err := promise.Font()
		require.NoError(t, err)
		assert.Same(t, table, f)
	}
}

func TestResolveMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inkpage.resources")
	defer teardown()
	//
	f, err := ResolveFont("no-such-font-anywhere-4711.bdf").Font()
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Same(t, font.Fallback(), f)
}
