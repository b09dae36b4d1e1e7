package resources

import (
	"context"
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/font"
	"github.com/npillmayer/inkpage/core/font/fontregistry"
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	fontResourceType
	imageResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	var s string
	switch rtype {
	case imageResourceType:
		s = fmt.Sprintf("image not found: %s", res)
	case fontResourceType:
		s = fmt.Sprintf("font not found: %s", res)
	default:
		s = fmt.Sprintf("resource not found: %s", res)
	}
	err := core.WrapError(e, core.EMISSING, s)
	return err
}

// --- Images ---------------------------------------------------------------

// Pixels is a grayscale pixel buffer, 4 bytes per pixel, row by row.
type Pixels struct {
	Width, Height int
	Buf           []byte
}

type pixPlusErr struct {
	pix *Pixels
	err error
}

// ImagePromise is returned by ResolveImage.
type ImagePromise interface {
	// Pixels blocks until the image has been processed. It may be called
	// more than once and always returns the same result.
	Pixels() (*Pixels, error)
}

type imageLoader struct {
	await func(ctx context.Context) (*Pixels, error)
}

func (loader imageLoader) Pixels() (*Pixels, error) {
	return loader.await(context.Background())
}

// ResolveImage loads an image file and prepares it for display on a canvas of
// width × height pixels: the image is contained in the canvas, transparent
// areas are filled with white, and colors are reduced to gray.
// If proc is nil, Imaging{} is used.
//
// Decoding failures are reported as errors of kind core.ExternalDecodeError.
func ResolveImage(path string, width, height int, proc ImageProcessor) ImagePromise {
	if proc == nil {
		proc = Imaging{}
	}
	ch := make(chan pixPlusErr, 1)
	go func(ch chan<- pixPlusErr) {
		result := pixPlusErr{}
		img, err := proc.Decode(path)
		if err != nil {
			tracer().Errorf("cannot decode image %s: %v", path, err)
			result.err = core.KindError(core.ExternalDecodeError, err, core.EDECODE,
				"cannot decode image %s", path)
		} else {
			img = proc.Contain(img, width, height)
			img = proc.SetBackground(img, color.White)
			img = proc.ToGrayscale(img)
			result.pix = &Pixels{
				Width:  width,
				Height: height,
				Buf:    proc.PixelBuffer(img),
			}
			tracer().Debugf("image %s prepared as %d×%d gray pixels", path, width, height)
		}
		ch <- result
		close(ch)
	}(ch)
	var mu sync.Mutex
	var done bool
	var r pixPlusErr
	return imageLoader{
		await: func(ctx context.Context) (*Pixels, error) {
			mu.Lock()
			defer mu.Unlock()
			if !done {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case r = <-ch:
					done = true
				}
			}
			return r.pix, r.err
		},
	}
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font font.Font
	err  error
}

// FontPromise is returned by ResolveFont.
type FontPromise interface {
	// Font blocks until the font has been loaded. It may be called more
	// than once and always returns the same result.
	Font() (font.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (font.Font, error)
}

func (loader fontLoader) Font() (font.Font, error) {
	return loader.await(context.Background())
}

// ResolveFont resolves a glyph font by name. The name is looked up in the
// global font registry first, then interpreted as a file path, and finally
// searched for among the system fonts. Loaded fonts are stored in the global
// registry.
//
// If no font can be found, the fallback font is returned together with an
// error.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		registry := fontregistry.GlobalRegistry()
		if f, err := registry.Font(name); err == nil {
			result.font = f
			ch <- result
			close(ch)
			return
		}
		fpath := name
		if _, err := os.Stat(fpath); err != nil {
			fpath, err = findfont.Find(name) // try to find as system font
			if err != nil || fpath == "" {
				tracer().Infof("font %s not found, using fallback font", name)
				fpath = ""
			} else {
				tracer().Debugf("%s is a system font", name)
			}
		}
		if fpath == "" {
			result.font, result.err = font.Fallback(), NotFound(name, fontResourceType)
		} else if f, err := font.LoadFile(fpath); err != nil {
			result.font, result.err = font.Fallback(), err
		} else {
			registry.StoreFont(name, f)
			result.font = f
		}
		ch <- result
		close(ch)
	}(ch)
	var mu sync.Mutex
	var done bool
	var r fontPlusErr
	return fontLoader{
		await: func(ctx context.Context) (font.Font, error) {
			mu.Lock()
			defer mu.Unlock()
			if !done {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case r = <-ch:
					done = true
				}
			}
			return r.font, r.err
		},
	}
}
