/*
Package quantize reduces grayscale images to bi-level bit strings.

Decoding, scaling and gray conversion of image files is delegated to an
image processor (see package resources). This package applies the final
threshold: light pixels become '1', dark pixels '0', which matches the
output polarity of the display.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quantize

import (
	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/bits"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/npillmayer/inkpage/core/locate/resources"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'inkpage.quantize'.
func tracer() tracing.Trace {
	return tracing.Select("inkpage.quantize")
}

// Threshold is the smallest intensity which is displayed as a light pixel,
// three quarters of 255.
const Threshold = 191

// BytesPerPixel is the stride of a pixel buffer. The first byte of every
// pixel is its intensity.
const BytesPerPixel = 4

// Quantize thresholds a pixel buffer of width × height pixels into a bit
// string of the same number of bits. It is an error if pix holds fewer
// pixels; surplus bytes are ignored.
func Quantize(pix []byte, width, height int) (bits.String, error) {
	if width <= 0 || height <= 0 {
		return "", core.Error(core.EINVALID, "cannot quantize image of %d×%d pixels", width, height)
	}
	n := width * height
	if len(pix) < n*BytesPerPixel {
		return "", core.Error(core.EINVALID, "pixel buffer holds %d bytes, need %d for %d×%d pixels",
			len(pix), n*BytesPerPixel, width, height)
	}
	out := make([]byte, n)
	light := 0
	for i := range out {
		if pix[i*BytesPerPixel] >= Threshold {
			out[i] = bits.White
			light++
		} else {
			out[i] = bits.Black
		}
	}
	tracer().Debugf("quantized %d×%d image, %d of %d pixels are light", width, height, light, n)
	return bits.String(out), nil
}

// ImageToBits loads an image file, fits it to the canvas and quantizes it.
// If proc is nil, the default image processor is used.
//
// Failures to decode the image are of kind core.ExternalDecodeError.
func ImageToBits(path string, cfg *canvas.Config, proc resources.ImageProcessor) (bits.String, error) {
	promise := resources.ResolveImage(path, cfg.Width(), cfg.Height(), proc)
	pix, err := promise.Pixels()
	if err != nil {
		return "", err
	}
	if pix == nil {
		return "", core.Error(core.EINTERNAL, "no pixels for image %s", path)
	}
	return Quantize(pix.Buf, pix.Width, pix.Height)
}
