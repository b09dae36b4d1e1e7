package resources

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// ImageProcessor is the collaborator which turns an image file into a
// grayscale pixel buffer of canvas size.
type ImageProcessor interface {
	// Decode reads and decodes an image file.
	Decode(path string) (image.Image, error)
	// Contain scales img to fit into w × h, keeping the aspect ratio, and
	// centers it on a transparent w × h canvas.
	Contain(img image.Image, w, h int) image.Image
	// SetBackground fills transparent areas of img with color c.
	SetBackground(img image.Image, c color.Color) image.Image
	// ToGrayscale converts img to shades of gray.
	ToGrayscale(img image.Image) image.Image
	// PixelBuffer returns the pixels of img, 4 bytes per pixel, where the
	// first byte of each pixel carries the intensity.
	PixelBuffer(img image.Image) []byte
}

// Imaging is an ImageProcessor backed by package imaging.
type Imaging struct{}

var _ ImageProcessor = Imaging{}

// Decode is part of interface ImageProcessor. EXIF orientation is honoured.
func (Imaging) Decode(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// Contain is part of interface ImageProcessor. Unlike imaging.Fit, small
// images are scaled up.
func (Imaging) Contain(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return imaging.New(w, h, color.Transparent)
	}
	scale := math.Min(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	sw := clamp(int(math.Round(float64(b.Dx())*scale)), 1, w)
	sh := clamp(int(math.Round(float64(b.Dy())*scale)), 1, h)
	scaled := imaging.Resize(img, sw, sh, imaging.Lanczos)
	return imaging.PasteCenter(imaging.New(w, h, color.Transparent), scaled)
}

// SetBackground is part of interface ImageProcessor.
func (Imaging) SetBackground(img image.Image, c color.Color) image.Image {
	b := img.Bounds()
	return imaging.OverlayCenter(imaging.New(b.Dx(), b.Dy(), c), img, 1.0)
}

// ToGrayscale is part of interface ImageProcessor.
func (Imaging) ToGrayscale(img image.Image) image.Image {
	return imaging.Grayscale(img)
}

// PixelBuffer is part of interface ImageProcessor. Pixels are
// non-premultiplied RGBA.
func (Imaging) PixelBuffer(img image.Image) []byte {
	return imaging.Clone(img).Pix
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
