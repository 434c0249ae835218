// ABOUTME: Decoder boundary turning an image file into a raw pixel raster
// ABOUTME: Flattens decoded images to row-major bytes with 1, 3, or 4 channels

package decode

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Register decoders for the supported formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Raster is a decoded image as raw row-major bytes, Width*Height*Channels
// long with no row padding. Channel layouts: 1 = gray, 2 = gray+alpha,
// 3 = RGB, 4 = RGBA (non-premultiplied).
type Raster struct {
	Pix      []byte
	Width    int
	Height   int
	Channels int
}

// File decodes the image at path into a Raster. Supported formats: PNG,
// JPEG, GIF (first frame), WebP, BMP, TIFF.
func File(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	r, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s (%s): %w", path, format, err)
	}
	return r, nil
}

// FromImage flattens a decoded image into a Raster, keeping the cheapest
// channel layout the source supports: grayscale sources stay 1 channel,
// opaque YCbCr (JPEG) becomes 3-channel RGB, everything else becomes
// 4-channel non-premultiplied RGBA.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", w, h)
	}

	switch src := img.(type) {
	case *image.Gray:
		return flattenGray(src, w, h), nil
	case *image.YCbCr:
		return flattenRGB(img, w, h), nil
	case *image.NRGBA:
		return flattenNRGBA(src, w, h), nil
	default:
		return flattenGeneric(img, w, h), nil
	}
}

// flattenGray copies grayscale rows, dropping any stride padding.
func flattenGray(src *image.Gray, w, h int) *Raster {
	min := src.Bounds().Min
	pix := make([]byte, w*h)
	for y := range h {
		off := src.PixOffset(min.X, min.Y+y)
		copy(pix[y*w:(y+1)*w], src.Pix[off:off+w])
	}
	return &Raster{Pix: pix, Width: w, Height: h, Channels: 1}
}

// flattenNRGBA copies non-premultiplied RGBA rows, dropping stride padding.
func flattenNRGBA(src *image.NRGBA, w, h int) *Raster {
	min := src.Bounds().Min
	pix := make([]byte, w*h*4)
	for y := range h {
		off := src.PixOffset(min.X, min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
	}
	return &Raster{Pix: pix, Width: w, Height: h, Channels: 4}
}

// flattenRGB converts an opaque image to 3-channel RGB bytes.
func flattenRGB(img image.Image, w, h int) *Raster {
	min := img.Bounds().Min
	pix := make([]byte, 0, w*h*3)
	for y := range h {
		for x := range w {
			r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return &Raster{Pix: pix, Width: w, Height: h, Channels: 3}
}

// flattenGeneric converts any remaining image type (paletted GIF,
// premultiplied RGBA, 16-bit formats) to non-premultiplied RGBA.
func flattenGeneric(img image.Image, w, h int) *Raster {
	min := img.Bounds().Min
	pix := make([]byte, 0, w*h*4)
	for y := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(min.X+x, min.Y+y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	return &Raster{Pix: pix, Width: w, Height: h, Channels: 4}
}
