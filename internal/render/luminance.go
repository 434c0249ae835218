// ABOUTME: Perceptual luminance of a raw pixel using BT.709 luma weights
// ABOUTME: Alpha channels premultiply color so transparent pixels read as black

package render

import "math"

// ITU-R BT.709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance reduces one pixel to a perceptual brightness in [0, 255].
// Channel layouts: 1 = gray, 2 = gray+alpha, 3 = RGB, 4 = RGBA
// (non-premultiplied). When alpha is present the color channels are
// premultiplied by it, compositing against black. Bytes past the fourth
// channel are ignored; a channel count outside 1..4 is a caller contract
// violation.
func Luminance(pix []byte, channels int) uint8 {
	var r, g, b float64
	switch channels {
	case 1:
		r = float64(pix[0]) / 255
		g, b = r, r
	case 2:
		v := float64(pix[0]) / 255 * float64(pix[1]) / 255
		r, g, b = v, v, v
	case 3:
		r = float64(pix[0]) / 255
		g = float64(pix[1]) / 255
		b = float64(pix[2]) / 255
	default:
		a := float64(pix[3]) / 255
		r = float64(pix[0]) / 255 * a
		g = float64(pix[1]) / 255 * a
		b = float64(pix[2]) / 255 * a
	}

	y := math.Round((lumaR*r + lumaG*g + lumaB*b) * 255)
	if y < 0 {
		return 0
	}
	if y > 255 {
		return 255
	}
	return uint8(y)
}
