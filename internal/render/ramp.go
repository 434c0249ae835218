// ABOUTME: Glyph ramp type quantizing brightness into characters
// ABOUTME: Ordered dark→light; inversion flips the mapping direction

package render

import (
	"errors"
	"math"
)

// ErrEmptyRamp reports a glyph ramp with no characters.
var ErrEmptyRamp = errors.New("glyph ramp must not be empty")

// Ramp is an ordered glyph sequence, index 0 darkest, last index lightest.
type Ramp []rune

// NewRamp builds a ramp from a dark→light charset string.
func NewRamp(charset string) (Ramp, error) {
	if charset == "" {
		return nil, ErrEmptyRamp
	}
	return Ramp(charset), nil
}

// Glyph maps a luminance value onto the ramp: 0 selects the darkest glyph,
// 255 the lightest. invert flips the direction. A single-glyph ramp always
// returns that glyph.
func (r Ramp) Glyph(v uint8, invert bool) rune {
	n := len(r)
	if n == 1 {
		return r[0]
	}

	t := float64(v) / 255
	if invert {
		t = 1 - t
	}
	idx := clamp(int(math.Round(t*float64(n-1))), 0, n-1)
	return r[idx]
}
