// ABOUTME: Row-emission driver wiring geometry, luminance, and ramp together
// ABOUTME: Streams one line per output row through a buffered writer

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mauromedda/ascii-go/internal/decode"
)

// Options configure a single rendering pass.
type Options struct {
	Cols   int     // target character columns, at least 1
	Aspect float64 // glyph width/height ratio, see PlanGeometry
	Ramp   Ramp    // dark→light glyphs, must be non-empty
	Invert bool    // light areas use dense glyphs
}

// Render writes the textual approximation of the raster to w, one line per
// output row. Each line holds exactly Options.Cols glyphs followed by a
// newline; only one row is held in memory at a time.
func Render(r *decode.Raster, opts Options, w io.Writer) error {
	if len(opts.Ramp) == 0 {
		return ErrEmptyRamp
	}
	if r.Channels < 1 || r.Channels > 4 {
		return fmt.Errorf("decoder contract violation: %d channels, want 1..4", r.Channels)
	}

	plan, err := PlanGeometry(r.Width, r.Height, opts.Cols, opts.Aspect)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	var line strings.Builder
	for y := range plan.Rows {
		line.Reset()
		for x := range plan.Cols {
			srcX, srcY := plan.SourceAt(x, y)
			off := (srcY*r.Width + srcX) * r.Channels
			v := Luminance(r.Pix[off:off+r.Channels], r.Channels)
			line.WriteRune(opts.Ramp.Glyph(v, opts.Invert))
		}
		line.WriteByte('\n')
		if _, err := bw.WriteString(line.String()); err != nil {
			return fmt.Errorf("writing output row %d: %w", y, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
