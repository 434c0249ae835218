// ABOUTME: Geometry planner mapping a source raster onto a character grid
// ABOUTME: Center-of-cell nearest-neighbor sampling with aspect-corrected rows

package render

import (
	"fmt"
	"math"
)

// MinAspect is the lower clamp for the glyph aspect ratio.
const MinAspect = 0.05

// Plan describes the output character grid for one source raster and how to
// sample the source for each cell. Recomputing a Plan from the same inputs
// yields identical sample coordinates.
type Plan struct {
	Cols int
	Rows int

	srcW int
	srcH int
}

// PlanGeometry computes the grid for a width×height source rendered at cols
// columns. aspect is the width/height ratio of one terminal glyph (~0.5 for
// most fonts); because glyphs are taller than they are wide, the row count is
// scaled by 1/aspect to keep the picture's proportions. Values below
// MinAspect are clamped up to it.
func PlanGeometry(width, height, cols int, aspect float64) (Plan, error) {
	if width < 1 || height < 1 {
		return Plan{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if cols < 1 {
		return Plan{}, fmt.Errorf("target columns must be at least 1, got %d", cols)
	}
	if aspect < MinAspect {
		aspect = MinAspect
	}

	scale := float64(cols) / float64(width)
	rows := int(math.Round(float64(height) * scale / aspect))
	if rows < 1 {
		rows = 1
	}

	return Plan{Cols: cols, Rows: rows, srcW: width, srcH: height}, nil
}

// SourceAt returns the source pixel to sample for output cell (x, y) using
// center-of-cell nearest neighbor. The result always lies inside the source.
func (p Plan) SourceAt(x, y int) (srcX, srcY int) {
	srcX = clamp(int((float64(x)+0.5)*float64(p.srcW)/float64(p.Cols)), 0, p.srcW-1)
	srcY = clamp(int((float64(y)+0.5)*float64(p.srcH)/float64(p.Rows)), 0, p.srcH-1)
	return srcX, srcY
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
