// ABOUTME: Tests for the row-emission driver
// ABOUTME: End-to-end grids, uniform images, and contract violations

package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mauromedda/ascii-go/internal/decode"
)

func mustRamp(t *testing.T, charset string) Ramp {
	t.Helper()
	ramp, err := NewRamp(charset)
	if err != nil {
		t.Fatalf("NewRamp(%q): %v", charset, err)
	}
	return ramp
}

func TestRender_TwoByTwoGrid(t *testing.T) {
	t.Parallel()

	// Diagonal 2x2 grayscale: dark, light / light, dark.
	raster := &decode.Raster{
		Pix:      []byte{0, 255, 255, 0},
		Width:    2,
		Height:   2,
		Channels: 1,
	}

	var buf bytes.Buffer
	err := Render(raster, Options{
		Cols:   2,
		Aspect: 1.0, // square glyphs so rows == cols
		Ramp:   mustRamp(t, "@ "),
	}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "@ \n @\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRender_InvertFlipsGrid(t *testing.T) {
	t.Parallel()

	raster := &decode.Raster{
		Pix:      []byte{0, 255, 255, 0},
		Width:    2,
		Height:   2,
		Channels: 1,
	}

	var buf bytes.Buffer
	err := Render(raster, Options{
		Cols:   2,
		Aspect: 1.0,
		Ramp:   mustRamp(t, "@ "),
		Invert: true,
	}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := " @\n@ \n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRender_UniformGrayImage(t *testing.T) {
	t.Parallel()

	// 100x100 all-128 grayscale at 10 columns: every row is identical and
	// every glyph equals the midpoint mapping.
	pix := bytes.Repeat([]byte{128}, 100*100)
	raster := &decode.Raster{Pix: pix, Width: 100, Height: 100, Channels: 1}

	ramp := mustRamp(t, "@%#*+=-:. ")

	var buf bytes.Buffer
	err := Render(raster, Options{Cols: 10, Aspect: 0.5, Ramp: ramp}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d rows, want 20", len(lines))
	}

	want := strings.Repeat(string(ramp.Glyph(128, false)), 10)
	for i, line := range lines {
		if line != want {
			t.Errorf("row %d = %q, want %q", i, line, want)
		}
	}
}

func TestRender_LineWidthMatchesCols(t *testing.T) {
	t.Parallel()

	pix := bytes.Repeat([]byte{200, 30, 90}, 13*7)
	raster := &decode.Raster{Pix: pix, Width: 13, Height: 7, Channels: 3}

	var buf bytes.Buffer
	err := Render(raster, Options{Cols: 31, Aspect: 0.5, Ramp: mustRamp(t, "@%#*+=-:. ")}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if n := len([]rune(line)); n != 31 {
			t.Errorf("row %d is %d glyphs wide, want 31", i, n)
		}
	}
}

func TestRender_EmptyRampRejectedBeforeOutput(t *testing.T) {
	t.Parallel()

	raster := &decode.Raster{Pix: []byte{0}, Width: 1, Height: 1, Channels: 1}

	var buf bytes.Buffer
	err := Render(raster, Options{Cols: 1, Aspect: 0.5}, &buf)
	if err == nil {
		t.Fatal("Render succeeded with empty ramp, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("output written despite empty ramp: %q", buf.String())
	}
}

func TestRender_BadChannelCount(t *testing.T) {
	t.Parallel()

	raster := &decode.Raster{Pix: make([]byte, 5), Width: 1, Height: 1, Channels: 5}

	var buf bytes.Buffer
	err := Render(raster, Options{Cols: 1, Aspect: 0.5, Ramp: mustRamp(t, "@ ")}, &buf)
	if err == nil {
		t.Fatal("Render succeeded with 5 channels, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("output written despite bad channel count: %q", buf.String())
	}
}

func TestRender_AlphaCompositesAgainstBlack(t *testing.T) {
	t.Parallel()

	// One fully transparent white pixel renders as the darkest glyph.
	raster := &decode.Raster{
		Pix:      []byte{255, 255, 255, 0},
		Width:    1,
		Height:   1,
		Channels: 4,
	}

	var buf bytes.Buffer
	err := Render(raster, Options{Cols: 1, Aspect: 1.0, Ramp: mustRamp(t, "@ ")}, &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := buf.String(); got != "@\n" {
		t.Errorf("output = %q, want \"@\\n\"", got)
	}
}
