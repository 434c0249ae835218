// ABOUTME: Rendering options with defaults, settings-file merge, validation
// ABOUTME: Precedence is CLI flag over settings file over built-in default

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
)

// Built-in defaults, matching the classic dark→light ramp.
const (
	DefaultWidth   = 120
	DefaultAspect  = 0.5
	DefaultCharset = "@%#*+=-:. "

	// MinAspect is the floor applied to the glyph aspect ratio.
	MinAspect = 0.05

	// terminalMargin is subtracted from the detected terminal width so the
	// output never wraps on the last column.
	terminalMargin = 2
)

// ErrEmptyCharset reports a charset with no glyphs.
var ErrEmptyCharset = errors.New("charset must not be empty")

// Options is the fully resolved configuration for one run.
type Options struct {
	InputPath  string
	OutputPath string // empty means stdout
	Width      int    // target character columns
	Aspect     float64
	Charset    string // dark→light
	Invert     bool
}

// Settings mirrors the optional settings file and the CLI overrides.
// Zero values mean "not set".
type Settings struct {
	Width   int     `json:"width,omitempty"`
	Aspect  float64 `json:"aspect,omitempty"`
	Charset string  `json:"charset,omitempty"`
	Invert  bool    `json:"invert,omitempty"`
}

// SettingsFile returns the path of the user settings file, or "" when the
// home directory cannot be determined.
func SettingsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ascii-go", "settings.json")
}

// LoadSettings reads a Settings from a JSON file. A missing file (or empty
// path) yields zero Settings; a malformed file is an error.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		return &Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// Resolve merges defaults, file settings, and CLI values into Options.
// termWidth is the terminal column count detected once at startup (0 when
// stdout is not a terminal); it only feeds the default width. Width and
// aspect are clamped to their floors after merging.
func Resolve(cli Settings, file *Settings, termWidth int) Options {
	if file == nil {
		file = &Settings{}
	}

	o := Options{Width: DefaultWidth, Aspect: DefaultAspect, Charset: DefaultCharset}
	if termWidth > terminalMargin {
		o.Width = termWidth - terminalMargin
	}

	apply := func(s *Settings) {
		if s.Width > 0 {
			o.Width = s.Width
		}
		if s.Aspect > 0 {
			o.Aspect = s.Aspect
		}
		if s.Charset != "" {
			o.Charset = s.Charset
		}
		if s.Invert {
			o.Invert = true
		}
	}
	apply(file)
	apply(&cli)

	if o.Width < 1 {
		o.Width = 1
	}
	if o.Aspect < MinAspect {
		o.Aspect = MinAspect
	}
	return o
}

// Validate rejects configurations the pipeline cannot render. It runs once
// at startup, before any pixel is processed.
func (o Options) Validate() error {
	if o.Charset == "" {
		return ErrEmptyCharset
	}
	for _, g := range o.Charset {
		if w := runewidth.RuneWidth(g); w != 1 {
			return fmt.Errorf("charset glyph %q occupies %d terminal cells, want 1", g, w)
		}
	}
	if o.Width < 1 {
		return fmt.Errorf("width must be at least 1, got %d", o.Width)
	}
	if o.Aspect <= 0 {
		return fmt.Errorf("aspect must be positive, got %g", o.Aspect)
	}
	return nil
}
