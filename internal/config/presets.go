// ABOUTME: Named glyph ramp presets, built-in and user-defined via YAML
// ABOUTME: User entries in ~/.ascii-go/ramps.yaml shadow built-ins by name

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Built-in ramps, dark→light.
var builtinRamps = map[string]string{
	"classic": "@%#*+=-:. ",
	"dense":   "MWNXK0Okxol:,. ",
	"blocks":  "█▓▒░ ",
	"minimal": "# ",
}

// rampsFile mirrors the on-disk preset file:
//
//	ramps:
//	  soft: "&$x/|;,. "
type rampsFile struct {
	Ramps map[string]string `yaml:"ramps"`
}

// RampsFile returns the path of the user ramps file, or "" when the home
// directory cannot be determined.
func RampsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ascii-go", "ramps.yaml")
}

// LookupRamp resolves a preset name, checking the user ramps file first and
// the built-ins second. A missing user file is not an error; a malformed one
// is.
func LookupRamp(name, userPath string) (string, error) {
	if userPath != "" {
		data, err := os.ReadFile(userPath)
		switch {
		case err == nil:
			var rf rampsFile
			if err := yaml.Unmarshal(data, &rf); err != nil {
				return "", fmt.Errorf("parsing %s: %w", userPath, err)
			}
			if ramp, ok := rf.Ramps[name]; ok {
				return ramp, nil
			}
		case !os.IsNotExist(err):
			return "", fmt.Errorf("reading %s: %w", userPath, err)
		}
	}

	if ramp, ok := builtinRamps[name]; ok {
		return ramp, nil
	}
	return "", fmt.Errorf("unknown ramp preset %q (built-ins: %v)", name, PresetNames())
}

// PresetNames returns the built-in preset names, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(builtinRamps))
	for name := range builtinRamps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
