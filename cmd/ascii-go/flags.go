// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Registers short and long spellings for each option on one field

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type cliArgs struct {
	input   string
	output  string
	width   int
	aspect  float64
	charset string
	preset  string
	invert  bool
	verbose bool
	version bool
}

// parseFlags parses argv (without the program name). The input path may come
// before or after the options; flag.ErrHelp is returned for -h/--help.
func parseFlags(argv []string, usageOut io.Writer) (cliArgs, error) {
	var a cliArgs

	rest := argv
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		a.input = rest[0]
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("ascii-go", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	fs.Usage = func() { printUsage(usageOut) }

	fs.IntVar(&a.width, "w", 0, "")
	fs.IntVar(&a.width, "width", 0, "")
	fs.Float64Var(&a.aspect, "a", 0, "")
	fs.Float64Var(&a.aspect, "aspect", 0, "")
	fs.StringVar(&a.charset, "c", "", "")
	fs.StringVar(&a.charset, "charset", "", "")
	fs.StringVar(&a.preset, "p", "", "")
	fs.StringVar(&a.preset, "preset", "", "")
	fs.BoolVar(&a.invert, "i", false, "")
	fs.BoolVar(&a.invert, "invert", false, "")
	fs.StringVar(&a.output, "o", "", "")
	fs.StringVar(&a.output, "output", "", "")
	fs.BoolVar(&a.verbose, "v", false, "")
	fs.BoolVar(&a.verbose, "verbose", false, "")
	fs.BoolVar(&a.version, "version", false, "")

	if err := fs.Parse(rest); err != nil {
		return a, err
	}

	// Accept `ascii-go -w 80 photo.jpg` as well.
	if a.input == "" && fs.NArg() > 0 {
		a.input = fs.Arg(0)
		if fs.NArg() > 1 {
			return a, fmt.Errorf("unexpected argument %q", fs.Arg(1))
		}
	} else if fs.NArg() > 0 {
		return a, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return a, nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: ascii-go <input> [options]

Convert an image (PNG, JPEG, GIF, WebP, BMP, TIFF) to ASCII art.

Options:
  -w, --width <cols>    Target width in character columns (default: terminal
                        width minus 2 when stdout is a terminal, else 120)
  -a, --aspect <ratio>  Width/height ratio of one terminal glyph; rows are
                        scaled by 1/ratio to keep proportions (default 0.5)
  -c, --charset <str>   Characters from dark to light (default "@%#*+=-:. ")
  -p, --preset <name>   Named charset preset: classic, dense, blocks, minimal,
                        or an entry from ~/.ascii-go/ramps.yaml
  -i, --invert          Invert the mapping (light areas use dense glyphs)
  -o, --output <file>   Write result to a file instead of stdout
  -v, --verbose         Enable debug logging on stderr
      --version         Print version and exit
  -h, --help            Show this help

Examples:
  ascii-go photo.jpg -w 100
  ascii-go photo.jpg -w 80 -a 0.45 -c "MWNXK0Okxol:,. " -o out.txt
`)
}
