// ABOUTME: CLI entry point for ascii-go
// ABOUTME: Parses flags, resolves config, runs the decode→render pipeline

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mauromedda/ascii-go/internal/config"
	"github.com/mauromedda/ascii-go/internal/decode"
	alog "github.com/mauromedda/ascii-go/internal/log"
	"github.com/mauromedda/ascii-go/internal/render"
	"github.com/mauromedda/ascii-go/internal/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if args.version {
		fmt.Printf("ascii-go %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run performs one full conversion: resolve options, decode, render.
// stdout is injected so tests can capture the data stream.
func run(args cliArgs, stdout io.Writer) error {
	if args.verbose {
		alog.SetLevel(alog.LevelDebug)
	}

	if args.input == "" {
		return errors.New("missing input image path (see --help)")
	}

	fileSettings, err := config.LoadSettings(config.SettingsFile())
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cli := config.Settings{
		Width:   args.width,
		Aspect:  args.aspect,
		Charset: args.charset,
		Invert:  args.invert,
	}
	if cli.Charset == "" && args.preset != "" {
		cli.Charset, err = config.LookupRamp(args.preset, config.RampsFile())
		if err != nil {
			return err
		}
	}

	opts := config.Resolve(cli, fileSettings, terminal.Width())
	opts.InputPath = args.input
	opts.OutputPath = args.output
	if err := opts.Validate(); err != nil {
		return err
	}
	alog.Debug("options: width=%d aspect=%g invert=%v charset=%q",
		opts.Width, opts.Aspect, opts.Invert, opts.Charset)

	ramp, err := render.NewRamp(opts.Charset)
	if err != nil {
		return err
	}

	raster, err := decode.File(opts.InputPath)
	if err != nil {
		return err
	}
	alog.Debug("decoded %s: %dx%d, %d channel(s)",
		opts.InputPath, raster.Width, raster.Height, raster.Channels)

	out := stdout
	if opts.OutputPath != "" {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return fmt.Errorf("opening output file %s: %w", opts.OutputPath, err)
		}
		defer f.Close()
		out = f
	}

	err = render.Render(raster, render.Options{
		Cols:   opts.Width,
		Aspect: opts.Aspect,
		Ramp:   ramp,
		Invert: opts.Invert,
	}, out)
	if err != nil {
		return err
	}

	if opts.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "Wrote ASCII art to: %s\n", opts.OutputPath)
	}
	return nil
}
