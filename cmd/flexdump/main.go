// Package main provides flexdump, a CLI that lays out node trees described in
// YAML and prints the computed geometry.
//
// Usage:
//
//	flexdump [-width W] [-height H] [-precision P] [-dir ltr|rtl] file.yaml...
//
// Examples:
//
//	flexdump layout.yaml               Lay out within the terminal size
//	flexdump -width 80 -height 24 a.yaml b.yaml
//	flexdump -precision 0.5 card.yaml  Use half-unit precision by default
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/debug"
)

const usage = `flexdump - lay out flexbox node trees and print their geometry

Usage:
  flexdump [options] file.yaml...

Options:
`

// config holds the parsed command line.
type config struct {
	width, height float64
	precision     float64
	dir           flex.Direction
	files         []string
}

func main() {
	defer debug.Close()

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	type result struct {
		out string
		err error
	}

	// results are indexed by argument so output order is stable
	results := make([]result, len(cfg.files))
	renderer := lipgloss.NewRenderer(stdout)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range cfg.files {
		g.Go(func() error {
			out, err := dumpFile(path, cfg, renderer)
			results[i] = result{out: out, err: err}
			return nil
		})
	}
	g.Wait()

	var errorCount int
	for i, res := range results {
		if res.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", cfg.files[i], res.err)
			errorCount++
			continue
		}
		if len(cfg.files) > 1 {
			fmt.Fprintf(stdout, "# %s\n", cfg.files[i])
		}
		fmt.Fprint(stdout, res.out)
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("flexdump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	width := fs.Float64("width", 0, "root width in user units (default: terminal width, else content size)")
	height := fs.Float64("height", 0, "root height in user units (default: terminal height, else content size)")
	precision := fs.Float64("precision", 1, "precision for documents that do not set one")
	dir := fs.String("dir", "ltr", "inline direction: ltr or rtl")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := config{
		width:     *width,
		height:    *height,
		precision: *precision,
		files:     fs.Args(),
	}
	if len(cfg.files) == 0 {
		fs.Usage()
		return config{}, fmt.Errorf("no input files")
	}

	switch strings.ToLower(*dir) {
	case "ltr":
		cfg.dir = flex.DirectionLTR
	case "rtl":
		cfg.dir = flex.DirectionRTL
	default:
		return config{}, fmt.Errorf("unknown direction %q", *dir)
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		cols, rows, ok := terminalSize()
		cfg.width = sizeOrFallback(cfg.width, cols, ok)
		cfg.height = sizeOrFallback(cfg.height, rows, ok)
	}
	return cfg, nil
}

// terminalSize reports the size of stdout when it is a terminal.
var terminalSize = func() (int, int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return cols, rows, true
}

// sizeOrFallback keeps an explicit size, else uses the terminal size, else NaN
// so the root is sized to its content.
func sizeOrFallback(size float64, termSize int, ok bool) float64 {
	switch {
	case size > 0:
		return size
	case ok:
		return float64(termSize)
	default:
		return math.NaN()
	}
}
