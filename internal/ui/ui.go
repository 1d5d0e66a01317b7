// Package ui renders terminal output: ANSI-decorated status lines on stderr
// and plain, pipe-safe record data for stdout.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/papapumpkin/mainseq/internal/catalog"
	"github.com/papapumpkin/mainseq/internal/star"
)

// ANSI color codes.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	green  = "\033[32m"
	red    = "\033[31m"
	cyan   = "\033[36m"
)

// Printer writes human-facing decoration to stderr. Data output goes through
// WriteRecord instead so stdout stays clean for pipes.
type Printer struct {
	color bool

	// Verbose enables Debug output.
	Verbose bool
}

// New returns a Printer. Pass color=false to strip ANSI codes, for terminals
// or logs that can't render them.
func New(color bool) *Printer {
	return &Printer{color: color}
}

// paint wraps s in the given codes when color is enabled.
func (p *Printer) paint(codes, s string) string {
	if !p.color {
		return s
	}
	return codes + s + reset
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s\n", p.paint(red+bold, "error: "), msg)
}

// Info prints a de-emphasized informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, "%s\n", p.paint(dim, msg))
}

// Warn prints a cautionary line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, "%s%s\n", p.paint(yellow+bold, "warning: "), msg)
}

// Debug prints a diagnostic line, but only when Verbose is set.
func (p *Printer) Debug(msg string) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", p.paint(dim, "· "+msg))
}

// Saved reports a journal append.
func (p *Printer) Saved(id string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", p.paint(green, "✓ saved"), p.paint(dim, id))
}

// Watching reports that a catalog file is being watched for changes.
func (p *Printer) Watching(path string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", p.paint(cyan, "◉ watching"), path)
}

// ValidateResult summarizes a catalog validation run.
func (p *Printer) ValidateResult(path string, starCount int, errs []catalog.ValidationError) {
	if len(errs) == 0 {
		fmt.Fprintf(os.Stderr, "%s %d star(s), no errors\n",
			p.paint(green+bold, fmt.Sprintf("✓ catalog %q", path)), starCount)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %d error(s):\n",
		p.paint(red+bold, fmt.Sprintf("✗ catalog %q", path)), len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  %s%s\n", p.paint(red, "• "), e.Error())
	}
}

// WriteRecord renders a resolved record as aligned plain-text lines: mass to
// three decimals, temperature to two, lifespan to three, metallicity to two.
func WriteRecord(w io.Writer, props star.StarProperties) {
	fmt.Fprintf(w, "mass:          %.3f M☉\n", props.Mass)
	fmt.Fprintf(w, "temperature:   %.2f K\n", props.Temperature)
	fmt.Fprintf(w, "lifespan:      %.3f Gyr\n", props.Lifespan)
	fmt.Fprintf(w, "spectral type: %s\n", props.SpectralType)
	fmt.Fprintf(w, "metallicity:   %.2f Z☉\n", props.Metallicity)
}

// SeedSummary renders a catalog entry's seed in one short phrase for tables
// and pickers.
func SeedSummary(e catalog.Entry) string {
	switch {
	case e.Mass != nil:
		return fmt.Sprintf("mass %g M☉", *e.Mass)
	case e.Temperature != nil:
		return fmt.Sprintf("temp %g K", *e.Temperature)
	case e.SpectralType != "":
		return fmt.Sprintf("type %s", e.SpectralType)
	}
	return "no seed"
}
