// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-site/internal/data"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStoreSummary outputs a human-readable summary of the loaded store:
// one line per resource with its document size.
func (p *Printer) PrintStoreSummary(store *data.Store) {
	if store == nil || store.Len() == 0 {
		return
	}

	var sb strings.Builder
	for _, key := range store.Keys() {
		raw, _ := store.Raw(key)
		sb.WriteString(fmt.Sprintf("  • %-16s %6d bytes\n", key, len(raw)))
	}

	p.printBox(fmt.Sprintf("LOADED STORE (%d resources)", store.Len()), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPageSummary outputs a one-box report for a rendered page.
func (p *Printer) PrintPageSummary(name, variant string, size int) {
	content := fmt.Sprintf("Variant: %s\nOutput:  %d bytes", variant, size)
	p.printBox(fmt.Sprintf("PAGE %s", name), content)
}
