// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jonathan/skillbank-derive/internal/derivation"
	"github.com/jonathan/skillbank-derive/internal/derive"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

// PrintSectionOptions outputs a human-readable list of a section's derived options.
func (p *Printer) PrintSectionOptions(section derivation.SectionKey, options []derivation.Option) {
	var sb strings.Builder

	if len(options) == 0 {
		sb.WriteString("No bank-derived options available.\n")
		sb.WriteString("The section stays on manual authoring.")
	} else {
		sb.WriteString(fmt.Sprintf("Total options: %d\n\n", len(options)))

		count := min(len(options), maxItemsToShow)
		for i := 0; i < count; i++ {
			option := options[i]
			if option.ID != "" {
				sb.WriteString(fmt.Sprintf("  • [%s] %s", option.ID, option.Label))
			} else {
				sb.WriteString(fmt.Sprintf("  • %s", option.Label))
			}
			if option.HasVariations {
				sb.WriteString(fmt.Sprintf(" (%d variations)", option.VariationCount))
			}
			sb.WriteString("\n")
		}
		if len(options) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(options)-maxItemsToShow))
		}
	}

	title := fmt.Sprintf("%s OPTIONS", strings.ToUpper(string(section)))
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCertificationOptions outputs certifications with their expiry-aware
// display status. Display is the only place that status is computed; the
// conversion path always emits "Active".
func (p *Printer) PrintCertificationOptions(options []derivation.CertificationOption, now time.Time) {
	if len(options) == 0 {
		return
	}

	var sb strings.Builder
	for _, option := range options {
		sb.WriteString(fmt.Sprintf("  • %s", option.Name))
		if option.Issuer != "" {
			sb.WriteString(fmt.Sprintf(" — %s", option.Issuer))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Status: %s", derive.Status(option.ExpiryDate, now)))
		if option.ExpiryDate != "" {
			sb.WriteString(fmt.Sprintf(" (expires %s)", option.ExpiryDate))
		}
		sb.WriteString("\n")
	}

	p.printBox("CERTIFICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDerivedValue outputs a derived resume value as indented JSON.
func (p *Printer) PrintDerivedValue(section derivation.SectionKey, value any) {
	jsonBytes, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		p.printBox("DERIVED VALUE", fmt.Sprintf("failed to render: %v", err))
		return
	}

	title := fmt.Sprintf("DERIVED %s", strings.ToUpper(string(section)))
	p.printBox(title, string(jsonBytes))
}
