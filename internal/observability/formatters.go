// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintRecord outputs a human-readable summary of a parsed resume record.
func (p *Printer) PrintRecord(rec *types.ResumeRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	if len(rec.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(rec.Skills)))
		count := min(len(rec.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec.Skills[i]))
		}
		if len(rec.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(rec.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, edu := range rec.Education {
			sb.WriteString(fmt.Sprintf("  • %s", edu.Institution))
			if edu.Degree != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Degree))
			}
			if year := edu.Year(); year != "" {
				sb.WriteString(fmt.Sprintf(", %s", year))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(rec.Experience)))

	if rec.DegreeSummary != nil {
		sb.WriteString("\nDegree:\n")
		if rec.DegreeSummary.GraduationYear != "" {
			sb.WriteString(fmt.Sprintf("  Graduation year: %s\n", rec.DegreeSummary.GraduationYear))
		}
		if rec.DegreeSummary.GPA != nil {
			sb.WriteString(fmt.Sprintf("  GPA: %.2f\n", *rec.DegreeSummary.GPA))
		}
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetadata outputs the ingestion metadata of a parsed document.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:    %s\n", meta.Filename))
	sb.WriteString(fmt.Sprintf("Format:  %s\n", meta.Format))
	sb.WriteString(fmt.Sprintf("Size:    %d bytes, %d words\n", meta.Bytes, meta.Words))
	sb.WriteString(fmt.Sprintf("Hash:    %s", truncate(meta.Hash, 16)))

	p.printBox("DOCUMENT", sb.String())
}

// PrintMatches outputs the result of a filter run.
func (p *Printer) PrintMatches(filenames []string, total int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d of %d resumes\n\n", len(filenames), total))

	count := min(len(filenames), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", filenames[i]))
	}
	if len(filenames) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(filenames)-maxItemsToShow))
	}

	p.printBox("FILTER RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
