// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/ahzs645/portfolio-themes/internal/types"
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

// PrintIdentity outputs the identity fields and derived title of a
// normalized CV.
func (p *Printer) PrintIdentity(cv *types.NormalizedCV) {
	if cv == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:      %s\n", cv.Name))
	sb.WriteString(fmt.Sprintf("Email:     %s\n", cv.Email))
	sb.WriteString(fmt.Sprintf("Location:  %s\n", cv.Location))
	if cv.CurrentJobTitle != nil {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", *cv.CurrentJobTitle))
	}
	if len(cv.ExcludedSections) > 0 {
		sb.WriteString(fmt.Sprintf("Excluded:  %s\n", strings.Join(cv.ExcludedSections, ", ")))
	}

	p.printBox("NORMALIZED CV", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSocialLinks outputs the resolved social slots.
func (p *Printer) PrintSocialLinks(links types.SocialLinks) {
	slots := []struct {
		name string
		url  *string
	}{
		{"github", links.GitHub},
		{"linkedin", links.LinkedIn},
		{"twitter", links.Twitter},
		{"youtube", links.YouTube},
		{"website", links.Website},
		{"email", links.Email},
	}

	var sb strings.Builder
	for _, slot := range slots {
		value := "—"
		if slot.url != nil {
			value = *slot.url
		}
		sb.WriteString(fmt.Sprintf("%-9s %s\n", slot.name+":", value))
	}

	p.printBox("SOCIAL LINKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs the flattened experience timeline.
func (p *Printer) PrintExperience(positions []types.Position) {
	if len(positions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total positions: %d\n\n", len(positions)))

	count := min(len(positions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pos := positions[i]
		sb.WriteString(fmt.Sprintf("• %s — %s\n", pos.Title, pos.Company))

		start, end := "?", "?"
		if pos.StartDate != nil {
			start = *pos.StartDate
		}
		if pos.Current {
			end = "present"
		} else if pos.EndDate != nil {
			end = *pos.EndDate
		}
		sb.WriteString(fmt.Sprintf("  %s → %s\n", start, end))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(positions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(positions)-maxItemsToShow))
	}

	p.printBox("EXPERIENCE TIMELINE", sb.String())
}
