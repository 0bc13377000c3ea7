// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skill-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out   io.Writer
	limit int
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, limit: maxItemsToShow}
}

// WithLimit returns a Printer that shows up to n list items. n <= 0 shows all.
func (p *Printer) WithLimit(n int) *Printer {
	return &Printer{out: p.out, limit: n}
}

func (p *Printer) shown(total int) int {
	if p.limit <= 0 || total < p.limit {
		return total
	}
	return p.limit
}

// truncate shortens s to max runes, marking the cut with "...".
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatches outputs the best-scoring opportunities, assumed sorted.
func (p *Printer) PrintMatches(results []types.ScoredOpportunity) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Opportunities scored: %d\n", len(results)))

	count := p.shown(len(results))
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("#%d  %3d%%  %s\n", i+1, r.Score, r.Title))
		sb.WriteString(fmt.Sprintf("      %s", r.Company))
		if r.Type != "" {
			sb.WriteString(fmt.Sprintf(" · %s", r.Type))
		}
		sb.WriteString("\n")
		if len(r.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("      Missing: %s\n", strings.Join(r.Missing, ", ")))
		}
	}

	if len(results) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-count))
	}

	p.printBox("MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs the full breakdown for one opportunity.
func (p *Printer) PrintMatch(r types.ScoredOpportunity) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", r.Company))
	if r.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", r.Location))
	}
	if r.Stipend != "" {
		sb.WriteString(fmt.Sprintf("Stipend:  %s\n", r.Stipend))
	}
	if d := r.Deadline.String(); d != "" {
		sb.WriteString(fmt.Sprintf("Deadline: %s\n", d))
	}
	sb.WriteString(fmt.Sprintf("Score:    %d%%\n\n", r.Score))

	writeList(&sb, "Matched", r.Matched)
	writeList(&sb, "Missing", r.Missing)
	if len(r.NiceToHave) > 0 {
		writeList(&sb, "Nice-to-have", r.NiceToHave)
	}

	p.printBox(r.Title, strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		sb.WriteString(fmt.Sprintf("%s: none\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("%s:\n", label))
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  • %s\n", item))
	}
}

// PrintRecommendations outputs skills to learn next and near-match opportunities.
func (p *Printer) PrintRecommendations(recs types.Recommendations) {
	var sb strings.Builder

	if len(recs.Recommended) == 0 {
		sb.WriteString("Nothing to learn: every required skill is covered.\n")
	}
	for i, rec := range recs.Recommended {
		sb.WriteString(fmt.Sprintf("%d. %s  (+%d opportunities)\n", i+1, rec.Skill, rec.OpportunitiesUnlocked))
		if rec.Resource != nil {
			sb.WriteString(fmt.Sprintf("   %s, %s\n", rec.Resource.Platform, rec.Resource.Time))
			sb.WriteString(fmt.Sprintf("   %s\n", rec.Resource.URL))
		}
	}
	p.printBox("SKILLS TO LEARN NEXT", strings.TrimSuffix(sb.String(), "\n"))

	if len(recs.NearMatches) == 0 {
		return
	}
	sb.Reset()
	for _, n := range recs.NearMatches {
		sb.WriteString(fmt.Sprintf("%3d%%  %s (%s)\n", n.Score, n.Title, n.Company))
		sb.WriteString(fmt.Sprintf("      Missing: %s\n", strings.Join(n.Missing, ", ")))
	}
	p.printBox("ALMOST THERE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtraction outputs extracted skills and which path produced them.
func (p *Printer) PrintExtraction(label string, skills []string, source string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source: %s\n", source))
	sb.WriteString(fmt.Sprintf("Skills found: %d\n", len(skills)))
	if len(skills) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(skills, ", "))
	}
	title := "EXTRACTED SKILLS"
	if label != "" {
		title += ": " + label
	}
	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOpportunities outputs the catalog listing.
func (p *Printer) PrintOpportunities(opps []types.Opportunity) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Opportunities: %d\n", len(opps)))

	count := p.shown(len(opps))
	for i := 0; i < count; i++ {
		o := opps[i]
		sb.WriteString(fmt.Sprintf("\n[%s] %s, %s\n", o.ID, o.Title, o.Company))
		sb.WriteString(fmt.Sprintf("      Requires: %s\n", strings.Join(o.Required, ", ")))
	}
	if len(opps) > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(opps)-count))
	}

	p.printBox("CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}
