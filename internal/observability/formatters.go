// Package observability provides logging, metrics and the human-readable report printers.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of the score bars in the sections box
	barWidth = 16
)

// Printer handles formatted text output for analysis results
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

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		// pad by rune count so multi-byte glyphs keep the right border aligned
		pad := boxWidth - 4 - len([]rune(line))
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", max(pad, 0)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintAnalysis outputs every box of the report: overview, sections, keywords, metrics and
// suggestions.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	p.PrintOverview(result)
	p.PrintSections(result.Sections)
	p.PrintKeywords(result.Keywords)
	p.PrintMetrics(result.Metrics)
	p.PrintSuggestions(result.Suggestions)
}

// PrintOverview outputs the overall score and resolved industry.
func (p *Printer) PrintOverview(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:     %d/100 (%s)\n", result.OverallScore, types.StatusFor(result.OverallScore)))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", result.Industry))
	if result.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job title: %s\n", result.JobTitle))
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs one score bar per section in canonical order.
func (p *Printer) PrintSections(sections map[types.Section]types.SectionAnalysis) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, name := range types.Sections() {
		a, ok := sections[name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-14s %s %3d  %s\n", name, bar(a.Score), a.Score, a.Status))
	}

	p.printBox("SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders score as a fixed-width bar
func bar(score int) string {
	filled := max(0, min(score, 100)) * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintKeywords outputs keyword coverage and the most important missing keywords.
func (p *Printer) PrintKeywords(kw types.KeywordAnalysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d of %d industry keywords\n", len(kw.Found), kw.Total))

	if len(kw.Found) > 0 {
		sb.WriteString("\nFound:\n")
		writeItems(&sb, kw.Found, "✓")
	}
	if len(kw.TopMissing) > 0 {
		sb.WriteString("\nMissing:\n")
		writeItems(&sb, kw.TopMissing, "✗")
	}

	p.printBox("KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeItems(sb *strings.Builder, items []string, marker string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s %s\n", marker, items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintMetrics outputs the document-wide achievement signals.
func (p *Printer) PrintMetrics(m types.MetricsAnalysis) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Quantified achievements: %d\n", m.QuantifiedAchievements))
	sb.WriteString(fmt.Sprintf("Action verbs:            %d\n", m.ActionVerbs))
	sb.WriteString(fmt.Sprintf("Bullet points:           %d\n", m.BulletPoints))
	sb.WriteString(fmt.Sprintf("Avg. section length:     %d words\n", m.AverageSectionLength))
	sb.WriteString(fmt.Sprintf("Salary impact:           +%d%%\n", m.SalaryImpact))

	if len(m.Examples) > 0 {
		sb.WriteString("\nExamples:\n")
		writeItems(&sb, m.Examples, "•")
	}

	p.printBox("METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the ranked suggestions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSuggestions(list []types.Suggestion) {
	if len(list) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, s := range list {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, strings.ToUpper(string(s.Priority)), s.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", s.Action))
		if i < len(list)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
