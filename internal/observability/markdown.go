package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// FormatMarkdown renders result as a Markdown document.
func FormatMarkdown(result *types.AnalysisResult) string {
	if result == nil {
		return ""
	}

	var out strings.Builder
	out.WriteString("# ATS Analysis\n\n")
	out.WriteString(fmt.Sprintf("**Score:** %d/100 (%s)\n\n", result.OverallScore, types.StatusFor(result.OverallScore)))
	out.WriteString(fmt.Sprintf("**Industry:** %s\n\n", result.Industry))
	if result.JobTitle != "" {
		out.WriteString(fmt.Sprintf("**Job title:** %s\n\n", result.JobTitle))
	}

	out.WriteString("## Sections\n\n")
	out.WriteString("| Section | Score | Status |\n")
	out.WriteString("|---|---:|---|\n")
	for _, name := range types.Sections() {
		if a, ok := result.Sections[name]; ok {
			out.WriteString(fmt.Sprintf("| %s | %d | %s |\n", name, a.Score, a.Status))
		}
	}
	out.WriteString("\n")

	out.WriteString("## Keywords\n\n")
	out.WriteString(fmt.Sprintf("Matched %d of %d.\n\n", len(result.Keywords.Found), result.Keywords.Total))
	if len(result.Keywords.Found) > 0 {
		out.WriteString(fmt.Sprintf("- **Found:** %s\n", strings.Join(result.Keywords.Found, ", ")))
	}
	if len(result.Keywords.TopMissing) > 0 {
		out.WriteString(fmt.Sprintf("- **Missing:** %s\n", strings.Join(result.Keywords.TopMissing, ", ")))
	}
	out.WriteString("\n")

	m := result.Metrics
	out.WriteString("## Metrics\n\n")
	out.WriteString(fmt.Sprintf("- Quantified achievements: %d\n", m.QuantifiedAchievements))
	out.WriteString(fmt.Sprintf("- Action verbs: %d\n", m.ActionVerbs))
	out.WriteString(fmt.Sprintf("- Bullet points: %d\n", m.BulletPoints))
	out.WriteString(fmt.Sprintf("- Average section length: %d words\n", m.AverageSectionLength))
	out.WriteString(fmt.Sprintf("- Estimated salary impact: +%d%%\n\n", m.SalaryImpact))

	out.WriteString("## Suggestions\n\n")
	if len(result.Suggestions) == 0 {
		out.WriteString("No suggestions.\n")
	}
	for i, s := range result.Suggestions {
		out.WriteString(fmt.Sprintf("%d. **%s** _(%s)_: %s\n", i+1, s.Title, s.Priority, s.Action))
	}

	return out.String()
}

// WriteMarkdown writes FormatMarkdown(result) to w.
func WriteMarkdown(w io.Writer, result *types.AnalysisResult) error {
	_, err := io.WriteString(w, FormatMarkdown(result))
	return err
}
