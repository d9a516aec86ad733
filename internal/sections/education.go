package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/types"
)

// AnalyzeEducation scores education as an optional, enhancing section.
func AnalyzeEducation(entries []types.Education, ctx Context) types.SectionAnalysis {
	cfg := educationConfig
	if len(entries) == 0 {
		return missingSection(cfg.EmptyScore, "Consider adding your education, including degrees or relevant coursework")
	}

	var suggestions []string
	completeness := 0.0
	relevant := false
	achievement := false
	var text []string

	for i, e := range entries {
		label := educationLabel(e, i)
		filled := 0
		fields := []struct {
			value string
			name  string
		}{
			{e.Institution, "institution"},
			{e.Degree, "degree"},
			{e.Field, "field of study"},
			{e.GraduationDate, "graduation date"},
		}
		for _, f := range fields {
			if present(f.value) {
				filled++
			} else {
				suggestions = append(suggestions, fmt.Sprintf("Add the %s for %s", f.name, label))
			}
		}
		completeness += ratio(filled, len(fields))

		if present(e.GraduationDate) && !parsing.IsPresent(e.GraduationDate) && !parsing.IsValidDate(e.GraduationDate) {
			suggestions = append(suggestions, fmt.Sprintf("Use a standard date format such as 2019-05 for the graduation date of %s", label))
		}

		if isRelevantField(e.Field, ctx) || isRelevantField(e.Degree, ctx) {
			relevant = true
		}
		if present(e.GPA) || present(e.Honors) {
			achievement = true
		}
		text = append(text, e.Degree, e.Field, e.Honors, strings.Join(e.Coursework, ", "))
	}

	n := float64(len(entries))
	completeness = completeness / n * 100

	breakdown := map[string]float64{
		"base":         cfg.BaseScore,
		"completeness": completeness * cfg.CompletenessFactor,
	}
	score := cfg.BaseScore + completeness*cfg.CompletenessFactor
	if relevant {
		score += cfg.RelevantFieldBonus
		breakdown["relevantField"] = cfg.RelevantFieldBonus
	}
	if achievement {
		score += cfg.AchievementBonus
		breakdown["achievements"] = cfg.AchievementBonus
	} else {
		suggestions = append(suggestions, "Add your GPA (if 3.5 or higher) or academic honors")
	}

	joined := strings.Join(text, " ")
	final := clamp(score)
	return types.SectionAnalysis{
		Score:          final,
		Completeness:   clamp(completeness),
		KeywordDensity: clamp(densityOf(joined, ctx)),
		HasMetrics:     achievement || patterns.HasMetrics(joined),
		Suggestions:    appendUnique([]string{}, suggestions...),
		Status:         types.StatusFor(final),
		Breakdown:      breakdown,
	}
}

func educationLabel(e types.Education, i int) string {
	switch {
	case present(e.Degree) && present(e.Institution):
		return fmt.Sprintf("your %s at %s", strings.TrimSpace(e.Degree), strings.TrimSpace(e.Institution))
	case present(e.Institution):
		return strings.TrimSpace(e.Institution)
	case present(e.Degree):
		return fmt.Sprintf("your %s", strings.TrimSpace(e.Degree))
	default:
		return fmt.Sprintf("education entry %d", i+1)
	}
}

// isRelevantField matches a field of study against the curated list and the industry's
// technical keywords.
func isRelevantField(field string, ctx Context) bool {
	if !present(field) {
		return false
	}
	for _, f := range relevantFields {
		if patterns.ContainsWord(field, f) {
			return true
		}
	}
	for _, kw := range ctx.Profile.Technical {
		if patterns.ContainsWord(field, kw) {
			return true
		}
	}
	return false
}
