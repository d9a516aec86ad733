package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/types"
	"github.com/jonathan/resume-ats/internal/validation"
)

// AnalyzeExperience averages per-entry scores for description length, keyword density,
// quantified results and action verbs.
func AnalyzeExperience(entries []types.Experience, ctx Context) types.SectionAnalysis {
	cfg := experienceConfig
	if len(entries) == 0 {
		return missingSection(0, "Add work experience")
	}

	var (
		total, completeness, density float64
		fieldScore                   float64
		anyMetrics                   bool
		suggestions                  []string
		breakdown                    = map[string]float64{}
	)

	for i, e := range entries {
		label := positionLabel(e, i)
		entryScore := 0.0

		length := lengthPoints(e.Description, cfg.DescriptionMinLength, cfg.LengthPoints)
		entryScore += length
		breakdown["length"] += length

		d := industry.Density(e.Description, ctx.Keywords)
		density += d
		kw := keywordPoints(d, cfg.KeywordFactor, cfg.KeywordMaxPoints)
		entryScore += kw
		breakdown["keywords"] += kw

		if patterns.HasMetrics(e.Description) {
			anyMetrics = true
			entryScore += cfg.MetricsPoints
			breakdown["metrics"] += cfg.MetricsPoints
		} else if present(e.Description) {
			suggestions = append(suggestions, fmt.Sprintf("Add quantified results to %s", label))
		}

		verbs := patterns.CountActionVerbs(e.Description, ctx.Verbs)
		vp := verbPoints(verbs, cfg.VerbPoints, cfg.VerbMaxPoints)
		entryScore += vp
		breakdown["actionVerbs"] += vp
		if verbs == 0 && present(e.Description) {
			suggestions = append(suggestions, fmt.Sprintf("Start the bullet points for %s with action verbs", label))
		}

		suggestions = append(suggestions, experienceFieldSuggestions(e, label)...)
		fieldScore += experienceFieldScore(e)
		completeness += experienceCompleteness(e)
		total += entryScore
	}

	n := float64(len(entries))
	for k := range breakdown {
		breakdown[k] /= n
	}

	final := clamp(total / n)
	return types.SectionAnalysis{
		Score:          final,
		Completeness:   clamp(completeness / n * 100),
		KeywordDensity: clamp(density / n),
		HasMetrics:     anyMetrics,
		Suggestions:    appendUnique([]string{}, suggestions...),
		Status:         types.StatusFor(final),
		Breakdown:      breakdown,
		FieldScore:     clamp(fieldScore / n),
	}
}

func positionLabel(e types.Experience, i int) string {
	switch {
	case present(e.Title) && present(e.Company):
		return fmt.Sprintf("your %s role at %s", strings.TrimSpace(e.Title), strings.TrimSpace(e.Company))
	case present(e.Title):
		return fmt.Sprintf("your %s role", strings.TrimSpace(e.Title))
	case present(e.Company):
		return fmt.Sprintf("your role at %s", strings.TrimSpace(e.Company))
	default:
		return fmt.Sprintf("experience entry %d", i+1)
	}
}

// experienceFieldSuggestions reports missing fields and unusable dates for one entry.
func experienceFieldSuggestions(e types.Experience, label string) []string {
	var out []string
	if !present(e.Title) {
		out = append(out, fmt.Sprintf("Add a job title to %s", label))
	}
	if !present(e.Company) {
		out = append(out, fmt.Sprintf("Add the company name to %s", label))
	}
	if !present(e.Description) {
		out = append(out, fmt.Sprintf("Describe your responsibilities and results for %s", label))
	} else if len([]rune(strings.TrimSpace(e.Description))) < experienceConfig.DescriptionMinLength {
		out = append(out, fmt.Sprintf("Expand the description of %s to at least %d characters", label, experienceConfig.DescriptionMinLength))
	}

	switch {
	case !present(e.StartDate):
		out = append(out, fmt.Sprintf("Add a start date to %s", label))
	case !parsing.IsValidDate(e.StartDate):
		out = append(out, fmt.Sprintf("Use a standard date format such as 2021-03 for the start date of %s", label))
	}

	if !e.Current && !parsing.IsPresent(e.EndDate) {
		switch {
		case !present(e.EndDate):
			out = append(out, fmt.Sprintf("Add an end date to %s or mark it as current", label))
		case !parsing.IsValidDate(e.EndDate):
			out = append(out, fmt.Sprintf("Use a standard date format such as 2023-06 for the end date of %s", label))
		default:
			start, errStart := parsing.ParseDate(e.StartDate)
			end, _ := parsing.ParseDate(e.EndDate)
			if errStart == nil && end.Before(start) {
				out = append(out, fmt.Sprintf("The end date of %s is before its start date", label))
			}
		}
	}
	return out
}

// experienceFieldScore averages the field validator scores of one entry.
func experienceFieldScore(e types.Experience) float64 {
	checks := []struct {
		value string
		rule  string
	}{
		{e.Title, "experience.title"},
		{e.Company, "experience.company"},
		{e.Description, "experience.description"},
		{e.StartDate, "experience.startDate"},
	}
	sum := 0
	for _, c := range checks {
		sum += validation.Validate(c.value, validation.MustRule(c.rule)).ATSScore
	}
	return float64(sum) / float64(len(checks))
}

func experienceCompleteness(e types.Experience) float64 {
	filled := 0
	for _, ok := range []bool{
		present(e.Title),
		present(e.Company),
		present(e.Description),
		present(e.StartDate) && (present(e.EndDate) || e.Current),
	} {
		if ok {
			filled++
		}
	}
	return ratio(filled, 4)
}
