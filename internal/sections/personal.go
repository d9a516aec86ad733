package sections

import (
	"math"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/types"
	"github.com/jonathan/resume-ats/internal/validation"
)

// AnalyzePersonalInfo scores contact completeness and the professional summary.
func AnalyzePersonalInfo(info types.PersonalInfo, ctx Context) types.SectionAnalysis {
	cfg := personalInfoConfig
	if info.IsEmpty() {
		return missingSection(0, "Add your name, contact details and a professional summary")
	}

	suggestions := []string{}
	breakdown := map[string]float64{}

	contact := []struct {
		value      string
		suggestion string
	}{
		{info.FirstName, "Add your first name"},
		{info.LastName, "Add your last name"},
		{info.Email, "Add an email address so recruiters can reach you"},
		{info.Phone, "Add a phone number"},
	}
	filled := 0
	for _, c := range contact {
		if present(c.value) {
			filled++
		} else {
			suggestions = append(suggestions, c.suggestion)
		}
	}
	completeness := ratio(filled, len(contact)) * 100

	summaryScore, summarySuggestions, density, hasMetrics := scoreSummary(info.Summary, ctx)
	suggestions = append(suggestions, summarySuggestions...)

	score := completeness*cfg.CompletenessWeight + summaryScore*cfg.SummaryWeight
	breakdown["completeness"] = completeness * cfg.CompletenessWeight
	breakdown["summary"] = summaryScore * cfg.SummaryWeight

	if present(info.LinkedIn) || present(info.Website) {
		score += cfg.LinkBonus
		breakdown["links"] = cfg.LinkBonus
	} else {
		suggestions = append(suggestions, "Add a LinkedIn profile or personal website")
	}

	// format problems cost points but never zero the section
	if present(info.Email) {
		if res := validation.Validate(info.Email, validation.MustRule("personalInfo.email")); !res.IsValid {
			score -= cfg.InvalidEmailPenalty
			breakdown["invalidEmail"] = -cfg.InvalidEmailPenalty
			suggestions = append(suggestions, res.Errors...)
		}
	}
	if present(info.Phone) {
		if res := validation.Validate(info.Phone, validation.MustRule("personalInfo.phone")); len(res.Warnings) > 0 || !res.IsValid {
			score -= cfg.InvalidPhonePenalty
			breakdown["invalidPhone"] = -cfg.InvalidPhonePenalty
			suggestions = append(suggestions, res.Warnings...)
			suggestions = append(suggestions, res.Errors...)
		}
	}
	for _, field := range []struct {
		value string
		rule  string
	}{
		{info.LinkedIn, "personalInfo.linkedin"},
		{info.Website, "personalInfo.website"},
	} {
		if present(field.value) {
			suggestions = append(suggestions, validation.Validate(field.value, validation.MustRule(field.rule)).Errors...)
		}
	}

	final := clamp(score)
	return types.SectionAnalysis{
		Score:          final,
		Completeness:   clamp(completeness),
		KeywordDensity: clamp(density),
		HasMetrics:     hasMetrics,
		Suggestions:    appendUnique([]string{}, suggestions...),
		Status:         types.StatusFor(final),
		Breakdown:      breakdown,
	}
}

// scoreSummary returns the 0-100 summary sub-score, its suggestions, its keyword density and
// whether it mentions a metric.
func scoreSummary(summary string, ctx Context) (float64, []string, float64, bool) {
	cfg := personalInfoConfig
	if !present(summary) {
		return 0, []string{"Add a professional summary"}, 0, false
	}

	var suggestions []string
	score := lengthPoints(summary, cfg.SummaryMinLength, cfg.SummaryLengthPoints)
	if score < cfg.SummaryLengthPoints {
		suggestions = append(suggestions, "Expand your summary to at least 150 characters")
	}

	density := industry.Density(summary, ctx.Keywords)
	score += keywordPoints(density, cfg.KeywordFactor, cfg.KeywordMaxPoints)
	if density == 0 {
		suggestions = append(suggestions, "Mention key "+ctx.Profile.Name+" skills in your summary")
	}

	verbs := patterns.CountActionVerbs(summary, ctx.Verbs)
	score += verbPoints(verbs, cfg.VerbPoints, cfg.VerbMaxPoints)
	if verbs == 0 {
		suggestions = append(suggestions, "Use action verbs in your summary")
	}

	hasMetrics := patterns.HasMetrics(summary)
	if hasMetrics {
		score += cfg.MetricsPoints
	} else {
		suggestions = append(suggestions, "Include a quantified highlight in your summary")
	}

	for _, phrase := range validation.FindWeakPhrases(summary, validation.WeakPhrases()) {
		suggestions = append(suggestions, "Replace \""+phrase+"\" in your summary with a concrete result")
	}
	return math.Min(score, 100), suggestions, density, hasMetrics
}
