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

// AnalyzeCertifications scores certifications as an optional, enhancing section. Expired
// certifications cost points and produce a renewal suggestion.
func AnalyzeCertifications(certs []types.Certification, ctx Context) types.SectionAnalysis {
	cfg := certificationsConfig
	if len(certs) == 0 {
		msg := "Consider adding industry certifications"
		if len(ctx.Profile.Certifications) > 0 {
			top := ctx.Profile.Certifications
			if len(top) > 2 {
				top = top[:2]
			}
			msg = fmt.Sprintf("Consider adding certifications such as %s", strings.Join(top, " or "))
		}
		return missingSection(cfg.EmptyScore, msg)
	}

	var suggestions []string
	completeness := 0.0
	highValue := 0.0
	expired := 0
	var names []string

	for i, c := range certs {
		label := certificationLabel(c, i)
		names = append(names, c.Name, c.Issuer)

		filled := 0
		fields := []struct {
			value string
			name  string
		}{
			{c.Name, "name"},
			{c.Issuer, "issuing organization"},
			{c.DateObtained, "date obtained"},
		}
		for _, f := range fields {
			if present(f.value) {
				filled++
			} else {
				suggestions = append(suggestions, fmt.Sprintf("Add the %s for %s", f.name, label))
			}
		}
		completeness += ratio(filled, len(fields))

		if present(c.DateObtained) && !parsing.IsValidDate(c.DateObtained) {
			suggestions = append(suggestions, fmt.Sprintf("Use a standard date format for when you obtained %s", label))
		}
		if present(c.VerificationURL) {
			suggestions = append(suggestions, validation.Validate(c.VerificationURL, validation.MustRule("certifications.verificationUrl")).Errors...)
		}

		if isHighValue(c, ctx) {
			highValue += cfg.HighValueBonus
		}

		if present(c.ExpirationDate) {
			exp, err := parsing.ParseDate(c.ExpirationDate)
			switch {
			case err != nil:
				suggestions = append(suggestions, fmt.Sprintf("Use a standard date format for the expiration date of %s", label))
			case exp.Before(ctx.Now):
				expired++
				suggestions = append(suggestions, fmt.Sprintf("Renew %s, which expired on %s", label, exp.Format("2006-01-02")))
			case exp.Before(ctx.Now.AddDate(0, 0, cfg.ExpiringWindowDays)):
				suggestions = append(suggestions, fmt.Sprintf("Plan to renew %s before it expires on %s", label, exp.Format("2006-01-02")))
			}
		}
	}

	n := float64(len(certs))
	completeness = completeness / n * 100
	highValue = min(highValue, cfg.HighValueMaxBonus)
	penalty := float64(expired) * cfg.ExpiredPenalty

	breakdown := map[string]float64{
		"base":         cfg.BaseScore,
		"completeness": completeness * cfg.CompletenessFactor,
	}
	if highValue > 0 {
		breakdown["highValue"] = highValue
	}
	if penalty > 0 {
		breakdown["expired"] = -penalty
	}

	score := cfg.BaseScore + completeness*cfg.CompletenessFactor + highValue - penalty
	joined := strings.Join(names, " ")
	final := clamp(score)
	return types.SectionAnalysis{
		Score:          final,
		Completeness:   clamp(completeness),
		KeywordDensity: clamp(industry.Density(joined, ctx.Profile.Certifications)),
		HasMetrics:     false,
		Suggestions:    appendUnique([]string{}, suggestions...),
		Status:         types.StatusFor(final),
		Breakdown:      breakdown,
	}
}

func certificationLabel(c types.Certification, i int) string {
	if present(c.Name) {
		return strings.TrimSpace(c.Name)
	}
	return fmt.Sprintf("certification %d", i+1)
}

func isHighValue(c types.Certification, ctx Context) bool {
	text := c.Name + " " + c.Issuer
	for _, kw := range highValueIssuers {
		if patterns.ContainsWord(text, kw) {
			return true
		}
	}
	for _, kw := range ctx.Profile.Certifications {
		if patterns.ContainsWord(text, kw) {
			return true
		}
	}
	return false
}
