package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/types"
)

const (
	maxMetricExamples = 5

	// salary impact: up to 10 points for quantified achievements, up to 10 for keyword coverage
	salaryPointsPerMetric = 2
	salaryMetricCap       = 10
	salaryKeywordPoints   = 10
)

// AnalyzeMetrics counts quantified achievements, action verbs and bullets across the summary
// and every experience description.
func AnalyzeMetrics(doc types.ResumeDocument, verbs []string, keywords types.KeywordAnalysis) types.MetricsAnalysis {
	texts := achievementTexts(doc)

	seen := make(map[string]bool)
	var metrics []string
	verbCount, bullets, totalLength, nonEmpty := 0, 0, 0, 0
	for _, text := range texts {
		for _, m := range patterns.ExtractMetrics(text) {
			key := strings.ToLower(m)
			if !seen[key] {
				seen[key] = true
				metrics = append(metrics, m)
			}
		}
		verbCount += patterns.CountActionVerbs(text, verbs)
		bullets += patterns.CountBulletPoints(text)
		if n := len([]rune(strings.TrimSpace(text))); n > 0 {
			totalLength += n
			nonEmpty++
		}
	}

	avg := 0
	if nonEmpty > 0 {
		avg = int(math.Round(float64(totalLength) / float64(nonEmpty)))
	}

	examples := metrics
	if len(examples) > maxMetricExamples {
		examples = examples[:maxMetricExamples]
	}

	return types.MetricsAnalysis{
		QuantifiedAchievements: len(metrics),
		ActionVerbs:            verbCount,
		BulletPoints:           bullets,
		AverageSectionLength:   avg,
		SalaryImpact:           salaryImpact(len(metrics), keywords),
		Examples:               append([]string{}, examples...),
	}
}

// salaryImpact is a 0-20 heuristic for how strongly the resume supports a compensation
// conversation.
func salaryImpact(quantified int, keywords types.KeywordAnalysis) int {
	points := quantified * salaryPointsPerMetric
	if points > salaryMetricCap {
		points = salaryMetricCap
	}
	if keywords.Total > 0 {
		points += int(math.Round(float64(len(keywords.Found)) / float64(keywords.Total) * salaryKeywordPoints))
	}
	return points
}

func achievementTexts(doc types.ResumeDocument) []string {
	texts := []string{doc.PersonalInfo.Summary}
	for _, e := range doc.Experience {
		texts = append(texts, e.Description)
	}
	return texts
}
