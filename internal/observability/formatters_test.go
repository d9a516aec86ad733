package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-ats/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		OverallScore: 74,
		JobTitle:     "Senior Backend Engineer",
		Industry:     "Software Engineer",
		Sections: map[types.Section]types.SectionAnalysis{
			types.SectionPersonalInfo:   {Score: 82, Status: types.StatusGood},
			types.SectionExperience:     {Score: 91, Status: types.StatusExcellent},
			types.SectionSkills:         {Score: 55, Status: types.StatusNeedsImprovement},
			types.SectionEducation:      {Score: 70, Status: types.StatusGood},
			types.SectionCertifications: {Score: 50, Status: types.StatusMissing},
		},
		Keywords: types.KeywordAnalysis{
			Found:      []string{"go", "docker"},
			Missing:    []string{"kubernetes", "aws", "sql", "git", "linux", "python", "ci/cd"},
			TopMissing: []string{"kubernetes", "aws", "sql", "git", "linux", "python", "ci/cd"},
			Total:      9,
		},
		Metrics: types.MetricsAnalysis{
			QuantifiedAchievements: 3,
			ActionVerbs:            6,
			BulletPoints:           8,
			AverageSectionLength:   42,
			SalaryImpact:           12,
			Examples:               []string{"40%"},
		},
		Suggestions: []types.Suggestion{
			{Priority: types.PriorityHigh, Title: "Add missing industry keywords", Action: "Work these keywords into your summary, experience or skills: kubernetes, aws, sql"},
			{Priority: types.PriorityLow, Title: "Add certifications", Action: "Consider adding certifications such as AWS Certified Solutions Architect"},
		},
	}
}

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "74/100 (good)")
	assert.Contains(t, output, "Software Engineer")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "SECTIONS")
	assert.Contains(t, output, "experience")
	assert.Contains(t, output, "KEYWORDS")
	assert.Contains(t, output, "Matched 2 of 9 industry keywords")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "METRICS")
	assert.Contains(t, output, "+12%")
	assert.Contains(t, output, "1. [HIGH] Add missing industry keywords")
	assert.Contains(t, output, "2. [LOW] Add certifications")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSections_CanonicalOrder(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintSections(sampleResult().Sections)
	output := buf.String()

	personal := strings.Index(output, "personalInfo")
	experience := strings.Index(output, "experience")
	certs := strings.Index(output, "certifications")
	assert.Less(t, personal, experience)
	assert.Less(t, experience, certs)
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer

	NewPrinter(&buf).PrintSuggestions(nil)

	assert.Contains(t, buf.String(), "NO SUGGESTIONS")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100)+"\n✓ check")

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", barWidth), bar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(100))
	assert.Equal(t, strings.Repeat("█", barWidth/2)+strings.Repeat("░", barWidth/2), bar(50))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(140))
}
