//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		score int
		want  SectionStatus
	}{
		{100, StatusExcellent},
		{90, StatusExcellent},
		{89, StatusGood},
		{70, StatusGood},
		{69, StatusNeedsImprovement},
		{40, StatusNeedsImprovement},
		{39, StatusMissing},
		{0, StatusMissing},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.score), "score %d", tt.score)
	}
}

func TestSections_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []Section{
		SectionPersonalInfo,
		SectionExperience,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
	}, Sections())
}

func TestComparePriority_SortsHighFirst(t *testing.T) {
	list := []Priority{PriorityLow, PriorityHigh, Priority("unknown"), PriorityMedium, PriorityHigh}

	slices.SortStableFunc(list, ComparePriority)

	assert.Equal(t, []Priority{PriorityHigh, PriorityHigh, PriorityMedium, PriorityLow, Priority("unknown")}, list)
	assert.Zero(t, ComparePriority(PriorityMedium, PriorityMedium))
}

func TestAnalysisResult_JSONFieldNames(t *testing.T) {
	result := AnalysisResult{
		OverallScore: 72,
		Industry:     "Software Engineer",
		Sections: map[Section]SectionAnalysis{
			SectionSkills: {Score: 80, Status: StatusGood, Suggestions: []string{}},
		},
		Suggestions: []Suggestion{{ID: "x", Priority: PriorityHigh, Title: "Add skills", Section: SectionSkills, Impact: 5}},
		Keywords:    KeywordAnalysis{Found: []string{"go"}, Missing: []string{}, TopMissing: []string{}, Total: 1},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"overallScore":72`)
	assert.Contains(t, s, `"keywordDensity":0`)
	assert.Contains(t, s, `"status":"good"`)
	assert.Contains(t, s, `"topMissing":[]`)
	assert.Contains(t, s, `"quantifiedAchievements":0`)
	assert.NotContains(t, s, `"jobTitle"`)
	assert.NotContains(t, s, `"breakdown"`)
}
