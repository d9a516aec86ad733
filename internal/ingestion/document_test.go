package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestCleanDocument(t *testing.T) {
	doc := types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "  Jane ",
			Email:     " jane@example.com ",
			Summary:   "<p>Backend   engineer</p>",
		},
		Experience: []types.Experience{{
			Title:       "Senior   Engineer",
			StartDate:   " 2020-01 ",
			Description: "<ul><li>Built APIs</li><li>Mentored 4 engineers</li></ul>",
		}},
		Education:      []types.Education{{Institution: "State  University", Coursework: []string{" Algorithms ", "  "}}},
		Skills:         []types.Skill{{Name: " Go\t", Level: types.LevelExpert}},
		Certifications: []types.Certification{{Name: "CKA ", VerificationURL: " https://example.com "}},
	}

	got, err := CleanDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "Jane", got.PersonalInfo.FirstName)
	assert.Equal(t, "jane@example.com", got.PersonalInfo.Email)
	assert.Equal(t, "Backend engineer", got.PersonalInfo.Summary)
	assert.Equal(t, "Senior Engineer", got.Experience[0].Title)
	assert.Equal(t, "2020-01", got.Experience[0].StartDate)
	assert.Equal(t, "- Built APIs\n- Mentored 4 engineers", got.Experience[0].Description)
	assert.Equal(t, "State University", got.Education[0].Institution)
	assert.Equal(t, []string{"Algorithms"}, got.Education[0].Coursework)
	assert.Equal(t, "Go", got.Skills[0].Name)
	assert.Equal(t, types.LevelExpert, got.Skills[0].Level)
	assert.Equal(t, "https://example.com", got.Certifications[0].VerificationURL)
}

func TestCleanDocument_DoesNotMutateInput(t *testing.T) {
	doc := types.ResumeDocument{Skills: []types.Skill{{Name: "  Go  "}}}

	_, err := CleanDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "  Go  ", doc.Skills[0].Name)
}

func TestCleanDocument_EmptyKeepsNilSlices(t *testing.T) {
	got, err := CleanDocument(types.ResumeDocument{})
	require.NoError(t, err)

	assert.Equal(t, types.ResumeDocument{}, got)
}
