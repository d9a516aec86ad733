//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeDocument_JSONUnmarshaling(t *testing.T) {
	input := `{
		"personalInfo": {"firstName": "Jane", "lastName": "Doe", "linkedin": "linkedin.com/in/jane"},
		"experience": [{"title": "Engineer", "startDate": "2020-01", "current": true}],
		"skills": [{"name": "Go", "category": "technical", "level": "expert", "years": 4.5}],
		"certifications": [{"name": "CKA", "verificationUrl": "https://example.com", "status": "valid"}]
	}`

	var doc ResumeDocument
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName())
	assert.Equal(t, "linkedin.com/in/jane", doc.PersonalInfo.LinkedIn)
	require.Len(t, doc.Experience, 1)
	assert.True(t, doc.Experience[0].Current)
	assert.Equal(t, SkillTechnical, doc.Skills[0].Category)
	assert.Equal(t, LevelExpert, doc.Skills[0].Level)
	assert.InDelta(t, 4.5, doc.Skills[0].Years, 0.001)
	assert.Equal(t, CertValid, doc.Certifications[0].Status)
	assert.Nil(t, doc.Education)
}

func TestResumeDocument_EmptyMarshalsWithoutNullArrays(t *testing.T) {
	data, err := json.Marshal(ResumeDocument{})
	require.NoError(t, err)

	assert.JSONEq(t, `{"personalInfo": {}}`, string(data))
}

func TestPersonalInfo_FullName(t *testing.T) {
	assert.Equal(t, "Jane", PersonalInfo{FirstName: "Jane"}.FullName())
	assert.Equal(t, "Doe", PersonalInfo{LastName: "Doe"}.FullName())
	assert.Equal(t, "", PersonalInfo{}.FullName())
}

func TestPersonalInfo_IsEmpty(t *testing.T) {
	assert.True(t, PersonalInfo{}.IsEmpty())
	assert.False(t, PersonalInfo{Phone: "555"}.IsEmpty())
}
