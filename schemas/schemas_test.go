package schemas_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/schemas"
	rootschemas "github.com/jonathan/resume-ats/schemas"
)

var schemaFiles = []string{
	"resume.schema.json",
	"analysis_result.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(schemaFile)
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasSchema && hasProps, "schema should declare $schema and properties")
		})
	}
}

func TestEmbeddedSchemas_MatchFiles(t *testing.T) {
	resume, err := os.ReadFile("resume.schema.json")
	require.NoError(t, err)
	analysis, err := os.ReadFile("analysis_result.schema.json")
	require.NoError(t, err)

	assert.Equal(t, resume, rootschemas.Resume)
	assert.Equal(t, analysis, rootschemas.AnalysisResult)
}

func TestResumeSchema_AcceptsMinimalDocument(t *testing.T) {
	err := schemas.ValidateResume([]byte(`{"personalInfo": {"firstName": "Jane"}}`))
	assert.NoError(t, err)
}

func TestResumeSchema_RejectsUnknownSkillLevel(t *testing.T) {
	err := schemas.ValidateResume([]byte(`{"skills": [{"name": "Go", "level": "guru"}]}`))
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}
