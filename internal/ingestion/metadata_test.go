package ingestion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_OmitsEmptyOptionalFields(t *testing.T) {
	jsonBytes, err := json.Marshal(&Metadata{Timestamp: "2024-01-01T00:00:00Z", Hash: "x"})
	require.NoError(t, err)

	assert.NotContains(t, string(jsonBytes), "source")
	assert.NotContains(t, string(jsonBytes), "warnings")
}

func TestComputeHash(t *testing.T) {
	hash1 := computeHash([]byte("test content"))
	hash2 := computeHash([]byte("different content"))

	assert.Len(t, hash1, 64)
	assert.Len(t, hash2, 64)
	assert.NotEqual(t, hash1, hash2)
	assert.Equal(t, hash1, computeHash([]byte("test content")))
}

func TestNewMetadata(t *testing.T) {
	content := []byte(`{"skills": []}`)

	metadata := NewMetadata(content, "resume.json")

	assert.Equal(t, "resume.json", metadata.Source)
	assert.Equal(t, len(content), metadata.Bytes)
	assert.Equal(t, computeHash(content), metadata.Hash)
	_, err := time.Parse(time.RFC3339, metadata.Timestamp)
	assert.NoError(t, err)
}
