package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Golang to Go", "Golang", "Go"},
		{"GOLANG to Go", "GOLANG", "Go"},
		{"go lang to Go", "go lang", "Go"},
		{"JS to JavaScript uppercase", "JS", "JavaScript"},
		{"K8s to Kubernetes", "k8s", "Kubernetes"},
		{"nodejs to Node.js", "nodejs", "Node.js"},
		{"postgres to PostgreSQL", "postgres", "PostgreSQL"},
		{"EMR to Electronic Health Records", "EMR", "Electronic Health Records"},
		{"python to Python", "python", "Python"},
		{"PYTHON to Python", "PYTHON", "Python"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Multi-word stays as-is", "Patient Care", "Patient Care"},
		{"Mixed case single word", "JavaScript", "JavaScript"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		name     string
		skill    string
		keyword  string
		expected bool
	}{
		{"Exact", "Python", "python", true},
		{"Alias", "golang", "go", true},
		{"Skill contains keyword", "Docker Compose", "docker", true},
		{"Keyword contains skill", "SQL", "sql", true},
		{"Phrase inside keyword", "Kubernetes", "kubernetes", true},
		{"No partial words", "Javanese", "java", false},
		{"Go does not match Google", "Google Ads", "go", false},
		{"EHR alias", "EHR", "electronic health records", true},
		{"Empty skill", "", "python", false},
		{"Empty keyword", "python", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesKeyword(tt.skill, tt.keyword))
		})
	}
}
