package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-ats/internal/types"
)

func TestMetrics_RecordAnalysis(t *testing.T) {
	m := NewMetrics()
	result := sampleResult()

	m.RecordAnalysis(result)
	m.RecordAnalysis(result)
	m.RecordAnalysis(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues("Software Engineer")))
	assert.Equal(t, 91.0, testutil.ToFloat64(m.sectionScore.WithLabelValues(string(types.SectionExperience))))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.suggestions.WithLabelValues("high")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.suggestions.WithLabelValues("low")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.overallScore))
}

func TestMetrics_RecordFailure(t *testing.T) {
	m := NewMetrics()

	m.RecordFailure()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a, b := NewMetrics(), NewMetrics()

	a.RecordAnalysis(sampleResult())

	assert.Equal(t, 0, testutil.CollectAndCount(b.analyses))
	assert.Equal(t, 1, testutil.CollectAndCount(a.analyses))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordAnalysis(sampleResult())
	path := filepath.Join(t.TempDir(), "ats.prom")

	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `ats_analyses_total{industry="Software Engineer"} 1`)
	assert.Contains(t, content, "ats_overall_score_bucket")
	assert.True(t, strings.Contains(content, `ats_section_score{section="skills"} 55`))
}

func TestMetrics_WriteTextfile_BadPath(t *testing.T) {
	err := NewMetrics().WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "ats.prom"))

	assert.Error(t, err)
}
