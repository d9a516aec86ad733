package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jonathan/resume-ats/internal/types"
)

// Metrics collects analysis metrics in its own registry. It satisfies ats.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	analyses     *prometheus.CounterVec
	overallScore prometheus.Histogram
	sectionScore *prometheus.GaugeVec
	suggestions  *prometheus.CounterVec
	failures     prometheus.Counter
}

// NewMetrics creates the collectors and registers them in a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		analyses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ats_analyses_total",
				Help: "Total number of resume analyses by resolved industry",
			},
			[]string{"industry"},
		),
		overallScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ats_overall_score",
				Help:    "Distribution of overall ATS scores",
				Buckets: prometheus.LinearBuckets(10, 10, 10),
			},
		),
		sectionScore: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ats_section_score",
				Help: "Score of the most recently analyzed resume per section",
			},
			[]string{"section"},
		),
		suggestions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ats_suggestions_total",
				Help: "Total number of suggestions emitted by priority",
			},
			[]string{"priority"},
		),
		failures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ats_load_failures_total",
				Help: "Total number of resume files that could not be loaded",
			},
		),
	}
}

// RecordAnalysis updates the collectors from a completed analysis.
func (m *Metrics) RecordAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}
	m.analyses.WithLabelValues(result.Industry).Inc()
	m.overallScore.Observe(float64(result.OverallScore))
	for section, a := range result.Sections {
		m.sectionScore.WithLabelValues(string(section)).Set(float64(a.Score))
	}
	for _, s := range result.Suggestions {
		m.suggestions.WithLabelValues(string(s.Priority)).Inc()
	}
}

// RecordFailure counts a resume that never reached analysis.
func (m *Metrics) RecordFailure() {
	m.failures.Inc()
}

// Registry exposes the underlying registry, e.g. for testutil assertions.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current values in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
