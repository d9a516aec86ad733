// Package ats is the entry point of the resume scoring engine: it resolves the industry
// profile, runs the section analyzers, aggregates the score and generates suggestions.
package ats

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/scoring"
	"github.com/jonathan/resume-ats/internal/sections"
	"github.com/jonathan/resume-ats/internal/suggestions"
	"github.com/jonathan/resume-ats/internal/types"
)

// Recorder receives every completed analysis, typically to update metrics.
type Recorder interface {
	RecordAnalysis(result *types.AnalysisResult)
}

// Engine runs analyses. An Engine is safe for concurrent use; its only shared state is the
// normalized-text cache.
type Engine struct {
	logger   *zap.Logger
	now      func() time.Time
	recorder Recorder
	cache    *scoring.TextCache
	weights  scoring.Weights
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock sets the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRecorder registers a sink for completed analyses.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// WithCacheSize bounds the normalized-text cache.
func WithCacheSize(n int) Option {
	return func(e *Engine) {
		e.cache = scoring.NewTextCache(n)
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  zap.NewNop(),
		now:     time.Now,
		cache:   scoring.NewTextCache(scoring.DefaultCacheSize),
		weights: scoring.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze scores doc for jobTitle. A nil document is analyzed as an empty one and a blank
// job title is inferred from the document. Analyze never fails.
func (e *Engine) Analyze(doc *types.ResumeDocument, jobTitle string) *types.AnalysisResult {
	var d types.ResumeDocument
	if doc != nil {
		d = *doc
	}

	title := ResolveJobTitle(&d, jobTitle)
	profile := industry.Lookup(title)
	ctx := sections.NewContext(profile, e.now())

	results := sections.AnalyzeAll(d, ctx)
	overall := scoring.Overall(results, e.weights)
	keywords := scoring.AnalyzeKeywords(e.cache.Normalized(d), ctx.Keywords)
	metrics := scoring.AnalyzeMetrics(d, ctx.Verbs, keywords)

	result := &types.AnalysisResult{
		OverallScore: overall,
		JobTitle:     title,
		Industry:     profile.Name,
		Sections:     results,
		Keywords:     keywords,
		Metrics:      metrics,
		Suggestions: suggestions.Generate(suggestions.Input{
			Document: d,
			Sections: results,
			Keywords: keywords,
			Metrics:  metrics,
			Industry: profile.Name,
			Weights:  e.weights,
		}),
	}

	e.logger.Debug("Analyzed resume",
		zap.String("industry", profile.Name),
		zap.Int("overall_score", overall),
		zap.Int("suggestions", len(result.Suggestions)),
		zap.Int("keywords_found", len(keywords.Found)),
	)
	if e.recorder != nil {
		e.recorder.RecordAnalysis(result)
	}
	return result
}

// CalculateScore returns only the overall score.
func (e *Engine) CalculateScore(doc *types.ResumeDocument, jobTitle string) int {
	return e.Analyze(doc, jobTitle).OverallScore
}

// KeywordSuggestions returns up to industry.MaxKeywordSuggestions keywords for jobTitle.
func (e *Engine) KeywordSuggestions(jobTitle string) []string {
	return industry.KeywordSuggestions(jobTitle)
}

// CacheStats exposes the normalized-text cache counters.
func (e *Engine) CacheStats() (hits, misses int) {
	return e.cache.Stats()
}

// ResolveJobTitle picks the title used for industry lookup: the explicit hint, then the
// personal job title, then the most recent position's title. It returns "" when none is set.
func ResolveJobTitle(doc *types.ResumeDocument, hint string) string {
	if t := strings.TrimSpace(hint); t != "" {
		return t
	}
	if doc == nil {
		return ""
	}
	if t := strings.TrimSpace(doc.PersonalInfo.JobTitle); t != "" {
		return t
	}
	return mostRecentTitle(doc.Experience)
}

// mostRecentTitle prefers a current position, then the latest start date, then list order.
func mostRecentTitle(entries []types.Experience) string {
	best := -1
	var bestStart time.Time
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		if e.Current || parsing.IsPresent(e.EndDate) {
			return strings.TrimSpace(e.Title)
		}
		start, err := parsing.ParseDate(e.StartDate)
		if err != nil {
			if best < 0 {
				best = i
			}
			continue
		}
		if best < 0 || start.After(bestStart) {
			best, bestStart = i, start
		}
	}
	if best < 0 {
		return ""
	}
	return strings.TrimSpace(entries[best].Title)
}

var defaultEngine = New()

// Analyze runs the shared default engine.
func Analyze(doc *types.ResumeDocument, jobTitle string) *types.AnalysisResult {
	return defaultEngine.Analyze(doc, jobTitle)
}

// CalculateScore runs the shared default engine and returns the overall score.
func CalculateScore(doc *types.ResumeDocument, jobTitle string) int {
	return defaultEngine.CalculateScore(doc, jobTitle)
}

// GetKeywordSuggestions returns the keyword suggestions for jobTitle.
func GetKeywordSuggestions(jobTitle string) []string {
	return industry.KeywordSuggestions(jobTitle)
}
