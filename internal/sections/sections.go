// Package sections scores each resume section independently against an industry profile.
package sections

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/types"
)

// Context carries the per-analysis inputs shared by all section analyzers.
type Context struct {
	Profile  industry.Profile
	Keywords []string
	Verbs    []string
	Now      time.Time
}

// NewContext builds a Context for profile, merging its action verbs into the general list.
func NewContext(profile industry.Profile, now time.Time) Context {
	return Context{
		Profile:  profile,
		Keywords: profile.Keywords(),
		Verbs:    patterns.MergeVerbs(patterns.ActionVerbs(), profile.Action),
		Now:      now,
	}
}

// AnalyzeAll runs every section analyzer. The analyzers do not depend on one another.
func AnalyzeAll(doc types.ResumeDocument, ctx Context) map[types.Section]types.SectionAnalysis {
	return map[types.Section]types.SectionAnalysis{
		types.SectionPersonalInfo:   AnalyzePersonalInfo(doc.PersonalInfo, ctx),
		types.SectionExperience:     AnalyzeExperience(doc.Experience, ctx),
		types.SectionSkills:         AnalyzeSkills(doc.Skills, ctx),
		types.SectionEducation:      AnalyzeEducation(doc.Education, ctx),
		types.SectionCertifications: AnalyzeCertifications(doc.Certifications, ctx),
	}
}

func missingSection(score float64, suggestion string) types.SectionAnalysis {
	return types.SectionAnalysis{
		Score:       clamp(score),
		Suggestions: []string{suggestion},
		Status:      types.StatusMissing,
		Breakdown:   map[string]float64{},
	}
}

// keywordPoints converts a 0-100 density into capped points.
func keywordPoints(density, factor, max float64) float64 {
	return math.Min(density*factor, max)
}

// verbPoints credits every occurrence up to max.
func verbPoints(count int, per, max float64) float64 {
	return math.Min(float64(count)*per, max)
}

// lengthPoints scales linearly below min and gives full credit at or above it.
func lengthPoints(text string, min int, points float64) float64 {
	n := len([]rune(strings.TrimSpace(text)))
	if min <= 0 || n >= min {
		return points
	}
	return points * float64(n) / float64(min)
}

func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

func clamp(score float64) int {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, score))))
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// appendUnique adds messages that are not already in list.
func appendUnique(list []string, messages ...string) []string {
	for _, m := range messages {
		dup := false
		for _, existing := range list {
			if existing == m {
				dup = true
				break
			}
		}
		if !dup {
			list = append(list, m)
		}
	}
	return list
}

func densityOf(text string, ctx Context) float64 {
	return industry.Density(text, ctx.Keywords)
}
