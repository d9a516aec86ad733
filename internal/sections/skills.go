package sections

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/types"
)

// AnalyzeSkills scores quantity, relevance to the industry's technical keywords, category
// diversity and proficiency disclosure.
func AnalyzeSkills(skills []types.Skill, ctx Context) types.SectionAnalysis {
	cfg := skillsConfig

	named := make([]types.Skill, 0, len(skills))
	for _, s := range skills {
		if present(s.Name) {
			named = append(named, s)
		}
	}
	if len(named) == 0 {
		return missingSection(0, "Add a skills section with your core technical and soft skills")
	}

	var suggestions []string
	breakdown := map[string]float64{}
	n := len(named)

	quantity := cfg.QuantityPoints * min(ratio(n, cfg.RecommendedCount), 1)
	breakdown["quantity"] = quantity
	if n < cfg.RecommendedCount {
		suggestions = append(suggestions, fmt.Sprintf("Add %d more skills; aim for at least %d", cfg.RecommendedCount-n, cfg.RecommendedCount))
	}

	matched, unmatched := matchTechnical(named, ctx.Profile.Technical)
	target := len(ctx.Profile.Technical)
	if target > cfg.RelevanceTarget {
		target = cfg.RelevanceTarget
	}
	relevance := cfg.RelevancePoints * min(ratio(matched, target), 1)
	breakdown["relevance"] = relevance
	if relevance < cfg.RelevancePoints && len(unmatched) > 0 {
		top := unmatched
		if len(top) > cfg.SuggestedKeywords {
			top = top[:cfg.SuggestedKeywords]
		}
		suggestions = append(suggestions, fmt.Sprintf("Add skills relevant to %s roles, such as %s", ctx.Profile.Name, strings.Join(top, ", ")))
	}

	categories := map[types.SkillCategory]bool{}
	leveled := 0
	withYears := false
	for _, s := range named {
		if s.Category != "" {
			categories[s.Category] = true
		}
		if s.Level != "" {
			leveled++
		}
		if s.Years > 0 {
			withYears = true
		}
	}

	score := quantity + relevance
	if len(categories) >= cfg.MinCategories {
		score += cfg.DiversityPoints
		breakdown["diversity"] = cfg.DiversityPoints
	} else {
		suggestions = append(suggestions, "Include a mix of technical skills, soft skills and tools")
	}

	if ratio(leveled, n) > cfg.ProficiencyRatio {
		score += cfg.ProficiencyPoints
		breakdown["proficiency"] = cfg.ProficiencyPoints
	} else {
		suggestions = append(suggestions, "Specify a proficiency level for most of your skills")
	}

	names := make([]string, n)
	for i, s := range named {
		names[i] = s.Name
	}

	final := clamp(score)
	return types.SectionAnalysis{
		Score:          final,
		Completeness:   clamp(ratio(n, len(skills)) * 100),
		KeywordDensity: clamp(industry.Density(strings.Join(names, ", "), ctx.Keywords)),
		HasMetrics:     withYears,
		Suggestions:    appendUnique([]string{}, suggestions...),
		Status:         types.StatusFor(final),
		Breakdown:      breakdown,
	}
}

// matchTechnical counts skills that match at least one technical keyword and returns the
// technical keywords no skill covers, in profile order.
func matchTechnical(skills []types.Skill, technical []string) (int, []string) {
	covered := make(map[string]bool, len(technical))
	matched := 0
	for _, s := range skills {
		hit := false
		for _, kw := range technical {
			if parsing.MatchesKeyword(s.Name, kw) {
				covered[kw] = true
				hit = true
			}
		}
		if hit {
			matched++
		}
	}
	unmatched := make([]string, 0, len(technical))
	for _, kw := range technical {
		if !covered[kw] {
			unmatched = append(unmatched, kw)
		}
	}
	return matched, unmatched
}
