// Package suggestions turns section and document analyses into a short, ranked list of
// actionable suggestions.
package suggestions

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-ats/internal/types"
)

// Trigger thresholds and limits.
const (
	MaxSuggestions = 6

	missingKeywordThreshold = 5
	namedKeywords           = 3
	minQuantified           = 3
	minActionVerbs          = 5
)

// idNamespace scopes the name-based suggestion IDs so equal issues always get equal IDs.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("resume-ats/suggestions"))

// Input is everything the generator looks at.
type Input struct {
	Document types.ResumeDocument
	Sections map[types.Section]types.SectionAnalysis
	Keywords types.KeywordAnalysis
	Metrics  types.MetricsAnalysis
	Industry string
	Weights  map[types.Section]float64
}

// candidate is a suggestion plus the issue it addresses; two candidates with the same issue
// are duplicates regardless of which analysis produced them.
type candidate struct {
	issue string
	types.Suggestion
}

// Generate returns at most MaxSuggestions suggestions, ordered high to low priority with
// ties kept in trigger order. Identical input yields identical output.
func Generate(in Input) []types.Suggestion {
	var cands []candidate
	cands = append(cands, sectionCandidates(in)...)
	cands = append(cands, keywordCandidate(in)...)
	cands = append(cands, metricsCandidates(in)...)

	seen := make(map[string]bool)
	unique := make([]candidate, 0, len(cands))
	for _, c := range cands {
		if seen[c.issue] {
			continue
		}
		seen[c.issue] = true
		unique = append(unique, c)
	}

	slices.SortStableFunc(unique, func(a, b candidate) int {
		return types.ComparePriority(a.Priority, b.Priority)
	})

	if len(unique) > MaxSuggestions {
		unique = unique[:MaxSuggestions]
	}
	out := make([]types.Suggestion, len(unique))
	for i, c := range unique {
		s := c.Suggestion
		s.ID = uuid.NewSHA1(idNamespace, []byte(c.issue)).String()
		out[i] = s
	}
	return out
}

// sectionCandidates emits one suggestion per section scoring below the "good" band.
func sectionCandidates(in Input) []candidate {
	var out []candidate
	for _, section := range types.Sections() {
		res, ok := in.Sections[section]
		if !ok || res.Score >= types.GoodThreshold {
			continue
		}
		c := candidate{Suggestion: types.Suggestion{
			Section:  section,
			Priority: sectionPriority(section, res),
			Impact:   impact(types.GoodThreshold-res.Score, in.weight(section)),
		}}
		action := firstOr(res.Suggestions, "")

		switch section {
		case types.SectionPersonalInfo:
			c.Category = "content"
			if strings.TrimSpace(in.Document.PersonalInfo.Summary) == "" {
				c.issue = "summary"
				c.Title = "Add a professional summary"
				c.Description = "A short summary at the top of the resume gives applicant tracking systems and recruiters the keywords and highlights they scan for first."
				c.Action = "Write 2-4 sentences covering your role, years of experience and one quantified achievement"
			} else {
				c.issue = "personalInfo"
				c.Title = "Strengthen your contact details and summary"
				c.Description = "Your header and summary are incomplete or light on keywords and results."
				c.Action = action
			}
		case types.SectionExperience:
			c.Category = "experience"
			switch {
			case len(in.Document.Experience) == 0:
				c.issue = "experience"
				c.Title = "Add work experience"
				c.Description = "Work history carries the most weight in the score. Add your roles with company, dates and a description of your results."
				c.Action = "Add at least one position with a description of 100 characters or more"
			case !res.HasMetrics:
				c.issue = "metrics"
				c.Title = "Quantify your achievements"
				c.Description = "None of your positions mention measurable results such as percentages, amounts or team sizes."
				c.Action = action
			default:
				c.issue = "experience"
				c.Title = "Expand your experience descriptions"
				c.Description = "Longer descriptions with action verbs and industry keywords score higher."
				c.Action = action
			}
		case types.SectionSkills:
			c.Category = "skills"
			c.issue = "skills"
			if res.Status == types.StatusMissing && len(in.Document.Skills) == 0 {
				c.Title = "Add a skills section"
			} else {
				c.Title = "Broaden your skills section"
			}
			c.Description = fmt.Sprintf("Applicant tracking systems match listed skills against %s keywords.", in.industryName())
			c.Action = action
		case types.SectionEducation:
			c.Category = "education"
			c.issue = "education"
			c.Title = "Complete your education details"
			c.Description = "Degree, field of study and graduation date help screening filters that require a qualification."
			c.Action = action
		case types.SectionCertifications:
			c.Category = "certifications"
			c.issue = "certifications"
			c.Title = "Add or update certifications"
			c.Description = "Recognized certifications are a strong credibility signal."
			c.Action = action
		}
		if c.Action == "" {
			c.Action = c.Title
		}
		out = append(out, c)
	}
	return out
}

func keywordCandidate(in Input) []candidate {
	missing := len(in.Keywords.Missing)
	if missing <= missingKeywordThreshold {
		return nil
	}
	top := in.Keywords.TopMissing
	if len(top) == 0 {
		top = in.Keywords.Missing
	}
	if len(top) > namedKeywords {
		top = top[:namedKeywords]
	}
	priority := types.PriorityMedium
	if in.Keywords.Total > 0 && len(in.Keywords.Found)*2 < in.Keywords.Total {
		priority = types.PriorityHigh
	}
	return []candidate{{
		issue: "keywords",
		Suggestion: types.Suggestion{
			Category:    "keywords",
			Priority:    priority,
			Title:       "Add missing industry keywords",
			Description: fmt.Sprintf("%d of %d %s keywords were not found in your resume.", missing, in.Keywords.Total, in.industryName()),
			Action:      fmt.Sprintf("Work these keywords into your summary, experience or skills: %s", strings.Join(top, ", ")),
			Impact:      min(missing, 10),
		},
	}}
}

func metricsCandidates(in Input) []candidate {
	var out []candidate
	if q := in.Metrics.QuantifiedAchievements; q < minQuantified {
		priority := types.PriorityMedium
		if q == 0 {
			priority = types.PriorityHigh
		}
		out = append(out, candidate{
			issue: "metrics",
			Suggestion: types.Suggestion{
				Category:    "metrics",
				Priority:    priority,
				Title:       "Quantify your achievements",
				Description: fmt.Sprintf("Only %d quantified achievement(s) found; aim for at least %d.", q, minQuantified),
				Action:      "Add numbers to your results: percentages, revenue, time saved or people managed",
				Section:     types.SectionExperience,
				Impact:      (minQuantified - q) * 3,
			},
		})
	}
	if v := in.Metrics.ActionVerbs; v < minActionVerbs {
		out = append(out, candidate{
			issue: "actionVerbs",
			Suggestion: types.Suggestion{
				Category:    "content",
				Priority:    types.PriorityMedium,
				Title:       "Use stronger action verbs",
				Description: fmt.Sprintf("Found %d action verb(s); strong resumes open most statements with one.", v),
				Action:      "Start each bullet with a verb such as led, built, improved or delivered",
				Section:     types.SectionExperience,
				Impact:      minActionVerbs - v,
			},
		})
	}
	return out
}

// sectionPriority ranks optional sections low; required sections are high below the
// needs-improvement band and medium above it.
func sectionPriority(section types.Section, res types.SectionAnalysis) types.Priority {
	if section == types.SectionEducation || section == types.SectionCertifications {
		return types.PriorityLow
	}
	if res.Score < types.NeedsImprovementThreshold {
		return types.PriorityHigh
	}
	return types.PriorityMedium
}

func impact(gap int, weight float64) int {
	if gap <= 0 {
		return 0
	}
	v := int(math.Round(float64(gap) * weight))
	if v < 1 {
		return 1
	}
	return v
}

func (in Input) weight(s types.Section) float64 {
	if in.Weights == nil {
		return 0
	}
	return in.Weights[s]
}

func (in Input) industryName() string {
	if in.Industry == "" {
		return "industry"
	}
	return in.Industry
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
