//nolint:revive // types is a standard Go package name pattern
package types

// Section names one of the five independently analyzed resume sections.
type Section string

// Resume sections in canonical order
const (
	SectionPersonalInfo   Section = "personalInfo"
	SectionExperience     Section = "experience"
	SectionSkills         Section = "skills"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
)

// Sections lists every section in canonical order.
func Sections() []Section {
	return []Section{
		SectionPersonalInfo,
		SectionExperience,
		SectionSkills,
		SectionEducation,
		SectionCertifications,
	}
}

// SectionStatus is the four-band classification of a section score.
type SectionStatus string

// Section statuses
const (
	StatusExcellent        SectionStatus = "excellent"
	StatusGood             SectionStatus = "good"
	StatusNeedsImprovement SectionStatus = "needs-improvement"
	StatusMissing          SectionStatus = "missing"
)

// Status band lower bounds
const (
	ExcellentThreshold        = 90
	GoodThreshold             = 70
	NeedsImprovementThreshold = 40
)

// StatusFor classifies a 0-100 score.
func StatusFor(score int) SectionStatus {
	switch {
	case score >= ExcellentThreshold:
		return StatusExcellent
	case score >= GoodThreshold:
		return StatusGood
	case score >= NeedsImprovementThreshold:
		return StatusNeedsImprovement
	default:
		return StatusMissing
	}
}

// SectionAnalysis is the result of analyzing one section.
type SectionAnalysis struct {
	Score          int           `json:"score"`
	Completeness   int           `json:"completeness"`
	KeywordDensity int           `json:"keywordDensity"`
	HasMetrics     bool          `json:"hasMetrics"`
	Suggestions    []string      `json:"suggestions"`
	Status         SectionStatus `json:"status"`
	// Breakdown holds the point components behind Score.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
	// FieldScore is the average field validator score (0-100) of the section's entries. It is a
	// diagnostic and does not feed Score.
	FieldScore int `json:"fieldScore,omitempty"`
}

// Priority orders suggestions. Higher rank sorts first.
type Priority string

// Suggestion priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns 3 for high, 2 for medium, 1 for low and 0 for anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// ComparePriority returns a negative number when a ranks above b, zero when equal and a
// positive number otherwise, so that slices.SortStableFunc yields high-to-low order.
func ComparePriority(a, b Priority) int {
	return b.Rank() - a.Rank()
}

// Suggestion is a ranked, actionable recommendation.
type Suggestion struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Action      string   `json:"action"`
	Section     Section  `json:"section"`
	Impact      int      `json:"impact"`
}

// KeywordAnalysis partitions the industry keyword set by presence in the document.
// len(Found)+len(Missing) always equals Total.
type KeywordAnalysis struct {
	Found      []string `json:"found"`
	Missing    []string `json:"missing"`
	TopMissing []string `json:"topMissing"`
	Total      int      `json:"total"`
}

// MetricsAnalysis summarizes document-wide achievement signals.
type MetricsAnalysis struct {
	QuantifiedAchievements int      `json:"quantifiedAchievements"`
	ActionVerbs            int      `json:"actionVerbs"`
	BulletPoints           int      `json:"bulletPoints"`
	AverageSectionLength   int      `json:"averageSectionLength"`
	SalaryImpact           int      `json:"salaryImpact"`
	Examples               []string `json:"examples,omitempty"`
}

// AnalysisResult is the complete output of one analysis.
type AnalysisResult struct {
	OverallScore int                         `json:"overallScore"`
	JobTitle     string                      `json:"jobTitle,omitempty"`
	Industry     string                      `json:"industry"`
	Sections     map[Section]SectionAnalysis `json:"sections"`
	Suggestions  []Suggestion                `json:"suggestions"`
	Keywords     KeywordAnalysis             `json:"keywords"`
	Metrics      MetricsAnalysis             `json:"metrics"`
}
