package sections

// Points and thresholds for each section analyzer. Each table's point components add up to
// 100 before bonuses and penalties.

type personalInfoTable struct {
	CompletenessWeight float64
	SummaryWeight      float64

	SummaryMinLength    int
	SummaryLengthPoints float64
	// keyword points = min(density * KeywordFactor, KeywordMaxPoints)
	KeywordFactor    float64
	KeywordMaxPoints float64
	VerbPoints       float64
	VerbMaxPoints    float64
	MetricsPoints    float64

	LinkBonus           float64
	InvalidEmailPenalty float64
	InvalidPhonePenalty float64
}

var personalInfoConfig = personalInfoTable{
	CompletenessWeight:  0.4,
	SummaryWeight:       0.6,
	SummaryMinLength:    150,
	SummaryLengthPoints: 40,
	KeywordFactor:       1,
	KeywordMaxPoints:    25,
	VerbPoints:          5,
	VerbMaxPoints:       15,
	MetricsPoints:       20,
	LinkBonus:           5,
	InvalidEmailPenalty: 10,
	InvalidPhonePenalty: 5,
}

type experienceTable struct {
	DescriptionMinLength int
	LengthPoints         float64
	KeywordFactor        float64
	KeywordMaxPoints     float64
	MetricsPoints        float64
	VerbPoints           float64
	VerbMaxPoints        float64
}

var experienceConfig = experienceTable{
	DescriptionMinLength: 100,
	LengthPoints:         35,
	KeywordFactor:        1,
	KeywordMaxPoints:     20,
	MetricsPoints:        25,
	VerbPoints:           5,
	VerbMaxPoints:        20,
}

type skillsTable struct {
	RecommendedCount int
	QuantityPoints   float64
	// relevance = matches / min(len(technical), RelevanceTarget)
	RelevanceTarget   int
	RelevancePoints   float64
	MinCategories     int
	DiversityPoints   float64
	ProficiencyRatio  float64
	ProficiencyPoints float64
	SuggestedKeywords int
}

var skillsConfig = skillsTable{
	RecommendedCount:  8,
	QuantityPoints:    30,
	RelevanceTarget:   5,
	RelevancePoints:   40,
	MinCategories:     2,
	DiversityPoints:   15,
	ProficiencyRatio:  0.5,
	ProficiencyPoints: 15,
	SuggestedKeywords: 3,
}

type educationTable struct {
	EmptyScore         float64
	BaseScore          float64
	CompletenessFactor float64
	RelevantFieldBonus float64
	AchievementBonus   float64
}

var educationConfig = educationTable{
	EmptyScore:         50,
	BaseScore:          40,
	CompletenessFactor: 0.3,
	RelevantFieldBonus: 15,
	AchievementBonus:   15,
}

// relevantFields are fields of study that read as relevant for most professional roles.
var relevantFields = []string{
	"computer science", "software engineering", "engineering", "information technology",
	"information systems", "data science", "mathematics", "statistics", "physics",
	"business", "business administration", "finance", "accounting", "economics",
	"marketing", "communications", "nursing", "education", "design", "psychology",
	"human resources",
}

type certificationsTable struct {
	EmptyScore         float64
	BaseScore          float64
	CompletenessFactor float64
	HighValueBonus     float64
	HighValueMaxBonus  float64
	ExpiredPenalty     float64
	// ExpiringWindowDays raises a heads-up suggestion, without a penalty, for certifications
	// expiring soon.
	ExpiringWindowDays int
}

var certificationsConfig = certificationsTable{
	EmptyScore:         50,
	BaseScore:          50,
	CompletenessFactor: 0.3,
	HighValueBonus:     10,
	HighValueMaxBonus:  20,
	ExpiredPenalty:     10,
	ExpiringWindowDays: 90,
}

// highValueIssuers are issuer or credential keywords recruiters recognise across industries.
var highValueIssuers = []string{
	"aws", "amazon web services", "google", "microsoft", "azure", "cisco", "comptia",
	"oracle", "salesforce", "pmp", "pmi", "cissp", "isc2", "cfa", "cpa", "shrm",
	"scrum", "itil", "red hat", "kubernetes", "acls", "bls",
}
