package ats

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-ats/internal/industry"
	"github.com/jonathan/resume-ats/internal/patterns"
	"github.com/jonathan/resume-ats/internal/suggestions"
	"github.com/jonathan/resume-ats/internal/types"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestEngine(opts ...Option) *Engine {
	return New(append([]Option{WithClock(fixedClock)}, opts...)...)
}

func strongResume() *types.ResumeDocument {
	return &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane.doe@example.com",
			Phone:     "+1 555 123 4567",
			LinkedIn:  "https://linkedin.com/in/janedoe",
			JobTitle:  "Senior Software Engineer",
			Summary: "Software engineer who led the migration of python and go microservices to kubernetes " +
				"on aws, built docker based ci/cd pipelines with git and terraform, and improved rest api " +
				"latency by 40% through collaboration and code review.",
		},
		Experience: []types.Experience{
			{
				Title:     "Senior Software Engineer",
				Company:   "Shopline",
				StartDate: "2021-03",
				Current:   true,
				Description: "- Led the migration of 40 python and go microservices to kubernetes on aws\n" +
					"- Built docker based ci/cd pipelines with terraform, cutting deploy time by 60%\n" +
					"- Mentored 6 engineers through code review and agile rituals",
			},
			{
				Title:     "Software Engineer",
				Company:   "Cartwheel",
				StartDate: "2017-06",
				EndDate:   "2021-02",
				Description: "- Developed a typescript and react storefront backed by a rest api and sql\n" +
					"- Improved checkout conversion by 18% and reduced page load by 35%\n" +
					"- Automated release checks with github actions and linux runners",
			},
		},
		Skills: []types.Skill{
			{Name: "Go", Category: types.SkillTechnical, Level: types.LevelExpert},
			{Name: "Python", Category: types.SkillTechnical, Level: types.LevelAdvanced},
			{Name: "Kubernetes", Category: types.SkillTechnical, Level: types.LevelAdvanced},
			{Name: "Docker", Category: types.SkillTechnical, Level: types.LevelAdvanced},
			{Name: "AWS", Category: types.SkillTechnical, Level: types.LevelIntermediate},
			{Name: "SQL", Category: types.SkillTechnical, Level: types.LevelAdvanced},
			{Name: "Communication", Category: types.SkillSoft},
			{Name: "Mentoring", Category: types.SkillSoft},
			{Name: "Problem Solving", Category: types.SkillSoft},
			{Name: "Terraform", Category: types.SkillTools},
		},
		Education: []types.Education{{
			Institution:    "State University",
			Degree:         "BSc",
			Field:          "Computer Science",
			GraduationDate: "2017-05",
			GPA:            "3.8",
		}},
		Certifications: []types.Certification{{
			Name:           "AWS Certified Solutions Architect",
			Issuer:         "Amazon Web Services",
			DateObtained:   "2022-01",
			ExpirationDate: "2027-01-01",
		}},
	}
}

func suggestionTitles(result *types.AnalysisResult) []string {
	out := make([]string, len(result.Suggestions))
	for i, s := range result.Suggestions {
		out[i] = s.Title
	}
	return out
}

func TestAnalyze_NameOnlyResume(t *testing.T) {
	doc := &types.ResumeDocument{PersonalInfo: types.PersonalInfo{FirstName: "Jane", LastName: "Doe"}}

	result := newTestEngine().Analyze(doc, "")

	assert.Less(t, result.OverallScore, 40)
	assert.Equal(t, types.StatusMissing, result.Sections[types.SectionExperience].Status)
	assert.Contains(t, suggestionTitles(result), "Add a professional summary")
	assert.Contains(t, suggestionTitles(result), "Add work experience")
	assert.Equal(t, "Software Engineer", result.Industry)
}

func TestAnalyze_ExperienceMetricsScenario(t *testing.T) {
	description := "Led a cross-functional squad and developed a new checkout flow for the online store, " +
		"which increased revenue by 25% within the first quarter and became the default purchase path " +
		"for returning shoppers across regions."
	require.GreaterOrEqual(t, len(description), 200)

	doc := &types.ResumeDocument{Experience: []types.Experience{{
		Title: "Engineer", Company: "Acme", StartDate: "2020-01", Current: true, Description: description,
	}}}

	result := newTestEngine().Analyze(doc, "Software Engineer")

	assert.True(t, result.Sections[types.SectionExperience].HasMetrics)
	assert.Equal(t, []string{"increased revenue by 25%"}, patterns.ExtractMetrics(description))
	assert.GreaterOrEqual(t, patterns.CountActionVerbs(description, patterns.ActionVerbs()), 2)
	assert.Contains(t, result.Metrics.Examples, "increased revenue by 25%")
}

func TestAnalyze_SkillsBonusScenario(t *testing.T) {
	doc := strongResume()

	result := newTestEngine().Analyze(doc, "")
	skills := result.Sections[types.SectionSkills]

	assert.Equal(t, 15.0, skills.Breakdown["diversity"])
	assert.Equal(t, 15.0, skills.Breakdown["proficiency"])
}

func TestAnalyze_ExpiredCertificationScenario(t *testing.T) {
	engine := newTestEngine()
	valid := strongResume()
	expired := strongResume()
	expired.Certifications[0].ExpirationDate = "2024-03-01"

	before := engine.Analyze(valid, "").Sections[types.SectionCertifications]
	after := engine.Analyze(expired, "").Sections[types.SectionCertifications]

	assert.Equal(t, before.Score-10, after.Score)
	assert.Contains(t, after.Suggestions, "Renew AWS Certified Solutions Architect, which expired on 2024-03-01")
}

func TestAnalyze_ExpiryUsesInjectedClock(t *testing.T) {
	doc := strongResume()

	early := New(WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) })).Analyze(doc, "")
	late := New(WithClock(func() time.Time { return time.Date(2028, 1, 1, 0, 0, 0, 0, time.UTC) })).Analyze(doc, "")

	assert.Greater(t, early.Sections[types.SectionCertifications].Score, late.Sections[types.SectionCertifications].Score)
}

func TestGetKeywordSuggestions_RegisteredNurse(t *testing.T) {
	nurse := industry.Lookup("Nurse")
	allowed := map[string]bool{}
	for _, kw := range append(nurse.Technical, nurse.Skills...) {
		allowed[kw] = true
	}

	got := GetKeywordSuggestions("Registered Nurse")

	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), industry.MaxKeywordSuggestions)
	for _, kw := range got {
		assert.True(t, allowed[kw], kw)
	}
	assert.Equal(t, got, newTestEngine().KeywordSuggestions("Registered Nurse"))
}

func TestAnalyze_StrongResume(t *testing.T) {
	result := newTestEngine().Analyze(strongResume(), "")

	assert.GreaterOrEqual(t, result.OverallScore, 90)
	assert.Equal(t, "Senior Software Engineer", result.JobTitle)
	assert.Equal(t, "Software Engineer", result.Industry)
	for _, section := range types.Sections() {
		assert.NotEqual(t, types.StatusMissing, result.Sections[section].Status, section)
	}
	assert.GreaterOrEqual(t, result.Metrics.QuantifiedAchievements, 3)
	assert.LessOrEqual(t, len(result.Suggestions), suggestions.MaxSuggestions)
}

func TestAnalyze_Deterministic(t *testing.T) {
	engine := newTestEngine()

	first := engine.Analyze(strongResume(), "Data Scientist")
	second := engine.Analyze(strongResume(), "Data Scientist")

	assert.Equal(t, first, second)
	assert.Equal(t, first, newTestEngine().Analyze(strongResume(), "Data Scientist"))
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	engine := newTestEngine()

	for _, doc := range []*types.ResumeDocument{nil, {}} {
		result := engine.Analyze(doc, "")

		require.NotNil(t, result)
		require.Len(t, result.Sections, 5)
		for _, section := range types.Sections() {
			assert.Equal(t, types.StatusMissing, result.Sections[section].Status, section)
		}
		assert.GreaterOrEqual(t, result.OverallScore, 0)
		assert.Equal(t, result.Keywords.Total, len(result.Keywords.Found)+len(result.Keywords.Missing))
		assert.LessOrEqual(t, len(result.Suggestions), suggestions.MaxSuggestions)
	}
}

func TestAnalyze_BoundsAcrossIndustries(t *testing.T) {
	engine := newTestEngine()
	docs := []*types.ResumeDocument{nil, strongResume(), {PersonalInfo: types.PersonalInfo{Summary: strings.Repeat("x", 5000)}}}

	for _, title := range append(industry.Names(), "", "Unknown Job") {
		for _, doc := range docs {
			result := engine.Analyze(doc, title)
			assert.GreaterOrEqual(t, result.OverallScore, 0)
			assert.LessOrEqual(t, result.OverallScore, 100)
			for section, res := range result.Sections {
				assert.GreaterOrEqual(t, res.Score, 0, section)
				assert.LessOrEqual(t, res.Score, 100, section)
			}
			assert.Equal(t, result.Keywords.Total, len(result.Keywords.Found)+len(result.Keywords.Missing))
			assert.LessOrEqual(t, len(result.Suggestions), suggestions.MaxSuggestions)
		}
	}
}

func TestAnalyze_DescriptionLengthMonotonic(t *testing.T) {
	engine := newTestEngine()
	doc := strongResume()
	doc.Experience = doc.Experience[:1]

	doc.Experience[0].Description = "Led the platform team."
	before := engine.Analyze(doc, "").Sections[types.SectionExperience].Score

	doc.Experience[0].Description = "Led the platform team. Owned the internal developer portal and the on-call " +
		"rotation for the payments group across three regions."
	after := engine.Analyze(doc, "").Sections[types.SectionExperience].Score

	assert.GreaterOrEqual(t, after, before)
}

func TestAnalyze_CacheSeesEveryChange(t *testing.T) {
	engine := newTestEngine()
	doc := strongResume()

	first := engine.Analyze(doc, "")
	doc.Skills = append(doc.Skills, types.Skill{Name: "JavaScript", Category: types.SkillTechnical})
	doc.PersonalInfo.Summary += " Also shipped javascript and java services."
	second := engine.Analyze(doc, "")

	assert.Greater(t, len(second.Keywords.Found), len(first.Keywords.Found))
	hits, misses := engine.CacheStats()
	assert.Equal(t, 0, hits)
	assert.Equal(t, 2, misses)
}

func TestCalculateScore(t *testing.T) {
	engine := newTestEngine()

	assert.Equal(t, engine.Analyze(strongResume(), "").OverallScore, engine.CalculateScore(strongResume(), ""))
	assert.Equal(t, CalculateScore(nil, ""), Analyze(nil, "").OverallScore)
}

func TestResolveJobTitle(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{JobTitle: "Staff Nurse"},
		Experience: []types.Experience{
			{Title: "Teacher", StartDate: "2010-01", EndDate: "2012-01"},
			{Title: "Accountant", StartDate: "2015-01", EndDate: "2018-01"},
		},
	}

	assert.Equal(t, "Marketing", ResolveJobTitle(doc, " Marketing "))
	assert.Equal(t, "Staff Nurse", ResolveJobTitle(doc, ""))

	doc.PersonalInfo.JobTitle = ""
	assert.Equal(t, "Accountant", ResolveJobTitle(doc, ""))

	doc.Experience = append(doc.Experience, types.Experience{Title: "Sales Lead", Current: true})
	assert.Equal(t, "Sales Lead", ResolveJobTitle(doc, ""))

	assert.Equal(t, "", ResolveJobTitle(&types.ResumeDocument{}, ""))
	assert.Equal(t, "", ResolveJobTitle(nil, ""))
}

func TestAnalyze_IndustryFromExperience(t *testing.T) {
	doc := &types.ResumeDocument{Experience: []types.Experience{{Title: "ICU Nurse", Current: true}}}

	result := newTestEngine().Analyze(doc, "")

	assert.Equal(t, "Nurse", result.Industry)
}

type countingRecorder struct {
	mu      sync.Mutex
	results []*types.AnalysisResult
}

func (r *countingRecorder) RecordAnalysis(result *types.AnalysisResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

func TestAnalyze_RecorderAndLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := &countingRecorder{}
	engine := newTestEngine(WithLogger(zap.New(core)), WithRecorder(rec))

	result := engine.Analyze(strongResume(), "")

	require.Len(t, rec.results, 1)
	assert.Same(t, result, rec.results[0])

	entries := logs.FilterMessage("Analyzed resume").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "Software Engineer", fields["industry"])
	assert.EqualValues(t, result.OverallScore, fields["overall_score"])
	assert.NotContains(t, fields, "summary")
}

func TestAnalyze_ConcurrentUse(t *testing.T) {
	engine := newTestEngine(WithCacheSize(4))
	want := engine.Analyze(strongResume(), "")

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := engine.Analyze(strongResume(), ""); got.OverallScore != want.OverallScore {
				errs <- "score mismatch"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Error(e)
	}
}
