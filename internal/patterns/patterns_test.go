package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkoutDescription = "Led a cross-functional squad and developed a new checkout flow for the online store, " +
	"which increased revenue by 25% within the first quarter and became the default purchase path " +
	"for returning shoppers across regions."

func TestHasMetrics(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Percentage", "Cut churn to 4%", true},
		{"Percentage with space", "Improved uptime to 99.9 %", true},
		{"Currency with suffix", "Managed a $1.2M budget", true},
		{"Currency plain", "Closed deals worth $50,000", true},
		{"Counted users", "Served 10,000 users daily", true},
		{"Counted team members", "Managed 12 team members", true},
		{"Duration", "Over 5 years of on-call ownership", true},
		{"Verb by number", "Reduced latency by 40", true},
		{"Finance verb amount", "Saved the company $40k annually", true},
		{"No numbers", "Built a great system", false},
		{"Bare number without unit", "Room 101", false},
		{"Empty", "", false},
		{"Whitespace", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasMetrics(tt.text), "HasMetrics(%q)", tt.text)
		})
	}
}

func TestHasMetrics_CaseInsensitive(t *testing.T) {
	assert.True(t, HasMetrics("INCREASED SALES BY 30"))
	assert.True(t, HasMetrics("Grew to 200 USERS"))
}

func TestExtractMetrics_CollapsesOverlappingMatches(t *testing.T) {
	metrics := ExtractMetrics(checkoutDescription)

	require.Len(t, metrics, 1)
	assert.Equal(t, "increased revenue by 25%", metrics[0])
}

func TestExtractMetrics_OrderOfFirstOccurrence(t *testing.T) {
	text := "Handled $2M budget. Onboarded 300 customers. Hit 15% growth. Onboarded 300 customers again."

	metrics := ExtractMetrics(text)

	assert.Equal(t, []string{"$2M", "300 customers", "15%"}, metrics)
}

func TestExtractMetrics_Empty(t *testing.T) {
	assert.Empty(t, ExtractMetrics(""))
	assert.Empty(t, ExtractMetrics("Designed an internal tool"))
	assert.NotNil(t, ExtractMetrics(""))
}

func TestMetricDetection_IsStatelessAcrossCalls(t *testing.T) {
	a := "Increased conversion by 12% and saved $30k"
	b := "Mentored 8 engineers over 2 years"

	firstA := ExtractMetrics(a)
	firstB := ExtractMetrics(b)
	hasA := HasMetrics(a)

	for i := 0; i < 5; i++ {
		assert.Equal(t, firstB, ExtractMetrics(b))
		assert.Equal(t, firstA, ExtractMetrics(a))
		assert.Equal(t, hasA, HasMetrics(a))
		assert.True(t, HasMetrics(b))
		assert.False(t, HasMetrics("no metrics here"))
	}
}

func TestCountActionVerbs(t *testing.T) {
	verbs := []string{"led", "developed", "managed"}

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"Each occurrence counts", "Led the team. Led the migration. Developed tooling.", 3},
		{"Case insensitive", "LED and DEVELOPED", 2},
		{"Whole words only", "misled and redeveloped, underdeveloped", 0},
		{"Punctuation boundaries", "managed, led; developed.", 3},
		{"Empty text", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountActionVerbs(tt.text, verbs))
		})
	}
}

func TestCountActionVerbs_DuplicateVerbsInListCountedOnce(t *testing.T) {
	assert.Equal(t, 1, CountActionVerbs("led", []string{"led", "Led", " led "}))
	assert.Equal(t, 0, CountActionVerbs("led", nil))
}

func TestCountActionVerbs_Scenario(t *testing.T) {
	assert.GreaterOrEqual(t, CountActionVerbs(checkoutDescription, ActionVerbs()), 2)
}

func TestCountBulletPoints(t *testing.T) {
	text := "Summary line\n- dash\n* star\n  • dot\n– en dash\n‐ hyphen\n1. first\n12. twelfth\nplain -not a bullet"

	assert.Equal(t, 7, CountBulletPoints(text))
	assert.Equal(t, 0, CountBulletPoints(""))
	assert.Equal(t, 0, CountBulletPoints("no bullets at all"))
}

func TestMergeVerbs(t *testing.T) {
	merged := MergeVerbs([]string{"led", "built"}, []string{"built", "treated"}, []string{"led", "taught"})
	assert.Equal(t, []string{"led", "built", "treated", "taught"}, merged)
}

func TestActionVerbs_ReturnsCopy(t *testing.T) {
	verbs := ActionVerbs()
	verbs[0] = "mutated"
	assert.NotEqual(t, "mutated", ActionVerbs()[0])
}
