package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-ats/internal/patterns"
)

// Score adjustments. Deductions are fixed points and compound when several checks fail.
const (
	MaxScore           = 100
	OptionalEmptyScore = 80

	minLengthPenalty      = 20
	maxLengthPenalty      = 10
	formatPenalty         = 25
	customPenalty         = 15
	missingMetricsPenalty = 15
	missingVerbsPenalty   = 10
)

// Result is the outcome of validating one field value.
type Result struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	ATSScore    int      `json:"atsScore"`
	Suggestions []string `json:"suggestions"`
}

// Validate evaluates value against rule. Supported values are nil, string, *string and
// []string; anything else is formatted with fmt. Validate never panics on well-formed rules
// and has no side effects.
func Validate(value any, rule Rule) Result {
	res := Result{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	items := valueItems(value)
	if isEmpty(items) {
		if rule.Required {
			msg := rule.RequiredMessage
			if msg == "" {
				msg = fmt.Sprintf("%s is required", rule.label())
			}
			res.Errors = append(res.Errors, msg)
			if rule.WarningMessage != "" {
				res.Warnings = append(res.Warnings, rule.WarningMessage)
			}
			res.ATSScore = 0
			return res
		}
		res.IsValid = true
		res.ATSScore = OptionalEmptyScore
		return res
	}

	score := float64(MaxScore)
	text := strings.Join(items, "\n")

	length := utf8.RuneCountInString(strings.TrimSpace(text))
	if _, ok := value.([]string); ok {
		length = len(items)
	}
	if rule.MinLength > 0 && length < rule.MinLength {
		res.Errors = append(res.Errors, fmt.Sprintf("%s must be at least %d characters", rule.label(), rule.MinLength))
		score -= minLengthPenalty
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		res.Errors = append(res.Errors, fmt.Sprintf("%s must be at most %d characters", rule.label(), rule.MaxLength))
		score -= maxLengthPenalty
	}

	if !matchesFormat(items, rule) {
		msg := rule.PatternMessage
		if msg == "" {
			msg = fmt.Sprintf("%s has an invalid format", rule.label())
		}
		res.Errors = append(res.Errors, msg)
		score -= formatPenalty
	}

	if rule.Custom != nil && !allItems(items, rule.Custom) {
		score -= customPenalty
		if rule.WarningMessage != "" {
			res.Warnings = append(res.Warnings, rule.WarningMessage)
		} else {
			msg := rule.CustomMessage
			if msg == "" {
				msg = fmt.Sprintf("%s is not valid", rule.label())
			}
			res.Errors = append(res.Errors, msg)
		}
	}

	if rule.ATSOptimized && (rule.Role == RoleSummary || rule.Role == RoleDescription) {
		score -= atsChecks(text, rule, &res)
	}

	res.IsValid = len(res.Errors) == 0
	res.ATSScore = clampScore(score)
	return res
}

// atsChecks appends advisory suggestions and returns the weighted deduction.
func atsChecks(text string, rule Rule, res *Result) float64 {
	deduction := 0.0
	w := rule.weight()

	if !patterns.HasMetrics(text) {
		deduction += missingMetricsPenalty * w
		res.Suggestions = append(res.Suggestions, "Add quantified achievements such as percentages, amounts or headcounts")
	}

	verbs := rule.ActionVerbs
	if len(verbs) == 0 {
		verbs = patterns.ActionVerbs()
	}
	if patterns.CountActionVerbs(text, verbs) == 0 {
		deduction += missingVerbsPenalty * w
		res.Suggestions = append(res.Suggestions, "Start statements with strong action verbs like led, built or improved")
	}

	for _, phrase := range FindWeakPhrases(text, weakPhrases) {
		res.Suggestions = append(res.Suggestions, fmt.Sprintf("Replace %q with a specific accomplishment", phrase))
	}

	switch rule.Role {
	case RoleDescription:
		if patterns.CountBulletPoints(text) == 0 {
			res.Suggestions = append(res.Suggestions, "Break the description into bullet points")
		}
	case RoleSummary:
		res.Suggestions = append(res.Suggestions, "Mirror the target role's keywords in your summary")
	}
	return deduction
}

func matchesFormat(items []string, rule Rule) bool {
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if rule.Pattern != nil && !rule.Pattern.MatchString(v) {
			return false
		}
		if rule.Tag != "" && fieldValidator.Var(v, rule.Tag) != nil {
			return false
		}
	}
	return true
}

func allItems(items []string, pred func(string) bool) bool {
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		if !pred(item) {
			return false
		}
	}
	return true
}

func valueItems(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case *string:
		if v == nil {
			return nil
		}
		return []string{*v}
	case []string:
		return v
	default:
		return []string{fmt.Sprint(v)}
	}
}

func isEmpty(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return false
		}
	}
	return true
}

func clampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(MaxScore, score))))
}
