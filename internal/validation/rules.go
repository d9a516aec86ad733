package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-ats/internal/parsing"
)

// Role selects role-specific checks for ATS-optimized fields.
type Role string

const (
	RoleGeneric     Role = ""
	RoleSummary     Role = "summary"
	RoleDescription Role = "description"
)

// Rule describes the constraints for one field. Zero values disable the corresponding check.
type Rule struct {
	Field    string
	Label    string
	Role     Role
	Required bool

	MinLength int
	MaxLength int

	// Pattern and Tag are format checks. Tag is a go-playground/validator tag such as
	// "email" or "url"; both are applied when both are set.
	Pattern *regexp.Regexp
	Tag     string

	Custom        func(string) bool
	CustomMessage string

	// WarningMessage downgrades a failing custom predicate to a warning. It is also emitted
	// as a warning when a required field is empty.
	WarningMessage  string
	RequiredMessage string
	PatternMessage  string

	ATSOptimized bool
	// Weight scales the ATS-optimized deductions; zero means 1.
	Weight float64
	// ActionVerbs overrides the verb list used for ATS-optimized checks.
	ActionVerbs []string
}

func (r Rule) label() string {
	if r.Label != "" {
		return r.Label
	}
	if idx := strings.LastIndex(r.Field, "."); idx >= 0 {
		return r.Field[idx+1:]
	}
	return r.Field
}

func (r Rule) weight() float64 {
	if r.Weight <= 0 {
		return 1
	}
	return r.Weight
}

// Check reports whether the rule itself is well formed.
func (r Rule) Check() (err error) {
	if r.MinLength < 0 || r.MaxLength < 0 {
		return &RuleError{Field: r.Field, Message: "length bounds must be non-negative"}
	}
	if r.MaxLength > 0 && r.MinLength > r.MaxLength {
		return &RuleError{Field: r.Field, Message: fmt.Sprintf("minLength %d exceeds maxLength %d", r.MinLength, r.MaxLength)}
	}
	if r.Tag == "" {
		return nil
	}
	// validator panics on unknown tags
	defer func() {
		if rec := recover(); rec != nil {
			err = &RuleError{Field: r.Field, Message: fmt.Sprintf("unknown validator tag %q", r.Tag), Cause: fmt.Errorf("%v", rec)}
		}
	}()
	_ = fieldValidator.Var("", r.Tag)
	return nil
}

var fieldValidator = validator.New()

var (
	namePattern     = regexp.MustCompile(`^[\p{L}][\p{L}\p{M}' .-]*$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9\s().-]{7,20}$`)
	linkedInPattern = regexp.MustCompile(`(?i)^(https?://)?([a-z]{2,3}\.)?linkedin\.com/(in|pub)/[A-Za-z0-9_-]+/?$`)
)

// isWebAddress accepts URLs with or without a scheme.
func isWebAddress(value string) bool {
	v := strings.TrimSpace(value)
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	return fieldValidator.Var(v, "url") == nil && strings.Contains(v, ".")
}

func isDate(value string) bool {
	return parsing.IsValidDate(value)
}

func isDateOrPresent(value string) bool {
	return parsing.IsPresent(value) || parsing.IsValidDate(value)
}

// defaultRules are keyed by "<section>.<field>".
var defaultRules = map[string]Rule{
	"personalInfo.firstName": {
		Field: "personalInfo.firstName", Label: "First name", Required: true, MaxLength: 50,
		Pattern: namePattern, PatternMessage: "First name contains unsupported characters",
	},
	"personalInfo.lastName": {
		Field: "personalInfo.lastName", Label: "Last name", Required: true, MaxLength: 50,
		Pattern: namePattern, PatternMessage: "Last name contains unsupported characters",
	},
	"personalInfo.email": {
		Field: "personalInfo.email", Label: "Email", Required: true, Tag: "email",
		PatternMessage: "Email address is not valid",
	},
	"personalInfo.phone": {
		Field: "personalInfo.phone", Label: "Phone", Required: true,
		Custom:         func(v string) bool { return phonePattern.MatchString(strings.TrimSpace(v)) },
		WarningMessage: "Phone number format may not be recognized by applicant tracking systems",
	},
	"personalInfo.linkedin": {
		Field: "personalInfo.linkedin", Label: "LinkedIn",
		Pattern: linkedInPattern, PatternMessage: "LinkedIn URL should look like linkedin.com/in/your-name",
	},
	"personalInfo.website": {
		Field: "personalInfo.website", Label: "Website",
		Custom: isWebAddress, CustomMessage: "Website is not a valid URL",
	},
	"personalInfo.summary": {
		Field: "personalInfo.summary", Label: "Professional summary", Role: RoleSummary,
		Required: true, MinLength: 150, MaxLength: 800, ATSOptimized: true, Weight: 1,
		RequiredMessage: "Add a professional summary",
	},
	"experience.title": {
		Field: "experience.title", Label: "Job title", Required: true, MaxLength: 100,
	},
	"experience.company": {
		Field: "experience.company", Label: "Company", Required: true, MaxLength: 100,
	},
	"experience.description": {
		Field: "experience.description", Label: "Description", Role: RoleDescription,
		Required: true, MinLength: 100, MaxLength: 2000, ATSOptimized: true, Weight: 1,
	},
	"experience.startDate": {
		Field: "experience.startDate", Label: "Start date", Required: true,
		Custom: isDate, CustomMessage: "Start date is not in a recognized format",
	},
	"experience.endDate": {
		Field: "experience.endDate", Label: "End date",
		Custom: isDateOrPresent, CustomMessage: "End date is not in a recognized format",
	},
	"education.institution": {
		Field: "education.institution", Label: "Institution", Required: true,
	},
	"education.degree": {
		Field: "education.degree", Label: "Degree", Required: true,
	},
	"education.field": {
		Field: "education.field", Label: "Field of study", Required: true,
	},
	"education.graduationDate": {
		Field: "education.graduationDate", Label: "Graduation date", Required: true,
		Custom: isDateOrPresent, CustomMessage: "Graduation date is not in a recognized format",
	},
	"skills.name": {
		Field: "skills.name", Label: "Skill name", Required: true, MaxLength: 50,
	},
	"certifications.name": {
		Field: "certifications.name", Label: "Certification name", Required: true,
	},
	"certifications.issuer": {
		Field: "certifications.issuer", Label: "Issuer", Required: true,
	},
	"certifications.dateObtained": {
		Field: "certifications.dateObtained", Label: "Date obtained", Required: true,
		Custom: isDate, CustomMessage: "Date obtained is not in a recognized format",
	},
	"certifications.expirationDate": {
		Field: "certifications.expirationDate", Label: "Expiration date",
		Custom: isDate, CustomMessage: "Expiration date is not in a recognized format",
	},
	"certifications.verificationUrl": {
		Field: "certifications.verificationUrl", Label: "Verification URL", Tag: "url",
		PatternMessage: "Verification URL is not a valid URL",
	},
}

// MustRule returns the default rule for a "<section>.<field>" key known at compile time.
func MustRule(field string) Rule {
	r, ok := defaultRules[field]
	if !ok {
		panic(fmt.Sprintf("validation: no rule for %q", field))
	}
	return r
}

// fields lists the keys of the default rule set in sorted order.
func fields() []string {
	keys := make([]string, 0, len(defaultRules))
	for k := range defaultRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A malformed default rule is a programming error, so fail at startup rather than on the
// first resume that reaches it.
func init() {
	for _, key := range fields() {
		if err := defaultRules[key].Check(); err != nil {
			panic(err)
		}
	}
}
