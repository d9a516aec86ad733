package validation

import (
	"fmt"

	"github.com/jonathan/resume-ats/internal/types"
)

// FieldResult is the validation outcome for one concrete field of a document.
type FieldResult struct {
	Path   string `json:"path"`  // e.g. "experience[1].startDate"
	Field  string `json:"field"` // rule key, e.g. "experience.startDate"
	Result Result `json:"result"`
}

// HasProblems reports whether the field produced any error or warning.
func (f FieldResult) HasProblems() bool {
	return len(f.Result.Errors) > 0 || len(f.Result.Warnings) > 0
}

// ValidateDocument runs every default rule against the matching fields of doc, in document
// order. Empty collections produce no results.
func ValidateDocument(doc types.ResumeDocument) []FieldResult {
	var out []FieldResult
	check := func(path, key string, value any) {
		out = append(out, FieldResult{Path: path, Field: key, Result: Validate(value, MustRule(key))})
	}

	p := doc.PersonalInfo
	check("personalInfo.firstName", "personalInfo.firstName", p.FirstName)
	check("personalInfo.lastName", "personalInfo.lastName", p.LastName)
	check("personalInfo.email", "personalInfo.email", p.Email)
	check("personalInfo.phone", "personalInfo.phone", p.Phone)
	check("personalInfo.linkedin", "personalInfo.linkedin", p.LinkedIn)
	check("personalInfo.website", "personalInfo.website", p.Website)
	check("personalInfo.summary", "personalInfo.summary", p.Summary)

	for i, e := range doc.Experience {
		at := func(field string) string { return fmt.Sprintf("experience[%d].%s", i, field) }
		check(at("title"), "experience.title", e.Title)
		check(at("company"), "experience.company", e.Company)
		check(at("description"), "experience.description", e.Description)
		check(at("startDate"), "experience.startDate", e.StartDate)
		if !e.Current {
			check(at("endDate"), "experience.endDate", e.EndDate)
		}
	}

	for i, e := range doc.Education {
		at := func(field string) string { return fmt.Sprintf("education[%d].%s", i, field) }
		check(at("institution"), "education.institution", e.Institution)
		check(at("degree"), "education.degree", e.Degree)
		check(at("field"), "education.field", e.Field)
		check(at("graduationDate"), "education.graduationDate", e.GraduationDate)
	}

	for i, s := range doc.Skills {
		check(fmt.Sprintf("skills[%d].name", i), "skills.name", s.Name)
	}

	for i, c := range doc.Certifications {
		at := func(field string) string { return fmt.Sprintf("certifications[%d].%s", i, field) }
		check(at("name"), "certifications.name", c.Name)
		check(at("issuer"), "certifications.issuer", c.Issuer)
		check(at("dateObtained"), "certifications.dateObtained", c.DateObtained)
		check(at("expirationDate"), "certifications.expirationDate", c.ExpirationDate)
		check(at("verificationUrl"), "certifications.verificationUrl", c.VerificationURL)
	}

	return out
}

// Problems filters results down to fields with errors or warnings.
func Problems(results []FieldResult) []FieldResult {
	var out []FieldResult
	for _, r := range results {
		if r.HasProblems() {
			out = append(out, r)
		}
	}
	return out
}
