package ingestion

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// CleanDocument returns a copy of doc with markup stripped from the long-form fields and
// whitespace normalized everywhere else. A field whose markup cannot be parsed keeps its
// CleanText form; the first such error is returned alongside the cleaned document.
func CleanDocument(doc types.ResumeDocument) (types.ResumeDocument, error) {
	var firstErr error
	rich := func(s string) string {
		out, err := StripMarkup(s)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return CleanText(s)
		}
		return out
	}

	out := doc
	p := &out.PersonalInfo
	p.FirstName = inline(p.FirstName)
	p.LastName = inline(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = inline(p.Phone)
	p.Location = inline(p.Location)
	p.LinkedIn = strings.TrimSpace(p.LinkedIn)
	p.Website = strings.TrimSpace(p.Website)
	p.JobTitle = inline(p.JobTitle)
	p.Summary = rich(p.Summary)

	if doc.Experience != nil {
		out.Experience = make([]types.Experience, len(doc.Experience))
		for i, e := range doc.Experience {
			e.Title = inline(e.Title)
			e.Company = inline(e.Company)
			e.Location = inline(e.Location)
			e.StartDate = strings.TrimSpace(e.StartDate)
			e.EndDate = strings.TrimSpace(e.EndDate)
			e.Description = rich(e.Description)
			out.Experience[i] = e
		}
	}

	if doc.Education != nil {
		out.Education = make([]types.Education, len(doc.Education))
		for i, e := range doc.Education {
			e.Institution = inline(e.Institution)
			e.Degree = inline(e.Degree)
			e.Field = inline(e.Field)
			e.GraduationDate = strings.TrimSpace(e.GraduationDate)
			e.GPA = strings.TrimSpace(e.GPA)
			e.Honors = inline(e.Honors)
			if e.Coursework != nil {
				courses := make([]string, 0, len(e.Coursework))
				for _, c := range e.Coursework {
					if c = inline(c); c != "" {
						courses = append(courses, c)
					}
				}
				e.Coursework = courses
			}
			out.Education[i] = e
		}
	}

	if doc.Skills != nil {
		out.Skills = make([]types.Skill, len(doc.Skills))
		for i, s := range doc.Skills {
			s.Name = inline(s.Name)
			out.Skills[i] = s
		}
	}

	if doc.Certifications != nil {
		out.Certifications = make([]types.Certification, len(doc.Certifications))
		for i, c := range doc.Certifications {
			c.Name = inline(c.Name)
			c.Issuer = inline(c.Issuer)
			c.DateObtained = strings.TrimSpace(c.DateObtained)
			c.ExpirationDate = strings.TrimSpace(c.ExpirationDate)
			c.VerificationURL = strings.TrimSpace(c.VerificationURL)
			out.Certifications[i] = c
		}
	}

	return out, firstErr
}

// inline collapses a single-line field to single-spaced text
func inline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
