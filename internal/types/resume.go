// Package types provides type definitions for structured data used throughout the resume ATS engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeDocument is the root aggregate submitted for analysis.
// Every field is optional; the analyzers treat absence as a signal, never as an error.
type ResumeDocument struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Skills         []Skill         `json:"skills,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
}

// PersonalInfo holds contact details and the professional summary.
type PersonalInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Website   string `json:"website,omitempty"`
	Summary   string `json:"summary,omitempty"`
	JobTitle  string `json:"jobTitle,omitempty"`
}

// Experience represents a single position. Order is the user's display order.
type Experience struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education represents a degree or program.
type Education struct {
	ID             string   `json:"id,omitempty"`
	Institution    string   `json:"institution,omitempty"`
	Degree         string   `json:"degree,omitempty"`
	Field          string   `json:"field,omitempty"`
	GraduationDate string   `json:"graduationDate,omitempty"`
	GPA            string   `json:"gpa,omitempty"`
	Honors         string   `json:"honors,omitempty"`
	Coursework     []string `json:"coursework,omitempty"`
}

// SkillCategory groups skills for the diversity check.
type SkillCategory string

// Skill categories
const (
	SkillTechnical      SkillCategory = "technical"
	SkillSoft           SkillCategory = "soft"
	SkillTools          SkillCategory = "tools"
	SkillCertifications SkillCategory = "certifications"
)

// SkillLevel is the self-reported proficiency.
type SkillLevel string

// Skill levels
const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// Skill is a single named skill.
type Skill struct {
	ID       string        `json:"id,omitempty"`
	Name     string        `json:"name,omitempty"`
	Category SkillCategory `json:"category,omitempty"`
	Level    SkillLevel    `json:"level,omitempty"`
	Years    float64       `json:"years,omitempty"`
	Featured bool          `json:"featured,omitempty"`
}

// CertificationStatus is the lifecycle state reported by the user.
type CertificationStatus string

// Certification statuses
const (
	CertValid      CertificationStatus = "valid"
	CertExpired    CertificationStatus = "expired"
	CertInProgress CertificationStatus = "in-progress"
	CertPending    CertificationStatus = "pending"
)

// Certification is a professional credential.
type Certification struct {
	ID              string              `json:"id,omitempty"`
	Name            string              `json:"name,omitempty"`
	Issuer          string              `json:"issuer,omitempty"`
	DateObtained    string              `json:"dateObtained,omitempty"`
	ExpirationDate  string              `json:"expirationDate,omitempty"`
	CredentialID    string              `json:"credentialId,omitempty"`
	VerificationURL string              `json:"verificationUrl,omitempty"`
	Status          CertificationStatus `json:"status,omitempty"`
}

// FullName joins first and last name, skipping blanks.
func (p PersonalInfo) FullName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.LastName
	}
}

// IsEmpty reports whether no personal field is set.
func (p PersonalInfo) IsEmpty() bool {
	return p == PersonalInfo{}
}
