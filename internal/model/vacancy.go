package model

import (
	"strings"
	"time"
)

// EmploymentType enumerates vacancies.employment_type.
type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
	EmploymentRemote     EmploymentType = "REMOTE"
)

// ParseEmploymentType normalizes s to a known EmploymentType.
func ParseEmploymentType(s string) (EmploymentType, bool) {
	switch EmploymentType(strings.ToUpper(strings.TrimSpace(s))) {
	case EmploymentFullTime:
		return EmploymentFullTime, true
	case EmploymentPartTime:
		return EmploymentPartTime, true
	case EmploymentContract:
		return EmploymentContract, true
	case EmploymentInternship:
		return EmploymentInternship, true
	case EmploymentRemote:
		return EmploymentRemote, true
	}
	return "", false
}

// ExperienceLevel enumerates vacancies.experience_level.
type ExperienceLevel string

const (
	ExperienceIntern ExperienceLevel = "INTERN"
	ExperienceJunior ExperienceLevel = "JUNIOR"
	ExperienceMiddle ExperienceLevel = "MIDDLE"
	ExperienceSenior ExperienceLevel = "SENIOR"
	ExperienceLead   ExperienceLevel = "LEAD"
)

// ParseExperienceLevel normalizes s to a known ExperienceLevel.
func ParseExperienceLevel(s string) (ExperienceLevel, bool) {
	switch ExperienceLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case ExperienceIntern:
		return ExperienceIntern, true
	case ExperienceJunior:
		return ExperienceJunior, true
	case ExperienceMiddle:
		return ExperienceMiddle, true
	case ExperienceSenior:
		return ExperienceSenior, true
	case ExperienceLead:
		return ExperienceLead, true
	}
	return "", false
}

// Vacancy mirrors the 'vacancies' table. EmployerID is set once at
// creation and never updated. ExpiresAt is computed once at creation as
// CreatedAt plus one month; nothing recomputes it and nothing enforces
// it — visibility is driven solely by IsActive.
//
// EmployerName is not a column; list and detail queries join the users
// table to fill it for responses.
type Vacancy struct {
	ID              uint64          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	CompanyName     string          `json:"companyName"`
	CompanyLogo     string          `json:"companyLogo,omitempty"`
	Location        string          `json:"location"`
	Salary          string          `json:"salary,omitempty"` // free text, e.g. "50000-80000" or "negotiable"
	EmploymentType  EmploymentType  `json:"employmentType"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Skills          string          `json:"skills,omitempty"` // comma-separated, e.g. "Go, SQL, Docker"
	ContactEmail    string          `json:"contactEmail"`
	Website         string          `json:"website,omitempty"`
	IsActive        bool            `json:"isActive"`
	EmployerID      uint64          `json:"employerId"`
	EmployerName    string          `json:"employerName,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"-"`
	ExpiresAt       time.Time       `json:"expiresAt"`
}
