package model

import (
	"strings"
	"time"
)

// ApplicationStatus enumerates applications.status.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusReviewed ApplicationStatus = "REVIEWED"
	StatusAccepted ApplicationStatus = "ACCEPTED"
	StatusRejected ApplicationStatus = "REJECTED"
)

// ParseApplicationStatus normalizes s to a known ApplicationStatus.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, true
	case StatusReviewed:
		return StatusReviewed, true
	case StatusAccepted:
		return StatusAccepted, true
	case StatusRejected:
		return StatusRejected, true
	}
	return "", false
}

// Application mirrors the 'applications' table. AppliedAt is set once at
// creation and never changes; UpdatedAt refreshes on every mutation.
// The (VacancyID, ApplicantID) pair is unique, enforced by the schema.
type Application struct {
	ID          uint64            `json:"id"`
	VacancyID   uint64            `json:"vacancyId"`
	ApplicantID uint64            `json:"applicantId"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ApplicationDetail is an Application joined with its vacancy and
// applicant, the shape returned by every listing endpoint. The vacancy's
// employer id rides along unexported from JSON so the service layer can
// run ownership checks without a second query.
type ApplicationDetail struct {
	ID                uint64            `json:"id"`
	VacancyID         uint64            `json:"vacancyId"`
	VacancyTitle      string            `json:"vacancyTitle"`
	CompanyName       string            `json:"companyName"`
	ApplicantID       uint64            `json:"applicantId"`
	ApplicantName     string            `json:"applicantName"`
	ApplicantEmail    string            `json:"applicantEmail"`
	CoverLetter       string            `json:"coverLetter,omitempty"`
	Status            ApplicationStatus `json:"status"`
	AppliedAt         time.Time         `json:"appliedAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	VacancyEmployerID uint64            `json:"-"`
}
