package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/policy"
	"github.com/careerfinder/career-finder/internal/repository"
)

// VacancyStore is the persistence contract the vacancy service needs.
// *repository.VacancyRepo satisfies it; tests substitute an in-memory
// fake.
type VacancyStore interface {
	Create(ctx context.Context, v *model.Vacancy) error
	Update(ctx context.Context, v *model.Vacancy) error
	Delete(ctx context.Context, id uint64) error
	GetByID(ctx context.Context, id uint64) (*model.Vacancy, error)
	ListActive(ctx context.Context) ([]*model.Vacancy, error)
	ListByEmployer(ctx context.Context, employerID uint64) ([]*model.Vacancy, error)
	Search(ctx context.Context, query string) ([]*model.Vacancy, error)
	Filter(ctx context.Context, location string, employmentType model.EmploymentType, experienceLevel model.ExperienceLevel) ([]*model.Vacancy, error)
	CountActive(ctx context.Context) (int64, error)
}

// VacancyInput carries the mutable fields of a vacancy for create and
// update. Ownership, timestamps and expiry are never supplied by
// clients.
type VacancyInput struct {
	Title           string
	Description     string
	CompanyName     string
	CompanyLogo     string
	Location        string
	Salary          string
	EmploymentType  model.EmploymentType
	ExperienceLevel model.ExperienceLevel
	Skills          string
	ContactEmail    string
	Website         string
	IsActive        *bool // nil leaves the flag alone (create defaults to true)
}

func (in VacancyInput) validate() error {
	missing := []string{}
	for field, v := range map[string]string{
		"title":        in.Title,
		"description":  in.Description,
		"companyName":  in.CompanyName,
		"location":     in.Location,
		"contactEmail": in.ContactEmail,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if in.EmploymentType == "" || in.ExperienceLevel == "" {
		return fmt.Errorf("%w: employmentType and experienceLevel are required", ErrInvalidInput)
	}
	return nil
}

// VacancyService owns the vacancy lifecycle: employers (and admins)
// create, update and delete postings; everyone browses the active ones.
type VacancyService struct {
	vacancies VacancyStore
}

func NewVacancyService(vacancies VacancyStore) *VacancyService {
	return &VacancyService{vacancies: vacancies}
}

// Create posts a new vacancy owned by the actor. The posting starts
// active and expires one month after creation; the expiry is computed
// here, once, and never recomputed.
func (s *VacancyService) Create(ctx context.Context, actor model.Actor, in VacancyInput) (*model.Vacancy, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	v := &model.Vacancy{
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		CompanyName:     strings.TrimSpace(in.CompanyName),
		CompanyLogo:     in.CompanyLogo,
		Location:        strings.TrimSpace(in.Location),
		Salary:          in.Salary,
		EmploymentType:  in.EmploymentType,
		ExperienceLevel: in.ExperienceLevel,
		Skills:          in.Skills,
		ContactEmail:    strings.TrimSpace(in.ContactEmail),
		Website:         in.Website,
		IsActive:        true,
		EmployerID:      actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       now.AddDate(0, 1, 0),
	}
	if err := s.vacancies.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Update rewrites a vacancy's mutable fields. Only the owning employer
// or an admin may do so; the owner and expiry never change.
func (s *VacancyService) Update(ctx context.Context, actor model.Actor, id uint64, in VacancyInput) (*model.Vacancy, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	v, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutateVacancy(actor, v.EmployerID).Allowed() {
		return nil, ErrForbidden
	}
	v.Title = strings.TrimSpace(in.Title)
	v.Description = in.Description
	v.CompanyName = strings.TrimSpace(in.CompanyName)
	v.CompanyLogo = in.CompanyLogo
	v.Location = strings.TrimSpace(in.Location)
	v.Salary = in.Salary
	v.EmploymentType = in.EmploymentType
	v.ExperienceLevel = in.ExperienceLevel
	v.Skills = in.Skills
	v.ContactEmail = strings.TrimSpace(in.ContactEmail)
	v.Website = in.Website
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
	}
	v.UpdatedAt = time.Now().UTC()
	if err := s.vacancies.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Delete removes a vacancy outright for its owner or an admin. There is
// no soft delete.
func (s *VacancyService) Delete(ctx context.Context, actor model.Actor, id uint64) error {
	v, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanMutateVacancy(actor, v.EmployerID).Allowed() {
		return ErrForbidden
	}
	return s.vacancies.Delete(ctx, id)
}

// GetActive returns a vacancy for the public detail view. Inactive
// postings are indistinguishable from absent ones here.
func (s *VacancyService) GetActive(ctx context.Context, id uint64) (*model.Vacancy, error) {
	v, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		return nil, repository.ErrVacancyNotFound
	}
	return v, nil
}

// ListActive returns all visible vacancies, newest first.
func (s *VacancyService) ListActive(ctx context.Context) ([]*model.Vacancy, error) {
	return s.vacancies.ListActive(ctx)
}

// Search matches active vacancies against a free-text query.
func (s *VacancyService) Search(ctx context.Context, query string) ([]*model.Vacancy, error) {
	return s.vacancies.Search(ctx, query)
}

// Filter narrows active vacancies by at most one dimension, priority
// location over employmentType over experienceLevel.
func (s *VacancyService) Filter(ctx context.Context, location string, employmentType model.EmploymentType, experienceLevel model.ExperienceLevel) ([]*model.Vacancy, error) {
	return s.vacancies.Filter(ctx, location, employmentType, experienceLevel)
}

// MyVacancies returns every posting the actor owns, active or not.
func (s *VacancyService) MyVacancies(ctx context.Context, actor model.Actor) ([]*model.Vacancy, error) {
	return s.vacancies.ListByEmployer(ctx, actor.ID)
}

// CountActive returns the number of visible vacancies.
func (s *VacancyService) CountActive(ctx context.Context) (int64, error) {
	return s.vacancies.CountActive(ctx)
}
