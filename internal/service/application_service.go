package service

import (
	"context"
	"fmt"
	"time"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/policy"
	"github.com/careerfinder/career-finder/internal/repository"
)

// ApplicationStore is the persistence contract the application service
// needs. *repository.ApplicationRepo satisfies it.
type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) error
	ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error)
	GetByID(ctx context.Context, id uint64) (*model.ApplicationDetail, error)
	ListByApplicant(ctx context.Context, applicantID uint64) ([]*model.ApplicationDetail, error)
	ListByVacancy(ctx context.Context, vacancyID uint64) ([]*model.ApplicationDetail, error)
	ListByEmployer(ctx context.Context, employerID uint64) ([]*model.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id uint64, status model.ApplicationStatus) error
}

// VacancyGetter is the one vacancy lookup the application service
// depends on.
type VacancyGetter interface {
	GetByID(ctx context.Context, id uint64) (*model.Vacancy, error)
}

// Stats summarizes an employer's incoming applications.
type Stats struct {
	Total   int64 `json:"totalApplications"`
	Pending int64 `json:"pendingApplications"`
}

// ApplicationService owns the application lifecycle: applicants submit
// against active vacancies, the owning employer (or an admin) reviews
// and moves status.
type ApplicationService struct {
	apps      ApplicationStore
	vacancies VacancyGetter
}

func NewApplicationService(apps ApplicationStore, vacancies VacancyGetter) *ApplicationService {
	return &ApplicationService{apps: apps, vacancies: vacancies}
}

// Submit creates a PENDING application from the actor to the vacancy.
// Inactive vacancies are treated exactly like absent ones. The
// existence check gives sequential duplicates a clean conflict answer;
// the store's unique key catches the concurrent ones.
func (s *ApplicationService) Submit(ctx context.Context, actor model.Actor, vacancyID uint64, coverLetter string) (*model.Application, error) {
	if !policy.CanCreateApplication(actor).Allowed() {
		return nil, ErrForbidden
	}
	vac, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if !vac.IsActive {
		return nil, repository.ErrVacancyNotFound
	}
	exists, err := s.apps.ExistsForVacancyAndApplicant(ctx, vacancyID, actor.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrAlreadyApplied
	}
	now := time.Now().UTC()
	app := &model.Application{
		VacancyID:   vacancyID,
		ApplicantID: actor.ID,
		CoverLetter: coverLetter,
		Status:      model.StatusPending,
		AppliedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListMine returns the actor's own applications, newest first.
func (s *ApplicationService) ListMine(ctx context.Context, actor model.Actor) ([]*model.ApplicationDetail, error) {
	return s.apps.ListByApplicant(ctx, actor.ID)
}

// ListForVacancy returns a vacancy's applications for its owning
// employer or an admin.
func (s *ApplicationService) ListForVacancy(ctx context.Context, actor model.Actor, vacancyID uint64) ([]*model.ApplicationDetail, error) {
	vac, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewVacancyApplications(actor, vac.EmployerID).Allowed() {
		return nil, ErrForbidden
	}
	return s.apps.ListByVacancy(ctx, vacancyID)
}

// ListForMyVacancies returns the applications across every vacancy the
// actor owns. It is an employer-only view.
func (s *ApplicationService) ListForMyVacancies(ctx context.Context, actor model.Actor) ([]*model.ApplicationDetail, error) {
	if actor.Role != model.RoleEmployer {
		return nil, ErrForbidden
	}
	return s.apps.ListByEmployer(ctx, actor.ID)
}

// UpdateStatus moves an application to any of the four statuses. The
// transition graph is deliberately unrestricted: an authorized actor
// may move status backwards or set the current value again. Only
// unknown status strings are rejected.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor model.Actor, applicationID uint64, status string) (*model.ApplicationDetail, error) {
	next, ok := model.ParseApplicationStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !policy.CanUpdateApplicationStatus(actor, app.VacancyEmployerID).Allowed() {
		return nil, ErrForbidden
	}
	if err := s.apps.UpdateStatus(ctx, applicationID, next); err != nil {
		return nil, err
	}
	return s.apps.GetByID(ctx, applicationID)
}

// ApplicationStats counts the actor's incoming applications, total and
// still pending. Counting is per principal: an admin who owns no
// vacancies gets zeros rather than a global view.
func (s *ApplicationService) ApplicationStats(ctx context.Context, actor model.Actor) (Stats, error) {
	if actor.Role != model.RoleEmployer && actor.Role != model.RoleAdmin {
		return Stats{}, ErrForbidden
	}
	apps, err := s.apps.ListByEmployer(ctx, actor.ID)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Total: int64(len(apps))}
	for _, a := range apps {
		if a.Status == model.StatusPending {
			st.Pending++
		}
	}
	return st, nil
}
