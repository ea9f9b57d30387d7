package service

// In-memory stand-ins for the repository layer. They reproduce the
// store contracts closely enough for the service tests: ordering,
// active-only visibility, the OR-match search, the single-dimension
// filter, and the unique (vacancy, applicant) key.

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/repository"
)

type fakeVacancyStore struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]*model.Vacancy
}

func newFakeVacancyStore() *fakeVacancyStore {
	return &fakeVacancyStore{rows: make(map[uint64]*model.Vacancy)}
}

func (f *fakeVacancyStore) Create(ctx context.Context, v *model.Vacancy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	v.ID = f.nextID
	cp := *v
	f.rows[v.ID] = &cp
	return nil
}

func (f *fakeVacancyStore) Update(ctx context.Context, v *model.Vacancy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[v.ID]; !ok {
		return repository.ErrVacancyNotFound
	}
	cp := *v
	f.rows[v.ID] = &cp
	return nil
}

func (f *fakeVacancyStore) Delete(ctx context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repository.ErrVacancyNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeVacancyStore) GetByID(ctx context.Context, id uint64) (*model.Vacancy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrVacancyNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVacancyStore) ListActive(ctx context.Context) ([]*model.Vacancy, error) {
	return f.collect(func(v *model.Vacancy) bool { return v.IsActive }), nil
}

func (f *fakeVacancyStore) ListByEmployer(ctx context.Context, employerID uint64) ([]*model.Vacancy, error) {
	return f.collect(func(v *model.Vacancy) bool { return v.EmployerID == employerID }), nil
}

func (f *fakeVacancyStore) Search(ctx context.Context, query string) ([]*model.Vacancy, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	return f.collect(func(v *model.Vacancy) bool {
		if !v.IsActive {
			return false
		}
		for _, field := range []string{v.Title, v.Description, v.CompanyName, v.Skills} {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}), nil
}

func (f *fakeVacancyStore) Filter(ctx context.Context, location string, employmentType model.EmploymentType, experienceLevel model.ExperienceLevel) ([]*model.Vacancy, error) {
	switch {
	case strings.TrimSpace(location) != "":
		needle := strings.ToLower(strings.TrimSpace(location))
		return f.collect(func(v *model.Vacancy) bool {
			return v.IsActive && strings.Contains(strings.ToLower(v.Location), needle)
		}), nil
	case employmentType != "":
		return f.collect(func(v *model.Vacancy) bool {
			return v.IsActive && v.EmploymentType == employmentType
		}), nil
	case experienceLevel != "":
		return f.collect(func(v *model.Vacancy) bool {
			return v.IsActive && v.ExperienceLevel == experienceLevel
		}), nil
	default:
		return f.ListActive(ctx)
	}
}

func (f *fakeVacancyStore) CountActive(ctx context.Context) (int64, error) {
	return int64(len(f.collect(func(v *model.Vacancy) bool { return v.IsActive }))), nil
}

func (f *fakeVacancyStore) collect(keep func(*model.Vacancy) bool) []*model.Vacancy {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.Vacancy{}
	for _, v := range f.rows {
		if keep(v) {
			cp := *v
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type fakeApplicationStore struct {
	mu        sync.Mutex
	nextID    uint64
	rows      map[uint64]*model.ApplicationDetail
	vacancies *fakeVacancyStore
}

func newFakeApplicationStore(vacancies *fakeVacancyStore) *fakeApplicationStore {
	return &fakeApplicationStore{rows: make(map[uint64]*model.ApplicationDetail), vacancies: vacancies}
}

func (f *fakeApplicationStore) Create(ctx context.Context, a *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.rows {
		if d.VacancyID == a.VacancyID && d.ApplicantID == a.ApplicantID {
			return repository.ErrAlreadyApplied // unique key
		}
	}
	vac, err := f.vacancies.GetByID(ctx, a.VacancyID)
	if err != nil {
		return err
	}
	f.nextID++
	a.ID = f.nextID
	f.rows[a.ID] = &model.ApplicationDetail{
		ID:                a.ID,
		VacancyID:         a.VacancyID,
		VacancyTitle:      vac.Title,
		CompanyName:       vac.CompanyName,
		ApplicantID:       a.ApplicantID,
		CoverLetter:       a.CoverLetter,
		Status:            a.Status,
		AppliedAt:         a.AppliedAt,
		UpdatedAt:         a.UpdatedAt,
		VacancyEmployerID: vac.EmployerID,
	}
	return nil
}

func (f *fakeApplicationStore) ExistsForVacancyAndApplicant(ctx context.Context, vacancyID, applicantID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.rows {
		if d.VacancyID == vacancyID && d.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) GetByID(ctx context.Context, id uint64) (*model.ApplicationDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrApplicationNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeApplicationStore) ListByApplicant(ctx context.Context, applicantID uint64) ([]*model.ApplicationDetail, error) {
	return f.collect(func(d *model.ApplicationDetail) bool { return d.ApplicantID == applicantID }), nil
}

func (f *fakeApplicationStore) ListByVacancy(ctx context.Context, vacancyID uint64) ([]*model.ApplicationDetail, error) {
	return f.collect(func(d *model.ApplicationDetail) bool { return d.VacancyID == vacancyID }), nil
}

func (f *fakeApplicationStore) ListByEmployer(ctx context.Context, employerID uint64) ([]*model.ApplicationDetail, error) {
	return f.collect(func(d *model.ApplicationDetail) bool { return d.VacancyEmployerID == employerID }), nil
}

func (f *fakeApplicationStore) UpdateStatus(ctx context.Context, id uint64, status model.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.rows[id]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	d.Status = status
	d.UpdatedAt = d.UpdatedAt.Add(1) // refreshed, applied_at untouched
	return nil
}

func (f *fakeApplicationStore) collect(keep func(*model.ApplicationDetail) bool) []*model.ApplicationDetail {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*model.ApplicationDetail{}
	for _, d := range f.rows {
		if keep(d) {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out
}
