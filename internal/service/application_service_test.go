package service

import (
	"context"
	"errors"
	"testing"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/repository"
)

func newApplicationFixture(t *testing.T) (*ApplicationService, *VacancyService, *fakeApplicationStore) {
	t.Helper()
	vacancies := newFakeVacancyStore()
	apps := newFakeApplicationStore(vacancies)
	return NewApplicationService(apps, vacancies), NewVacancyService(vacancies), apps
}

func TestSubmitCreatesPendingApplication(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}

	app, err := appSvc.Submit(ctx, applcnt, v.ID, "hi")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if app.Status != model.StatusPending {
		t.Errorf("Status = %s, want PENDING", app.Status)
	}
	if app.ApplicantID != applcnt.ID || app.VacancyID != v.ID {
		t.Errorf("application linked to (%d,%d), want (%d,%d)",
			app.VacancyID, app.ApplicantID, v.ID, applcnt.ID)
	}
	if app.CoverLetter != "hi" {
		t.Errorf("CoverLetter = %q", app.CoverLetter)
	}
	if !app.AppliedAt.Equal(app.UpdatedAt) {
		t.Errorf("AppliedAt and UpdatedAt should match at creation")
	}
}

func TestSubmitDeniedForNonApplicants(t *testing.T) {
	appSvc, vacSvc, apps := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}

	for _, actor := range []model.Actor{employer, admin} {
		if _, err := appSvc.Submit(ctx, actor, v.ID, ""); !errors.Is(err, ErrForbidden) {
			t.Errorf("Submit as %s: err = %v, want ErrForbidden", actor.Role, err)
		}
	}
	if n := len(apps.rows); n != 0 {
		t.Fatalf("%d applications persisted after denied submissions", n)
	}
}

func TestSubmitMissingOrInactiveVacancy(t *testing.T) {
	appSvc, vacSvc, apps := newApplicationFixture(t)
	ctx := context.Background()

	if _, err := appSvc.Submit(ctx, applcnt, 999, ""); !errors.Is(err, repository.ErrVacancyNotFound) {
		t.Fatalf("Submit to missing vacancy: err = %v, want ErrVacancyNotFound", err)
	}

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	off := false
	in := validInput()
	in.IsActive = &off
	if _, err := vacSvc.Update(ctx, employer, v.ID, in); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, ""); !errors.Is(err, repository.ErrVacancyNotFound) {
		t.Fatalf("Submit to inactive vacancy: err = %v, want ErrVacancyNotFound", err)
	}
	if n := len(apps.rows); n != 0 {
		t.Fatalf("%d applications persisted, want none", n)
	}
}

func TestSubmitTwiceConflicts(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, "hi"); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, "hi again"); !errors.Is(err, repository.ErrAlreadyApplied) {
		t.Fatalf("second Submit: err = %v, want ErrAlreadyApplied", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	app, err := appSvc.Submit(ctx, applcnt, v.ID, "hi")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, err := appSvc.UpdateStatus(ctx, employer, app.ID, "REVIEWED")
	if err != nil {
		t.Fatalf("owner UpdateStatus: %v", err)
	}
	if got.Status != model.StatusReviewed {
		t.Errorf("Status = %s, want REVIEWED", got.Status)
	}

	// The transition graph is unrestricted: backwards and repeated
	// moves are fine for an authorized actor.
	if _, err := appSvc.UpdateStatus(ctx, employer, app.ID, "ACCEPTED"); err != nil {
		t.Fatalf("REVIEWED -> ACCEPTED: %v", err)
	}
	if _, err := appSvc.UpdateStatus(ctx, employer, app.ID, "PENDING"); err != nil {
		t.Fatalf("ACCEPTED -> PENDING: %v", err)
	}
	if _, err := appSvc.UpdateStatus(ctx, admin, app.ID, "pending"); err != nil {
		t.Fatalf("admin re-set of current status: %v", err)
	}

	if _, err := appSvc.UpdateStatus(ctx, employer, app.ID, "SHORTLISTED"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown status: err = %v, want ErrInvalidInput", err)
	}
	if _, err := appSvc.UpdateStatus(ctx, employer, 999, "REVIEWED"); !errors.Is(err, repository.ErrApplicationNotFound) {
		t.Fatalf("missing application: err = %v, want ErrApplicationNotFound", err)
	}
}

func TestUpdateStatusDeniedForStrangerLeavesStatus(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	app, err := appSvc.Submit(ctx, applcnt, v.ID, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := appSvc.UpdateStatus(ctx, stranger, app.ID, "ACCEPTED"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger UpdateStatus: err = %v, want ErrForbidden", err)
	}
	if _, err := appSvc.UpdateStatus(ctx, applcnt, app.ID, "ACCEPTED"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("applicant UpdateStatus: err = %v, want ErrForbidden", err)
	}

	mine, err := appSvc.ListMine(ctx, applcnt)
	if err != nil {
		t.Fatalf("ListMine: %v", err)
	}
	if len(mine) != 1 || mine[0].Status != model.StatusPending {
		t.Fatalf("status changed after denied updates: %+v", mine)
	}
}

func TestListForVacancy(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := appSvc.ListForVacancy(ctx, employer, 999); !errors.Is(err, repository.ErrVacancyNotFound) {
		t.Fatalf("missing vacancy: err = %v, want ErrVacancyNotFound", err)
	}
	if _, err := appSvc.ListForVacancy(ctx, stranger, v.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger: err = %v, want ErrForbidden", err)
	}
	for _, actor := range []model.Actor{employer, admin} {
		got, err := appSvc.ListForVacancy(ctx, actor, v.ID)
		if err != nil {
			t.Fatalf("ListForVacancy as %s: %v", actor.Role, err)
		}
		if len(got) != 1 {
			t.Fatalf("ListForVacancy as %s = %d rows, want 1", actor.Role, len(got))
		}
	}
}

func TestListForMyVacanciesIsEmployerOnly(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	got, err := appSvc.ListForMyVacancies(ctx, employer)
	if err != nil {
		t.Fatalf("ListForMyVacancies: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("ListForMyVacancies = %d rows, want 1", len(got))
	}

	other, err := appSvc.ListForMyVacancies(ctx, stranger)
	if err != nil {
		t.Fatalf("ListForMyVacancies for other employer: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("stranger sees %d applications, want 0", len(other))
	}

	if _, err := appSvc.ListForMyVacancies(ctx, applcnt); !errors.Is(err, ErrForbidden) {
		t.Fatalf("applicant: err = %v, want ErrForbidden", err)
	}
}

func TestApplicationStats(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	v, err := vacSvc.Create(ctx, employer, validInput())
	if err != nil {
		t.Fatalf("Create vacancy: %v", err)
	}
	second := model.Actor{ID: 40, Role: model.RoleApplicant}
	a1, err := appSvc.Submit(ctx, applcnt, v.ID, "")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := appSvc.Submit(ctx, second, v.ID, ""); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := appSvc.UpdateStatus(ctx, employer, a1.ID, "REVIEWED"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	st, err := appSvc.ApplicationStats(ctx, employer)
	if err != nil {
		t.Fatalf("ApplicationStats: %v", err)
	}
	if st.Total != 2 || st.Pending != 1 {
		t.Fatalf("stats = %+v, want total 2 / pending 1", st)
	}

	if _, err := appSvc.ApplicationStats(ctx, applcnt); !errors.Is(err, ErrForbidden) {
		t.Fatalf("applicant stats: err = %v, want ErrForbidden", err)
	}
	empty, err := appSvc.ApplicationStats(ctx, admin)
	if err != nil {
		t.Fatalf("admin stats: %v", err)
	}
	if empty.Total != 0 {
		t.Fatalf("admin owns no vacancies, stats = %+v", empty)
	}
}

// Full walk of the employer/applicant scenario: post, apply, duplicate
// conflict, owner review, stranger denial.
func TestApplicationScenario(t *testing.T) {
	appSvc, vacSvc, _ := newApplicationFixture(t)
	ctx := context.Background()

	in := validInput()
	in.Skills = "Go,SQL"
	v, err := vacSvc.Create(ctx, employer, in)
	if err != nil {
		t.Fatalf("post vacancy: %v", err)
	}

	app, err := appSvc.Submit(ctx, applcnt, v.ID, "hi")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := appSvc.Submit(ctx, applcnt, v.ID, "hi"); !errors.Is(err, repository.ErrAlreadyApplied) {
		t.Fatalf("re-apply: err = %v, want ErrAlreadyApplied", err)
	}

	reviewed, err := appSvc.UpdateStatus(ctx, employer, app.ID, "REVIEWED")
	if err != nil {
		t.Fatalf("owner review: %v", err)
	}
	if reviewed.Status != model.StatusReviewed {
		t.Fatalf("status = %s, want REVIEWED", reviewed.Status)
	}

	if _, err := appSvc.UpdateStatus(ctx, stranger, app.ID, "REJECTED"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger review: err = %v, want ErrForbidden", err)
	}
}
