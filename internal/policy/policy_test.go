package policy

import (
	"testing"

	"github.com/careerfinder/career-finder/internal/model"
)

func TestCanCreateApplication(t *testing.T) {
	cases := []struct {
		role model.Role
		want bool
	}{
		{model.RoleApplicant, true},
		{model.RoleEmployer, false},
		{model.RoleAdmin, false}, // applying is applicant-specific
	}
	for _, tc := range cases {
		got := CanCreateApplication(model.Actor{ID: 1, Role: tc.role}).Allowed()
		if got != tc.want {
			t.Errorf("CanCreateApplication(%s) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestOwnerOrAdminRules(t *testing.T) {
	const ownerID = 42

	checks := map[string]func(model.Actor, uint64) Decision{
		"CanViewVacancyApplications": CanViewVacancyApplications,
		"CanUpdateApplicationStatus": CanUpdateApplicationStatus,
		"CanMutateVacancy":           CanMutateVacancy,
	}
	cases := []struct {
		name  string
		actor model.Actor
		want  bool
	}{
		{"owning employer", model.Actor{ID: ownerID, Role: model.RoleEmployer}, true},
		{"other employer", model.Actor{ID: 7, Role: model.RoleEmployer}, false},
		{"admin", model.Actor{ID: 7, Role: model.RoleAdmin}, true},
		{"applicant with owner id", model.Actor{ID: ownerID, Role: model.RoleApplicant}, false},
	}
	for name, check := range checks {
		for _, tc := range cases {
			if got := check(tc.actor, ownerID).Allowed(); got != tc.want {
				t.Errorf("%s/%s = %v, want %v", name, tc.name, got, tc.want)
			}
		}
	}
}
