package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/model"
)

func invokeWithRole(t *testing.T, role interface{}, allowed ...model.Role) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}
	h := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		role    interface{}
		allowed []model.Role
		want    int
	}{
		{"allowed role", "EMPLOYER", []model.Role{model.RoleEmployer, model.RoleAdmin}, http.StatusOK},
		{"lowercase claim parses", "employer", []model.Role{model.RoleEmployer}, http.StatusOK},
		{"role not in set", "APPLICANT", []model.Role{model.RoleEmployer}, http.StatusForbidden},
		{"unknown role string", "SUPERUSER", []model.Role{model.RoleEmployer}, http.StatusForbidden},
		{"missing claim", nil, []model.Role{model.RoleEmployer}, http.StatusForbidden},
		{"non-string claim", 42, []model.Role{model.RoleEmployer}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := invokeWithRole(t, tc.role, tc.allowed...)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
