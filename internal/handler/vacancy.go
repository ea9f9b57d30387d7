package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/service"
)

// VacancyHandler serves both the public browsing endpoints and the
// employer-side management endpoints for vacancies.
type VacancyHandler struct {
	Svc *service.VacancyService
}

func NewVacancyHandler(svc *service.VacancyService) *VacancyHandler {
	if svc == nil {
		panic("nil service passed to NewVacancyHandler")
	}
	return &VacancyHandler{Svc: svc}
}

type vacancyReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CompanyName     string `json:"companyName"`
	CompanyLogo     string `json:"companyLogo"`
	Location        string `json:"location"`
	Salary          string `json:"salary"`
	EmploymentType  string `json:"employmentType"`
	ExperienceLevel string `json:"experienceLevel"`
	Skills          string `json:"skills"`
	ContactEmail    string `json:"contactEmail"`
	Website         string `json:"website"`
	IsActive        *bool  `json:"isActive"`
}

// toInput validates the enum fields up front so unknown values become a
// 400 instead of reaching the database. Absent enums pass through empty
// and fail service validation alongside the other required fields.
func (req vacancyReq) toInput() (service.VacancyInput, string) {
	var employment model.EmploymentType
	if strings.TrimSpace(req.EmploymentType) != "" {
		parsed, ok := model.ParseEmploymentType(req.EmploymentType)
		if !ok {
			return service.VacancyInput{}, "invalid employmentType"
		}
		employment = parsed
	}
	var experience model.ExperienceLevel
	if strings.TrimSpace(req.ExperienceLevel) != "" {
		parsed, ok := model.ParseExperienceLevel(req.ExperienceLevel)
		if !ok {
			return service.VacancyInput{}, "invalid experienceLevel"
		}
		experience = parsed
	}
	return service.VacancyInput{
		Title:           req.Title,
		Description:     req.Description,
		CompanyName:     req.CompanyName,
		CompanyLogo:     req.CompanyLogo,
		Location:        req.Location,
		Salary:          req.Salary,
		EmploymentType:  employment,
		ExperienceLevel: experience,
		Skills:          req.Skills,
		ContactEmail:    req.ContactEmail,
		Website:         req.Website,
		IsActive:        req.IsActive,
	}, ""
}

// ListActive handles GET /v1/vacancies.
func (h *VacancyHandler) ListActive(c echo.Context) error {
	out, err := h.Svc.ListActive(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetByID handles GET /v1/vacancies/:id. Inactive vacancies are not
// exposed here, they 404 like absent ones.
func (h *VacancyHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vacancy id"})
	}
	v, err := h.Svc.GetActive(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Search handles GET /v1/vacancies/search?query=.
func (h *VacancyHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "query is required"})
	}
	out, err := h.Svc.Search(c.Request().Context(), query)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Filter handles GET /v1/vacancies/filter. Only the first supplied
// dimension applies, in the order location, employmentType,
// experienceLevel; the others are silently ignored. Unknown enum values
// in an ignored dimension therefore do not fail the request.
func (h *VacancyHandler) Filter(c echo.Context) error {
	location := c.QueryParam("location")

	var employment model.EmploymentType
	if raw := c.QueryParam("employmentType"); raw != "" {
		parsed, ok := model.ParseEmploymentType(raw)
		if !ok && strings.TrimSpace(location) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid employmentType"})
		}
		employment = parsed
	}
	var experience model.ExperienceLevel
	if raw := c.QueryParam("experienceLevel"); raw != "" {
		parsed, ok := model.ParseExperienceLevel(raw)
		if !ok && strings.TrimSpace(location) == "" && employment == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid experienceLevel"})
		}
		experience = parsed
	}

	out, err := h.Svc.Filter(c.Request().Context(), location, employment, experience)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Count handles GET /v1/vacancies/stats/count.
func (h *VacancyHandler) Count(c echo.Context) error {
	n, err := h.Svc.CountActive(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": n})
}

// Create handles POST /v1/vacancies.
func (h *VacancyHandler) Create(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req vacancyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	in, msg := req.toInput()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	v, err := h.Svc.Create(c.Request().Context(), actor, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

// Update handles PUT /v1/vacancies/:id.
func (h *VacancyHandler) Update(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vacancy id"})
	}
	var req vacancyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	in, msg := req.toInput()
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	v, err := h.Svc.Update(c.Request().Context(), actor, id, in)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /v1/vacancies/:id.
func (h *VacancyHandler) Delete(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vacancy id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), actor, id); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "vacancy deleted successfully"})
}

// MyVacancies handles GET /v1/vacancies/employer/my-vacancies. It
// returns the employer's own postings, including deactivated ones.
func (h *VacancyHandler) MyVacancies(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	out, err := h.Svc.MyVacancies(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
