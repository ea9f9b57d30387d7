package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/service"
)

// ApplicationHandler serves the applicant and employer sides of the
// application lifecycle.
type ApplicationHandler struct {
	Svc *service.ApplicationService
}

func NewApplicationHandler(svc *service.ApplicationService) *ApplicationHandler {
	if svc == nil {
		panic("nil service passed to NewApplicationHandler")
	}
	return &ApplicationHandler{Svc: svc}
}

type submitApplicationReq struct {
	VacancyID   uint64 `json:"vacancyId"`
	CoverLetter string `json:"coverLetter"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// Submit handles POST /v1/applications.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.VacancyID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vacancyId is required"})
	}
	app, err := h.Svc.Submit(c.Request().Context(), actor, req.VacancyID, req.CoverLetter)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, app)
}

// MyApplications handles GET /v1/applications/my-applications.
func (h *ApplicationHandler) MyApplications(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	out, err := h.Svc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ForVacancy handles GET /v1/applications/vacancy/:id. Only the
// vacancy's owner or an admin gets the list.
func (h *ApplicationHandler) ForVacancy(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid vacancy id"})
	}
	out, err := h.Svc.ListForVacancy(c.Request().Context(), actor, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ForMyVacancies handles GET /v1/applications/employer/my-vacancies-applications.
func (h *ApplicationHandler) ForMyVacancies(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	out, err := h.Svc.ListForMyVacancies(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStatus handles PUT /v1/applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid application id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	app, err := h.Svc.UpdateStatus(c.Request().Context(), actor, id, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

// Stats handles GET /v1/applications/stats.
func (h *ApplicationHandler) Stats(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	st, err := h.Svc.ApplicationStats(c.Request().Context(), actor)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
