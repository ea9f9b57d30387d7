// Package handler exposes the HTTP handlers of the job board. Handlers
// bind requests, hand them to the service layer and translate the
// service error taxonomy into status codes; no business rules live
// here.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/model"
	"github.com/careerfinder/career-finder/internal/repository"
	"github.com/careerfinder/career-finder/internal/service"
)

// actorFromContext rebuilds the model.Actor from the claims JWTAuth
// stored in the context. JWT numbers arrive as float64; role strings go
// through ParseRole so unknown values never become an Actor.
func actorFromContext(c echo.Context) (model.Actor, error) {
	var id uint64
	switch t := c.Get("user_id").(type) {
	case uint64:
		id = t
	case int:
		id = uint64(t)
	case int64:
		id = uint64(t)
	case float64:
		id = uint64(t)
	case string:
		n, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return model.Actor{}, errors.New("invalid user_id in context")
		}
		id = n
	default:
		return model.Actor{}, errors.New("missing user_id in context")
	}
	roleStr, _ := c.Get("role").(string)
	role, ok := model.ParseRole(roleStr)
	if !ok {
		return model.Actor{}, errors.New("invalid role in context")
	}
	return model.Actor{ID: id, Role: role}, nil
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// writeServiceError maps the service/repository error taxonomy onto
// HTTP status codes. Anything unrecognized is a 500.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrVacancyNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "vacancy not found"})
	case errors.Is(err, repository.ErrApplicationNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "application not found"})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	case errors.Is(err, repository.ErrAlreadyApplied):
		return c.JSON(http.StatusConflict, echo.Map{"error": "you have already applied for this vacancy"})
	case errors.Is(err, repository.ErrEmailExists):
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
