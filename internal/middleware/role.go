package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/model"
)

// RequireRole returns a middleware enforcing that the authenticated
// user holds one of the given roles. It assumes JWTAuth already stored
// the "role" claim in the context; a missing or unknown role is
// rejected with 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Get("role")
			s, ok := v.(string)
			if !ok {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			role, ok := model.ParseRole(s)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
