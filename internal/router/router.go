package router

import (
	"github.com/labstack/echo/v4"

	"github.com/careerfinder/career-finder/internal/handler"
	"github.com/careerfinder/career-finder/internal/middleware"
	"github.com/careerfinder/career-finder/internal/model"
)

// RegisterRoutes registers routes that carry no authentication at all.
// Currently that is only the health check; /metrics is mounted by the
// caller alongside the metrics middleware.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints and the authenticated /v1/me
// profile route. Unauthenticated operations live under /v1/auth.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// /refresh rotates the refresh token; /refresh-access only renews
	// the access token against an unrotated refresh token.
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout is proven by possession of a valid refresh token in the
	// body, so it needs no access token.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterVacancies registers both the public browse endpoints and the
// employer-side management endpoints for vacancies.
//
// Route order matters for the public group: /search, /filter and
// /stats/count must be registered so they are not swallowed by /:id.
func RegisterVacancies(e *echo.Echo, v *handler.VacancyHandler, jwtSecret string) {
	// Guests can browse everything that is active.
	e.GET("/v1/vacancies", v.ListActive)
	e.GET("/v1/vacancies/search", v.Search)
	e.GET("/v1/vacancies/filter", v.Filter)
	e.GET("/v1/vacancies/stats/count", v.Count)
	e.GET("/v1/vacancies/:id", v.GetByID)

	manage := e.Group("/v1/vacancies")
	manage.Use(middleware.JWTAuth(jwtSecret))
	manage.POST("", v.Create, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
	manage.PUT("/:id", v.Update, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
	manage.DELETE("/:id", v.Delete, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
	manage.GET("/employer/my-vacancies", v.MyVacancies, middleware.RequireRole(model.RoleEmployer))
}

// RegisterApplications registers the application lifecycle endpoints.
// Everything here requires a valid access token; per-route role checks
// narrow further, and ownership checks live in the service layer.
func RegisterApplications(e *echo.Echo, a *handler.ApplicationHandler, jwtSecret string) {
	g := e.Group("/v1/applications")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("", a.Submit, middleware.RequireRole(model.RoleApplicant))
	g.GET("/my-applications", a.MyApplications, middleware.RequireRole(model.RoleApplicant))
	g.GET("/vacancy/:id", a.ForVacancy, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
	g.GET("/employer/my-vacancies-applications", a.ForMyVacancies, middleware.RequireRole(model.RoleEmployer))
	g.PUT("/:id/status", a.UpdateStatus, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
	g.GET("/stats", a.Stats, middleware.RequireRole(model.RoleEmployer, model.RoleAdmin))
}
