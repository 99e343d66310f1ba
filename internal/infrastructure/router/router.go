package router

import (
	"net/http"

	"flightmate-service/internal/domain/repository"
	"flightmate-service/internal/infrastructure/auth"
	"flightmate-service/internal/interface/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles the handler set registered on the router
type Handlers struct {
	Auth   *rest.AuthHandler
	User   *rest.UserHandler
	Flight *rest.FlightHandler
	Match  *rest.MatchHandler
}

// New builds the Echo instance with all routes registered
func New(h Handlers, tokens *auth.TokenManager, users repository.UserRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"message": "Welcome to the FlightMate API. See /docs for documentation.",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/auth/slack", h.Auth.SlackLogin)
	api.GET("/auth/slack/callback", h.Auth.SlackCallback)

	authed := api.Group("", rest.JWTAuth(tokens, users))
	authed.GET("/users/me", h.User.Me)
	authed.PATCH("/users/me", h.User.UpdateMe)
	authed.DELETE("/users/me", h.User.DeleteMe)

	authed.POST("/flights", h.Flight.Create)
	authed.DELETE("/flights/:id", h.Flight.Delete)

	authed.GET("/matches", h.Match.Get)

	return e
}
