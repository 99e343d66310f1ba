package rest

import (
	"net/http"
	"strings"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/internal/infrastructure/auth"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "current_user"

// JWTAuth returns an Echo middleware that validates a Bearer token, loads the
// user it was issued for and stores them in the request context
func JWTAuth(tokens *auth.TokenManager, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			userID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			user, err := users.GetByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user stored by JWTAuth
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(currentUserKey).(*entity.User)
	return user
}
