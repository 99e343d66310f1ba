package rest

import (
	"errors"
	"net/http"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// UserResponse is the profile of the authenticated user
type UserResponse struct {
	ID          string    `json:"id"`
	SlackID     string    `json:"slack_id"`
	Name        string    `json:"name"`
	LinkedinURL *string   `json:"linkedin_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserUpdate carries the profile fields a user may change
type UserUpdate struct {
	LinkedinURL string `json:"linkedin_url"`
}

// UserHandler implements the /users/me endpoints
type UserHandler struct {
	users  repository.UserRepository
	logger logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users repository.UserRepository, logger logger.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

func userResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		SlackID:     u.SlackID,
		Name:        u.Name,
		LinkedinURL: u.LinkedinURL,
		CreatedAt:   u.CreatedAt,
	}
}

// Me returns the authenticated user's profile
func (h *UserHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, userResponse(CurrentUser(c)))
}

// UpdateMe updates the authenticated user's LinkedIn URL
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var in UserUpdate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user := CurrentUser(c)
	updated, err := h.users.UpdateLinkedin(c.Request().Context(), user.ID, in.LinkedinURL)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found.")
		}
		h.logger.Error("Failed to update user", "userId", user.ID.String(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update user")
	}
	return c.JSON(http.StatusOK, userResponse(updated))
}

// DeleteMe removes the authenticated user's account and all their flights
func (h *UserHandler) DeleteMe(c echo.Context) error {
	user := CurrentUser(c)
	if err := h.users.Delete(c.Request().Context(), user.ID); err != nil {
		h.logger.Error("Failed to delete user", "userId", user.ID.String(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete user")
	}
	h.logger.Info("User deleted", "userId", user.ID.String())
	return c.NoContent(http.StatusNoContent)
}
