package rest

import (
	"errors"
	"net/http"
	"strconv"

	"flightmate-service/internal/domain/repository"
	"flightmate-service/internal/usecase"
	"flightmate-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MatchHandler implements the match query endpoint
type MatchHandler struct {
	matches *usecase.MatchService
	logger  logger.Logger
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matches *usecase.MatchService, logger logger.Logger) *MatchHandler {
	return &MatchHandler{
		matches: matches,
		logger:  logger,
	}
}

// Get finds all matches for a flight owned by the authenticated user
func (h *MatchHandler) Get(c echo.Context) error {
	flightID, err := strconv.ParseInt(c.QueryParam("flight_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight_id parameter")
	}

	user := CurrentUser(c)
	result, err := h.matches.MatchesForFlight(c.Request().Context(), flightID, user.ID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotOwner) {
			return echo.NewHTTPError(http.StatusForbidden, "You cannot request matches for a flight you do not own.")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		}
		h.logger.Error("Failed to compute matches", "flightId", flightID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compute matches")
	}

	return c.JSON(http.StatusOK, result)
}
