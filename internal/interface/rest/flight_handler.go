package rest

import (
	"errors"
	"net/http"
	"strconv"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/internal/usecase"
	"flightmate-service/pkg/logger"

	"github.com/labstack/echo/v4"
)

// FlightResponse is the stored flight returned after registration
type FlightResponse struct {
	ID            int64   `json:"id"`
	UserID        string  `json:"user_id"`
	FlightNumber  string  `json:"flight_number"`
	Date          string  `json:"date"`
	DepartureTime string  `json:"departure_time"`
	DepAirport    string  `json:"dep_airport"`
	HoursEarly    float64 `json:"hours_early"`
}

// FlightHandler implements the flight registration endpoints
type FlightHandler struct {
	flights *usecase.FlightService
	logger  logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(flights *usecase.FlightService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{
		flights: flights,
		logger:  logger,
	}
}

func flightResponse(f *entity.Flight) FlightResponse {
	return FlightResponse{
		ID:            f.ID,
		UserID:        f.UserID.String(),
		FlightNumber:  f.FlightNumber,
		Date:          f.Date.Format("2006-01-02"),
		DepartureTime: f.DepartureTime.Format("15:04:05"),
		DepAirport:    f.DepAirport,
		HoursEarly:    f.HoursEarly,
	}
}

// Create registers a new flight for the authenticated user
func (h *FlightHandler) Create(c echo.Context) error {
	var in entity.FlightCreate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user := CurrentUser(c)
	flight, err := h.flights.Register(c.Request().Context(), user, &in)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidFlight) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error("Failed to register flight", "userId", user.ID.String(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to register flight")
	}

	return c.JSON(http.StatusCreated, flightResponse(flight))
}

// Delete removes a flight owned by the authenticated user
func (h *FlightHandler) Delete(c echo.Context) error {
	flightID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid flight id")
	}

	user := CurrentUser(c)
	if err := h.flights.Remove(c.Request().Context(), flightID, user.ID); err != nil {
		if errors.Is(err, usecase.ErrNotOwner) {
			return echo.NewHTTPError(http.StatusForbidden, "You do not own this flight.")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "flight not found")
		}
		h.logger.Error("Failed to delete flight", "flightId", flightID, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete flight")
	}

	return c.NoContent(http.StatusNoContent)
}
