package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrInvalidFlight is returned when a flight fails boundary validation
var ErrInvalidFlight = errors.New("invalid flight")

var validate = validator.New()

// Flight represents one traveler's registered itinerary leg.
// Date carries only the calendar day and DepartureTime only the
// time of day; both are combined by DepartureAt.
type Flight struct {
	ID            int64
	UserID        uuid.UUID
	FlightNumber  string
	Date          time.Time
	DepartureTime time.Time
	DepAirport    string
	HoursEarly    float64
	CreatedAt     time.Time
}

// DepartureAt combines the flight date and departure time into a single timestamp
func (f *Flight) DepartureAt() time.Time {
	return time.Date(
		f.Date.Year(), f.Date.Month(), f.Date.Day(),
		f.DepartureTime.Hour(), f.DepartureTime.Minute(), f.DepartureTime.Second(),
		0, time.UTC,
	)
}

// Window returns the presence window at the departure airport, ending at
// scheduled departure and starting hours_early hours before
func (f *Flight) Window() PresenceWindow {
	depart := f.DepartureAt()
	return PresenceWindow{
		Start: depart.Add(-time.Duration(f.HoursEarly * float64(time.Hour))),
		End:   depart,
	}
}

// SameLeg reports whether two flights share flight number and date
func (f *Flight) SameLeg(other *Flight) bool {
	return f.FlightNumber == other.FlightNumber && f.Date.Equal(other.Date)
}

// FlightCreate is the validated input for registering a flight
type FlightCreate struct {
	FlightNumber  string  `json:"flight_number" validate:"required,max=10"`
	Date          string  `json:"date" validate:"required"`
	DepartureTime string  `json:"departure_time" validate:"required"`
	DepAirport    string  `json:"dep_airport" validate:"required,max=5"`
	HoursEarly    float64 `json:"hours_early" validate:"required,gt=0,lte=12"`
}

// Flight validates the input and builds a Flight owned by the given user.
// Validation is fail-fast: malformed fields are rejected here so the
// matching engine never sees them.
func (in *FlightCreate) Flight(owner uuid.UUID) (*Flight, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlight, err)
	}

	date, err := ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q: %v", ErrInvalidFlight, in.Date, err)
	}

	depTime, err := ParseTimeOfDay(in.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("%w: departure_time %q: %v", ErrInvalidFlight, in.DepartureTime, err)
	}

	return &Flight{
		UserID:        owner,
		FlightNumber:  in.FlightNumber,
		Date:          date,
		DepartureTime: depTime,
		DepAirport:    in.DepAirport,
		HoursEarly:    in.HoursEarly,
	}, nil
}

// ParseDate parses a calendar date in ISO format, normalized to midnight UTC
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseTimeOfDay parses a time of day, with or without seconds
func ParseTimeOfDay(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time of day %q", s)
}
