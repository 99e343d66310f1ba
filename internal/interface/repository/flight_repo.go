package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	UserID        string    `gorm:"column:user_id;type:uuid;index;not null"`
	FlightNumber  string    `gorm:"column:flight_number;size:10;not null"`
	Date          time.Time `gorm:"column:date;type:date;not null"`
	DepartureTime string    `gorm:"column:departure_time;type:time;not null"`
	DepAirport    string    `gorm:"column:dep_airport;size:5;not null"`
	HoursEarly    float64   `gorm:"column:hours_early;not null"`
	CreatedAt     time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "flights"
}

func (f *Flights) toEntity() (*entity.Flight, error) {
	userID, err := uuid.Parse(f.UserID)
	if err != nil {
		return nil, fmt.Errorf("flight %d: %w", f.ID, err)
	}
	depTime, err := entity.ParseTimeOfDay(f.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("flight %d: %w", f.ID, err)
	}
	return &entity.Flight{
		ID:            f.ID,
		UserID:        userID,
		FlightNumber:  f.FlightNumber,
		Date:          time.Date(f.Date.Year(), f.Date.Month(), f.Date.Day(), 0, 0, 0, 0, time.UTC),
		DepartureTime: depTime,
		DepAirport:    f.DepAirport,
		HoursEarly:    f.HoursEarly,
		CreatedAt:     f.CreatedAt,
	}, nil
}

// Insert stores a new flight and returns it with its assigned id
func (r *GormFlightRepository) Insert(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	row := Flights{
		UserID:        flight.UserID.String(),
		FlightNumber:  flight.FlightNumber,
		Date:          flight.Date,
		DepartureTime: flight.DepartureTime.Format("15:04:05"),
		DepAirport:    flight.DepAirport,
		HoursEarly:    flight.HoursEarly,
	}
	if result := r.db.WithContext(ctx).Create(&row); result.Error != nil {
		return nil, result.Error
	}
	return row.toEntity()
}

// GetByID finds a flight by id
func (r *GormFlightRepository) GetByID(ctx context.Context, id int64) (*entity.Flight, error) {
	var row Flights
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return row.toEntity()
}

// BelongsTo reports whether the flight exists and is owned by the given user
func (r *GormFlightRepository) BelongsTo(ctx context.Context, id int64, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Flights{}).
		Where("id = ? AND user_id = ?", id, userID.String()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a single flight
func (r *GormFlightRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Flights{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type poolRow struct {
	ID               int64     `gorm:"column:id"`
	UserID           string    `gorm:"column:user_id"`
	FlightNumber     string    `gorm:"column:flight_number"`
	Date             time.Time `gorm:"column:date"`
	DepartureTime    string    `gorm:"column:departure_time"`
	DepAirport       string    `gorm:"column:dep_airport"`
	HoursEarly       float64   `gorm:"column:hours_early"`
	OwnerSlackID     string    `gorm:"column:owner_slack_id"`
	OwnerName        string    `gorm:"column:owner_name"`
	OwnerLinkedinURL *string   `gorm:"column:owner_linkedin_url"`
}

func (r *poolRow) flight() (*entity.Flight, error) {
	row := Flights{
		ID:            r.ID,
		UserID:        r.UserID,
		FlightNumber:  r.FlightNumber,
		Date:          r.Date,
		DepartureTime: r.DepartureTime,
		DepAirport:    r.DepAirport,
		HoursEarly:    r.HoursEarly,
	}
	return row.toEntity()
}

// PoolForMatching loads all flights not owned by the given user, joined with
// their owners, in a single query so the matching engine sees one consistent
// snapshot
func (r *GormFlightRepository) PoolForMatching(ctx context.Context, excludeUser uuid.UUID) ([]entity.CandidateFlight, error) {
	var rows []poolRow
	result := r.db.WithContext(ctx).Table("flights").
		Select("flights.*, users.slack_id AS owner_slack_id, users.name AS owner_name, users.linkedin_url AS owner_linkedin_url").
		Joins("JOIN users ON users.id = flights.user_id").
		Where("flights.user_id <> ?", excludeUser.String()).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	pool := make([]entity.CandidateFlight, 0, len(rows))
	for i := range rows {
		flight, err := rows[i].flight()
		if err != nil {
			return nil, err
		}
		pool = append(pool, entity.CandidateFlight{
			Flight: *flight,
			Owner: entity.User{
				ID:          flight.UserID,
				SlackID:     rows[i].OwnerSlackID,
				Name:        rows[i].OwnerName,
				LinkedinURL: rows[i].OwnerLinkedinURL,
			},
		})
	}
	return pool, nil
}
