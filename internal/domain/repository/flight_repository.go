package repository

import (
	"context"

	"flightmate-service/internal/domain/entity"

	"github.com/google/uuid"
)

// FlightRepository defines the interface for flight operations
type FlightRepository interface {
	Insert(ctx context.Context, flight *entity.Flight) (*entity.Flight, error)
	GetByID(ctx context.Context, id int64) (*entity.Flight, error)
	BelongsTo(ctx context.Context, id int64, userID uuid.UUID) (bool, error)
	Delete(ctx context.Context, id int64) error
	// PoolForMatching returns a snapshot of all flights not owned by the
	// given user, each joined with its owner's profile
	PoolForMatching(ctx context.Context, excludeUser uuid.UUID) ([]entity.CandidateFlight, error)
}
