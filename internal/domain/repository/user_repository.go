package repository

import (
	"context"

	"flightmate-service/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetBySlackID(ctx context.Context, slackID string) (*entity.User, error)
	FindOrCreate(ctx context.Context, slackID, name string) (*entity.User, error)
	UpdateLinkedin(ctx context.Context, id uuid.UUID, linkedinURL string) (*entity.User, error)
	// Delete removes the user and cascades to all flights they own
	Delete(ctx context.Context, id uuid.UUID) error
}
