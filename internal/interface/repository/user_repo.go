package repository

import (
	"context"
	"errors"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements the UserRepository interface
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Users GORM model for database mapping
type Users struct {
	ID          string  `gorm:"primaryKey;type:uuid"`
	SlackID     string  `gorm:"column:slack_id;size:20;uniqueIndex;not null"`
	Name        string  `gorm:"column:name;not null"`
	LinkedinURL *string `gorm:"column:linkedin_url"`
	CreatedAt   time.Time
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "users"
}

func (u *Users) toEntity() (*entity.User, error) {
	id, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:          id,
		SlackID:     u.SlackID,
		Name:        u.Name,
		LinkedinURL: u.LinkedinURL,
		CreatedAt:   u.CreatedAt,
	}, nil
}

// GetByID finds a user by internal id
func (r *GormUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user Users
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return user.toEntity()
}

// GetBySlackID finds a user by their Slack id
func (r *GormUserRepository) GetBySlackID(ctx context.Context, slackID string) (*entity.User, error) {
	var user Users
	result := r.db.WithContext(ctx).Where("slack_id = ?", slackID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return user.toEntity()
}

// FindOrCreate returns the user with the given Slack id, creating them on
// first sighting
func (r *GormUserRepository) FindOrCreate(ctx context.Context, slackID, name string) (*entity.User, error) {
	existing, err := r.GetBySlackID(ctx, slackID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := Users{
		ID:      uuid.NewString(),
		SlackID: slackID,
		Name:    name,
	}
	if result := r.db.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}
	return user.toEntity()
}

// UpdateLinkedin sets the LinkedIn URL for a user and returns the updated record
func (r *GormUserRepository) UpdateLinkedin(ctx context.Context, id uuid.UUID, linkedinURL string) (*entity.User, error) {
	result := r.db.WithContext(ctx).Model(&Users{}).
		Where("id = ?", id.String()).
		Update("linkedin_url", linkedinURL)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user and all their flights in one transaction
func (r *GormUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ?", id.String()).Delete(&Flights{}); result.Error != nil {
			return result.Error
		}
		result := tx.Where("id = ?", id.String()).Delete(&Users{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrNotFound
		}
		return nil
	})
}
