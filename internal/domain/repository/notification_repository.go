package repository

import (
	"context"

	"flightmate-service/internal/domain/entity"
)

// NotificationLogRepository defines the interface for the notification
// delivery log
type NotificationLogRepository interface {
	WasNotified(ctx context.Context, flightID int64, slackID string) (bool, error)
	Record(ctx context.Context, record *entity.NotificationRecord) error
}
