package repository

import (
	"context"

	"flightmate-service/internal/domain/entity"
)

// MessengerRepository defines the interface for the chat platform used to
// identify travelers and deliver match notifications
type MessengerRepository interface {
	GetIdentity(ctx context.Context, userToken string) (*entity.SlackIdentity, error)
	SendDirectMessage(ctx context.Context, slackID, text string) error
}
