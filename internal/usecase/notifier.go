package usecase

import (
	"context"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/logger"
	"flightmate-service/pkg/metrics"
	"flightmate-service/templates"
)

// Notifier fans out match notifications after a flight is registered
type Notifier struct {
	flightRepo      repository.FlightRepository
	notificationLog repository.NotificationLogRepository
	messengerRepo   repository.MessengerRepository
	logger          logger.Logger
	metrics         *metrics.Metrics
}

// NewNotifier creates a new notifier
func NewNotifier(
	flightRepo repository.FlightRepository,
	notificationLog repository.NotificationLogRepository,
	messengerRepo repository.MessengerRepository,
	logger logger.Logger,
	metrics *metrics.Metrics,
) *Notifier {
	return &Notifier{
		flightRepo:      flightRepo,
		notificationLog: notificationLog,
		messengerRepo:   messengerRepo,
		logger:          logger,
		metrics:         metrics,
	}
}

// NotifyMatches finds every traveler matched by the new flight and sends each
// one a single DM. A user matched both exactly and by overlap via different
// flights is messaged once; the delivery log keeps repeat runs from
// re-messaging anyone. Delivery failures are logged and never surfaced to the
// request that registered the flight.
func (n *Notifier) NotifyMatches(ctx context.Context, flight *entity.Flight, owner *entity.User) {
	pool, err := n.flightRepo.PoolForMatching(ctx, owner.ID)
	if err != nil {
		n.metrics.ErrorsCount.WithLabelValues("notify_load_pool").Inc()
		n.logger.Error("Failed to load pool for notifications", "flightId", flight.ID, "error", err)
		return
	}

	result := computeMatches(flight, pool, owner.ID)

	message := templates.MatchNotification(owner.Name)

	recipients := make([]string, 0, len(result.SameFlight)+len(result.TimeOverlap))
	seen := make(map[string]bool)
	for _, m := range result.SameFlight {
		if !seen[m.SlackID] {
			seen[m.SlackID] = true
			recipients = append(recipients, m.SlackID)
		}
	}
	for _, m := range result.TimeOverlap {
		if !seen[m.SlackID] {
			seen[m.SlackID] = true
			recipients = append(recipients, m.SlackID)
		}
	}

	for _, slackID := range recipients {
		notified, err := n.notificationLog.WasNotified(ctx, flight.ID, slackID)
		if err != nil {
			n.metrics.ErrorsCount.WithLabelValues("notify_log_lookup").Inc()
			n.logger.Error("Failed to check notification log", "flightId", flight.ID, "recipient", slackID, "error", err)
			continue
		}
		if notified {
			continue
		}

		if err := n.messengerRepo.SendDirectMessage(ctx, slackID, message); err != nil {
			n.metrics.ErrorsCount.WithLabelValues("notify_send").Inc()
			n.logger.Error("Failed to send match notification", "flightId", flight.ID, "recipient", slackID, "error", err)
			continue
		}

		record := &entity.NotificationRecord{
			FlightID:         flight.ID,
			RecipientSlackID: slackID,
			Message:          message,
			Status:           "sent",
			SentAt:           time.Now().UTC(),
		}
		if err := n.notificationLog.Record(ctx, record); err != nil {
			n.metrics.ErrorsCount.WithLabelValues("notify_log_record").Inc()
			n.logger.Error("Failed to record notification", "flightId", flight.ID, "recipient", slackID, "error", err)
			continue
		}

		n.metrics.NotificationsSent.Inc()
		n.logger.Info("Sent match notification", "flightId", flight.ID, "recipient", slackID)
	}
}
