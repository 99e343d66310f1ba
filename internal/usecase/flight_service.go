package usecase

import (
	"context"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/logger"
	"flightmate-service/pkg/metrics"

	"github.com/google/uuid"
)

// FlightService handles flight registration and removal
type FlightService struct {
	flightRepo repository.FlightRepository
	notifier   *Notifier
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewFlightService creates a new flight service
func NewFlightService(flightRepo repository.FlightRepository, notifier *Notifier, logger logger.Logger, metrics *metrics.Metrics) *FlightService {
	return &FlightService{
		flightRepo: flightRepo,
		notifier:   notifier,
		logger:     logger,
		metrics:    metrics,
	}
}

// Register validates and stores a new flight for the owner, then kicks off
// match notifications in the background. The registration request does not
// wait on notification delivery.
func (s *FlightService) Register(ctx context.Context, owner *entity.User, in *entity.FlightCreate) (*entity.Flight, error) {
	flight, err := in.Flight(owner.ID)
	if err != nil {
		return nil, err
	}

	created, err := s.flightRepo.Insert(ctx, flight)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("flight_insert").Inc()
		return nil, err
	}
	s.metrics.FlightsRegistered.Inc()
	s.logger.Info("Flight registered",
		"flightId", created.ID,
		"userId", owner.ID.String(),
		"flightNumber", created.FlightNumber,
		"depAirport", created.DepAirport)

	if s.notifier != nil {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			s.notifier.NotifyMatches(notifyCtx, created, owner)
		}()
	}

	return created, nil
}

// Remove deletes a flight after verifying ownership
func (s *FlightService) Remove(ctx context.Context, flightID int64, userID uuid.UUID) error {
	owned, err := s.flightRepo.BelongsTo(ctx, flightID, userID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("flight_ownership").Inc()
		return err
	}
	if !owned {
		return ErrNotOwner
	}

	if err := s.flightRepo.Delete(ctx, flightID); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("flight_delete").Inc()
		return err
	}

	s.logger.Info("Flight deleted", "flightId", flightID, "userId", userID.String())
	return nil
}
