package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/logger"
	"flightmate-service/pkg/metrics"

	"github.com/google/uuid"
)

// ErrNotOwner is returned when a user operates on a flight they do not own
var ErrNotOwner = errors.New("flight not owned by user")

// MatchService answers match queries for a reference flight
type MatchService struct {
	flightRepo repository.FlightRepository
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewMatchService creates a new match service
func NewMatchService(flightRepo repository.FlightRepository, logger logger.Logger, metrics *metrics.Metrics) *MatchService {
	return &MatchService{
		flightRepo: flightRepo,
		logger:     logger,
		metrics:    metrics,
	}
}

// MatchesForFlight finds exact and overlap matches for a flight owned by the
// given user. The flight pool is loaded once as a snapshot and both finders
// run over it concurrently; neither mutates it.
func (s *MatchService) MatchesForFlight(ctx context.Context, flightID int64, userID uuid.UUID) (*entity.MatchResult, error) {
	owned, err := s.flightRepo.BelongsTo(ctx, flightID, userID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("match_ownership").Inc()
		return nil, err
	}
	if !owned {
		return nil, ErrNotOwner
	}

	ref, err := s.flightRepo.GetByID(ctx, flightID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("match_load_flight").Inc()
		return nil, err
	}

	pool, err := s.flightRepo.PoolForMatching(ctx, userID)
	if err != nil {
		s.metrics.ErrorsCount.WithLabelValues("match_load_pool").Inc()
		return nil, err
	}

	start := time.Now()
	result := computeMatches(ref, pool, userID)
	s.metrics.MatchComputeTime.Observe(time.Since(start).Seconds())
	s.metrics.MatchRequests.Inc()

	s.logger.Info("Computed matches",
		"flightId", flightID,
		"poolSize", len(pool),
		"sameFlight", len(result.SameFlight),
		"timeOverlap", len(result.TimeOverlap))

	return result, nil
}

// computeMatches runs both finders over one snapshot
func computeMatches(ref *entity.Flight, pool []entity.CandidateFlight, excludeUser uuid.UUID) *entity.MatchResult {
	result := &entity.MatchResult{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		result.SameFlight = FindExact(ref, pool, excludeUser)
	}()
	go func() {
		defer wg.Done()
		result.TimeOverlap = FindOverlaps(ref, pool, excludeUser)
	}()
	wg.Wait()

	return result
}
