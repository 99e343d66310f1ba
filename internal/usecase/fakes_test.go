package usecase

import (
	"context"
	"sync"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/metrics"

	"github.com/google/uuid"
)

// metrics are registered globally, so the package's tests share one set
var testMetrics = metrics.NewMetrics("flightmate_usecase_test")

type fakeFlightRepo struct {
	mu      sync.Mutex
	nextID  int64
	flights map[int64]*entity.Flight
	pool    []entity.CandidateFlight
	poolErr error
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{
		nextID:  1,
		flights: make(map[int64]*entity.Flight),
	}
}

func (f *fakeFlightRepo) Insert(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *flight
	stored.ID = f.nextID
	f.nextID++
	f.flights[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeFlightRepo) GetByID(ctx context.Context, id int64) (*entity.Flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	flight, ok := f.flights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return flight, nil
}

func (f *fakeFlightRepo) BelongsTo(ctx context.Context, id int64, userID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	flight, ok := f.flights[id]
	return ok && flight.UserID == userID, nil
}

func (f *fakeFlightRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.flights[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.flights, id)
	return nil
}

func (f *fakeFlightRepo) PoolForMatching(ctx context.Context, excludeUser uuid.UUID) ([]entity.CandidateFlight, error) {
	if f.poolErr != nil {
		return nil, f.poolErr
	}
	return f.pool, nil
}

type fakeNotificationLog struct {
	mu      sync.Mutex
	records []*entity.NotificationRecord
}

func (l *fakeNotificationLog) WasNotified(ctx context.Context, flightID int64, slackID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.records {
		if r.FlightID == flightID && r.RecipientSlackID == slackID {
			return true, nil
		}
	}
	return false, nil
}

func (l *fakeNotificationLog) Record(ctx context.Context, record *entity.NotificationRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
	return nil
}

type fakeMessenger struct {
	mu       sync.Mutex
	sent     []string
	identity *entity.SlackIdentity
	sendErr  error
}

func (m *fakeMessenger) GetIdentity(ctx context.Context, userToken string) (*entity.SlackIdentity, error) {
	return m.identity, nil
}

func (m *fakeMessenger) SendDirectMessage(ctx context.Context, slackID, text string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, slackID)
	return nil
}
