package rest

import (
	"context"

	"flightmate-service/internal/domain/entity"
	"flightmate-service/internal/domain/repository"
	"flightmate-service/pkg/metrics"

	"github.com/google/uuid"
)

var testMetrics = metrics.NewMetrics("flightmate_rest_test")

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[uuid.UUID]*entity.User)
	for _, u := range users {
		m[u.ID] = u
	}
	return &fakeUserRepo{users: m}
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetBySlackID(ctx context.Context, slackID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.SlackID == slackID {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindOrCreate(ctx context.Context, slackID, name string) (*entity.User, error) {
	if u, err := f.GetBySlackID(ctx, slackID); err == nil {
		return u, nil
	}
	u := &entity.User{ID: uuid.New(), SlackID: slackID, Name: name}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateLinkedin(ctx context.Context, id uuid.UUID, linkedinURL string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.LinkedinURL = &linkedinURL
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeFlightRepo struct {
	nextID  int64
	flights map[int64]*entity.Flight
	pool    []entity.CandidateFlight
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{
		nextID:  1,
		flights: make(map[int64]*entity.Flight),
	}
}

func (f *fakeFlightRepo) Insert(ctx context.Context, flight *entity.Flight) (*entity.Flight, error) {
	stored := *flight
	stored.ID = f.nextID
	f.nextID++
	f.flights[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeFlightRepo) GetByID(ctx context.Context, id int64) (*entity.Flight, error) {
	flight, ok := f.flights[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return flight, nil
}

func (f *fakeFlightRepo) BelongsTo(ctx context.Context, id int64, userID uuid.UUID) (bool, error) {
	flight, ok := f.flights[id]
	return ok && flight.UserID == userID, nil
}

func (f *fakeFlightRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.flights[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.flights, id)
	return nil
}

func (f *fakeFlightRepo) PoolForMatching(ctx context.Context, excludeUser uuid.UUID) ([]entity.CandidateFlight, error) {
	return f.pool, nil
}
