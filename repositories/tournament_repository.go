package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/courtside/tournament-engine/models"
)

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrTournamentExists   = errors.New("tournament already exists")
	// ErrVersionConflict signals a lost optimistic-concurrency race: the
	// tournament was updated since it was loaded. Reload and retry.
	ErrVersionConflict = errors.New("tournament was modified concurrently")
)

type ListTournamentsFilter struct {
	Format *models.Format
	Status *models.TournamentStatus
	Limit  int
	Offset int
}

// TournamentRepository is the persistence seam between the engine and its
// host. The engine never depends on how tournaments are stored; hosts bring
// their own durable implementation.
type TournamentRepository interface {
	Create(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	List(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error)
	Update(ctx context.Context, t *models.Tournament) error
	Delete(ctx context.Context, id string) error
}

// InMemoryTournamentRepository keeps tournaments in process memory with
// optimistic version checks, enforcing the at-most-one-concurrent-mutation
// contract the engine assumes. Values are deep-copied on the way in and
// out so callers can never alias stored state.
type InMemoryTournamentRepository struct {
	mu          sync.RWMutex
	tournaments map[string]*models.Tournament
}

func NewInMemoryTournamentRepository() *InMemoryTournamentRepository {
	return &InMemoryTournamentRepository{
		tournaments: make(map[string]*models.Tournament),
	}
}

func (r *InMemoryTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[t.ID]; ok {
		return ErrTournamentExists
	}
	stored := t.Clone()
	stored.Version = 1
	r.tournaments[t.ID] = stored
	t.Version = stored.Version
	return nil
}

func (r *InMemoryTournamentRepository) GetByID(ctx context.Context, id string) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.tournaments[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return stored.Clone(), nil
}

func (r *InMemoryTournamentRepository) List(ctx context.Context, filter ListTournamentsFilter) ([]*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Tournament, 0, len(r.tournaments))
	for _, t := range r.tournaments {
		if filter.Format != nil && t.Format != *filter.Format {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		out = append(out, t.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []*models.Tournament{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *InMemoryTournamentRepository) Update(ctx context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tournaments[t.ID]
	if !ok {
		return ErrTournamentNotFound
	}
	if stored.Version != t.Version {
		return ErrVersionConflict
	}
	updated := t.Clone()
	updated.Version = stored.Version + 1
	r.tournaments[t.ID] = updated
	t.Version = updated.Version
	return nil
}

func (r *InMemoryTournamentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tournaments[id]; !ok {
		return ErrTournamentNotFound
	}
	delete(r.tournaments, id)
	return nil
}
