package hero

import (
	"context"
	"sort"
	"sync"

	"github.com/1is1/dota-stat-calculator/internal/dataset"
	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Heroes
// are plain value types, so map reads and writes copy them implicitly.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entities.Hero
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new empty in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]entities.Hero),
	}
}

// NewInMemoryFromSnapshot creates an in-memory repository seeded with every
// hero in a dataset snapshot.
func NewInMemoryFromSnapshot(snap *dataset.Snapshot) (*InMemoryRepository, error) {
	if snap == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	repo := NewInMemory()
	for _, h := range snap.HeroList() {
		repo.store[h.ID] = h
	}
	return repo, nil
}

// Get retrieves a hero by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*entities.Hero, error) {
	if id == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	h, exists := r.store[id]
	if !exists {
		return nil, errors.NotFoundf("hero %s not found", id)
	}
	return &h, nil
}

// List retrieves every stored hero sorted by name
func (r *InMemoryRepository) List(ctx context.Context) ([]entities.Hero, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	heroes := make([]entities.Hero, 0, len(r.store))
	for _, h := range r.store {
		heroes = append(heroes, h)
	}
	sortHeroes(heroes)
	return heroes, nil
}

// ListByIDs retrieves the named heroes in the order given
func (r *InMemoryRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Hero, error) {
	if len(ids) == 0 {
		return nil, errors.InvalidArgument("at least one hero ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	heroes := make([]entities.Hero, 0, len(ids))
	for _, id := range ids {
		h, exists := r.store[id]
		if !exists {
			return nil, errors.NotFoundf("hero %s not found", id)
		}
		heroes = append(heroes, h)
	}
	return heroes, nil
}

// Put stores or replaces a single hero
func (r *InMemoryRepository) Put(ctx context.Context, hero entities.Hero) error {
	if hero.ID == "" {
		return errors.InvalidArgument("hero ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[hero.ID] = hero
	return nil
}

// PutAll stores or replaces a batch of heroes
func (r *InMemoryRepository) PutAll(ctx context.Context, heroes []entities.Hero) error {
	for _, h := range heroes {
		if h.ID == "" {
			return errors.InvalidArgument("every hero needs an ID")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range heroes {
		r.store[h.ID] = h
	}
	return nil
}

// sortHeroes orders by name, then ID for heroes sharing a display name.
func sortHeroes(heroes []entities.Hero) {
	sort.Slice(heroes, func(i, j int) bool {
		if heroes[i].Name != heroes[j].Name {
			return heroes[i].Name < heroes[j].Name
		}
		return heroes[i].ID < heroes[j].ID
	})
}
