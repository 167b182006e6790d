// Package hero provides storage for scraped hero records.
package hero

import (
	"context"

	"github.com/1is1/dota-stat-calculator/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=heromock github.com/1is1/dota-stat-calculator/internal/repositories/hero Repository

// Repository stores hero base-stat records. Heroes are written in bulk by
// the scrape pipeline and treated as read-only by everything downstream.
type Repository interface {
	// Get retrieves a hero by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the hero doesn't exist
	Get(ctx context.Context, id string) (*entities.Hero, error)

	// List retrieves every stored hero sorted by name
	List(ctx context.Context) ([]entities.Hero, error)

	// ListByIDs retrieves the named heroes in the order given
	// Returns errors.InvalidArgument for an empty ID list
	// Returns errors.NotFound naming the first missing hero
	ListByIDs(ctx context.Context, ids []string) ([]entities.Hero, error)

	// Put stores or replaces a single hero
	// Returns errors.InvalidArgument when the hero has no ID
	Put(ctx context.Context, hero entities.Hero) error

	// PutAll stores or replaces a batch of heroes in one round trip
	PutAll(ctx context.Context, heroes []entities.Hero) error
}
