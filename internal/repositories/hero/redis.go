package hero

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/1is1/dota-stat-calculator/internal/entities"
	"github.com/1is1/dota-stat-calculator/internal/errors"
	redisclient "github.com/1is1/dota-stat-calculator/internal/redis"
)

const (
	// Key pattern: hero:data:{hero_id}
	heroKeyPrefix = "hero:data:"
	// Set of every stored hero ID
	heroIndexKey = "hero:index"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// NewRedisRepository creates a new Redis-backed hero repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Get retrieves a hero by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*entities.Hero, error) {
	if id == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	heroJSON, err := r.client.Get(ctx, r.buildKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("hero %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get hero %s from Redis", id)
	}

	var hero entities.Hero
	if err := json.Unmarshal([]byte(heroJSON), &hero); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal hero %s", id)
	}
	return &hero, nil
}

// List retrieves every indexed hero sorted by name. IDs in the index whose
// data key has vanished are dropped from the index rather than failing the
// whole read.
func (r *redisRepository) List(ctx context.Context) ([]entities.Hero, error) {
	ids, err := r.client.SMembers(ctx, heroIndexKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hero index from Redis")
	}
	if len(ids) == 0 {
		return []entities.Hero{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.buildKey(id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get heroes from Redis")
	}

	heroes := make([]entities.Hero, 0, len(vals))
	for i, val := range vals {
		raw, ok := val.(string)
		if !ok {
			slog.WarnContext(ctx, "hero missing, cleaning up index",
				"hero_id", ids[i])
			r.client.SRem(ctx, heroIndexKey, ids[i])
			continue
		}

		var hero entities.Hero
		if err := json.Unmarshal([]byte(raw), &hero); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal hero %s", ids[i])
		}
		heroes = append(heroes, hero)
	}

	sortHeroes(heroes)
	return heroes, nil
}

// ListByIDs retrieves the named heroes in the order given
func (r *redisRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Hero, error) {
	if len(ids) == 0 {
		return nil, errors.InvalidArgument("at least one hero ID is required")
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.buildKey(id)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get heroes from Redis")
	}

	heroes := make([]entities.Hero, 0, len(ids))
	for i, val := range vals {
		raw, ok := val.(string)
		if !ok {
			return nil, errors.NotFoundf("hero %s not found", ids[i])
		}

		var hero entities.Hero
		if err := json.Unmarshal([]byte(raw), &hero); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal hero %s", ids[i])
		}
		heroes = append(heroes, hero)
	}
	return heroes, nil
}

// Put stores or replaces a single hero and indexes its ID
func (r *redisRepository) Put(ctx context.Context, hero entities.Hero) error {
	if hero.ID == "" {
		return errors.InvalidArgument("hero ID is required")
	}

	heroJSON, err := json.Marshal(hero)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal hero %s", hero.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.buildKey(hero.ID), heroJSON, 0)
	pipe.SAdd(ctx, heroIndexKey, hero.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to store hero %s in Redis", hero.ID)
	}
	return nil
}

// PutAll stores or replaces a batch of heroes in one pipeline round trip
func (r *redisRepository) PutAll(ctx context.Context, heroes []entities.Hero) error {
	if len(heroes) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	ids := make([]interface{}, 0, len(heroes))
	for _, h := range heroes {
		if h.ID == "" {
			return errors.InvalidArgument("every hero needs an ID")
		}

		heroJSON, err := json.Marshal(h)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal hero %s", h.ID)
		}
		pipe.Set(ctx, r.buildKey(h.ID), heroJSON, 0)
		ids = append(ids, h.ID)
	}
	pipe.SAdd(ctx, heroIndexKey, ids...)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to store heroes in Redis")
	}
	return nil
}

func (r *redisRepository) buildKey(id string) string {
	return heroKeyPrefix + id
}
