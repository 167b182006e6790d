// Package redis wraps go-redis client construction behind a small interface
// so storage code can run against a real server or miniredis unchanged.
package redis

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes connection pooling. The zero value defers to the go-redis
// defaults, which are fine for a single-instance deployment.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
}

// NewClient creates a client for a single Redis instance. go-redis connects
// lazily; the first command dials.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	return redis.NewClient(&redis.Options{
		Addr:            endpoint,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}), nil
}
