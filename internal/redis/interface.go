package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface the repositories depend on. It aliases
// redis.UniversalClient, so the single-instance client and the miniredis
// test client satisfy it interchangeably.
type Client interface {
	redis.UniversalClient
}
