// Package testutils provides shared test helpers: an in-process Redis server
// and hero fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/1is1/dota-stat-calculator/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client bound
// to it. Call cleanup to stop the server. Every test gets a fresh server, so
// there is no shared state to flush between tests.
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		mr.Close()
	}

	return client, cleanup
}
