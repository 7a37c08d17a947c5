package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisAdapter_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	redisContainer, err := redis.Run(ctx,
		"redis:7-alpine",
	)
	if err != nil {
		t.Fatalf("failed to start redis: %v", err)
	}
	defer func() {
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis: %v", err)
		}
	}()

	endpoint, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The redis-container module returns a URL like redis://localhost:port
	// but redis.NewClient expects just the host:port.
	// We need to strip the prefix if it exists.
	addr := endpoint
	if len(addr) > 8 && addr[:8] == "redis://" {
		addr = addr[8:]
	}

	adapter := NewAdapter(addr)
	defer adapter.client.Close()

	t.Run("miss returns nil without error", func(t *testing.T) {
		data, err := adapter.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("set then get", func(t *testing.T) {
		payload := []byte(`{"id":"course-1","title":"Go 101"}`)
		assert.NoError(t, adapter.Set(ctx, "course-1", payload))

		data, err := adapter.Get(ctx, "course-1")
		assert.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("invalidate removes the entry", func(t *testing.T) {
		assert.NoError(t, adapter.Set(ctx, "course-2", []byte(`{}`)))
		assert.NoError(t, adapter.Invalidate(ctx, "course-2"))

		data, err := adapter.Get(ctx, "course-2")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})
}
