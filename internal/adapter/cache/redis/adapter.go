package redis

import (
	"context"
	"errors"
	"time"

	"go-courses-app/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

type Adapter struct {
	client *redis.Client
}

func NewAdapter(addr string) *Adapter {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Adapter{client: rdb}
}

// Ensure Adapter implements ports.Cache
var _ ports.Cache = (*Adapter)(nil)

const (
	Prefix = "course:"
	TTL    = 24 * time.Hour
)

// Get returns the cached course payload, or nil on a miss.
func (a *Adapter) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := a.client.Get(ctx, Prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (a *Adapter) Set(ctx context.Context, id string, data []byte) error {
	return a.client.Set(ctx, Prefix+id, data, TTL).Err()
}

func (a *Adapter) Invalidate(ctx context.Context, id string) error {
	return a.client.Del(ctx, Prefix+id).Err()
}
