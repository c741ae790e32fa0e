package cache

import (
	"context"
	"time"
)

// NoopBoardCache keeps the board read path cache-free when Redis is not
// configured. Every Get is a miss.
type NoopBoardCache struct{}

func NewNoopBoardCache() *NoopBoardCache {
	return &NoopBoardCache{}
}

func (*NoopBoardCache) Get(ctx context.Context) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (*NoopBoardCache) Set(ctx context.Context, payload []byte, ttl time.Duration) error {
	return nil
}

func (*NoopBoardCache) Invalidate(ctx context.Context) error {
	return nil
}
