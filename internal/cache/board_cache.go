package cache

import (
	"context"
	"errors"
	"time"
)

// BoardCache holds the serialized board snapshot between reads. Mutation
// paths call Invalidate so a stale board never outlives a write by more
// than one request.
type BoardCache interface {
	Get(ctx context.Context) ([]byte, error)

	Set(ctx context.Context, payload []byte, ttl time.Duration) error

	Invalidate(ctx context.Context) error
}

var ErrCacheMiss = errors.New("board cache miss")
