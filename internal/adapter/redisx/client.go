package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/niksmo/storefront/pkg/retry"
	"github.com/redis/go-redis/v9"
)

const KeySession = "storefront:session:%s"

// New dials addr and waits until the server answers PING.
func New(ctx context.Context, addr string) (*redis.Client, error) {
	const op = "redisx.New"

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	err := retry.Do(ctx, retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.ExponentialBackoff(200 * time.Millisecond),
	}, func() error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rdb, nil
}

func sessionKey(token string) string {
	return fmt.Sprintf(KeySession, token)
}
