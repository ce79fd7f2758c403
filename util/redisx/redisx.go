package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New connects to redis. A nil client is returned when addr is empty or
// the server is unreachable; callers treat nil as "cache disabled".
func New(ctx context.Context, addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	c := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		c.Close()
		return nil
	}
	return c
}
