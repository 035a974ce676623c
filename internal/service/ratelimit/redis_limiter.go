package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counter increments key and refreshes its TTL. Keys embed the window index so a refreshed TTL never extends a window.
type counter interface {
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RedisLimiter is a fixed-window counter shared by every replica.
type RedisLimiter struct {
	counter counter
	prefix  string
	rules   map[string]Rule
	now     func() time.Time
}

// NewRedisLimiter pings client and returns a limiter storing counters under prefix.
func NewRedisLimiter(client *redis.Client, prefix string, rules map[string]Rule) (*RedisLimiter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisLimiter(redisCounter{client}, prefix, rules), nil
}

func newRedisLimiter(c counter, prefix string, rules map[string]Rule) *RedisLimiter {
	return &RedisLimiter{counter: c, prefix: prefix, rules: rules, now: time.Now}
}

// Allow counts the call in the current window. A Redis failure is returned as
// an error and the call is not allowed.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	rule, ok := l.rules[key]
	if !ok || rule.Limit <= 0 || rule.Window <= 0 {
		return true, nil
	}

	window := l.now().UnixNano() / int64(rule.Window)
	k := fmt.Sprintf("%s:%s:%d", l.prefix, key, window)

	n, err := l.counter.IncrWithTTL(ctx, k, rule.Window)
	if err != nil {
		return false, fmt.Errorf("quota %s: %w", key, err)
	}
	return n <= int64(rule.Limit), nil
}

type redisCounter struct {
	client *redis.Client
}

func (r redisCounter) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		p.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
