package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Rule allows Limit calls per Window for one key.
type Rule struct {
	Limit  int
	Window time.Duration
}

type bucket struct {
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	last       time.Time
}

// Limiter is an in-process token bucket per key. Keys without a rule are always allowed.
type Limiter struct {
	mu    sync.Mutex
	m     map[string]*bucket
	rules map[string]Rule
	now   func() time.Time
}

func New(rules map[string]Rule) *Limiter {
	return &Limiter{m: make(map[string]*bucket), rules: rules, now: time.Now}
}

// Allow consumes one token for key. It never fails; the error is there to satisfy QuotaGuard.
func (l *Limiter) Allow(_ context.Context, key string) (bool, error) {
	rule, ok := l.rules[key]
	if !ok || rule.Limit <= 0 || rule.Window <= 0 {
		return true, nil
	}
	capacity := float64(rule.Limit)
	refill := capacity / rule.Window.Seconds()

	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: capacity, capacity: capacity, refillRate: refill, last: now}
		l.m[key] = b
	}
	// refill
	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * b.refillRate
		if b.tokens > b.capacity {
			b.tokens = b.capacity
		}
		b.last = now
	}
	if b.tokens >= 1 {
		b.tokens--
		return true, nil
	}
	return false, nil
}
