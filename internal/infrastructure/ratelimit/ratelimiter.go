package ratelimit

import (
	"context"
	"time"
)

// Rule allows Limit hits per fixed Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// Enabled reports whether the rule restricts anything.
func (r Rule) Enabled() bool {
	return r.Limit > 0 && r.Window > 0
}

// PerMinute builds a one-minute window rule.
func PerMinute(limit int) Rule {
	return Rule{Limit: limit, Window: time.Minute}
}

type Result struct {
	Allowed    bool
	Remaining  int
	ResetAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, rule Rule) (Result, error)
	Reset(ctx context.Context, key string) error
}

// evaluate turns the hit count of the current window into a decision.
func evaluate(count int64, rule Rule, ttl time.Duration) Result {
	if ttl <= 0 {
		ttl = rule.Window
	}
	remaining := rule.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Result{
		Allowed:    count <= int64(rule.Limit),
		Remaining:  remaining,
		ResetAfter: ttl,
	}
}

// NoopRateLimiter allows everything. It is used when Redis is not reachable.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(_ context.Context, _ string, rule Rule) (Result, error) {
	return Result{Allowed: true, Remaining: rule.Limit, ResetAfter: rule.Window}, nil
}

func (NoopRateLimiter) Reset(context.Context, string) error { return nil }
