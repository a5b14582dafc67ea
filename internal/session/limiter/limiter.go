// Package limiter implements sliding-window rate limiting of login
// attempts backed by the attempt history, so the decision stays correct
// across multiple server instances.
package limiter

//go:generate mockgen -destination=../../mocks/mock_limiter.go -package=mocks github.com/lizTheDeveloper/multiverse-bazaar-sub001/internal/session/limiter Limiter

import (
	"context"
	"fmt"
	"time"
)

// AttemptCounter is the slice of the credential store the limiter reads.
// Both counters return the oldest matching attempt so the remaining
// window can be derived without a second round trip.
type AttemptCounter interface {
	CountAttemptsByEmail(ctx context.Context, email string, since time.Time) (int, time.Time, error)
	CountFailedAttemptsByOrigin(ctx context.Context, originAddress string, since time.Time) (int, time.Time, error)
}

// Limiter reports whether login is currently allowed and an optional
// retry-after duration.
type Limiter interface {
	Allow(ctx context.Context, email, originAddress string) (bool, time.Duration, error)
}

// WindowLimiter enforces two advisory caps over a trailing window: total
// attempts per email and failed attempts per origin address. The check is
// not atomically paired with the subsequent attempt write, so concurrent
// logins may transiently exceed the caps by a small margin.
type WindowLimiter struct {
	attempts          AttemptCounter
	window            time.Duration
	maxEmailAttempts  int
	maxOriginFailures int
}

func NewWindowLimiter(attempts AttemptCounter, window time.Duration, maxEmailAttempts, maxOriginFailures int) *WindowLimiter {
	return &WindowLimiter{
		attempts:          attempts,
		window:            window,
		maxEmailAttempts:  maxEmailAttempts,
		maxOriginFailures: maxOriginFailures,
	}
}

// Allow checks both windows. When a cap is hit it returns false together
// with the remaining portion of the window, clamped to at least a second.
func (l *WindowLimiter) Allow(ctx context.Context, email, originAddress string) (bool, time.Duration, error) {
	now := time.Now()
	since := now.Add(-l.window)

	emailCount, emailOldest, err := l.attempts.CountAttemptsByEmail(ctx, email, since)
	if err != nil {
		return false, 0, fmt.Errorf("email window query: %w", err)
	}
	if emailCount >= l.maxEmailAttempts {
		return false, l.remaining(now, emailOldest), nil
	}

	failCount, failOldest, err := l.attempts.CountFailedAttemptsByOrigin(ctx, originAddress, since)
	if err != nil {
		return false, 0, fmt.Errorf("origin window query: %w", err)
	}
	if failCount >= l.maxOriginFailures {
		return false, l.remaining(now, failOldest), nil
	}

	return true, 0, nil
}

// remaining is the time until the oldest in-window attempt slides out.
func (l *WindowLimiter) remaining(now, oldest time.Time) time.Duration {
	if oldest.IsZero() {
		return l.window
	}
	left := l.window - now.Sub(oldest)
	if left < time.Second {
		left = time.Second
	}
	return left
}
