// Package retry is a context-aware retry engine with exponential backoff.
// It lives outside the report pipeline by design: nothing inside the
// pipeline retries silently, so retry policy stays with the caller.
package retry

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Config controls retry behaviour.
type Config struct {
	// MaxAttempts is the total number of calls, including the first.
	MaxAttempts int
	// InitDelay is the pause before the first retry; it doubles each
	// attempt up to MaxDelay.
	InitDelay time.Duration
	MaxDelay  time.Duration
	// Jitter adds up to ±25% randomness to each delay.
	Jitter bool
}

// DefaultConfig retries 3 times with exponential backoff from 500ms to 10s.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		InitDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Jitter:      true,
	}
}

// StopError wraps a permanent error so Do returns it without retrying.
type StopError struct {
	Err error
}

func (e *StopError) Error() string { return e.Err.Error() }
func (e *StopError) Unwrap() error { return e.Err }

// Stop marks err permanent.
func Stop(err error) error { return &StopError{Err: err} }

// sleeper abstracts the wait so tests run without real delays.
type sleeper interface {
	sleep(ctx context.Context, d time.Duration) error
}

type realSleeper struct{}

func (realSleeper) sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Do calls fn until it succeeds, the attempts are exhausted, fn returns a
// StopError, or the context ends. The last error is returned on failure.
func Do(ctx context.Context, cfg Config, fn func() error) error {
	return doWithSleeper(ctx, cfg, fn, realSleeper{})
}

func doWithSleeper(ctx context.Context, cfg Config, fn func() error, s sleeper) error {
	if cfg.MaxAttempts <= 0 {
		return nil
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var stop *StopError
		if errors.As(lastErr, &stop) {
			return stop.Err
		}

		if attempt < cfg.MaxAttempts-1 {
			if err := s.sleep(ctx, delayFor(cfg, attempt)); err != nil {
				return err
			}
		}
	}
	return lastErr
}

func delayFor(cfg Config, attempt int) time.Duration {
	delay := cfg.InitDelay << attempt
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	if cfg.Jitter && delay > 0 {
		quarter := int64(delay) / 4
		if quarter > 0 {
			j := time.Duration(rand.Int64N(quarter))
			if rand.IntN(2) == 0 {
				delay += j
			} else {
				delay -= j
			}
		}
	}
	return delay
}
