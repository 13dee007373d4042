// Package retry provides exponential backoff for outbound deliveries.
// The fetch and generation paths deliberately do not retry (they fall back
// immediately), so this is only used when publishing digests.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"
)

// Config holds retry configuration.
type Config struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultConfig returns a default retry configuration.
func DefaultConfig() Config {
	return Config{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
	}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. WithBackoff returns it
// immediately instead of spending further attempts on it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// WithBackoff executes operation, retrying with exponential backoff and
// jitter until it succeeds, returns a permanent error, or the attempt
// budget is spent.
func WithBackoff(ctx context.Context, config Config, operation func(context.Context) error) error {
	var err error
	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if err = operation(ctx); err == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return fmt.Errorf("non-retryable error: %w", perm.err)
		}

		if attempt == config.MaxRetries {
			break
		}

		delay := config.BaseDelay*time.Duration(1<<attempt) +
			time.Duration(rand.Int64N(int64(config.BaseDelay)))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("operation failed after %d attempts: %w", config.MaxRetries+1, err)
}

// HTTPStatusRetryable reports whether an HTTP status code is worth retrying:
// server errors and rate limiting only.
func HTTPStatusRetryable(statusCode int) bool {
	return statusCode >= 500 || statusCode == http.StatusTooManyRequests
}
