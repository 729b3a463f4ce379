package llm

import "context"

// DefaultMaxAttempts is the fixed attempt bound used for question generation.
const DefaultMaxAttempts = 3

// Retry calls fn until it succeeds or maxAttempts calls have failed.
// Every error counts as a failed attempt and there is no wait between
// attempts. It returns the value of the first success, the number of
// attempts made, and the last error when all of them fail.
//
// A cancelled context stops the loop before the next attempt; the context
// error is then returned. fn receives a context carrying its 1-based
// attempt number (see AttemptFrom).
func Retry[T any](ctx context.Context, maxAttempts int, fn func(ctx context.Context) (T, error)) (T, int, error) {
	var zero T
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, attempt - 1, err
		}

		v, err := fn(withAttempt(ctx, attempt))
		if err == nil {
			return v, attempt, nil
		}
		lastErr = err
	}

	return zero, maxAttempts, lastErr
}
