package httpadapter

import (
	"context"
	"time"

	"collabhub/internal/core/domain"
)

const retryBackoff = 50 * time.Millisecond

// retry runs fn until it succeeds, fails with a non-transient error or
// retries extra attempts have been made.
func retry[T any](ctx context.Context, retries int, fn func(context.Context) (T, error)) (T, error) {
	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		if err == nil || !domain.IsTransient(err) || attempt >= retries {
			return v, err
		}
		if !sleep(ctx, time.Duration(attempt+1)*retryBackoff) {
			return v, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
