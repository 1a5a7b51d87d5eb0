package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collabhub/internal/core/domain"
)

// Options tunes the bounded waits of the use cases. Zero values are
// replaced with the defaults below.
type Options struct {
	// StoreTimeout caps every store call, including a whole decision
	// transaction.
	StoreTimeout time.Duration
	// NotifyTimeout caps the hand-off of one notification across all of
	// its attempts.
	NotifyTimeout time.Duration
	// NotifyAttempts is the number of delivery attempts before the
	// notification is recorded as a delivery gap.
	NotifyAttempts int
	// NotifyBackoff is the base delay between attempts; attempt n waits
	// n*NotifyBackoff.
	NotifyBackoff time.Duration
	// Now returns the current time. Tests override it.
	Now func() time.Time
}

const (
	defaultStoreTimeout   = 3 * time.Second
	defaultNotifyTimeout  = 2 * time.Second
	defaultNotifyAttempts = 3
	defaultNotifyBackoff  = 100 * time.Millisecond
)

func (o Options) withDefaults() Options {
	if o.StoreTimeout <= 0 {
		o.StoreTimeout = defaultStoreTimeout
	}
	if o.NotifyTimeout <= 0 {
		o.NotifyTimeout = defaultNotifyTimeout
	}
	if o.NotifyAttempts <= 0 {
		o.NotifyAttempts = defaultNotifyAttempts
	}
	if o.NotifyBackoff <= 0 {
		o.NotifyBackoff = defaultNotifyBackoff
	}
	if o.Now == nil {
		o.Now = func() time.Time { return time.Now().UTC() }
	}
	return o
}

// call runs fn under the store timeout and normalizes its error.
func call[T any](ctx context.Context, timeout time.Duration, op string, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	v, err := fn(ctx)
	return v, storeErr(op, err)
}

// storeErr keeps domain errors as they are, turns deadline expiry into a
// transient error and annotates everything else with op.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case domain.KindOf(err) != "":
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.Transient(op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
