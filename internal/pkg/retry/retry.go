// Package retry runs ledger operations under a timeout and retries the
// failures that left nothing behind.
package retry

import (
	"context"
	"errors"
	"time"

	"ledger/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// Policy bounds one operation. MaxRetries counts attempts after the first.
type Policy struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Timeout:         10 * time.Second,
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
	}
}

// Write runs op and retries it only on errs.ErrTransient. A write that timed
// out may have reached the server and is returned as is.
func Write(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	return run(ctx, p, func(err error) bool { return errors.Is(err, errs.ErrTransient) }, op)
}

// Read runs op and retries it on transient failures and timeouts.
func Read(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	return run(ctx, p, errs.IsRetryable, op)
}

func run(ctx context.Context, p Policy, retryable func(error) bool, op func(ctx context.Context) error) error {
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	eb.MaxElapsedTime = 0

	var last error
	err := backoff.Retry(func() error {
		last = op(ctx)
		if last == nil || retryable(last) {
			return last
		}
		return backoff.Permanent(last)
	}, backoff.WithContext(backoff.WithMaxRetries(eb, p.MaxRetries), ctx))

	// Prefer the last attempt's error over the bare context error.
	if err != nil && ctx.Err() != nil && last != nil {
		return last
	}
	return err
}
