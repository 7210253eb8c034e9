package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy is the shared bounded-retry definition used for every remote store
// call: a fixed attempt ceiling with exponential backoff between attempts,
// retrying only errors the Transient predicate accepts.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
	Transient func(error) bool
}

// Do runs op under the policy. A non-transient error aborts immediately; a
// transient one is retried until the attempt ceiling is reached, and the last
// error is returned once attempts are exhausted.
func (p Policy) Do(ctx context.Context, op func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	expo := backoff.NewExponentialBackOff()
	if p.BaseDelay > 0 {
		expo.InitialInterval = p.BaseDelay
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(expo, uint64(attempts-1)), ctx)

	return backoff.Retry(func() error {
		err := op(ctx)
		if err != nil && p.Transient != nil && !p.Transient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}
