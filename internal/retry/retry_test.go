package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("transient")
var errPermanent = errors.New("permanent")

func policy(attempts int) Policy {
	return Policy{
		Attempts:  attempts,
		BaseDelay: time.Millisecond,
		Transient: func(err error) bool { return errors.Is(err, errTransient) },
	}
}

func TestDo_TransientTwiceThenSuccess(t *testing.T) {
	calls := 0
	err := policy(3).Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	if err != nil {
		t.Fatalf("Do() error = %v, expected success on the third attempt", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, expected 3", calls)
	}
}

func TestDo_PermanentNotRetried(t *testing.T) {
	calls := 0
	err := policy(3).Do(context.Background(), func(context.Context) error {
		calls++
		return errPermanent
	})

	if !errors.Is(err, errPermanent) {
		t.Fatalf("Do() error = %v, expected the permanent error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, a permanent error must abort immediately", calls)
	}
}

func TestDo_AttemptCeiling(t *testing.T) {
	calls := 0
	err := policy(3).Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})

	if !errors.Is(err, errTransient) {
		t.Fatalf("Do() error = %v, expected the last transient error", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, expected the attempt ceiling", calls)
	}
}

func TestDo_SuccessFirstTry(t *testing.T) {
	calls := 0
	if err := policy(3).Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	}); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_ = policy(0).Do(context.Background(), func(context.Context) error {
		calls++
		return errTransient
	})
	if calls != 1 {
		t.Errorf("calls = %d, a degenerate policy still runs the operation once", calls)
	}
}
