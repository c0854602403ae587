package llm

import (
	"context"
	"errors"
	"time"
)

// Retry repeats failed calls inside a total time budget. A child is
// waiting for the line, so the budget is short and a late answer is
// dropped. Rate limits and outages are retried; a malformed reply gets
// one more try; a truncated one none.
type Retry struct {
	inner    Provider
	attempts int
	pause    time.Duration
	budget   time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps p. attempts counts the first call; pause doubles after
// each failure; a zero budget means no deadline of its own.
func WithRetry(p Provider, attempts int, pause, budget time.Duration) *Retry {
	return &Retry{
		inner:    p,
		attempts: max(attempts, 1),
		pause:    pause,
		budget:   budget,
		sleep:    sleepCtx,
	}
}

func (r *Retry) Line(ctx context.Context, p Prompt) (Reply, error) {
	if r.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.budget)
		defer cancel()
	}

	retriedMalformed := false
	for n := 1; ; n++ {
		reply, err := r.inner.Line(ctx, p)
		if err == nil {
			return reply, nil
		}
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return reply, err
		}
		switch KindOf(err) {
		case KindTruncated:
			return reply, err
		case KindMalformed:
			if retriedMalformed {
				return reply, err
			}
			retriedMalformed = true
		}
		if n >= r.attempts {
			return reply, err
		}
		if r.sleep(ctx, r.wait(n, err)) != nil {
			return reply, err
		}
	}
}

// wait is the pause before attempt n+1.
func (r *Retry) wait(n int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimited && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	return r.pause << (n - 1)
}

func (r *Retry) ModelID() string { return r.inner.ModelID() }

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
