package llm

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Backoff controls how the retry decorator spaces attempts.
type Backoff struct {
	Attempts int
	Base     time.Duration
	Max      time.Duration
}

// delay is Base doubled per attempt, capped at Max, with up to 20% jitter
// either way.
func (b Backoff) delay(attempt int) time.Duration {
	d := b.Base << attempt
	if d <= 0 || d > b.Max {
		d = b.Max
	}
	jitter := (rand.Float64()*0.4 - 0.2) * float64(d)
	return d + time.Duration(jitter)
}

type retrying struct {
	next    Provider
	backoff Backoff
	timeout time.Duration
}

// WithRetry retries temporary failures and gives a malformed reply one
// more chance. A positive timeout bounds the whole call, sleeps included.
func WithRetry(p Provider, b Backoff, timeout time.Duration) Provider {
	if b.Attempts < 1 {
		b.Attempts = 1
	}
	return &retrying{next: p, backoff: b, timeout: timeout}
}

func (r *retrying) Model() string { return r.next.Model() }

func (r *retrying) Complete(ctx context.Context, pr Prompt) (*Reply, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var err error
	reshaped := false
	for attempt := 0; attempt < r.backoff.Attempts; attempt++ {
		var reply *Reply
		reply, err = r.next.Complete(ctx, pr)
		if err == nil {
			return reply, nil
		}

		var le *Error
		if !errors.As(err, &le) {
			return nil, err
		}
		wait := r.backoff.delay(attempt)
		switch {
		case le.Kind == KindMalformed && !reshaped:
			reshaped = true
			wait = 0
		case !le.Temporary():
			return nil, err
		case le.RetryAfter > 0:
			wait = le.RetryAfter
		}
		if attempt == r.backoff.Attempts-1 {
			break
		}

		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return nil, err
}
