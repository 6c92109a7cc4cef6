package store

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "scoring_api_store_retries_total",
	Help: "Store operations retried after a transient failure",
}, []string{"op"})

// RetryPolicy bounds retries of a single store call. After a transient
// failure the call is retried up to MaxAttempts additional times, sleeping
// attempt×Backoff before each retry (2s, 4s, 6s with the defaults). The
// policy is stateless; attempts are local to one call and not coordinated
// across callers.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// DefaultRetryPolicy mirrors the legacy store settings.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: 2 * time.Second}
}

func (p RetryPolicy) wait(attempt int) {
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(time.Duration(attempt) * p.Backoff)
}

// retry runs fn, retrying per policy while transient reports true for the
// returned error. The last error propagates once attempts are exhausted.
func retry[T any](p RetryPolicy, log *slog.Logger, op string, transient func(error) bool, fn func() (T, error)) (T, error) {
	var attempt int
	for {
		v, err := fn()
		if err == nil || !transient(err) {
			return v, err
		}
		attempt++
		if attempt > p.MaxAttempts {
			return v, err
		}
		retriesTotal.WithLabelValues(op).Inc()
		backoff := time.Duration(attempt) * p.Backoff
		log.Error("store call failed, retrying",
			"op", op, "attempt", attempt, "backoff", backoff, "err", err)
		p.wait(attempt)
	}
}
