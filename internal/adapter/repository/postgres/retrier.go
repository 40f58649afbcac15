package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// SQLSTATE codes a settlement transaction may hit while other settlements
// hold the same loan rows.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
	pgErrLockNotAvailable     = "55P03"
)

// Retrier re-runs a whole transaction with exponential backoff when
// PostgreSQL aborts it for lock contention. Any other error is returned at
// once.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// RetrierOption configures a Retrier.
type RetrierOption func(*Retrier)

// WithMaxRetries caps the attempts after the first one.
func WithMaxRetries(n int) RetrierOption {
	return func(r *Retrier) {
		r.maxRetries = n
	}
}

// WithRetryMetrics counts retries by SQLSTATE.
func WithRetryMetrics(m *metrics.Metrics) RetrierOption {
	return func(r *Retrier) {
		r.metrics = m
	}
}

// NewRetrier creates a Retrier. Without options it retries three times,
// starting at 50ms and giving up after 10s.
func NewRetrier(opts ...RetrierOption) *Retrier {
	r := &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          log.With().Str("component", "retrier").Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retry runs operation until it succeeds, fails permanently, runs out of
// attempts or ctx ends.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	attempt := 0
	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		code, ok := retryableCode(err)
		if !ok || attempt >= r.maxRetries {
			return backoff.Permanent(err)
		}
		attempt++

		if r.metrics != nil {
			r.metrics.DBRetries.WithLabelValues(code).Inc()
		}
		r.logger.Warn().
			Err(err).
			Str("sqlstate", code).
			Int("attempt", attempt).
			Msg("transaction aborted by contention, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

func isRetryableError(err error) bool {
	_, ok := retryableCode(err)
	return ok
}

// retryableCode returns the SQLSTATE of err when it is worth retrying.
func retryableCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	switch pgErr.Code {
	case pgErrDeadlock, pgErrSerializationFailure, pgErrLockNotAvailable:
		return pgErr.Code, true
	}
	return "", false
}
