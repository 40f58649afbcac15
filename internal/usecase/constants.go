package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyPending marks a key whose first request is still running
	IdempotencyPending = "processing"

	// DefaultSessionTTL is how long an idle settlement session is kept
	DefaultSessionTTL = 2 * time.Hour

	// DefaultContractCacheTTL is how long an active contract stays cached
	DefaultContractCacheTTL = 5 * time.Minute

	// DefaultListLimit is the page size when the caller does not pass one
	DefaultListLimit = 20

	// MaxListLimit caps caller supplied page sizes
	MaxListLimit = 100
)

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
