package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
	ErrAmountTooSmall  = errors.New("amount below minimum allowed")
	ErrInvalidIDFormat = errors.New("invalid ID format")
	ErrNoteTooLong     = errors.New("note exceeds maximum length")
)

// Validation constants
const (
	MaxIdentifierLength = 64
	MaxNoteLength       = 2000
	MaxPaymentAmount    = "1000000000" // 1 billion
	MinPaymentAmount    = "0.01"
)

// ValidateIdentifier validates a human-facing identifier such as a loan number.
func ValidateIdentifier(identifier string) error {
	identifier = strings.TrimSpace(identifier)

	if identifier == "" {
		return fmt.Errorf("%w: identifier cannot be empty", ErrInvalidIDFormat)
	}

	if len(identifier) > MaxIdentifierLength {
		return fmt.Errorf("%w: identifier exceeds %d characters", ErrInvalidIDFormat, MaxIdentifierLength)
	}

	return nil
}

// ValidatePaymentAmount validates a requested payment amount.
func ValidatePaymentAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	minAmount, _ := decimal.NewFromString(MinPaymentAmount)
	if amount.LessThan(minAmount) {
		return fmt.Errorf("%w: minimum amount is %s", ErrAmountTooSmall, MinPaymentAmount)
	}

	maxAmount, _ := decimal.NewFromString(MaxPaymentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxPaymentAmount)
	}

	return nil
}

// ValidateNote validates a free-text note.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		return fmt.Errorf("%w: %d characters", ErrNoteTooLong, MaxNoteLength)
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
