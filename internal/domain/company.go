package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Company is a borrower. Its holding account collects overpayments and can
// fund later repayments.
type Company struct {
	ID                    string
	Name                  string
	Identifier            string
	HoldingAccountBalance decimal.Decimal
	Version               int64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// Validate validates a new company.
func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCompanyNameRequired
	}
	if err := ValidateIdentifier(c.Identifier); err != nil {
		return err
	}
	if c.HoldingAccountBalance.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateHoldingDebit checks that amount can be drawn from the holding account.
func (c *Company) ValidateHoldingDebit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(c.HoldingAccountBalance) {
		return ErrInsufficientHoldingBalance
	}
	return nil
}

// ApplyHoldingMovement returns the holding balance after drawing debit and
// crediting credit.
func (c *Company) ApplyHoldingMovement(debit, credit decimal.Decimal) decimal.Decimal {
	return c.HoldingAccountBalance.Sub(debit).Add(credit)
}
