package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Allocation is the part of a payment applied to one loan.
// Amount always equals ToPrincipal + ToInterest + ToFees.
type Allocation struct {
	ToPrincipal decimal.Decimal
	ToInterest  decimal.Decimal
	ToFees      decimal.Decimal
	Amount      decimal.Decimal
}

// NewAllocation builds an allocation with Amount set to the component sum.
func NewAllocation(principal, interest, fees decimal.Decimal) Allocation {
	a := Allocation{ToPrincipal: principal, ToInterest: interest, ToFees: fees}
	a.Amount = a.Sum()
	return a
}

// Sum returns ToPrincipal + ToInterest + ToFees.
func (a Allocation) Sum() decimal.Decimal {
	return a.ToPrincipal.Add(a.ToInterest).Add(a.ToFees)
}

// Add returns the component-wise sum of a and b.
func (a Allocation) Add(b Allocation) Allocation {
	return NewAllocation(
		a.ToPrincipal.Add(b.ToPrincipal),
		a.ToInterest.Add(b.ToInterest),
		a.ToFees.Add(b.ToFees),
	)
}

// Validate checks that the components are non-negative and add up to Amount.
func (a Allocation) Validate() error {
	if a.ToPrincipal.IsNegative() || a.ToInterest.IsNegative() || a.ToFees.IsNegative() {
		return ErrNegativeAllocation
	}
	if !a.Amount.Equal(a.Sum()) {
		return ErrAllocationMismatch
	}
	return nil
}

// LoanTransactionInput is one loan's share of a settled repayment.
type LoanTransactionInput struct {
	LoanID     string
	Allocation Allocation
}

// TransactionType classifies a ledger movement.
type TransactionType string

const (
	TransactionTypeRepayment     TransactionType = "repayment"
	TransactionTypeAccountFee    TransactionType = "repayment_account_fee"
	TransactionTypeHoldingDebit  TransactionType = "holding_account_debit"
	TransactionTypeHoldingCredit TransactionType = "holding_account_credit"
)

// Transaction is a persisted movement produced by settling a payment.
// LoanID is empty for company-level movements.
type Transaction struct {
	ID              string
	PaymentID       string
	CompanyID       string
	LoanID          string
	Type            TransactionType
	Allocation      Allocation
	EffectiveDate   civil.Date
	CreatedByUserID string
	CreatedAt       time.Time
}
