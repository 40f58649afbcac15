package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// AllocationField selects one component of a loan transaction.
type AllocationField int

const (
	AllocationPrincipal AllocationField = iota + 1
	AllocationInterest
	AllocationFees
)

// ParseAllocationField parses the wire names to_principal, to_interest and
// to_fees.
func ParseAllocationField(s string) (AllocationField, error) {
	switch s {
	case "to_principal":
		return AllocationPrincipal, nil
	case "to_interest":
		return AllocationInterest, nil
	case "to_fees":
		return AllocationFees, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAllocationField, s)
	}
}

func (f AllocationField) String() string {
	switch f {
	case AllocationPrincipal:
		return "to_principal"
	case AllocationInterest:
		return "to_interest"
	case AllocationFees:
		return "to_fees"
	default:
		return fmt.Sprintf("AllocationField(%d)", int(f))
	}
}

// LoanBeforeAfterPayment previews one loan's balances around a repayment.
type LoanBeforeAfterPayment struct {
	LoanID            string
	LoanIdentifier    string
	BeforeLoanBalance LoanBalance
	AfterLoanBalance  LoanBalance
	Transaction       Allocation
}

// RepaymentEffect is the projected outcome of a repayment.
type RepaymentEffect struct {
	PaymentOption            PaymentOption
	Amount                   decimal.Decimal
	SettlementDate           civil.Date
	PayableAmountPrincipal   decimal.Decimal
	PayableAmountInterest    decimal.Decimal
	PayableAmountFees        decimal.Decimal
	AmountToAccountFees      decimal.Decimal
	AmountFromHoldingAccount decimal.Decimal
	AmountLeftover           decimal.Decimal
	LoansToShow              []LoanBeforeAfterPayment
}

// SetLoanBeforeAfterPayment overrides one component of a loan's transaction,
// recomputes the transaction amount, and recomputes every after balance as
// before minus transaction. After balances may go negative here; settlement
// rejects them.
func (e *RepaymentEffect) SetLoanBeforeAfterPayment(loanID string, field AllocationField, value decimal.Decimal) error {
	idx := -1
	for i := range e.LoansToShow {
		if e.LoansToShow[i].LoanID == loanID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrLoanNotInEffect, loanID)
	}

	entry := &e.LoansToShow[idx]
	tx := entry.Transaction

	switch field {
	case AllocationPrincipal:
		tx.ToPrincipal = value
	case AllocationInterest:
		tx.ToInterest = value
	case AllocationFees:
		tx.ToFees = value
	default:
		return fmt.Errorf("%w: %s", ErrInvalidAllocationField, field)
	}

	tx.Amount = tx.Sum()
	entry.Transaction = tx
	entry.AfterLoanBalance = entry.BeforeLoanBalance.Minus(tx)

	return nil
}

// TransactionTotal returns the component-wise sum of every loan transaction.
func (e *RepaymentEffect) TransactionTotal() Allocation {
	var total Allocation
	for _, l := range e.LoansToShow {
		total = total.Add(l.Transaction)
	}
	return total
}

// TransactionInputs returns the loan transactions to submit for settlement.
func (e *RepaymentEffect) TransactionInputs() []LoanTransactionInput {
	inputs := make([]LoanTransactionInput, 0, len(e.LoansToShow))
	for _, l := range e.LoansToShow {
		inputs = append(inputs, LoanTransactionInput{LoanID: l.LoanID, Allocation: l.Transaction})
	}
	return inputs
}

// ResponseStatus is the outcome of a backend call.
type ResponseStatus string

const (
	StatusOK    ResponseStatus = "OK"
	StatusError ResponseStatus = "ERROR"
)

// StatusResponse reports success or a message explaining failure.
type StatusResponse struct {
	Status ResponseStatus
	Msg    string
}

// OK reports whether the call succeeded.
func (r StatusResponse) OK() bool {
	return r.Status == StatusOK
}

// OKStatus returns a successful response.
func OKStatus() *StatusResponse {
	return &StatusResponse{Status: StatusOK}
}

// ErrorStatus returns a failed response carrying msg.
func ErrorStatus(msg string) *StatusResponse {
	return &StatusResponse{Status: StatusError, Msg: msg}
}

// EffectResponse carries a computed effect, or a message when computation
// failed.
type EffectResponse struct {
	StatusResponse
	Effect *RepaymentEffect
}

// ErrorEffect returns a failed effect response carrying msg.
func ErrorEffect(msg string) *EffectResponse {
	return &EffectResponse{StatusResponse: *ErrorStatus(msg)}
}
