package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how the company sends funds.
type PaymentMethod string

const (
	PaymentMethodACH             PaymentMethod = "ach"
	PaymentMethodWire            PaymentMethod = "wire"
	PaymentMethodReverseDraftACH PaymentMethod = "reverse_draft_ach"
	PaymentMethodCheck           PaymentMethod = "check"
)

// ParsePaymentMethod parses a wire value.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case PaymentMethodACH, PaymentMethodWire, PaymentMethodReverseDraftACH, PaymentMethodCheck:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
	}
}

// MaxSettlementHorizonDays bounds how far past the deposit date a repayment
// may settle.
const MaxSettlementHorizonDays = 366

// ValidateSettlementWindow checks that settlement is set, does not precede
// the deposit date and lies within MaxSettlementHorizonDays of it.
func ValidateSettlementWindow(deposit, settlement civil.Date) error {
	if IsZeroDate(settlement) {
		return fmt.Errorf("%w: settlement date is required", ErrInvalidDate)
	}
	if IsZeroDate(deposit) {
		return nil
	}
	if settlement.Before(deposit) {
		return ErrInvalidSettlementDate
	}
	if DaysBetween(deposit, settlement) > MaxSettlementHorizonDays {
		return fmt.Errorf("%w: at most %d days", ErrSettlementHorizonExceeded, MaxSettlementHorizonDays)
	}
	return nil
}

// PaymentOption selects how the repayment amount is derived.
type PaymentOption string

const (
	PaymentOptionCustomAmount  PaymentOption = "custom_amount"
	PaymentOptionPayInFull     PaymentOption = "pay_in_full"
	PaymentOptionPayMinimumDue PaymentOption = "pay_minimum_due"
)

// ParsePaymentOption parses a wire value. Empty means custom amount.
func ParsePaymentOption(s string) (PaymentOption, error) {
	switch o := PaymentOption(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return PaymentOptionCustomAmount, nil
	case PaymentOptionCustomAmount, PaymentOptionPayInFull, PaymentOptionPayMinimumDue:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentOption, s)
	}
}

// ItemsCovered lists what a repayment pays for.
type ItemsCovered struct {
	LoanIDs                     []string
	ToAccountFees               bool
	RequestedToAccountFees      decimal.Decimal
	RequestedFromHoldingAccount decimal.Decimal
}

// Validate checks the coverage flags and amounts.
func (i ItemsCovered) Validate() error {
	if len(i.LoanIDs) == 0 && !i.ToAccountFees {
		return ErrNoItemsCovered
	}
	if i.RequestedToAccountFees.IsNegative() || i.RequestedFromHoldingAccount.IsNegative() {
		return ErrInvalidAmount
	}
	seen := make(map[string]bool, len(i.LoanIDs))
	for _, id := range i.LoanIDs {
		if seen[id] {
			return fmt.Errorf("%w: %s", ErrDuplicateLoanInInput, id)
		}
		seen[id] = true
	}
	return nil
}

// AccountFeesRequested returns the requested account fee payment, or zero when
// account fees are not covered.
func (i ItemsCovered) AccountFeesRequested() decimal.Decimal {
	if !i.ToAccountFees {
		return decimal.Zero
	}
	return i.RequestedToAccountFees
}

// PaymentState is where a payment is in its lifecycle.
type PaymentState string

const (
	PaymentStateSubmitted PaymentState = "submitted"
	PaymentStateSettled   PaymentState = "settled"
)

// Payment is a repayment submitted by a company and settled by the bank.
type Payment struct {
	ID                   string
	CompanyID            string
	Method               PaymentMethod
	State                PaymentState
	RequestedAmount      decimal.Decimal
	RequestedPaymentDate civil.Date
	Amount               decimal.Decimal
	DepositDate          civil.Date
	SettlementDate       civil.Date
	ItemsCovered         ItemsCovered
	SubmittedByUserID    string
	SettledByUserID      string
	SubmittedAt          time.Time
	SettledAt            *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate validates a new repayment request.
func (p *Payment) Validate() error {
	if _, err := ParsePaymentMethod(string(p.Method)); err != nil {
		return err
	}
	if err := ValidatePaymentAmount(p.RequestedAmount); err != nil {
		return err
	}
	if p.Method == PaymentMethodReverseDraftACH && IsZeroDate(p.RequestedPaymentDate) {
		return ErrRequestedDateRequired
	}
	return p.ItemsCovered.Validate()
}

// IsSettled reports whether the payment has been settled.
func (p *Payment) IsSettled() bool {
	return p.State == PaymentStateSettled
}

// Settle records settlement details on the payment.
func (p *Payment) Settle(amount decimal.Decimal, deposit, settlement civil.Date, items ItemsCovered, userID string, now time.Time) error {
	if p.IsSettled() {
		return ErrPaymentAlreadySettled
	}
	p.State = PaymentStateSettled
	p.Amount = amount
	p.DepositDate = deposit
	p.SettlementDate = settlement
	p.ItemsCovered = items
	p.SettledByUserID = userID
	p.SettledAt = &now
	p.UpdatedAt = now
	return nil
}
