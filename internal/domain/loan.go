package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// LoanStatus is the approval lifecycle of a loan.
type LoanStatus string

const (
	LoanStatusDrafted  LoanStatus = "drafted"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusFunded   LoanStatus = "funded"
	LoanStatusPastDue  LoanStatus = "past_due"
	LoanStatusRejected LoanStatus = "rejected"
	LoanStatusClosed   LoanStatus = "closed"
)

// PaymentStatus tracks how much of a loan has been repaid.
type PaymentStatus string

const (
	PaymentStatusNone          PaymentStatus = ""
	PaymentStatusPending       PaymentStatus = "pending"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusClosed        PaymentStatus = "closed"
)

// LoanBalance is the outstanding amount of a loan split by component.
type LoanBalance struct {
	OutstandingPrincipalBalance decimal.Decimal
	OutstandingInterest         decimal.Decimal
	OutstandingFees             decimal.Decimal
}

// Total returns the sum of all three components.
func (b LoanBalance) Total() decimal.Decimal {
	return b.OutstandingPrincipalBalance.Add(b.OutstandingInterest).Add(b.OutstandingFees)
}

// Minus subtracts each allocation component from the matching balance.
// The result may be negative.
func (b LoanBalance) Minus(a Allocation) LoanBalance {
	return LoanBalance{
		OutstandingPrincipalBalance: b.OutstandingPrincipalBalance.Sub(a.ToPrincipal),
		OutstandingInterest:         b.OutstandingInterest.Sub(a.ToInterest),
		OutstandingFees:             b.OutstandingFees.Sub(a.ToFees),
	}
}

// IsNegative reports whether any component is below zero.
func (b LoanBalance) IsNegative() bool {
	return b.OutstandingPrincipalBalance.IsNegative() ||
		b.OutstandingInterest.IsNegative() ||
		b.OutstandingFees.IsNegative()
}

// IsZero reports whether every component is zero.
func (b LoanBalance) IsZero() bool {
	return b.OutstandingPrincipalBalance.IsZero() &&
		b.OutstandingInterest.IsZero() &&
		b.OutstandingFees.IsZero()
}

// Loan is a single financing advance owned by a company.
type Loan struct {
	ID                   string
	CompanyID            string
	Identifier           string
	Status               LoanStatus
	PaymentStatus        PaymentStatus
	Amount               decimal.Decimal
	OriginationDate      civil.Date
	MaturityDate         civil.Date
	AdjustedMaturityDate civil.Date
	Outstanding          LoanBalance
	BalancesAsOf         civil.Date
	ClosedAt             *time.Time
	Version              int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Validate validates a new loan.
func (l *Loan) Validate() error {
	if err := ValidateIdentifier(l.Identifier); err != nil {
		return err
	}
	if l.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if l.Outstanding.IsNegative() {
		return ErrNegativeLoanBalance
	}
	if l.MaturityDate.Before(l.OriginationDate) {
		return ErrInvalidMaturityDate
	}
	if !IsZeroDate(l.AdjustedMaturityDate) && l.AdjustedMaturityDate.Before(l.OriginationDate) {
		return ErrInvalidMaturityDate
	}
	return nil
}

// EffectiveMaturityDate returns the adjusted maturity date, or the maturity
// date when no adjustment exists.
func (l *Loan) EffectiveMaturityDate() civil.Date {
	if IsZeroDate(l.AdjustedMaturityDate) {
		return l.MaturityDate
	}
	return l.AdjustedMaturityDate
}

// DaysPastDue returns how many days past maturity the loan is on asOf.
func (l *Loan) DaysPastDue(asOf civil.Date) int {
	days := DaysBetween(l.EffectiveMaturityDate(), asOf)
	if days < 0 {
		return 0
	}
	return days
}

// IsRepayable reports whether repayments can be applied to the loan.
func (l *Loan) IsRepayable() bool {
	return l.Status == LoanStatusFunded || l.Status == LoanStatusPastDue
}

// ProjectBalance accrues interest and late fees from BalancesAsOf through
// asOf. Each day accrues principal*rate of interest and that day's interest
// times the late fee multiplier for its days past due. Principal does not
// change while projecting, so the daily amounts are summed in closed form.
func (l *Loan) ProjectBalance(contract *Contract, asOf civil.Date) LoanBalance {
	balance := l.Outstanding
	if contract == nil || IsZeroDate(l.BalancesAsOf) || !asOf.After(l.BalancesAsOf) {
		return balance
	}

	maturity := l.EffectiveMaturityDate()
	days := DaysBetween(l.BalancesAsOf, asOf)
	daily := balance.OutstandingPrincipalBalance.Mul(contract.InterestRate)

	interest := daily.Mul(decimal.NewFromInt(int64(days)))
	multiplier := contract.LateFeeSchedule.Sum(
		DaysBetween(maturity, l.BalancesAsOf)+1,
		DaysBetween(maturity, asOf),
	)
	fees := daily.Mul(multiplier)

	balance.OutstandingInterest = balance.OutstandingInterest.Add(RoundCents(interest))
	balance.OutstandingFees = balance.OutstandingFees.Add(RoundCents(fees))
	return balance
}

// ApplyRepayment returns the balance left after allocation is applied to the
// projected balance. Settled balances must not go negative.
func (l *Loan) ApplyRepayment(projected LoanBalance, allocation Allocation) (LoanBalance, error) {
	if err := allocation.Validate(); err != nil {
		return LoanBalance{}, err
	}
	after := projected.Minus(allocation)
	if after.IsNegative() {
		return LoanBalance{}, ErrNegativeLoanBalance
	}
	return after, nil
}

// SettleTo records the balance after a repayment settled on settlementDate,
// closing the loan once nothing is outstanding.
func (l *Loan) SettleTo(after LoanBalance, settlementDate civil.Date, now time.Time) {
	l.Outstanding = after
	if settlementDate.After(l.BalancesAsOf) {
		l.BalancesAsOf = settlementDate
	}
	if after.IsZero() {
		l.PaymentStatus = PaymentStatusClosed
		l.Status = LoanStatusClosed
		l.ClosedAt = &now
	} else {
		l.PaymentStatus = PaymentStatusPartiallyPaid
	}
	l.UpdatedAt = now
}
