package domain

import (
	"fmt"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// RepaymentRequest describes a repayment to preview or settle.
type RepaymentRequest struct {
	CompanyID               string
	PaymentOption           PaymentOption
	Amount                  decimal.Decimal
	DepositDate             civil.Date
	SettlementDate          civil.Date
	ItemsCovered            ItemsCovered
	ShouldPayPrincipalFirst bool
}

// Normalize checks the request before any balances are loaded and returns it
// with the payment option in canonical form.
func (r RepaymentRequest) Normalize() (RepaymentRequest, error) {
	opt, err := ParsePaymentOption(string(r.PaymentOption))
	if err != nil {
		return RepaymentRequest{}, err
	}
	r.PaymentOption = opt
	if r.Amount.IsNegative() {
		return RepaymentRequest{}, ErrInvalidAmount
	}
	if err := ValidateSettlementWindow(r.DepositDate, r.SettlementDate); err != nil {
		return RepaymentRequest{}, err
	}
	if err := r.ItemsCovered.Validate(); err != nil {
		return RepaymentRequest{}, err
	}
	return r, nil
}

// AllocationInput is everything the engine needs for one computation.
type AllocationInput struct {
	Request               RepaymentRequest
	Loans                 []*Loan
	Contract              *Contract
	HoldingAccountBalance decimal.Decimal
}

// Waterfall orders for the two policies.
var (
	principalFirstOrder = []AllocationField{AllocationPrincipal, AllocationInterest, AllocationFees}
	feesFirstOrder      = []AllocationField{AllocationFees, AllocationInterest, AllocationPrincipal}
)

// CalculateRepaymentEffect projects each selected loan to the settlement date
// and distributes the payment across account fees and loans.
func CalculateRepaymentEffect(in AllocationInput) (*RepaymentEffect, error) {
	req, err := in.Request.Normalize()
	if err != nil {
		return nil, err
	}

	loans, err := orderLoans(in.Loans, req.ItemsCovered.LoanIDs)
	if err != nil {
		return nil, err
	}

	before := make([]LoanBalance, len(loans))
	for i, loan := range loans {
		before[i] = loan.ProjectBalance(in.Contract, req.SettlementDate)
	}

	amount := resolveAmount(req, before)

	fromHolding := req.ItemsCovered.RequestedFromHoldingAccount
	if fromHolding.GreaterThan(in.HoldingAccountBalance) {
		return nil, ErrInsufficientHoldingBalance
	}

	available := amount.Add(fromHolding)

	toAccountFees := MinDecimal(available, req.ItemsCovered.AccountFeesRequested())
	available = available.Sub(toAccountFees)

	var allocations []Allocation
	if req.ShouldPayPrincipalFirst {
		allocations, available = allocateSequential(available, before, make([]Allocation, len(before)), principalFirstOrder)
	} else {
		allocations, available = allocateProportional(available, before)
	}

	effect := &RepaymentEffect{
		PaymentOption:            req.PaymentOption,
		Amount:                   amount,
		SettlementDate:           req.SettlementDate,
		AmountToAccountFees:      toAccountFees,
		AmountFromHoldingAccount: fromHolding,
		AmountLeftover:           available,
		LoansToShow:              make([]LoanBeforeAfterPayment, len(loans)),
	}

	for i, loan := range loans {
		effect.LoansToShow[i] = LoanBeforeAfterPayment{
			LoanID:            loan.ID,
			LoanIdentifier:    loan.Identifier,
			BeforeLoanBalance: before[i],
			AfterLoanBalance:  before[i].Minus(allocations[i]),
			Transaction:       allocations[i],
		}
	}

	total := effect.TransactionTotal()
	effect.PayableAmountPrincipal = total.ToPrincipal
	effect.PayableAmountInterest = total.ToInterest
	effect.PayableAmountFees = total.ToFees

	return effect, nil
}

// orderLoans returns the selected loans ordered by adjusted maturity date,
// then origination date, then identifier.
func orderLoans(loans []*Loan, selected []string) ([]*Loan, error) {
	byID := make(map[string]*Loan, len(loans))
	for _, l := range loans {
		byID[l.ID] = l
	}

	ordered := make([]*Loan, 0, len(selected))
	for _, id := range selected {
		loan, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrLoanNotFound, id)
		}
		if !loan.IsRepayable() {
			return nil, fmt.Errorf("%w: %s", ErrLoanNotRepayable, loan.Identifier)
		}
		ordered = append(ordered, loan)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if am, bm := a.EffectiveMaturityDate(), b.EffectiveMaturityDate(); am != bm {
			return am.Before(bm)
		}
		if a.OriginationDate != b.OriginationDate {
			return a.OriginationDate.Before(b.OriginationDate)
		}
		return a.Identifier < b.Identifier
	})

	return ordered, nil
}

func resolveAmount(req RepaymentRequest, before []LoanBalance) decimal.Decimal {
	switch req.PaymentOption {
	case PaymentOptionPayInFull:
		total := req.ItemsCovered.AccountFeesRequested()
		for _, b := range before {
			total = total.Add(NonNegative(b.Total()))
		}
		return total
	case PaymentOptionPayMinimumDue:
		total := decimal.Zero
		for _, b := range before {
			total = total.Add(NonNegative(b.OutstandingInterest)).Add(NonNegative(b.OutstandingFees))
		}
		return total
	default:
		return req.Amount
	}
}

// allocateSequential pays loans one after another, each through order,
// on top of the allocations already made.
func allocateSequential(available decimal.Decimal, before []LoanBalance, allocations []Allocation, order []AllocationField) ([]Allocation, decimal.Decimal) {
	for i := range before {
		if !available.IsPositive() {
			break
		}
		remaining := before[i].Minus(allocations[i])
		var extra Allocation
		extra, available = fill(available, remaining, order)
		allocations[i] = allocations[i].Add(extra)
	}
	return allocations, available
}

// allocateProportional gives each loan a share of the payment proportional to
// its outstanding total, rounded down to the cent, then places the remaining
// cents loan by loan.
func allocateProportional(available decimal.Decimal, before []LoanBalance) ([]Allocation, decimal.Decimal) {
	allocations := make([]Allocation, len(before))

	total := decimal.Zero
	for _, b := range before {
		total = total.Add(NonNegative(b.Total()))
	}
	if !total.IsPositive() || !available.IsPositive() {
		return allocations, available
	}

	if available.GreaterThanOrEqual(total) {
		return allocateSequential(available, before, allocations, feesFirstOrder)
	}

	distributed := decimal.Zero
	for i, b := range before {
		share := FloorCents(available.Mul(NonNegative(b.Total())).Div(total))
		alloc, unused := fill(share, b, feesFirstOrder)
		allocations[i] = alloc
		distributed = distributed.Add(share.Sub(unused))
	}

	return allocateSequential(available.Sub(distributed), before, allocations, feesFirstOrder)
}

// fill pays up to available against remaining in the given component order.
func fill(available decimal.Decimal, remaining LoanBalance, order []AllocationField) (Allocation, decimal.Decimal) {
	var principal, interest, fees decimal.Decimal
	for _, field := range order {
		var owed *decimal.Decimal
		var paid *decimal.Decimal
		switch field {
		case AllocationPrincipal:
			owed, paid = &remaining.OutstandingPrincipalBalance, &principal
		case AllocationInterest:
			owed, paid = &remaining.OutstandingInterest, &interest
		case AllocationFees:
			owed, paid = &remaining.OutstandingFees, &fees
		default:
			continue
		}
		portion := MinDecimal(available, NonNegative(*owed))
		*paid = portion
		available = available.Sub(portion)
	}
	return NewAllocation(principal, interest, fees), available
}
