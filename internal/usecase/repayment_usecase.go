package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// RepaymentUseCase computes repayment effects and settles repayments.
type RepaymentUseCase struct {
	txManager       TransactionManager
	companyRepo     CompanyRepository
	contracts       ContractProvider
	loanRepo        LoanRepository
	paymentRepo     PaymentRepository
	transactionRepo TransactionRepository
	outboxRepo      OutboxRepository
	auditRepo       AuditRepository
	idGen           IDGenerator
	retrier         Retrier
	metrics         *metrics.Metrics
	now             func() time.Time
}

// NewRepaymentUseCase creates a new RepaymentUseCase.
func NewRepaymentUseCase(
	txManager TransactionManager,
	companyRepo CompanyRepository,
	contracts ContractProvider,
	loanRepo LoanRepository,
	paymentRepo PaymentRepository,
	transactionRepo TransactionRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *RepaymentUseCase {
	return &RepaymentUseCase{
		txManager:       txManager,
		companyRepo:     companyRepo,
		contracts:       contracts,
		loanRepo:        loanRepo,
		paymentRepo:     paymentRepo,
		transactionRepo: transactionRepo,
		outboxRepo:      outboxRepo,
		auditRepo:       auditRepo,
		idGen:           idGen,
		metrics:         m,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// WithRetrier makes settlement retry on transient database errors.
func (uc *RepaymentUseCase) WithRetrier(r Retrier) *RepaymentUseCase {
	uc.retrier = r
	return uc
}

// WithClock overrides the time source.
func (uc *RepaymentUseCase) WithClock(now func() time.Time) *RepaymentUseCase {
	uc.now = now
	return uc
}

// CreateRepaymentInput represents a company's repayment request.
type CreateRepaymentInput struct {
	CompanyID            string
	Method               domain.PaymentMethod
	RequestedAmount      decimal.Decimal
	RequestedPaymentDate civil.Date
	ItemsCovered         domain.ItemsCovered
}

// CreateRepayment records a submitted repayment awaiting settlement.
func (uc *RepaymentUseCase) CreateRepayment(ctx context.Context, input CreateRepaymentInput) (*domain.Payment, error) {
	now := uc.now()
	payment := &domain.Payment{
		ID:                   uc.idGen.Generate(),
		CompanyID:            input.CompanyID,
		Method:               input.Method,
		State:                domain.PaymentStateSubmitted,
		RequestedAmount:      input.RequestedAmount,
		RequestedPaymentDate: input.RequestedPaymentDate,
		ItemsCovered:         input.ItemsCovered,
		SubmittedByUserID:    domain.ActorID(ctx),
		SubmittedAt:          now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	if len(input.ItemsCovered.LoanIDs) > 0 {
		loans, err := uc.loanRepo.GetByIDs(ctx, input.ItemsCovered.LoanIDs)
		if err != nil {
			return nil, err
		}
		if err := checkLoansOwned(loans, input.ItemsCovered.LoanIDs, input.CompanyID); err != nil {
			return nil, err
		}
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.paymentRepo.Create(txCtx, tx, payment); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   payment.ID,
		AggregateType: domain.AggregateTypePayment,
		EventType:     domain.EventTypePaymentCreated,
		Payload: domain.MarshalState(domain.PaymentCreatedEvent{
			PaymentID:       payment.ID,
			CompanyID:       payment.CompanyID,
			Method:          string(payment.Method),
			RequestedAmount: payment.RequestedAmount.String(),
			LoanIDs:         payment.ItemsCovered.LoanIDs,
		}),
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RepaymentsCreated.Inc()
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID.
func (uc *RepaymentUseCase) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListPaymentTransactions returns the movements written when a payment settled.
func (uc *RepaymentUseCase) ListPaymentTransactions(ctx context.Context, paymentID string) ([]*domain.Transaction, error) {
	return uc.transactionRepo.ListByPayment(ctx, paymentID)
}

// CalculateEffect previews how a repayment would be applied. Business rule
// failures are reported in the response status; only infrastructure failures
// are returned as errors.
func (uc *RepaymentUseCase) CalculateEffect(ctx context.Context, req domain.RepaymentRequest) (*domain.EffectResponse, error) {
	effect, err := uc.calculateEffect(ctx, req)
	if err != nil {
		if domain.IsRuleViolation(err) {
			uc.recordEffect(domain.StatusError)
			return domain.ErrorEffect(err.Error()), nil
		}
		return nil, err
	}

	uc.recordEffect(domain.StatusOK)
	return &domain.EffectResponse{StatusResponse: *domain.OKStatus(), Effect: effect}, nil
}

func (uc *RepaymentUseCase) calculateEffect(ctx context.Context, req domain.RepaymentRequest) (*domain.RepaymentEffect, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	company, err := uc.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	contract, err := uc.contracts.GetActiveContract(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}

	var loans []*domain.Loan
	if len(req.ItemsCovered.LoanIDs) > 0 {
		loans, err = uc.loanRepo.GetByIDs(ctx, req.ItemsCovered.LoanIDs)
		if err != nil {
			return nil, err
		}
		if err := checkLoansOwned(loans, req.ItemsCovered.LoanIDs, req.CompanyID); err != nil {
			return nil, err
		}
	}

	return domain.CalculateRepaymentEffect(domain.AllocationInput{
		Request:               req,
		Loans:                 loans,
		Contract:              contract,
		HoldingAccountBalance: company.HoldingAccountBalance,
	})
}

func (uc *RepaymentUseCase) recordEffect(status domain.ResponseStatus) {
	if uc.metrics != nil {
		uc.metrics.EffectCalculations.WithLabelValues(string(status)).Inc()
	}
}

// SettleRepaymentInput represents a bank user's settlement of a payment.
type SettleRepaymentInput struct {
	CompanyID         string
	PaymentID         string
	Amount            decimal.Decimal
	DepositDate       civil.Date
	SettlementDate    civil.Date
	ItemsCovered      domain.ItemsCovered
	TransactionInputs []domain.LoanTransactionInput
	IsLineOfCredit    bool
}

// settlementResult summarises a committed settlement for metrics.
type settlementResult struct {
	amount      decimal.Decimal
	closedLoans int
}

// SettleRepayment applies the given transactions atomically. Business rule
// failures are reported in the response status.
func (uc *RepaymentUseCase) SettleRepayment(ctx context.Context, input SettleRepaymentInput) (*domain.StatusResponse, error) {
	start := time.Now()

	var result *settlementResult
	operation := func() error {
		r, err := uc.settle(ctx, input)
		result = r
		return err
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, operation)
	} else {
		err = operation()
	}

	if err != nil {
		if domain.IsRuleViolation(err) {
			if uc.metrics != nil {
				uc.metrics.SettlementErrors.WithLabelValues(settlementErrorType(err)).Inc()
			}
			return domain.ErrorStatus(err.Error()), nil
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RepaymentsSettled.Inc()
		uc.metrics.SettlementDuration.Observe(time.Since(start).Seconds())
		uc.metrics.SettlementAmount.Observe(result.amount.InexactFloat64())
		uc.metrics.LoansClosed.Add(float64(result.closedLoans))
	}

	return domain.OKStatus(), nil
}

func (uc *RepaymentUseCase) settle(ctx context.Context, input SettleRepaymentInput) (*settlementResult, error) {
	// 0. Validate inputs before starting transaction
	if err := validateSettleInput(input); err != nil {
		return nil, err
	}

	contract, err := uc.contracts.GetActiveContract(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if contract.IsLineOfCredit() != input.IsLineOfCredit {
		return nil, domain.ErrProductTypeMismatch
	}

	// 1. Collect and sort loan IDs (DEADLOCK PREVENTION)
	allocations := make(map[string]domain.Allocation, len(input.TransactionInputs))
	loanIDs := make([]string, 0, len(input.TransactionInputs))
	for _, ti := range input.TransactionInputs {
		allocations[ti.LoanID] = ti.Allocation
		loanIDs = append(loanIDs, ti.LoanID)
	}
	sort.Strings(loanIDs)

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	// 2. Begin transaction
	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	// 3. Lock payment, then company, then loans
	payment, err := uc.paymentRepo.GetByIDForUpdate(txCtx, tx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.CompanyID != input.CompanyID {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.IsSettled() {
		return nil, domain.ErrPaymentAlreadySettled
	}

	company, err := uc.companyRepo.GetByIDForUpdate(txCtx, tx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	fromHolding := input.ItemsCovered.RequestedFromHoldingAccount
	if err := company.ValidateHoldingDebit(fromHolding); err != nil {
		return nil, err
	}

	var loans []*domain.Loan
	if len(loanIDs) > 0 {
		loans, err = uc.loanRepo.GetByIDsForUpdate(txCtx, tx, loanIDs)
		if err != nil {
			return nil, err
		}
		if err := checkLoansOwned(loans, loanIDs, input.CompanyID); err != nil {
			return nil, err
		}
	}

	// 4. Balance the payment
	loanTotal := decimal.Zero
	for _, a := range allocations {
		loanTotal = loanTotal.Add(a.Amount)
	}
	toAccountFees := input.ItemsCovered.AccountFeesRequested()
	leftover := input.Amount.Add(fromHolding).Sub(loanTotal).Sub(toAccountFees)
	if leftover.IsNegative() {
		return nil, domain.ErrAllocationExceedsPayment
	}

	now := uc.now()
	userID := domain.ActorID(ctx)
	result := &settlementResult{amount: input.Amount}

	// 5. Apply loan transactions
	var closedLoanIDs []string
	for _, loan := range loans {
		if !loan.IsRepayable() {
			return nil, fmt.Errorf("%w: %s", domain.ErrLoanNotRepayable, loan.Identifier)
		}

		allocation := allocations[loan.ID]
		projected := loan.ProjectBalance(contract, input.SettlementDate)
		after, err := loan.ApplyRepayment(projected, allocation)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, loan.Identifier)
		}

		loan.SettleTo(after, input.SettlementDate, now)
		if err := uc.loanRepo.UpdateBalances(txCtx, tx, loan); err != nil {
			return nil, err
		}
		if loan.Status == domain.LoanStatusClosed {
			closedLoanIDs = append(closedLoanIDs, loan.ID)
		}

		if !allocation.Amount.IsPositive() {
			continue
		}
		if err := uc.writeTransaction(txCtx, tx, payment, loan.ID, domain.TransactionTypeRepayment, allocation, input.SettlementDate, userID, now); err != nil {
			return nil, err
		}
	}
	result.closedLoans = len(closedLoanIDs)

	// 6. Company-level movements
	movements := []struct {
		kind   domain.TransactionType
		amount decimal.Decimal
	}{
		{domain.TransactionTypeAccountFee, toAccountFees},
		{domain.TransactionTypeHoldingDebit, fromHolding},
		{domain.TransactionTypeHoldingCredit, leftover},
	}
	for _, m := range movements {
		if !m.amount.IsPositive() {
			continue
		}
		if err := uc.writeTransaction(txCtx, tx, payment, "", m.kind, domain.Allocation{Amount: m.amount}, input.SettlementDate, userID, now); err != nil {
			return nil, err
		}
	}

	if fromHolding.IsPositive() || leftover.IsPositive() {
		balance := company.ApplyHoldingMovement(fromHolding, leftover)
		if err := uc.companyRepo.UpdateHoldingBalance(txCtx, tx, company.ID, balance, now); err != nil {
			return nil, err
		}
	}

	// 7. Mark payment settled
	before := domain.MarshalState(payment)
	if err := payment.Settle(input.Amount, input.DepositDate, input.SettlementDate, input.ItemsCovered, userID, now); err != nil {
		return nil, err
	}
	if err := uc.paymentRepo.MarkSettled(txCtx, tx, payment); err != nil {
		return nil, err
	}

	// 8. Emit settlement event
	totals := domain.Allocation{}
	for _, a := range allocations {
		totals = totals.Add(a)
	}
	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   payment.ID,
		AggregateType: domain.AggregateTypePayment,
		EventType:     domain.EventTypeRepaymentSettled,
		Payload: domain.MarshalState(domain.RepaymentSettledEvent{
			PaymentID:          payment.ID,
			CompanyID:          payment.CompanyID,
			Amount:             input.Amount.String(),
			ToPrincipal:        totals.ToPrincipal.String(),
			ToInterest:         totals.ToInterest.String(),
			ToFees:             totals.ToFees.String(),
			ToAccountFees:      toAccountFees.String(),
			FromHoldingAccount: fromHolding.String(),
			Leftover:           leftover.String(),
			SettlementDate:     input.SettlementDate.String(),
			ClosedLoanIDs:      closedLoanIDs,
		}),
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	// Audit logging
	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			UserID:       userID,
			Action:       domain.AuditActionRepaymentSettle,
			ResourceType: domain.AggregateTypePayment,
			ResourceID:   payment.ID,
			BeforeState:  before,
			AfterState:   domain.MarshalState(payment),
			Status:       domain.AuditStatusSuccess,
			CreatedAt:    now,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	// 9. Commit transaction
	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *RepaymentUseCase) writeTransaction(
	ctx context.Context,
	tx Transaction,
	payment *domain.Payment,
	loanID string,
	kind domain.TransactionType,
	allocation domain.Allocation,
	effective civil.Date,
	userID string,
	now time.Time,
) error {
	return uc.transactionRepo.Create(ctx, tx, &domain.Transaction{
		ID:              uc.idGen.Generate(),
		PaymentID:       payment.ID,
		CompanyID:       payment.CompanyID,
		LoanID:          loanID,
		Type:            kind,
		Allocation:      allocation,
		EffectiveDate:   effective,
		CreatedByUserID: userID,
		CreatedAt:       now,
	})
}

func validateSettleInput(input SettleRepaymentInput) error {
	if input.Amount.IsNegative() {
		return domain.ErrInvalidAmount
	}
	if err := domain.ValidateSettlementWindow(input.DepositDate, input.SettlementDate); err != nil {
		return err
	}
	if err := input.ItemsCovered.Validate(); err != nil {
		return err
	}

	covered := make(map[string]bool, len(input.ItemsCovered.LoanIDs))
	for _, id := range input.ItemsCovered.LoanIDs {
		covered[id] = true
	}

	seen := make(map[string]bool, len(input.TransactionInputs))
	for _, ti := range input.TransactionInputs {
		if !covered[ti.LoanID] {
			return fmt.Errorf("%w: %s is not covered by the payment", domain.ErrLoanNotFound, ti.LoanID)
		}
		if seen[ti.LoanID] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateLoanInInput, ti.LoanID)
		}
		seen[ti.LoanID] = true
		if err := ti.Allocation.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// checkLoansOwned verifies every requested loan was found and belongs to
// companyID.
func checkLoansOwned(loans []*domain.Loan, ids []string, companyID string) error {
	found := make(map[string]*domain.Loan, len(loans))
	for _, l := range loans {
		found[l.ID] = l
	}
	for _, id := range ids {
		loan, ok := found[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrLoanNotFound, id)
		}
		if loan.CompanyID != companyID {
			return fmt.Errorf("%w: %s", domain.ErrLoanCompanyMismatch, loan.Identifier)
		}
	}
	return nil
}

func settlementErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrPaymentAlreadySettled):
		return "already_settled"
	case errors.Is(err, domain.ErrNegativeLoanBalance):
		return "negative_balance"
	case errors.Is(err, domain.ErrAllocationExceedsPayment), errors.Is(err, domain.ErrAllocationMismatch), errors.Is(err, domain.ErrNegativeAllocation):
		return "allocation"
	case errors.Is(err, domain.ErrInsufficientHoldingBalance):
		return "holding_balance"
	case errors.Is(err, domain.ErrProductTypeMismatch):
		return "product_type"
	default:
		return "other"
	}
}
