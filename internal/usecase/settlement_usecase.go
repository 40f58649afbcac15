package usecase

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// SettlementUseCase drives the settle-repayment wizard. Sessions live in a
// SettlementSessionStore; all repayment math happens behind RepaymentService.
type SettlementUseCase struct {
	sessions    SettlementSessionStore
	repayments  RepaymentService
	paymentRepo PaymentRepository
	contracts   ContractProvider
	auditRepo   AuditRepository
	idGen       IDGenerator
	metrics     *metrics.Metrics
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	sessions SettlementSessionStore,
	repayments RepaymentService,
	paymentRepo PaymentRepository,
	contracts ContractProvider,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *SettlementUseCase {
	return &SettlementUseCase{
		sessions:    sessions,
		repayments:  repayments,
		paymentRepo: paymentRepo,
		contracts:   contracts,
		auditRepo:   auditRepo,
		idGen:       idGen,
		metrics:     m,
		logger:      log.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithLogger sets the logger.
func (uc *SettlementUseCase) WithLogger(l zerolog.Logger) *SettlementUseCase {
	uc.logger = l
	return uc
}

// StartSettlementInput identifies the payment to settle.
type StartSettlementInput struct {
	CompanyID string
	PaymentID string
}

// Start opens a session on the SelectLoans step, prefilled from the
// submitted payment.
func (uc *SettlementUseCase) Start(ctx context.Context, input StartSettlementInput) (*domain.SettlementSession, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, input.PaymentID)
	if err != nil {
		return nil, err
	}
	if payment.CompanyID != input.CompanyID {
		return nil, domain.ErrPaymentNotFound
	}
	if payment.IsSettled() {
		return nil, domain.ErrPaymentAlreadySettled
	}

	contract, err := uc.contracts.GetActiveContract(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	session := domain.NewSettlementSession(input.CompanyID, input.PaymentID, domain.ActorID(ctx), contract.IsLineOfCredit(), now)
	session.Request = domain.RepaymentRequest{
		CompanyID:      input.CompanyID,
		PaymentOption:  domain.PaymentOptionCustomAmount,
		Amount:         payment.RequestedAmount,
		DepositDate:    payment.RequestedPaymentDate,
		SettlementDate: payment.RequestedPaymentDate,
		ItemsCovered:   payment.ItemsCovered,
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.recordStep(session.Step)
	return session, nil
}

// Get returns a session.
func (uc *SettlementUseCase) Get(ctx context.Context, id string) (*domain.SettlementSession, error) {
	return uc.sessions.Get(ctx, id)
}

// ComputeEffectInput is the loan selection made on the SelectLoans step.
type ComputeEffectInput struct {
	PaymentOption           domain.PaymentOption
	Amount                  decimal.Decimal
	DepositDate             civil.Date
	SettlementDate          civil.Date
	ItemsCovered            domain.ItemsCovered
	ShouldPayPrincipalFirst bool
}

// ComputeEffect asks the backend for the repayment effect. An OK response
// advances the session to ConfirmEffect; an ERROR response or a failed call
// keeps it on SelectLoans with the message.
func (uc *SettlementUseCase) ComputeEffect(ctx context.Context, id string, input ComputeEffectInput) (*domain.SettlementSession, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.StepSelectLoans {
		return nil, domain.ErrInvalidStepTransition
	}

	req := domain.RepaymentRequest{
		CompanyID:               session.CompanyID,
		PaymentOption:           input.PaymentOption,
		Amount:                  input.Amount,
		DepositDate:             input.DepositDate,
		SettlementDate:          input.SettlementDate,
		ItemsCovered:            input.ItemsCovered,
		ShouldPayPrincipalFirst: input.ShouldPayPrincipalFirst,
	}

	resp, err := uc.repayments.CalculateEffect(ctx, req)
	if err != nil {
		uc.logger.Error().Err(err).Str("session_id", id).Msg("repayment effect calculation failed")
		resp = domain.ErrorEffect(err.Error())
	}

	if err := session.ApplyEffectResponse(req, *resp, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.recordStep(session.Step)
	return session, nil
}

// Back returns the session to SelectLoans.
func (uc *SettlementUseCase) Back(ctx context.Context, id string) (*domain.SettlementSession, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Back(uc.now()); err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.recordStep(session.Step)
	return session, nil
}

// OverrideInput edits one component of one loan's transaction.
type OverrideInput struct {
	LoanID string
	Field  string
	Value  decimal.Decimal
}

// Override edits the previewed effect. Naming a loan that is not in the effect
// is logged and ignored.
func (uc *SettlementUseCase) Override(ctx context.Context, id string, input OverrideInput) (*domain.SettlementSession, error) {
	field, err := domain.ParseAllocationField(input.Field)
	if err != nil {
		return nil, err
	}

	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = session.Override(input.LoanID, field, input.Value, uc.now())
	if errors.Is(err, domain.ErrLoanNotInEffect) {
		uc.logger.Warn().
			Str("session_id", id).
			Str("loan_id", input.LoanID).
			Str("field", field.String()).
			Msg("override ignored: loan is not part of the effect")
		return session, nil
	}
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			UserID:       domain.ActorID(ctx),
			Action:       domain.AuditActionSettlementOverride,
			ResourceType: domain.AggregateTypePayment,
			ResourceID:   session.PaymentID,
			AfterState: domain.JSON{
				"session_id": session.ID,
				"loan_id":    input.LoanID,
				"field":      field.String(),
				"value":      input.Value.String(),
			},
			Status:    domain.AuditStatusSuccess,
			CreatedAt: uc.now(),
		}
		if err := uc.auditRepo.Create(ctx, auditLog); err != nil {
			uc.logger.Warn().Err(err).Str("session_id", id).Msg("failed to record override audit log")
		}
	}

	return session, nil
}

// Submit settles the confirmed effect. Settlement is only attempted from
// ConfirmEffect with an effect present.
func (uc *SettlementUseCase) Submit(ctx context.Context, id string) (*domain.SettlementSession, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.CanSubmit() {
		return nil, domain.ErrInvalidStepTransition
	}

	effect := session.Effect
	items := session.Request.ItemsCovered
	items.RequestedToAccountFees = effect.AmountToAccountFees
	items.RequestedFromHoldingAccount = effect.AmountFromHoldingAccount

	resp, err := uc.repayments.SettleRepayment(ctx, SettleRepaymentInput{
		CompanyID:         session.CompanyID,
		PaymentID:         session.PaymentID,
		Amount:            effect.Amount,
		DepositDate:       session.Request.DepositDate,
		SettlementDate:    session.Request.SettlementDate,
		ItemsCovered:      items,
		TransactionInputs: effect.TransactionInputs(),
		IsLineOfCredit:    session.IsLineOfCredit,
	})
	if err != nil {
		uc.logger.Error().Err(err).Str("session_id", id).Msg("repayment settlement failed")
		resp = domain.ErrorStatus(err.Error())
	}

	if err := session.ApplySettleResponse(*resp, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.recordStep(session.Step)
	return session, nil
}

func (uc *SettlementUseCase) recordStep(step domain.SettlementStep) {
	if uc.metrics != nil {
		uc.metrics.WizardTransitions.WithLabelValues(string(step)).Inc()
	}
}
