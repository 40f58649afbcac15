package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
	"github.com/iho/goloan/internal/usecase"
	"github.com/iho/goloan/internal/usecase/mocks"
)

type settlementFixture struct {
	service   *mocks.MockRepaymentService
	contracts *mocks.MockContractProvider
	sessions  *mocks.MockSettlementSessionStore
	payments  *mocks.MockPaymentRepository
	audit     *mocks.MockAuditRepository
	metrics   *metrics.Metrics
	uc        *usecase.SettlementUseCase
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &settlementFixture{
		service:   mocks.NewMockRepaymentService(ctrl),
		contracts: mocks.NewMockContractProvider(ctrl),
		sessions:  mocks.NewMockSettlementSessionStore(),
		payments: mocks.NewMockPaymentRepository(&domain.Payment{
			ID:                   "pay-1",
			CompanyID:            "co-1",
			Method:               domain.PaymentMethodACH,
			State:                domain.PaymentStateSubmitted,
			RequestedAmount:      dec("1200"),
			RequestedPaymentDate: day("2024-03-01"),
			ItemsCovered:         domain.ItemsCovered{LoanIDs: []string{"loan-a"}},
		}),
		audit:   mocks.NewMockAuditRepository(),
		metrics: metrics.New(prometheus.NewRegistry()),
	}
	f.contracts.EXPECT().GetActiveContract(gomock.Any(), "co-1").Return(inventoryContract(), nil).AnyTimes()

	f.uc = usecase.NewSettlementUseCase(f.sessions, f.service, f.payments, f.contracts, f.audit, mocks.NewMockIDGenerator(), f.metrics)
	return f
}

func selection() usecase.ComputeEffectInput {
	return usecase.ComputeEffectInput{
		PaymentOption:           domain.PaymentOptionCustomAmount,
		Amount:                  dec("1200"),
		DepositDate:             day("2024-03-01"),
		SettlementDate:          day("2024-03-01"),
		ItemsCovered:            domain.ItemsCovered{LoanIDs: []string{"loan-a"}},
		ShouldPayPrincipalFirst: true,
	}
}

func previewEffect() *domain.EffectResponse {
	before := domain.LoanBalance{
		OutstandingPrincipalBalance: dec("1000"),
		OutstandingInterest:         dec("50"),
		OutstandingFees:             dec("10"),
	}
	return &domain.EffectResponse{
		StatusResponse: *domain.OKStatus(),
		Effect: &domain.RepaymentEffect{
			PaymentOption:  domain.PaymentOptionCustomAmount,
			Amount:         dec("1200"),
			SettlementDate: day("2024-03-01"),
			AmountLeftover: dec("140"),
			LoansToShow: []domain.LoanBeforeAfterPayment{{
				LoanID:            "loan-a",
				LoanIdentifier:    "L-001",
				BeforeLoanBalance: before,
				Transaction:       domain.NewAllocation(dec("1000"), dec("50"), dec("10")),
			}},
		},
	}
}

func (f *settlementFixture) confirmed(t *testing.T, ctx context.Context) *domain.SettlementSession {
	t.Helper()
	session, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-1", PaymentID: "pay-1"})
	require.NoError(t, err)

	f.service.EXPECT().CalculateEffect(gomock.Any(), gomock.Any()).Return(previewEffect(), nil)
	session, err = f.uc.ComputeEffect(ctx, session.ID, selection())
	require.NoError(t, err)
	require.Equal(t, domain.StepConfirmEffect, session.Step)
	return session
}

func TestSettlementUseCase_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("prefills from the payment", func(t *testing.T) {
		f := newSettlementFixture(t)

		session, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-1", PaymentID: "pay-1"})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, domain.StepSelectLoans, session.Step)
		assert.False(t, session.IsLineOfCredit)
		assert.True(t, session.Request.Amount.Equal(dec("1200")))
		assert.Equal(t, []string{"loan-a"}, session.Request.ItemsCovered.LoanIDs)
	})

	t.Run("payment of another company", func(t *testing.T) {
		f := newSettlementFixture(t)
		_, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-2", PaymentID: "pay-1"})
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})

	t.Run("settled payment", func(t *testing.T) {
		f := newSettlementFixture(t)
		f.payments.Payment("pay-1").State = domain.PaymentStateSettled
		_, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-1", PaymentID: "pay-1"})
		assert.ErrorIs(t, err, domain.ErrPaymentAlreadySettled)
	})
}

func TestSettlementUseCase_ComputeEffectError(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)

	session, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-1", PaymentID: "pay-1"})
	require.NoError(t, err)

	f.service.EXPECT().
		CalculateEffect(gomock.Any(), gomock.Any()).
		Return(domain.ErrorEffect("loan not found: loan-z"), nil)
	f.service.EXPECT().SettleRepayment(gomock.Any(), gomock.Any()).Times(0)

	session, err = f.uc.ComputeEffect(ctx, session.ID, selection())
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectLoans, session.Step)
	assert.Equal(t, "loan not found: loan-z", session.Message)
	assert.Nil(t, session.Effect)

	_, err = f.uc.Submit(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStepTransition)
}

func TestSettlementUseCase_ComputeEffectServiceFailure(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)

	session, err := f.uc.Start(ctx, usecase.StartSettlementInput{CompanyID: "co-1", PaymentID: "pay-1"})
	require.NoError(t, err)

	f.service.EXPECT().
		CalculateEffect(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("backend unavailable"))

	session, err = f.uc.ComputeEffect(ctx, session.ID, selection())
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectLoans, session.Step)
	assert.Equal(t, "backend unavailable", session.Message)
}

func TestSettlementUseCase_SubmitSettles(t *testing.T) {
	ctx := domain.ContextWithUser(context.Background(), &domain.User{ID: "banker-1", Role: domain.RoleBankAdmin})
	f := newSettlementFixture(t)
	session := f.confirmed(t, ctx)

	f.service.EXPECT().
		SettleRepayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input usecase.SettleRepaymentInput) (*domain.StatusResponse, error) {
			assert.Equal(t, "co-1", input.CompanyID)
			assert.Equal(t, "pay-1", input.PaymentID)
			assert.True(t, input.Amount.Equal(dec("1200")))
			require.Len(t, input.TransactionInputs, 1)
			assert.True(t, input.TransactionInputs[0].Allocation.Amount.Equal(dec("1060")))
			return domain.OKStatus(), nil
		})

	session, err := f.uc.Submit(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSettled, session.Step)
	assert.Empty(t, session.Message)

	stored, err := f.uc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSettled, stored.Step)
	assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.WizardTransitions.WithLabelValues(string(domain.StepSettled))))
}

func TestSettlementUseCase_SubmitErrorStaysOnConfirm(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)
	session := f.confirmed(t, ctx)

	f.service.EXPECT().
		SettleRepayment(gomock.Any(), gomock.Any()).
		Return(domain.ErrorStatus(domain.ErrNegativeLoanBalance.Error()), nil)

	session, err := f.uc.Submit(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmEffect, session.Step)
	assert.Equal(t, domain.ErrNegativeLoanBalance.Error(), session.Message)
	assert.NotNil(t, session.Effect)
}

func TestSettlementUseCase_OverrideFlowsIntoSubmit(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)
	session := f.confirmed(t, ctx)

	session, err := f.uc.Override(ctx, session.ID, usecase.OverrideInput{LoanID: "loan-a", Field: "to_principal", Value: dec("900")})
	require.NoError(t, err)
	assert.True(t, session.Effect.LoansToShow[0].Transaction.Amount.Equal(dec("960")))

	logs := f.audit.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, domain.AuditActionSettlementOverride, logs[0].Action)

	f.service.EXPECT().
		SettleRepayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input usecase.SettleRepaymentInput) (*domain.StatusResponse, error) {
			assert.True(t, input.TransactionInputs[0].Allocation.ToPrincipal.Equal(dec("900")))
			assert.True(t, input.TransactionInputs[0].Allocation.Amount.Equal(dec("960")))
			return domain.OKStatus(), nil
		})

	_, err = f.uc.Submit(ctx, session.ID)
	require.NoError(t, err)
}

func TestSettlementUseCase_OverrideUnknownLoanIsIgnored(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)
	session := f.confirmed(t, ctx)

	got, err := f.uc.Override(ctx, session.ID, usecase.OverrideInput{LoanID: "loan-z", Field: "to_fees", Value: dec("5")})
	require.NoError(t, err)
	assert.True(t, got.Effect.LoansToShow[0].Transaction.Amount.Equal(dec("1060")))
	assert.Empty(t, f.audit.Logs())

	_, err = f.uc.Override(ctx, session.ID, usecase.OverrideInput{LoanID: "loan-a", Field: "amount", Value: dec("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidAllocationField)
}

func TestSettlementUseCase_Back(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)
	session := f.confirmed(t, ctx)

	session, err := f.uc.Back(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectLoans, session.Step)
	assert.Nil(t, session.Effect)

	_, err = f.uc.Back(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStepTransition)
}

func TestSettlementUseCase_UnknownSession(t *testing.T) {
	f := newSettlementFixture(t)
	_, err := f.uc.Submit(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSettlementSessionNotFound)
}
