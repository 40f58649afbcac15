package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
	"github.com/iho/goloan/internal/usecase/mocks"
)

type ebbaFixture struct {
	repo   *mocks.MockEbbaApplicationRepository
	outbox *mocks.MockOutboxRepository
	audit  *mocks.MockAuditRepository
	uc     *usecase.EbbaUseCase
}

func newEbbaFixture(t *testing.T) *ebbaFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockContractProvider(ctrl)
	provider.EXPECT().GetActiveContract(gomock.Any(), "co-1").Return(inventoryContract(), nil).AnyTimes()

	f := &ebbaFixture{
		repo:   mocks.NewMockEbbaApplicationRepository(),
		outbox: mocks.NewMockOutboxRepository(),
		audit:  mocks.NewMockAuditRepository(),
	}
	f.uc = usecase.NewEbbaUseCase(mocks.NewMockTransactionManager(), f.repo, provider, f.outbox, f.audit, mocks.NewMockIDGenerator(), nil)
	return f
}

func companyCtx() context.Context {
	return domain.ContextWithUser(context.Background(), &domain.User{ID: "user-1", CompanyID: "co-1", Role: domain.RoleCompanyUser})
}

func bankCtx() context.Context {
	return domain.ContextWithUser(context.Background(), &domain.User{ID: "banker-1", Role: domain.RoleBankAdmin})
}

func TestEbbaUseCase_CreateEbbaApplication(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		inputs    domain.BorrowingBaseInputs
		want      string
		errorType error
	}{
		{
			name: "computes the borrowing base",
			ctx:  companyCtx(),
			inputs: domain.BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("10000"),
				MonthlyInventory:          present("4000"),
			},
			want: "10000",
		},
		{
			name:      "missing visible input",
			ctx:       companyCtx(),
			inputs:    domain.BorrowingBaseInputs{MonthlyAccountsReceivable: present("10000")},
			errorType: domain.ErrMissingRequiredInput,
		},
		{
			name: "custom amount from a company user",
			ctx:  companyCtx(),
			inputs: domain.BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("10000"),
				MonthlyInventory:          present("4000"),
				AmountCustom:              present("100"),
				AmountCustomNote:          "seasonal adjustment",
			},
			errorType: domain.ErrCustomAmountNotPermitted,
		},
		{
			name: "custom amount from a bank user",
			ctx:  bankCtx(),
			inputs: domain.BorrowingBaseInputs{
				MonthlyAccountsReceivable: present("10000"),
				MonthlyInventory:          present("4000"),
				AmountCustom:              present("100"),
				AmountCustomNote:          "seasonal adjustment",
			},
			want: "10100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEbbaFixture(t)

			app, err := f.uc.CreateEbbaApplication(tt.ctx, usecase.CreateEbbaInput{
				CompanyID:       "co-1",
				ApplicationDate: day("2024-01-20"),
				Inputs:          tt.inputs,
			})
			if tt.errorType != nil {
				require.ErrorIs(t, err, tt.errorType)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.EbbaStatusDrafted, app.Status)
			assert.True(t, app.CalculatedBorrowingBase.Equal(dec(tt.want)), "got %s", app.CalculatedBorrowingBase)
			assert.Equal(t, day("2024-03-15"), app.ExpiresDate)
		})
	}
}

func TestEbbaUseCase_ReviewLifecycle(t *testing.T) {
	f := newEbbaFixture(t)

	app, err := f.uc.CreateEbbaApplication(companyCtx(), usecase.CreateEbbaInput{
		CompanyID:       "co-1",
		ApplicationDate: day("2024-01-20"),
		Inputs: domain.BorrowingBaseInputs{
			MonthlyAccountsReceivable: present("10000"),
			MonthlyInventory:          present("4000"),
		},
	})
	require.NoError(t, err)

	_, err = f.uc.ApproveEbbaApplication(bankCtx(), app.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	submitted, err := f.uc.SubmitEbbaApplication(companyCtx(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EbbaStatusSubmitted, submitted.Status)
	assert.Equal(t, "user-1", submitted.SubmittedByUserID)

	approved, err := f.uc.ApproveEbbaApplication(bankCtx(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EbbaStatusApproved, approved.Status)
	assert.Equal(t, "banker-1", approved.ReviewedByUserID)

	events := f.outbox.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeEbbaSubmitted, events[0].EventType)
	assert.Equal(t, domain.EventTypeEbbaApproved, events[1].EventType)

	logs := f.audit.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, domain.AuditActionEbbaApprove, logs[0].Action)

	current, err := f.uc.CurrentBorrowingBase(context.Background(), "co-1", day("2024-02-01"))
	require.NoError(t, err)
	assert.Equal(t, app.ID, current.ID)

	_, err = f.uc.CurrentBorrowingBase(context.Background(), "co-1", day("2024-03-16"))
	assert.ErrorIs(t, err, domain.ErrEbbaApplicationNotFound)
}

func TestEbbaUseCase_Reject(t *testing.T) {
	f := newEbbaFixture(t)

	app, err := f.uc.CreateEbbaApplication(companyCtx(), usecase.CreateEbbaInput{
		CompanyID:       "co-1",
		ApplicationDate: day("2024-01-20"),
		Inputs: domain.BorrowingBaseInputs{
			MonthlyAccountsReceivable: present("10000"),
			MonthlyInventory:          present("4000"),
		},
	})
	require.NoError(t, err)
	_, err = f.uc.SubmitEbbaApplication(companyCtx(), app.ID)
	require.NoError(t, err)

	_, err = f.uc.RejectEbbaApplication(bankCtx(), app.ID, "  ")
	assert.ErrorIs(t, err, domain.ErrRejectionNoteRequired)

	rejected, err := f.uc.RejectEbbaApplication(bankCtx(), app.ID, "inventory report is stale")
	require.NoError(t, err)
	assert.Equal(t, domain.EbbaStatusRejected, rejected.Status)
	assert.Equal(t, "inventory report is stale", rejected.RejectionNote)

	apps, err := f.uc.ListEbbaApplications(context.Background(), "co-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}
