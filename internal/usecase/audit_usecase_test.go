package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
	"github.com/iho/goloan/internal/usecase/mocks"
)

func TestAuditUseCase_ListAuditLogsClampsPaging(t *testing.T) {
	repo := mocks.NewMockAuditRepository()
	var got domain.AuditFilter
	repo.ListFunc = func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
		got = filter
		return []*domain.AuditLog{{ID: "a-1", Action: domain.AuditActionRepaymentSettle}}, nil
	}

	uc := usecase.NewAuditUseCase(repo)
	logs, err := uc.ListAuditLogs(context.Background(), domain.AuditFilter{
		Action: domain.AuditActionRepaymentSettle,
		Limit:  500,
		Offset: -3,
	})
	require.NoError(t, err)
	require.Len(t, logs, 1)

	assert.Equal(t, usecase.MaxListLimit, got.Limit)
	assert.Equal(t, 0, got.Offset)
	assert.Equal(t, domain.AuditActionRepaymentSettle, got.Action)
}

func TestAuditUseCase_ListAuditLogsFiltersByAction(t *testing.T) {
	repo := mocks.NewMockAuditRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{ID: "a-1", Action: domain.AuditActionEbbaApprove}))
	require.NoError(t, repo.Create(ctx, &domain.AuditLog{ID: "a-2", Action: domain.AuditActionContractUpdate}))

	logs, err := usecase.NewAuditUseCase(repo).ListAuditLogs(ctx, domain.AuditFilter{Action: domain.AuditActionContractUpdate})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "a-2", logs[0].ID)
}
