package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

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

func TestContractUseCase_GetActiveContractCachesMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	repo := mocks.NewMockContractRepository(inventoryContract())
	m := metrics.New(prometheus.NewRegistry())

	var stored []byte
	gomock.InOrder(
		cache.EXPECT().Get(gomock.Any(), "active:co-1").Return(nil, usecase.ErrCacheMiss),
		cache.EXPECT().
			Set(gomock.Any(), "active:co-1", gomock.Any(), 5*time.Minute).
			DoAndReturn(func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
				stored = value
				return nil
			}),
		cache.EXPECT().Get(gomock.Any(), "active:co-1").DoAndReturn(func(ctx context.Context, key string) ([]byte, error) {
			return stored, nil
		}),
	)

	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), repo, mocks.NewMockOutboxRepository(), nil, cache, 0, mocks.NewMockIDGenerator(), m)

	first, err := uc.GetActiveContract(context.Background(), "co-1")
	require.NoError(t, err)

	repo.GetActiveByCompanyFunc = func(ctx context.Context, companyID string) (*domain.Contract, error) {
		return nil, errors.New("repository must not be read on a cache hit")
	}

	second, err := uc.GetActiveContract(context.Background(), "co-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.InterestRate.Equal(second.InterestRate))
	assert.Equal(t, first.LateFeeSchedule.Structure(), second.LateFeeSchedule.Structure())
	assert.True(t, domain.IsZeroDate(second.StartDate))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("contract", "hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheLookups.WithLabelValues("contract", "miss")))
}

func TestContractUseCase_GetActiveContractCacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), mocks.NewMockContractRepository(inventoryContract()), mocks.NewMockOutboxRepository(), nil, cache, time.Minute, mocks.NewMockIDGenerator(), nil)

	contract, err := uc.GetActiveContract(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Equal(t, "contract-1", contract.ID)
}

func TestContractUseCase_GetActiveContractMalformedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return([]byte("{not json"), nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), mocks.NewMockContractRepository(inventoryContract()), mocks.NewMockOutboxRepository(), nil, cache, time.Minute, mocks.NewMockIDGenerator(), nil)

	contract, err := uc.GetActiveContract(context.Background(), "co-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), contract.Version)
}

func TestContractUseCase_UpsertContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Delete(gomock.Any(), "active:co-1").Return(nil).Times(2)

	repo := mocks.NewMockContractRepository()
	outbox := mocks.NewMockOutboxRepository()
	audit := mocks.NewMockAuditRepository()
	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), repo, outbox, audit, cache, time.Minute, mocks.NewMockIDGenerator(), nil)

	input := usecase.UpsertContractInput{
		CompanyID:        "co-1",
		ProductType:      domain.ProductTypeLineOfCredit,
		InterestRate:     dec("0.0005"),
		MaximumAmount:    dec("250000"),
		LateFeeStructure: map[string]string{"1-14": "0.25", "15-29": "0.5", "30+": "1.0"},
		BorrowingBaseWeights: domain.BorrowingBaseWeights{
			AccountsReceivable: dec("0.85"),
			Cash:               dec("1"),
		},
		StartDate: day("2024-01-01"),
	}

	first, err := uc.UpsertContract(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Version)
	assert.True(t, first.IsLineOfCredit())

	input.InterestRate = dec("0.0006")
	second, err := uc.UpsertContract(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Version)

	versions := repo.Versions("co-1")
	require.Len(t, versions, 2)
	assert.True(t, versions[0].InterestRate.Equal(dec("0.0005")), "earlier version must be unchanged")

	events := outbox.Events()
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventTypeContractVersionAdded, events[1].EventType)
	assert.Equal(t, float64(2), events[1].Payload["version"])

	require.Len(t, audit.Logs(), 2)
	assert.Equal(t, domain.AuditActionContractUpdate, audit.Logs()[1].Action)
}

func TestContractUseCase_UpsertContractValidation(t *testing.T) {
	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), mocks.NewMockContractRepository(), mocks.NewMockOutboxRepository(), nil, nil, 0, mocks.NewMockIDGenerator(), nil)

	_, err := uc.UpsertContract(context.Background(), usecase.UpsertContractInput{
		CompanyID:        "co-1",
		ProductType:      domain.ProductTypeInvoiceFinancing,
		InterestRate:     dec("1.5"),
		LateFeeStructure: map[string]string{"1-14": "0.25"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInterestRate)

	_, err = uc.UpsertContract(context.Background(), usecase.UpsertContractInput{
		CompanyID:        "co-1",
		ProductType:      domain.ProductTypeInvoiceFinancing,
		InterestRate:     dec("0.001"),
		LateFeeStructure: map[string]string{"soon": "0.25"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidLateFeeTier)
}

func TestContractCacheEntryIsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrCacheMiss)
	cache.EXPECT().
		Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, value []byte, ttl time.Duration) error {
			var raw map[string]any
			require.NoError(t, json.Unmarshal(value, &raw))
			assert.Equal(t, "inventory_financing", raw["product_type"])
			assert.NotContains(t, raw, "start_date")
			return nil
		})

	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), mocks.NewMockContractRepository(inventoryContract()), mocks.NewMockOutboxRepository(), nil, cache, time.Minute, mocks.NewMockIDGenerator(), nil)
	_, err := uc.GetActiveContract(context.Background(), "co-1")
	require.NoError(t, err)
}

func TestContractUseCase_ListContractVersions(t *testing.T) {
	first := inventoryContract()
	second := inventoryContract()
	second.ID = "contract-2"
	second.Version = 2

	uc := usecase.NewContractUseCase(mocks.NewMockTransactionManager(), mocks.NewMockContractRepository(first, second), mocks.NewMockOutboxRepository(), nil, nil, 0, mocks.NewMockIDGenerator(), nil)

	versions, err := uc.ListContractVersions(context.Background(), "co-1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, int64(2), versions[0].Version)
	assert.Equal(t, int64(1), versions[1].Version)

	_, err = uc.ListContractVersions(context.Background(), "co-9")
	assert.ErrorIs(t, err, domain.ErrContractNotFound)
}
