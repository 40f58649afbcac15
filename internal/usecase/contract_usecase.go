package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// ContractUseCase reads and versions company contracts. Active contracts are
// cached because every effect calculation needs one.
type ContractUseCase struct {
	txManager    TransactionManager
	contractRepo ContractRepository
	outboxRepo   OutboxRepository
	auditRepo    AuditRepository
	cache        Cache
	cacheTTL     time.Duration
	idGen        IDGenerator
	metrics      *metrics.Metrics
	logger       zerolog.Logger
}

// NewContractUseCase creates a new ContractUseCase. cache may be nil.
func NewContractUseCase(
	txManager TransactionManager,
	contractRepo ContractRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	cache Cache,
	cacheTTL time.Duration,
	idGen IDGenerator,
	m *metrics.Metrics,
) *ContractUseCase {
	if cacheTTL <= 0 {
		cacheTTL = DefaultContractCacheTTL
	}
	return &ContractUseCase{
		txManager:    txManager,
		contractRepo: contractRepo,
		outboxRepo:   outboxRepo,
		auditRepo:    auditRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		idGen:        idGen,
		metrics:      m,
		logger:       log.Logger,
	}
}

// WithLogger sets the logger used for cache failures.
func (uc *ContractUseCase) WithLogger(l zerolog.Logger) *ContractUseCase {
	uc.logger = l
	return uc
}

func contractCacheKey(companyID string) string {
	return "active:" + companyID
}

// GetActiveContract returns the latest contract version for a company.
func (uc *ContractUseCase) GetActiveContract(ctx context.Context, companyID string) (*domain.Contract, error) {
	if uc.cache != nil {
		data, err := uc.cache.Get(ctx, contractCacheKey(companyID))
		switch {
		case err == nil:
			var entry contractCacheEntry
			if jsonErr := json.Unmarshal(data, &entry); jsonErr == nil {
				if contract, convErr := entry.toDomain(); convErr == nil {
					uc.recordCache("hit")
					return contract, nil
				}
			}
			uc.logger.Warn().Str("company_id", companyID).Msg("discarding malformed cached contract")
		case errors.Is(err, ErrCacheMiss):
		default:
			uc.logger.Warn().Err(err).Str("company_id", companyID).Msg("contract cache read failed")
		}
		uc.recordCache("miss")
	}

	contract, err := uc.contractRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(newContractCacheEntry(contract)); err == nil {
			if err := uc.cache.Set(ctx, contractCacheKey(companyID), data, uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Str("company_id", companyID).Msg("contract cache write failed")
			}
		}
	}

	return contract, nil
}

// contractCacheEntry is the cached form of a contract. Dates are kept as
// strings so that unset dates survive the round trip.
type contractCacheEntry struct {
	ID                   string                      `json:"id"`
	CompanyID            string                      `json:"company_id"`
	Version              int64                       `json:"version"`
	ProductType          domain.ProductType          `json:"product_type"`
	InterestRate         decimal.Decimal             `json:"interest_rate"`
	MaximumAmount        decimal.Decimal             `json:"maximum_amount"`
	LateFeeStructure     map[string]string           `json:"late_fee_structure"`
	BorrowingBaseWeights domain.BorrowingBaseWeights `json:"borrowing_base_weights"`
	StartDate            string                      `json:"start_date,omitempty"`
	EndDate              string                      `json:"end_date,omitempty"`
	CreatedAt            time.Time                   `json:"created_at"`
}

func newContractCacheEntry(c *domain.Contract) contractCacheEntry {
	return contractCacheEntry{
		ID:                   c.ID,
		CompanyID:            c.CompanyID,
		Version:              c.Version,
		ProductType:          c.ProductType,
		InterestRate:         c.InterestRate,
		MaximumAmount:        c.MaximumAmount,
		LateFeeStructure:     c.LateFeeSchedule.Structure(),
		BorrowingBaseWeights: c.BorrowingBaseWeights,
		StartDate:            domain.FormatOptionalDate(c.StartDate),
		EndDate:              domain.FormatOptionalDate(c.EndDate),
		CreatedAt:            c.CreatedAt,
	}
}

func (e contractCacheEntry) toDomain() (*domain.Contract, error) {
	schedule, err := domain.ParseLateFeeStructure(e.LateFeeStructure)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseOptionalDate(e.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseOptionalDate(e.EndDate)
	if err != nil {
		return nil, err
	}
	return &domain.Contract{
		ID:                   e.ID,
		CompanyID:            e.CompanyID,
		Version:              e.Version,
		ProductType:          e.ProductType,
		InterestRate:         e.InterestRate,
		MaximumAmount:        e.MaximumAmount,
		LateFeeSchedule:      schedule,
		BorrowingBaseWeights: e.BorrowingBaseWeights,
		StartDate:            start,
		EndDate:              end,
		CreatedAt:            e.CreatedAt,
	}, nil
}

func (uc *ContractUseCase) recordCache(result string) {
	if uc.metrics != nil {
		uc.metrics.CacheLookups.WithLabelValues("contract", result).Inc()
	}
}

// UpsertContractInput describes a new contract version.
type UpsertContractInput struct {
	CompanyID            string
	ProductType          domain.ProductType
	InterestRate         decimal.Decimal
	MaximumAmount        decimal.Decimal
	LateFeeStructure     map[string]string
	BorrowingBaseWeights domain.BorrowingBaseWeights
	StartDate            civil.Date
	EndDate              civil.Date
}

// UpsertContract writes a new contract version. Earlier versions are kept
// unchanged.
func (uc *ContractUseCase) UpsertContract(ctx context.Context, input UpsertContractInput) (*domain.Contract, error) {
	schedule, err := domain.ParseLateFeeStructure(input.LateFeeStructure)
	if err != nil {
		return nil, err
	}

	current, err := uc.contractRepo.GetActiveByCompany(ctx, input.CompanyID)
	if err != nil && !errors.Is(err, domain.ErrContractNotFound) {
		return nil, err
	}

	var version int64 = 1
	if current != nil {
		version = current.Version + 1
	}

	contract := &domain.Contract{
		ID:                   uc.idGen.Generate(),
		CompanyID:            input.CompanyID,
		Version:              version,
		ProductType:          input.ProductType,
		InterestRate:         input.InterestRate,
		MaximumAmount:        input.MaximumAmount,
		LateFeeSchedule:      schedule,
		BorrowingBaseWeights: input.BorrowingBaseWeights,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		CreatedAt:            time.Now().UTC(),
	}
	if err := contract.Validate(); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.contractRepo.Create(txCtx, tx, contract); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   contract.ID,
		AggregateType: domain.AggregateTypeContract,
		EventType:     domain.EventTypeContractVersionAdded,
		Payload: domain.MarshalState(domain.ContractVersionAddedEvent{
			ContractID:  contract.ID,
			CompanyID:   contract.CompanyID,
			Version:     contract.Version,
			ProductType: string(contract.ProductType),
		}),
		CreatedAt: contract.CreatedAt,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			UserID:       domain.ActorID(ctx),
			Action:       domain.AuditActionContractUpdate,
			ResourceType: domain.AggregateTypeContract,
			ResourceID:   contract.ID,
			BeforeState:  domain.MarshalState(current),
			AfterState:   domain.MarshalState(contract),
			Status:       domain.AuditStatusSuccess,
			CreatedAt:    contract.CreatedAt,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, contractCacheKey(contract.CompanyID)); err != nil {
			uc.logger.Warn().Err(err).Str("company_id", contract.CompanyID).Msg("contract cache invalidation failed")
		}
	}

	return contract, nil
}

// ListContractVersions returns every contract version for a company, newest first.
func (uc *ContractUseCase) ListContractVersions(ctx context.Context, companyID string) ([]*domain.Contract, error) {
	contracts, err := uc.contractRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, domain.ErrContractNotFound
	}
	return contracts, nil
}
