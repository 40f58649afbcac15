package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// CalculatorUseCase exposes the borrowing base and late fee calculators.
// Terms come from the request when given, otherwise from the company's
// active contract.
type CalculatorUseCase struct {
	contracts ContractProvider
	metrics   *metrics.Metrics
}

// NewCalculatorUseCase creates a new CalculatorUseCase.
func NewCalculatorUseCase(contracts ContractProvider, m *metrics.Metrics) *CalculatorUseCase {
	return &CalculatorUseCase{contracts: contracts, metrics: m}
}

// BorrowingBaseInput represents a borrowing base calculation request.
type BorrowingBaseInput struct {
	CompanyID string
	Inputs    domain.BorrowingBaseInputs
	Weights   *domain.BorrowingBaseWeights
}

// BorrowingBaseResult is a calculated borrowing base and the inputs the
// weights make visible.
type BorrowingBaseResult struct {
	BorrowingBase decimal.Decimal
	Weights       domain.BorrowingBaseWeights
	VisibleFields []domain.BorrowingBaseField
}

// CalculateBorrowingBase computes the borrowing base. It never validates the
// inputs; null inputs count as zero.
func (uc *CalculatorUseCase) CalculateBorrowingBase(ctx context.Context, input BorrowingBaseInput) (*BorrowingBaseResult, error) {
	weights, err := uc.weights(ctx, input.CompanyID, input.Weights)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BorrowingBaseCalculations.Inc()
	}

	return &BorrowingBaseResult{
		BorrowingBase: domain.CalculateBorrowingBase(input.Inputs, weights),
		Weights:       weights,
		VisibleFields: weights.VisibleFields(),
	}, nil
}

func (uc *CalculatorUseCase) weights(ctx context.Context, companyID string, given *domain.BorrowingBaseWeights) (domain.BorrowingBaseWeights, error) {
	if given != nil {
		if err := given.Validate(); err != nil {
			return domain.BorrowingBaseWeights{}, err
		}
		return *given, nil
	}
	if companyID == "" {
		return domain.BorrowingBaseWeights{}, domain.ErrContractNotFound
	}
	contract, err := uc.contracts.GetActiveContract(ctx, companyID)
	if err != nil {
		return domain.BorrowingBaseWeights{}, err
	}
	return contract.BorrowingBaseWeights, nil
}

// LateFeeInput represents a late fee lookup.
type LateFeeInput struct {
	CompanyID   string
	DaysPastDue int
	Structure   map[string]string
}

// LateFeeResult is the resolved multiplier and the schedule it came from.
type LateFeeResult struct {
	Fee      decimal.Decimal
	Schedule domain.LateFeeSchedule
}

// ResolveLateFee returns the late fee multiplier for a number of days past due.
func (uc *CalculatorUseCase) ResolveLateFee(ctx context.Context, input LateFeeInput) (*LateFeeResult, error) {
	var schedule domain.LateFeeSchedule
	switch {
	case input.Structure != nil:
		parsed, err := domain.ParseLateFeeStructure(input.Structure)
		if err != nil {
			return nil, err
		}
		schedule = parsed
	case input.CompanyID != "":
		contract, err := uc.contracts.GetActiveContract(ctx, input.CompanyID)
		if err != nil {
			return nil, err
		}
		schedule = contract.LateFeeSchedule
	default:
		return nil, domain.ErrContractNotFound
	}

	if uc.metrics != nil {
		uc.metrics.LateFeeResolutions.Inc()
	}

	return &LateFeeResult{Fee: schedule.Resolve(input.DaysPastDue), Schedule: schedule}, nil
}
