package usecase

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

// LoanUseCase handles loan lookup and booking.
type LoanUseCase struct {
	companyRepo CompanyRepository
	loanRepo    LoanRepository
	contracts   ContractProvider
	idGen       IDGenerator
}

// NewLoanUseCase creates a new LoanUseCase.
func NewLoanUseCase(companyRepo CompanyRepository, loanRepo LoanRepository, contracts ContractProvider, idGen IDGenerator) *LoanUseCase {
	return &LoanUseCase{
		companyRepo: companyRepo,
		loanRepo:    loanRepo,
		contracts:   contracts,
		idGen:       idGen,
	}
}

// CreateLoanInput represents input for booking a loan.
type CreateLoanInput struct {
	CompanyID            string
	Identifier           string
	Amount               decimal.Decimal
	OriginationDate      civil.Date
	MaturityDate         civil.Date
	AdjustedMaturityDate civil.Date
	Status               domain.LoanStatus
}

// CreateLoan books a loan with its full amount outstanding as principal.
func (uc *LoanUseCase) CreateLoan(ctx context.Context, input CreateLoanInput) (*domain.Loan, error) {
	status := input.Status
	if status == "" {
		status = domain.LoanStatusFunded
	}

	now := time.Now().UTC()
	loan := &domain.Loan{
		ID:                   uc.idGen.Generate(),
		CompanyID:            input.CompanyID,
		Identifier:           input.Identifier,
		Status:               status,
		Amount:               input.Amount,
		OriginationDate:      input.OriginationDate,
		MaturityDate:         input.MaturityDate,
		AdjustedMaturityDate: input.AdjustedMaturityDate,
		Outstanding: domain.LoanBalance{
			OutstandingPrincipalBalance: input.Amount,
			OutstandingInterest:         decimal.Zero,
			OutstandingFees:             decimal.Zero,
		},
		BalancesAsOf: input.OriginationDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := loan.Validate(); err != nil {
		return nil, err
	}

	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	return loan, nil
}

// GetLoan retrieves a loan by ID.
func (uc *LoanUseCase) GetLoan(ctx context.Context, id string) (*domain.Loan, error) {
	return uc.loanRepo.GetByID(ctx, id)
}

// ListLoansByCompanyInput represents input for listing a company's loans.
type ListLoansByCompanyInput struct {
	CompanyID string
	Limit     int
	Offset    int
}

// ListLoansByCompany lists loans for a company.
func (uc *LoanUseCase) ListLoansByCompany(ctx context.Context, input ListLoansByCompanyInput) ([]*domain.Loan, error) {
	return uc.loanRepo.ListByCompany(ctx, input.CompanyID, clampLimit(input.Limit), max(input.Offset, 0))
}

// LoanStatement is a loan's balance projected to a date.
type LoanStatement struct {
	Loan              *domain.Loan
	AsOf              civil.Date
	DaysPastDue       int
	LateFeeMultiplier decimal.Decimal
	Projected         domain.LoanBalance
}

// GetLoanStatement projects a loan's balance to asOf using the company's
// active contract. Without a contract the stored balance is returned.
func (uc *LoanUseCase) GetLoanStatement(ctx context.Context, id string, asOf civil.Date) (*LoanStatement, error) {
	loan, err := uc.loanRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contract, err := uc.contracts.GetActiveContract(ctx, loan.CompanyID)
	if err != nil && !errors.Is(err, domain.ErrContractNotFound) {
		return nil, err
	}

	statement := &LoanStatement{
		Loan:              loan,
		AsOf:              asOf,
		DaysPastDue:       loan.DaysPastDue(asOf),
		LateFeeMultiplier: decimal.Zero,
		Projected:         loan.ProjectBalance(contract, asOf),
	}
	if contract != nil {
		statement.LateFeeMultiplier = contract.LateFeeSchedule.Resolve(statement.DaysPastDue)
	}

	return statement, nil
}
