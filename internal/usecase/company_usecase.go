package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

// CompanyUseCase handles borrower onboarding and lookup.
type CompanyUseCase struct {
	companyRepo CompanyRepository
	idGen       IDGenerator
}

// NewCompanyUseCase creates a new CompanyUseCase.
func NewCompanyUseCase(companyRepo CompanyRepository, idGen IDGenerator) *CompanyUseCase {
	return &CompanyUseCase{
		companyRepo: companyRepo,
		idGen:       idGen,
	}
}

// CreateCompanyInput represents input for registering a borrower.
type CreateCompanyInput struct {
	Name       string
	Identifier string
}

// CreateCompany registers a borrower with an empty holding account.
func (uc *CompanyUseCase) CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	now := time.Now().UTC()
	company := &domain.Company{
		ID:                    uc.idGen.Generate(),
		Name:                  strings.TrimSpace(input.Name),
		Identifier:            input.Identifier,
		HoldingAccountBalance: decimal.Zero,
		Version:               1,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany retrieves a company by ID.
func (uc *CompanyUseCase) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return uc.companyRepo.GetByID(ctx, id)
}

// ListCompanies lists companies ordered by identifier.
func (uc *CompanyUseCase) ListCompanies(ctx context.Context, limit, offset int) ([]*domain.Company, error) {
	return uc.companyRepo.List(ctx, clampLimit(limit), max(offset, 0))
}
