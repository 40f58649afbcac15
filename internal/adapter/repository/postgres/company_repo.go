package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// CompanyRepository implements usecase.CompanyRepository.
type CompanyRepository struct {
	queries *generated.Queries
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return newCompanyRepository(pool)
}

func newCompanyRepository(db generated.DBTX) *CompanyRepository {
	return &CompanyRepository{queries: generated.New(db)}
}

// Create creates a new company.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	_, err := r.queries.CreateCompany(ctx, generated.CreateCompanyParams{
		ID:                    company.ID,
		Name:                  company.Name,
		Identifier:            company.Identifier,
		HoldingAccountBalance: decimalToNumeric(company.HoldingAccountBalance),
		Version:               company.Version,
		CreatedAt:             timeToPgTimestamptz(company.CreatedAt),
		UpdatedAt:             timeToPgTimestamptz(company.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateIdentifier
	}

	return err
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row, err := r.queries.GetCompanyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}

		return nil, err
	}

	return rowToCompany(row), nil
}

// GetByIDForUpdate retrieves a company by ID with a FOR UPDATE lock.
func (r *CompanyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := queries.GetCompanyByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}

		return nil, err
	}

	return rowToCompany(row), nil
}

// UpdateHoldingBalance sets the holding account balance of a company.
func (r *CompanyRepository) UpdateHoldingBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.UpdateCompanyHoldingBalance(ctx, generated.UpdateCompanyHoldingBalanceParams{
		ID:                    id,
		HoldingAccountBalance: decimalToNumeric(balance),
		UpdatedAt:             timeToPgTimestamptz(updatedAt),
	})
}

// List lists companies ordered by identifier.
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Company, error) {
	rows, err := r.queries.ListCompanies(ctx, generated.ListCompaniesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	companies := make([]*domain.Company, 0, len(rows))
	for _, row := range rows {
		companies = append(companies, rowToCompany(row))
	}

	return companies, nil
}

func rowToCompany(row generated.Company) *domain.Company {
	return &domain.Company{
		ID:                    row.ID,
		Name:                  row.Name,
		Identifier:            row.Identifier,
		HoldingAccountBalance: numericToDecimal(row.HoldingAccountBalance),
		Version:               row.Version,
		CreatedAt:             row.CreatedAt.Time,
		UpdatedAt:             row.UpdatedAt.Time,
	}
}
