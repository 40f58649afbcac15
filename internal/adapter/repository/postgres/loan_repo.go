package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// LoanRepository implements usecase.LoanRepository.
type LoanRepository struct {
	queries *generated.Queries
}

// NewLoanRepository creates a new LoanRepository.
func NewLoanRepository(pool *pgxpool.Pool) *LoanRepository {
	return newLoanRepository(pool)
}

func newLoanRepository(db generated.DBTX) *LoanRepository {
	return &LoanRepository{queries: generated.New(db)}
}

// Create creates a new loan.
func (r *LoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	_, err := r.queries.CreateLoan(ctx, generated.CreateLoanParams{
		ID:                          loan.ID,
		CompanyID:                   loan.CompanyID,
		Identifier:                  loan.Identifier,
		Status:                      string(loan.Status),
		PaymentStatus:               string(loan.PaymentStatus),
		Amount:                      decimalToNumeric(loan.Amount),
		OriginationDate:             dateToPgDate(loan.OriginationDate),
		MaturityDate:                dateToPgDate(loan.MaturityDate),
		AdjustedMaturityDate:        dateToPgDate(loan.AdjustedMaturityDate),
		OutstandingPrincipalBalance: decimalToNumeric(loan.Outstanding.OutstandingPrincipalBalance),
		OutstandingInterest:         decimalToNumeric(loan.Outstanding.OutstandingInterest),
		OutstandingFees:             decimalToNumeric(loan.Outstanding.OutstandingFees),
		BalancesAsOf:                dateToPgDate(loan.BalancesAsOf),
		ClosedAt:                    timePtrToPgTimestamptz(loan.ClosedAt),
		Version:                     loan.Version,
		CreatedAt:                   timeToPgTimestamptz(loan.CreatedAt),
		UpdatedAt:                   timeToPgTimestamptz(loan.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateIdentifier
	}

	return err
}

// GetByID retrieves a loan by ID.
func (r *LoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	row, err := r.queries.GetLoanByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}

		return nil, err
	}

	return rowToLoan(row), nil
}

// GetByIDs retrieves loans by IDs ordered by ID. Unknown IDs are skipped.
func (r *LoanRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error) {
	rows, err := r.queries.GetLoansByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return rowsToLoans(rows), nil
}

// GetByIDsForUpdate retrieves loans by IDs with FOR UPDATE locks. Rows are
// locked in ID order.
func (r *LoanRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Loan, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	rows, err := queries.GetLoansByIDsForUpdate(ctx, ids)
	if err != nil {
		return nil, err
	}

	return rowsToLoans(rows), nil
}

// ListByCompany lists a company's loans with pagination.
func (r *LoanRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.Loan, error) {
	rows, err := r.queries.ListLoansByCompany(ctx, generated.ListLoansByCompanyParams{
		CompanyID: companyID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToLoans(rows), nil
}

// UpdateBalances writes the settled balances and status of a loan.
func (r *LoanRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.UpdateLoanBalances(ctx, generated.UpdateLoanBalancesParams{
		ID:                          loan.ID,
		Status:                      string(loan.Status),
		PaymentStatus:               string(loan.PaymentStatus),
		OutstandingPrincipalBalance: decimalToNumeric(loan.Outstanding.OutstandingPrincipalBalance),
		OutstandingInterest:         decimalToNumeric(loan.Outstanding.OutstandingInterest),
		OutstandingFees:             decimalToNumeric(loan.Outstanding.OutstandingFees),
		BalancesAsOf:                dateToPgDate(loan.BalancesAsOf),
		ClosedAt:                    timePtrToPgTimestamptz(loan.ClosedAt),
		UpdatedAt:                   timeToPgTimestamptz(loan.UpdatedAt),
	})
}

func rowsToLoans(rows []generated.Loan) []*domain.Loan {
	loans := make([]*domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, rowToLoan(row))
	}
	return loans
}

func rowToLoan(row generated.Loan) *domain.Loan {
	return &domain.Loan{
		ID:                   row.ID,
		CompanyID:            row.CompanyID,
		Identifier:           row.Identifier,
		Status:               domain.LoanStatus(row.Status),
		PaymentStatus:        domain.PaymentStatus(row.PaymentStatus),
		Amount:               numericToDecimal(row.Amount),
		OriginationDate:      pgDateToDate(row.OriginationDate),
		MaturityDate:         pgDateToDate(row.MaturityDate),
		AdjustedMaturityDate: pgDateToDate(row.AdjustedMaturityDate),
		Outstanding: domain.LoanBalance{
			OutstandingPrincipalBalance: numericToDecimal(row.OutstandingPrincipalBalance),
			OutstandingInterest:         numericToDecimal(row.OutstandingInterest),
			OutstandingFees:             numericToDecimal(row.OutstandingFees),
		},
		BalancesAsOf: pgDateToDate(row.BalancesAsOf),
		ClosedAt:     pgTimestamptzToTimePtr(row.ClosedAt),
		Version:      row.Version,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
