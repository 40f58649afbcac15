package postgres

import (
	"context"
	"errors"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// EbbaApplicationRepository implements usecase.EbbaApplicationRepository.
type EbbaApplicationRepository struct {
	queries *generated.Queries
}

// NewEbbaApplicationRepository creates a new EbbaApplicationRepository.
func NewEbbaApplicationRepository(pool *pgxpool.Pool) *EbbaApplicationRepository {
	return newEbbaApplicationRepository(pool)
}

func newEbbaApplicationRepository(db generated.DBTX) *EbbaApplicationRepository {
	return &EbbaApplicationRepository{queries: generated.New(db)}
}

// Create creates a drafted certification.
func (r *EbbaApplicationRepository) Create(ctx context.Context, app *domain.EbbaApplication) error {
	return r.queries.CreateEbbaApplication(ctx, generated.CreateEbbaApplicationParams{
		ID:                        app.ID,
		CompanyID:                 app.CompanyID,
		Status:                    string(app.Status),
		ApplicationDate:           dateToPgDate(app.ApplicationDate),
		MonthlyAccountsReceivable: nullDecimalToNumeric(app.Inputs.MonthlyAccountsReceivable),
		MonthlyInventory:          nullDecimalToNumeric(app.Inputs.MonthlyInventory),
		MonthlyCash:               nullDecimalToNumeric(app.Inputs.MonthlyCash),
		AmountCashInDaca:          nullDecimalToNumeric(app.Inputs.AmountCashInDaca),
		AmountCustom:              nullDecimalToNumeric(app.Inputs.AmountCustom),
		AmountCustomNote:          app.Inputs.AmountCustomNote,
		CalculatedBorrowingBase:   decimalToNumeric(app.CalculatedBorrowingBase),
		ExpiresDate:               dateToPgDate(app.ExpiresDate),
		RejectionNote:             app.RejectionNote,
		SubmittedByUserID:         app.SubmittedByUserID,
		ReviewedByUserID:          app.ReviewedByUserID,
		SubmittedAt:               timePtrToPgTimestamptz(app.SubmittedAt),
		ApprovedAt:                timePtrToPgTimestamptz(app.ApprovedAt),
		RejectedAt:                timePtrToPgTimestamptz(app.RejectedAt),
		CreatedAt:                 timeToPgTimestamptz(app.CreatedAt),
		UpdatedAt:                 timeToPgTimestamptz(app.UpdatedAt),
	})
}

// GetByID retrieves a certification by ID.
func (r *EbbaApplicationRepository) GetByID(ctx context.Context, id string) (*domain.EbbaApplication, error) {
	row, err := r.queries.GetEbbaApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEbbaApplicationNotFound
		}

		return nil, err
	}

	return rowToEbbaApplication(row), nil
}

// GetByIDForUpdate retrieves a certification by ID with a FOR UPDATE lock.
func (r *EbbaApplicationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.EbbaApplication, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := queries.GetEbbaApplicationByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEbbaApplicationNotFound
		}

		return nil, err
	}

	return rowToEbbaApplication(row), nil
}

// Update writes the review state of a certification.
func (r *EbbaApplicationRepository) Update(ctx context.Context, tx usecase.Transaction, app *domain.EbbaApplication) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.UpdateEbbaApplication(ctx, generated.UpdateEbbaApplicationParams{
		ID:                      app.ID,
		Status:                  string(app.Status),
		CalculatedBorrowingBase: decimalToNumeric(app.CalculatedBorrowingBase),
		ExpiresDate:             dateToPgDate(app.ExpiresDate),
		RejectionNote:           app.RejectionNote,
		SubmittedByUserID:       app.SubmittedByUserID,
		ReviewedByUserID:        app.ReviewedByUserID,
		SubmittedAt:             timePtrToPgTimestamptz(app.SubmittedAt),
		ApprovedAt:              timePtrToPgTimestamptz(app.ApprovedAt),
		RejectedAt:              timePtrToPgTimestamptz(app.RejectedAt),
		UpdatedAt:               timeToPgTimestamptz(app.UpdatedAt),
	})
}

// ListByCompany lists a company's certifications, newest first.
func (r *EbbaApplicationRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error) {
	rows, err := r.queries.ListEbbaApplicationsByCompany(ctx, generated.ListEbbaApplicationsByCompanyParams{
		CompanyID: companyID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	apps := make([]*domain.EbbaApplication, 0, len(rows))
	for _, row := range rows {
		apps = append(apps, rowToEbbaApplication(row))
	}

	return apps, nil
}

// GetLatestApproved returns the most recent approved certification dated on
// or before asOf.
func (r *EbbaApplicationRepository) GetLatestApproved(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error) {
	row, err := r.queries.GetLatestApprovedEbbaApplication(ctx, generated.GetLatestApprovedEbbaApplicationParams{
		CompanyID:       companyID,
		ApplicationDate: dateToPgDate(asOf),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEbbaApplicationNotFound
		}

		return nil, err
	}

	return rowToEbbaApplication(row), nil
}

func rowToEbbaApplication(row generated.EbbaApplication) *domain.EbbaApplication {
	return &domain.EbbaApplication{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		Status:          domain.EbbaApplicationStatus(row.Status),
		ApplicationDate: pgDateToDate(row.ApplicationDate),
		Inputs: domain.BorrowingBaseInputs{
			MonthlyAccountsReceivable: numericToNullDecimal(row.MonthlyAccountsReceivable),
			MonthlyInventory:          numericToNullDecimal(row.MonthlyInventory),
			MonthlyCash:               numericToNullDecimal(row.MonthlyCash),
			AmountCashInDaca:          numericToNullDecimal(row.AmountCashInDaca),
			AmountCustom:              numericToNullDecimal(row.AmountCustom),
			AmountCustomNote:          row.AmountCustomNote,
		},
		CalculatedBorrowingBase: numericToDecimal(row.CalculatedBorrowingBase),
		ExpiresDate:             pgDateToDate(row.ExpiresDate),
		RejectionNote:           row.RejectionNote,
		SubmittedByUserID:       row.SubmittedByUserID,
		ReviewedByUserID:        row.ReviewedByUserID,
		SubmittedAt:             pgTimestamptzToTimePtr(row.SubmittedAt),
		ApprovedAt:              pgTimestamptzToTimePtr(row.ApprovedAt),
		RejectedAt:              pgTimestamptzToTimePtr(row.RejectedAt),
		CreatedAt:               row.CreatedAt.Time,
		UpdatedAt:               row.UpdatedAt.Time,
	}
}
