package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return newTransactionRepository(pool)
}

func newTransactionRepository(db generated.DBTX) *TransactionRepository {
	return &TransactionRepository{queries: generated.New(db)}
}

// Create records a transaction within a transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:              txn.ID,
		PaymentID:       txn.PaymentID,
		CompanyID:       txn.CompanyID,
		LoanID:          stringToPgText(txn.LoanID),
		Type:            string(txn.Type),
		Amount:          decimalToNumeric(txn.Allocation.Amount),
		ToPrincipal:     decimalToNumeric(txn.Allocation.ToPrincipal),
		ToInterest:      decimalToNumeric(txn.Allocation.ToInterest),
		ToFees:          decimalToNumeric(txn.Allocation.ToFees),
		EffectiveDate:   dateToPgDate(txn.EffectiveDate),
		CreatedByUserID: txn.CreatedByUserID,
		CreatedAt:       timeToPgTimestamptz(txn.CreatedAt),
	})
}

// ListByPayment lists the transactions a payment produced.
func (r *TransactionRepository) ListByPayment(ctx context.Context, paymentID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// ListByLoan lists every transaction applied to a loan.
func (r *TransactionRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByLoan(ctx, stringToPgText(loanID))
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// ListByCompany lists every transaction of a company.
func (r *TransactionRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

func rowsToTransactions(rows []generated.Transaction) []*domain.Transaction {
	txns := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, &domain.Transaction{
			ID:        row.ID,
			PaymentID: row.PaymentID,
			CompanyID: row.CompanyID,
			LoanID:    row.LoanID.String,
			Type:      domain.TransactionType(row.Type),
			Allocation: domain.Allocation{
				ToPrincipal: numericToDecimal(row.ToPrincipal),
				ToInterest:  numericToDecimal(row.ToInterest),
				ToFees:      numericToDecimal(row.ToFees),
				Amount:      numericToDecimal(row.Amount),
			},
			EffectiveDate:   pgDateToDate(row.EffectiveDate),
			CreatedByUserID: row.CreatedByUserID,
			CreatedAt:       row.CreatedAt.Time,
		})
	}
	return txns
}
