package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// itemsCoveredRecord is the stored form of domain.ItemsCovered.
type itemsCoveredRecord struct {
	LoanIDs                     []string        `json:"loan_ids"`
	ToAccountFees               bool            `json:"to_account_fees"`
	RequestedToAccountFees      decimal.Decimal `json:"requested_to_account_fees"`
	RequestedFromHoldingAccount decimal.Decimal `json:"requested_from_holding_account"`
}

func marshalItemsCovered(items domain.ItemsCovered) ([]byte, error) {
	loanIDs := items.LoanIDs
	if loanIDs == nil {
		loanIDs = []string{}
	}
	return json.Marshal(itemsCoveredRecord{
		LoanIDs:                     loanIDs,
		ToAccountFees:               items.ToAccountFees,
		RequestedToAccountFees:      items.RequestedToAccountFees,
		RequestedFromHoldingAccount: items.RequestedFromHoldingAccount,
	})
}

func unmarshalItemsCovered(data []byte) (domain.ItemsCovered, error) {
	if len(data) == 0 {
		return domain.ItemsCovered{}, nil
	}

	var rec itemsCoveredRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.ItemsCovered{}, err
	}

	return domain.ItemsCovered{
		LoanIDs:                     rec.LoanIDs,
		ToAccountFees:               rec.ToAccountFees,
		RequestedToAccountFees:      rec.RequestedToAccountFees,
		RequestedFromHoldingAccount: rec.RequestedFromHoldingAccount,
	}, nil
}

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	queries *generated.Queries
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return newPaymentRepository(pool)
}

func newPaymentRepository(db generated.DBTX) *PaymentRepository {
	return &PaymentRepository{queries: generated.New(db)}
}

// Create creates a submitted payment within a transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	items, err := marshalItemsCovered(payment.ItemsCovered)
	if err != nil {
		return err
	}

	_, err = queries.CreatePayment(ctx, generated.CreatePaymentParams{
		ID:                   payment.ID,
		CompanyID:            payment.CompanyID,
		Method:               string(payment.Method),
		State:                string(payment.State),
		RequestedAmount:      decimalToNumeric(payment.RequestedAmount),
		RequestedPaymentDate: dateToPgDate(payment.RequestedPaymentDate),
		Amount:               settledAmountToNumeric(payment),
		DepositDate:          dateToPgDate(payment.DepositDate),
		SettlementDate:       dateToPgDate(payment.SettlementDate),
		ItemsCovered:         items,
		SubmittedByUserID:    payment.SubmittedByUserID,
		SettledByUserID:      payment.SettledByUserID,
		SubmittedAt:          timeToPgTimestamptz(payment.SubmittedAt),
		SettledAt:            timePtrToPgTimestamptz(payment.SettledAt),
		CreatedAt:            timeToPgTimestamptz(payment.CreatedAt),
		UpdatedAt:            timeToPgTimestamptz(payment.UpdatedAt),
	})

	return err
}

// GetByID retrieves a payment by ID.
func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return rowToPayment(row)
}

// GetByIDForUpdate retrieves a payment by ID with a FOR UPDATE lock.
func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := queries.GetPaymentByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}

		return nil, err
	}

	return rowToPayment(row)
}

// MarkSettled writes the settlement details of a payment.
func (r *PaymentRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	items, err := marshalItemsCovered(payment.ItemsCovered)
	if err != nil {
		return err
	}

	return queries.SettlePayment(ctx, generated.SettlePaymentParams{
		ID:              payment.ID,
		State:           string(payment.State),
		Amount:          decimalToNumeric(payment.Amount),
		DepositDate:     dateToPgDate(payment.DepositDate),
		SettlementDate:  dateToPgDate(payment.SettlementDate),
		ItemsCovered:    items,
		SettledByUserID: payment.SettledByUserID,
		SettledAt:       timePtrToPgTimestamptz(payment.SettledAt),
		UpdatedAt:       timeToPgTimestamptz(payment.UpdatedAt),
	})
}

// The settled amount is NULL until the bank records it.
func settledAmountToNumeric(payment *domain.Payment) pgtype.Numeric {
	if !payment.IsSettled() {
		return pgtype.Numeric{}
	}
	return decimalToNumeric(payment.Amount)
}

func rowToPayment(row generated.Payment) (*domain.Payment, error) {
	items, err := unmarshalItemsCovered(row.ItemsCovered)
	if err != nil {
		return nil, fmt.Errorf("payment %s: items covered: %w", row.ID, err)
	}

	return &domain.Payment{
		ID:                   row.ID,
		CompanyID:            row.CompanyID,
		Method:               domain.PaymentMethod(row.Method),
		State:                domain.PaymentState(row.State),
		RequestedAmount:      numericToDecimal(row.RequestedAmount),
		RequestedPaymentDate: pgDateToDate(row.RequestedPaymentDate),
		Amount:               numericToDecimal(row.Amount),
		DepositDate:          pgDateToDate(row.DepositDate),
		SettlementDate:       pgDateToDate(row.SettlementDate),
		ItemsCovered:         items,
		SubmittedByUserID:    row.SubmittedByUserID,
		SettledByUserID:      row.SettledByUserID,
		SubmittedAt:          row.SubmittedAt.Time,
		SettledAt:            pgTimestamptzToTimePtr(row.SettledAt),
		CreatedAt:            row.CreatedAt.Time,
		UpdatedAt:            row.UpdatedAt.Time,
	}, nil
}
