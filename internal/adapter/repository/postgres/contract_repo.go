package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/postgres/generated"
	"github.com/iho/goloan/internal/usecase"
)

// weightsRecord is the stored form of domain.BorrowingBaseWeights.
type weightsRecord struct {
	AccountsReceivable decimal.Decimal `json:"monthly_accounts_receivable"`
	Inventory          decimal.Decimal `json:"monthly_inventory"`
	Cash               decimal.Decimal `json:"monthly_cash"`
	CashInDaca         decimal.Decimal `json:"amount_cash_in_daca"`
}

// ContractRepository implements usecase.ContractRepository.
type ContractRepository struct {
	queries *generated.Queries
}

// NewContractRepository creates a new ContractRepository.
func NewContractRepository(pool *pgxpool.Pool) *ContractRepository {
	return newContractRepository(pool)
}

func newContractRepository(db generated.DBTX) *ContractRepository {
	return &ContractRepository{queries: generated.New(db)}
}

// GetActiveByCompany returns the highest contract version of a company.
func (r *ContractRepository) GetActiveByCompany(ctx context.Context, companyID string) (*domain.Contract, error) {
	row, err := r.queries.GetLatestContractByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContractNotFound
		}

		return nil, err
	}

	return rowToContract(row)
}

// ListByCompany returns every contract version of a company, newest first.
func (r *ContractRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Contract, error) {
	rows, err := r.queries.ListContractsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	contracts := make([]*domain.Contract, 0, len(rows))
	for _, row := range rows {
		contract, err := rowToContract(row)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}

	return contracts, nil
}

// Create writes a new contract version within a transaction.
func (r *ContractRepository) Create(ctx context.Context, tx usecase.Transaction, contract *domain.Contract) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	lateFees, err := json.Marshal(contract.LateFeeSchedule.Structure())
	if err != nil {
		return err
	}

	weights, err := json.Marshal(weightsRecord{
		AccountsReceivable: contract.BorrowingBaseWeights.AccountsReceivable,
		Inventory:          contract.BorrowingBaseWeights.Inventory,
		Cash:               contract.BorrowingBaseWeights.Cash,
		CashInDaca:         contract.BorrowingBaseWeights.CashInDaca,
	})
	if err != nil {
		return err
	}

	_, err = queries.CreateContract(ctx, generated.CreateContractParams{
		ID:                   contract.ID,
		CompanyID:            contract.CompanyID,
		Version:              contract.Version,
		ProductType:          string(contract.ProductType),
		InterestRate:         decimalToNumeric(contract.InterestRate),
		MaximumAmount:        decimalToNumeric(contract.MaximumAmount),
		LateFeeStructure:     lateFees,
		BorrowingBaseWeights: weights,
		StartDate:            dateToPgDate(contract.StartDate),
		EndDate:              dateToPgDate(contract.EndDate),
		CreatedAt:            timeToPgTimestamptz(contract.CreatedAt),
	})

	return err
}

func rowToContract(row generated.Contract) (*domain.Contract, error) {
	structure := map[string]string{}
	if len(row.LateFeeStructure) > 0 {
		if err := json.Unmarshal(row.LateFeeStructure, &structure); err != nil {
			return nil, fmt.Errorf("contract %s: late fee structure: %w", row.ID, err)
		}
	}

	schedule, err := domain.ParseLateFeeStructure(structure)
	if err != nil {
		return nil, fmt.Errorf("contract %s: %w", row.ID, err)
	}

	var weights weightsRecord
	if len(row.BorrowingBaseWeights) > 0 {
		if err := json.Unmarshal(row.BorrowingBaseWeights, &weights); err != nil {
			return nil, fmt.Errorf("contract %s: borrowing base weights: %w", row.ID, err)
		}
	}

	return &domain.Contract{
		ID:              row.ID,
		CompanyID:       row.CompanyID,
		Version:         row.Version,
		ProductType:     domain.ProductType(row.ProductType),
		InterestRate:    numericToDecimal(row.InterestRate),
		MaximumAmount:   numericToDecimal(row.MaximumAmount),
		LateFeeSchedule: schedule,
		BorrowingBaseWeights: domain.BorrowingBaseWeights{
			AccountsReceivable: weights.AccountsReceivable,
			Inventory:          weights.Inventory,
			Cash:               weights.Cash,
			CashInDaca:         weights.CashInDaca,
		},
		StartDate: pgDateToDate(row.StartDate),
		EndDate:   pgDateToDate(row.EndDate),
		CreatedAt: row.CreatedAt.Time,
	}, nil
}
