package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

// ReconciliationUseCase checks stored balances against the transactions
// written by settlement.
type ReconciliationUseCase struct {
	companyRepo     CompanyRepository
	loanRepo        LoanRepository
	transactionRepo TransactionRepository
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(
	companyRepo CompanyRepository,
	loanRepo LoanRepository,
	transactionRepo TransactionRepository,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		companyRepo:     companyRepo,
		loanRepo:        loanRepo,
		transactionRepo: transactionRepo,
	}
}

// ReconciliationResult compares a recorded balance with the one rebuilt from
// transactions.
type ReconciliationResult struct {
	ResourceID        string
	Identifier        string
	RecordedBalance   decimal.Decimal
	CalculatedBalance decimal.Decimal
	Difference        decimal.Decimal
	IsReconciled      bool
	LastChecked       time.Time
}

func newResult(id, identifier string, recorded, calculated decimal.Decimal) *ReconciliationResult {
	diff := recorded.Sub(calculated)
	return &ReconciliationResult{
		ResourceID:        id,
		Identifier:        identifier,
		RecordedBalance:   recorded,
		CalculatedBalance: calculated,
		Difference:        diff,
		IsReconciled:      diff.IsZero(),
		LastChecked:       time.Now().UTC(),
	}
}

// ReconcileLoan checks that the outstanding principal equals the funded
// amount less all principal repaid.
func (uc *ReconciliationUseCase) ReconcileLoan(ctx context.Context, loanID string) (*ReconciliationResult, error) {
	loan, err := uc.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	return uc.reconcileLoan(ctx, loan)
}

func (uc *ReconciliationUseCase) reconcileLoan(ctx context.Context, loan *domain.Loan) (*ReconciliationResult, error) {
	txns, err := uc.transactionRepo.ListByLoan(ctx, loan.ID)
	if err != nil {
		return nil, err
	}

	repaid := decimal.Zero
	for _, t := range txns {
		if t.Type == domain.TransactionTypeRepayment {
			repaid = repaid.Add(t.Allocation.ToPrincipal)
		}
	}

	return newResult(loan.ID, loan.Identifier, loan.Outstanding.OutstandingPrincipalBalance, loan.Amount.Sub(repaid)), nil
}

// ReconcileHoldingAccount checks the company's holding balance against its
// holding account credits and debits.
func (uc *ReconciliationUseCase) ReconcileHoldingAccount(ctx context.Context, companyID string) (*ReconciliationResult, error) {
	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	txns, err := uc.transactionRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	calculated := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case domain.TransactionTypeHoldingCredit:
			calculated = calculated.Add(t.Allocation.Amount)
		case domain.TransactionTypeHoldingDebit:
			calculated = calculated.Sub(t.Allocation.Amount)
		}
	}

	return newResult(company.ID, company.Identifier, company.HoldingAccountBalance, calculated), nil
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	CompanyID       string
	TotalLoans      int
	ReconciledLoans int
	Discrepancies   []*ReconciliationResult
	HoldingAccount  *ReconciliationResult
	CheckedAt       time.Time
}

// IsReconciled reports whether every check passed.
func (r *ReconciliationReport) IsReconciled() bool {
	return len(r.Discrepancies) == 0 && r.HoldingAccount.IsReconciled
}

// GenerateReconciliationReport reconciles every loan of a company and its
// holding account.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context, companyID string) (*ReconciliationReport, error) {
	holding, err := uc.ReconcileHoldingAccount(ctx, companyID)
	if err != nil {
		return nil, err
	}

	report := &ReconciliationReport{
		CompanyID:      companyID,
		Discrepancies:  make([]*ReconciliationResult, 0),
		HoldingAccount: holding,
		CheckedAt:      time.Now().UTC(),
	}

	for offset := 0; ; offset += MaxListLimit {
		loans, err := uc.loanRepo.ListByCompany(ctx, companyID, MaxListLimit, offset)
		if err != nil {
			return nil, err
		}

		for _, loan := range loans {
			result, err := uc.reconcileLoan(ctx, loan)
			if err != nil {
				return nil, fmt.Errorf("failed to reconcile loan %s: %w", loan.ID, err)
			}
			report.TotalLoans++
			if result.IsReconciled {
				report.ReconciledLoans++
			} else {
				report.Discrepancies = append(report.Discrepancies, result)
			}
		}

		if len(loans) < MaxListLimit {
			break
		}
	}

	return report, nil
}
