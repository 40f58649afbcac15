package usecase

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
)

// CompanyRepository defines data access for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	List(ctx context.Context, limit, offset int) ([]*domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Company, error)
	UpdateHoldingBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
}

// ContractRepository defines data access for versioned contracts.
type ContractRepository interface {
	GetActiveByCompany(ctx context.Context, companyID string) (*domain.Contract, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Contract, error)
	Create(ctx context.Context, tx Transaction, contract *domain.Contract) error
}

// LoanRepository defines data access for loans.
type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Loan, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.Loan, error)
	UpdateBalances(ctx context.Context, tx Transaction, loan *domain.Loan) error
}

// PaymentRepository defines data access for repayments.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Payment, error)
	MarkSettled(ctx context.Context, tx Transaction, payment *domain.Payment) error
}

// TransactionRepository defines data access for loan and holding account
// transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, txn *domain.Transaction) error
	ListByPayment(ctx context.Context, paymentID string) ([]*domain.Transaction, error)
	ListByLoan(ctx context.Context, loanID string) ([]*domain.Transaction, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Transaction, error)
}

// EbbaApplicationRepository defines data access for borrowing base
// certifications.
type EbbaApplicationRepository interface {
	Create(ctx context.Context, app *domain.EbbaApplication) error
	GetByID(ctx context.Context, id string) (*domain.EbbaApplication, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.EbbaApplication, error)
	Update(ctx context.Context, tx Transaction, app *domain.EbbaApplication) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error)
	GetLatestApproved(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	CountUnpublished(ctx context.Context) (int64, error)
	DeletePublished(ctx context.Context, before time.Time) error
}

// AuditRepository defines data access for audit logs.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	CreateTx(ctx context.Context, tx Transaction, log *domain.AuditLog) error
	List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier retries an operation on transient database errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

// SettlementSessionStore persists settle-repayment wizard sessions.
type SettlementSessionStore interface {
	Save(ctx context.Context, session *domain.SettlementSession) error
	Get(ctx context.Context, id string) (*domain.SettlementSession, error)
	Delete(ctx context.Context, id string) error
}

// ContractProvider returns the contract currently in force for a company.
type ContractProvider interface {
	GetActiveContract(ctx context.Context, companyID string) (*domain.Contract, error)
}

// RepaymentService is the backend the settle-repayment wizard talks to.
type RepaymentService interface {
	CalculateEffect(ctx context.Context, req domain.RepaymentRequest) (*domain.EffectResponse, error)
	SettleRepayment(ctx context.Context, input SettleRepaymentInput) (*domain.StatusResponse, error)
}
