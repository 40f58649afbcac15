package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// MockCompanyRepository is a mock implementation of CompanyRepository.
type MockCompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*domain.Company

	GetByIDFunc              func(ctx context.Context, id string) (*domain.Company, error)
	GetByIDForUpdateFunc     func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error)
	UpdateHoldingBalanceFunc func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	CreateFunc               func(ctx context.Context, company *domain.Company) error
}

func NewMockCompanyRepository(companies ...*domain.Company) *MockCompanyRepository {
	m := &MockCompanyRepository{companies: make(map[string]*domain.Company)}
	for _, c := range companies {
		m.companies[c.ID] = c
	}
	return m
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, company)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.companies {
		if c.Identifier == company.Identifier {
			return domain.ErrDuplicateIdentifier
		}
	}
	copied := *company
	m.companies[company.ID] = &copied
	return nil
}

func (m *MockCompanyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	companies := make([]*domain.Company, 0, len(m.companies))
	for _, c := range m.companies {
		copied := *c
		companies = append(companies, &copied)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Identifier < companies[j].Identifier })
	if offset >= len(companies) {
		return []*domain.Company{}, nil
	}
	companies = companies[offset:]
	if limit > 0 && limit < len(companies) {
		companies = companies[:limit]
	}
	return companies, nil
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.companies[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *MockCompanyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockCompanyRepository) UpdateHoldingBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateHoldingBalanceFunc != nil {
		return m.UpdateHoldingBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.companies[id]; ok {
		c.HoldingAccountBalance = balance
		c.Version++
		c.UpdatedAt = updatedAt
	}
	return nil
}

// MockContractRepository is a mock implementation of ContractRepository.
type MockContractRepository struct {
	mu        sync.RWMutex
	contracts map[string][]*domain.Contract

	GetActiveByCompanyFunc func(ctx context.Context, companyID string) (*domain.Contract, error)
	CreateFunc             func(ctx context.Context, tx usecase.Transaction, contract *domain.Contract) error
}

func NewMockContractRepository(contracts ...*domain.Contract) *MockContractRepository {
	m := &MockContractRepository{contracts: make(map[string][]*domain.Contract)}
	for _, c := range contracts {
		m.contracts[c.CompanyID] = append(m.contracts[c.CompanyID], c)
	}
	return m
}

func (m *MockContractRepository) GetActiveByCompany(ctx context.Context, companyID string) (*domain.Contract, error) {
	if m.GetActiveByCompanyFunc != nil {
		return m.GetActiveByCompanyFunc(ctx, companyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	versions := m.contracts[companyID]
	if len(versions) == 0 {
		return nil, domain.ErrContractNotFound
	}
	latest := versions[0]
	for _, c := range versions[1:] {
		if c.Version > latest.Version {
			latest = c
		}
	}
	return latest, nil
}

func (m *MockContractRepository) Create(ctx context.Context, tx usecase.Transaction, contract *domain.Contract) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, contract)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contracts[contract.CompanyID] = append(m.contracts[contract.CompanyID], contract)
	return nil
}

func (m *MockContractRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Contract, error) {
	versions := m.Versions(companyID)
	sort.Slice(versions, func(i, j int) bool { return versions[i].Version > versions[j].Version })
	return versions, nil
}

// Versions returns every stored version for a company.
func (m *MockContractRepository) Versions(companyID string) []*domain.Contract {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.Contract(nil), m.contracts[companyID]...)
}

// MockLoanRepository is a mock implementation of LoanRepository.
type MockLoanRepository struct {
	mu    sync.RWMutex
	loans map[string]*domain.Loan

	CreateFunc            func(ctx context.Context, loan *domain.Loan) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Loan, error)
	GetByIDsFunc          func(ctx context.Context, ids []string) ([]*domain.Loan, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Loan, error)
	ListByCompanyFunc     func(ctx context.Context, companyID string, limit, offset int) ([]*domain.Loan, error)
	UpdateBalancesFunc    func(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error
}

func NewMockLoanRepository(loans ...*domain.Loan) *MockLoanRepository {
	m := &MockLoanRepository{loans: make(map[string]*domain.Loan)}
	for _, l := range loans {
		m.loans[l.ID] = l
	}
	return m
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
	return nil
}

func (m *MockLoanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.loans[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, domain.ErrLoanNotFound
}

func (m *MockLoanRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Loan, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, id := range ids {
		if l, ok := m.loans[id]; ok {
			copied := *l
			loans = append(loans, &copied)
		}
	}
	return loans, nil
}

func (m *MockLoanRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Loan, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	return m.GetByIDs(ctx, ids)
}

func (m *MockLoanRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.Loan, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var loans []*domain.Loan
	for _, l := range m.loans {
		if l.CompanyID == companyID {
			loans = append(loans, l)
		}
	}
	sort.Slice(loans, func(i, j int) bool { return loans[i].ID < loans[j].ID })
	if offset >= len(loans) {
		return nil, nil
	}
	loans = loans[offset:]
	if len(loans) > limit {
		loans = loans[:limit]
	}
	return loans, nil
}

func (m *MockLoanRepository) UpdateBalances(ctx context.Context, tx usecase.Transaction, loan *domain.Loan) error {
	if m.UpdateBalancesFunc != nil {
		return m.UpdateBalancesFunc(ctx, tx, loan)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *loan
	copied.Version++
	m.loans[loan.ID] = &copied
	return nil
}

// Loan returns the stored loan without copying.
func (m *MockLoanRepository) Loan(id string) *domain.Loan {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loans[id]
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error)
	MarkSettledFunc      func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
}

func NewMockPaymentRepository(payments ...*domain.Payment) *MockPaymentRepository {
	m := &MockPaymentRepository{payments: make(map[string]*domain.Payment)}
	for _, p := range payments {
		m.payments[p.ID] = p
	}
	return m
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Payment, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockPaymentRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.MarkSettledFunc != nil {
		return m.MarkSettledFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *payment
	m.payments[payment.ID] = &copied
	return nil
}

// Payment returns the stored payment without copying.
func (m *MockPaymentRepository) Payment(id string) *domain.Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.payments[id]
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*domain.Transaction

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error
	ListByPaymentFunc func(ctx context.Context, paymentID string) ([]*domain.Transaction, error)
	ListByLoanFunc    func(ctx context.Context, loanID string) ([]*domain.Transaction, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, txn)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, txn)
	return nil
}

func (m *MockTransactionRepository) ListByPayment(ctx context.Context, paymentID string) ([]*domain.Transaction, error) {
	if m.ListByPaymentFunc != nil {
		return m.ListByPaymentFunc(ctx, paymentID)
	}
	return m.filter(func(t *domain.Transaction) bool { return t.PaymentID == paymentID }), nil
}

func (m *MockTransactionRepository) ListByLoan(ctx context.Context, loanID string) ([]*domain.Transaction, error) {
	if m.ListByLoanFunc != nil {
		return m.ListByLoanFunc(ctx, loanID)
	}
	return m.filter(func(t *domain.Transaction) bool { return t.LoanID == loanID }), nil
}

func (m *MockTransactionRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Transaction, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return m.filter(func(t *domain.Transaction) bool { return t.CompanyID == companyID }), nil
}

func (m *MockTransactionRepository) filter(keep func(*domain.Transaction) bool) []*domain.Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range m.transactions {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// MockEbbaApplicationRepository is a mock implementation of EbbaApplicationRepository.
type MockEbbaApplicationRepository struct {
	mu   sync.RWMutex
	apps map[string]*domain.EbbaApplication

	CreateFunc            func(ctx context.Context, app *domain.EbbaApplication) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.EbbaApplication, error)
	GetByIDForUpdateFunc  func(ctx context.Context, tx usecase.Transaction, id string) (*domain.EbbaApplication, error)
	UpdateFunc            func(ctx context.Context, tx usecase.Transaction, app *domain.EbbaApplication) error
	ListByCompanyFunc     func(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error)
	GetLatestApprovedFunc func(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error)
}

func NewMockEbbaApplicationRepository(apps ...*domain.EbbaApplication) *MockEbbaApplicationRepository {
	m := &MockEbbaApplicationRepository{apps: make(map[string]*domain.EbbaApplication)}
	for _, a := range apps {
		m.apps[a.ID] = a
	}
	return m
}

func (m *MockEbbaApplicationRepository) Create(ctx context.Context, app *domain.EbbaApplication) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, app)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps[app.ID] = app
	return nil
}

func (m *MockEbbaApplicationRepository) GetByID(ctx context.Context, id string) (*domain.EbbaApplication, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, domain.ErrEbbaApplicationNotFound
}

func (m *MockEbbaApplicationRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.EbbaApplication, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockEbbaApplicationRepository) Update(ctx context.Context, tx usecase.Transaction, app *domain.EbbaApplication) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, app)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *app
	m.apps[app.ID] = &copied
	return nil
}

func (m *MockEbbaApplicationRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.EbbaApplication
	for _, a := range m.apps {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockEbbaApplicationRepository) GetLatestApproved(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error) {
	if m.GetLatestApprovedFunc != nil {
		return m.GetLatestApprovedFunc(ctx, companyID, asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest *domain.EbbaApplication
	for _, a := range m.apps {
		if a.CompanyID != companyID || a.Status != domain.EbbaStatusApproved || a.ApplicationDate.After(asOf) {
			continue
		}
		if latest == nil || a.ApplicationDate.After(latest.ApplicationDate) {
			latest = a
		}
	}
	if latest == nil {
		return nil, domain.ErrEbbaApplicationNotFound
	}
	return latest, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc   func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc    func(ctx context.Context, id string, publishedAt time.Time) error
	CountUnpublishedFunc func(ctx context.Context) (int64, error)
	DeletePublishedFunc  func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			at := publishedAt
			e.PublishedAt = &at
			return nil
		}
	}
	return fmt.Errorf("outbox event %s not found", id)
}

func (m *MockOutboxRepository) CountUnpublished(ctx context.Context) (int64, error) {
	if m.CountUnpublishedFunc != nil {
		return m.CountUnpublishedFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, e := range m.events {
		if !e.Published {
			n++
		}
	}
	return n, nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	return nil
}

// Events returns every recorded event.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockAuditRepository is a mock implementation of AuditRepository.
type MockAuditRepository struct {
	mu   sync.RWMutex
	logs []*domain.AuditLog

	CreateFunc   func(ctx context.Context, log *domain.AuditLog) error
	CreateTxFunc func(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error
	ListFunc     func(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, log)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, log)
	return nil
}

func (m *MockAuditRepository) CreateTx(ctx context.Context, tx usecase.Transaction, log *domain.AuditLog) error {
	if m.CreateTxFunc != nil {
		return m.CreateTxFunc(ctx, tx, log)
	}
	return m.Create(ctx, log)
}

func (m *MockAuditRepository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.AuditLog
	for _, l := range m.logs {
		if filter.Action != "" && l.Action != filter.Action {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// Logs returns every recorded audit log.
func (m *MockAuditRepository) Logs() []*domain.AuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.AuditLog(nil), m.logs...)
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	mu        sync.Mutex
	committed int
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{CommitFunc: func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.committed++
		return nil
	}}, nil
}

// Commits returns how many default transactions were committed.
func (m *MockTransactionManager) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.committed
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

// MockSettlementSessionStore is an in-memory SettlementSessionStore.
type MockSettlementSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.SettlementSession
	counter  int

	SaveFunc func(ctx context.Context, session *domain.SettlementSession) error
}

func NewMockSettlementSessionStore() *MockSettlementSessionStore {
	return &MockSettlementSessionStore{sessions: make(map[string]*domain.SettlementSession)}
}

func (m *MockSettlementSessionStore) Save(ctx context.Context, session *domain.SettlementSession) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, session)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if session.ID == "" {
		m.counter++
		session.ID = fmt.Sprintf("session-%d", m.counter)
	}
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *MockSettlementSessionStore) Get(ctx context.Context, id string) (*domain.SettlementSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, domain.ErrSettlementSessionNotFound
}

func (m *MockSettlementSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
