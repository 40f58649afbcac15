package usecase

import (
	"context"
	"time"

	"cloud.google.com/go/civil"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

// EbbaUseCase manages borrowing base certifications.
type EbbaUseCase struct {
	txManager  TransactionManager
	ebbaRepo   EbbaApplicationRepository
	contracts  ContractProvider
	outboxRepo OutboxRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	metrics    *metrics.Metrics
}

// NewEbbaUseCase creates a new EbbaUseCase.
func NewEbbaUseCase(
	txManager TransactionManager,
	ebbaRepo EbbaApplicationRepository,
	contracts ContractProvider,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	m *metrics.Metrics,
) *EbbaUseCase {
	return &EbbaUseCase{
		txManager:  txManager,
		ebbaRepo:   ebbaRepo,
		contracts:  contracts,
		outboxRepo: outboxRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		metrics:    m,
	}
}

// CreateEbbaInput represents a new certification.
type CreateEbbaInput struct {
	CompanyID       string
	ApplicationDate civil.Date
	Inputs          domain.BorrowingBaseInputs
}

// CreateEbbaApplication validates the inputs against the contract weights and
// the caller's role, then stores a draft with the borrowing base computed.
func (uc *EbbaUseCase) CreateEbbaApplication(ctx context.Context, input CreateEbbaInput) (*domain.EbbaApplication, error) {
	if domain.IsZeroDate(input.ApplicationDate) {
		return nil, domain.ErrInvalidDate
	}
	if err := domain.ValidateNote(input.Inputs.AmountCustomNote); err != nil {
		return nil, err
	}

	contract, err := uc.contracts.GetActiveContract(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	var role domain.Role
	if user, ok := domain.UserFromContext(ctx); ok {
		role = user.Role
	}
	if err := domain.ValidateBorrowingBaseInputs(input.Inputs, contract.BorrowingBaseWeights, role); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	app := &domain.EbbaApplication{
		ID:              uc.idGen.Generate(),
		CompanyID:       input.CompanyID,
		Status:          domain.EbbaStatusDrafted,
		ApplicationDate: input.ApplicationDate,
		Inputs:          input.Inputs,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	app.Recalculate(contract.BorrowingBaseWeights)

	if err := uc.ebbaRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	uc.recordTransition(app.Status)
	return app, nil
}

// GetEbbaApplication retrieves a certification by ID.
func (uc *EbbaUseCase) GetEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error) {
	return uc.ebbaRepo.GetByID(ctx, id)
}

// ListEbbaApplications lists a company's certifications, newest first.
func (uc *EbbaUseCase) ListEbbaApplications(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error) {
	return uc.ebbaRepo.ListByCompany(ctx, companyID, clampLimit(limit), max(offset, 0))
}

// CurrentBorrowingBase returns the latest approved certification that has
// not expired on asOf.
func (uc *EbbaUseCase) CurrentBorrowingBase(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error) {
	app, err := uc.ebbaRepo.GetLatestApproved(ctx, companyID, asOf)
	if err != nil {
		return nil, err
	}
	if app.IsExpired(asOf) {
		return nil, domain.ErrEbbaApplicationNotFound
	}
	return app, nil
}

// SubmitEbbaApplication moves a draft to submitted.
func (uc *EbbaUseCase) SubmitEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error) {
	return uc.transition(ctx, id, domain.EventTypeEbbaSubmitted, "", func(app *domain.EbbaApplication, userID string, now time.Time) error {
		return app.Submit(userID, now)
	})
}

// ApproveEbbaApplication approves a submitted certification.
func (uc *EbbaUseCase) ApproveEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error) {
	return uc.transition(ctx, id, domain.EventTypeEbbaApproved, domain.AuditActionEbbaApprove, func(app *domain.EbbaApplication, userID string, now time.Time) error {
		return app.Approve(userID, now)
	})
}

// RejectEbbaApplication rejects a submitted certification with a note.
func (uc *EbbaUseCase) RejectEbbaApplication(ctx context.Context, id, note string) (*domain.EbbaApplication, error) {
	return uc.transition(ctx, id, domain.EventTypeEbbaRejected, domain.AuditActionEbbaReject, func(app *domain.EbbaApplication, userID string, now time.Time) error {
		return app.Reject(userID, note, now)
	})
}

func (uc *EbbaUseCase) transition(
	ctx context.Context,
	id string,
	eventType string,
	action domain.AuditAction,
	apply func(app *domain.EbbaApplication, userID string, now time.Time) error,
) (*domain.EbbaApplication, error) {
	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	app, err := uc.ebbaRepo.GetByIDForUpdate(txCtx, tx, id)
	if err != nil {
		return nil, err
	}

	before := domain.MarshalState(app)
	userID := domain.ActorID(ctx)
	now := time.Now().UTC()

	if err := apply(app, userID, now); err != nil {
		return nil, err
	}

	if err := uc.ebbaRepo.Update(txCtx, tx, app); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   app.ID,
		AggregateType: domain.AggregateTypeEbbaApplication,
		EventType:     eventType,
		Payload: domain.MarshalState(domain.EbbaApplicationEvent{
			ApplicationID:           app.ID,
			CompanyID:               app.CompanyID,
			Status:                  string(app.Status),
			CalculatedBorrowingBase: app.CalculatedBorrowingBase.String(),
			ApplicationDate:         app.ApplicationDate.String(),
		}),
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if uc.auditRepo != nil && action != "" {
		auditLog := &domain.AuditLog{
			ID:           uc.idGen.Generate(),
			UserID:       userID,
			Action:       action,
			ResourceType: domain.AggregateTypeEbbaApplication,
			ResourceID:   app.ID,
			BeforeState:  before,
			AfterState:   domain.MarshalState(app),
			Status:       domain.AuditStatusSuccess,
			CreatedAt:    now,
		}
		if err := uc.auditRepo.CreateTx(txCtx, tx, auditLog); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	uc.recordTransition(app.Status)
	return app, nil
}

func (uc *EbbaUseCase) recordTransition(status domain.EbbaApplicationStatus) {
	if uc.metrics != nil {
		uc.metrics.EbbaTransitions.WithLabelValues(string(status)).Inc()
	}
}
