package usecase

import (
	"context"

	"github.com/iho/goloan/internal/domain"
)

// AuditUseCase exposes the audit trail to bank users.
type AuditUseCase struct {
	auditRepo AuditRepository
}

// NewAuditUseCase creates a new AuditUseCase.
func NewAuditUseCase(auditRepo AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListAuditLogs returns audit entries matching filter, newest first.
func (uc *AuditUseCase) ListAuditLogs(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditLog, error) {
	filter.Limit = clampLimit(filter.Limit)
	filter.Offset = max(filter.Offset, 0)
	return uc.auditRepo.List(ctx, filter)
}
