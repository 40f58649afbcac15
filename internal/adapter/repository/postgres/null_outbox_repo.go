package postgres

import (
	"context"
	"time"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// NullOutboxRepository drops events. cmd/server wires it when OUTBOX_ENABLED
// is false; settlements and certifications then commit without events.
type NullOutboxRepository struct{}

// NewNullOutboxRepository creates a new NullOutboxRepository.
func NewNullOutboxRepository() *NullOutboxRepository {
	return &NullOutboxRepository{}
}

func (NullOutboxRepository) Create(context.Context, usecase.Transaction, *domain.OutboxEvent) error {
	return nil
}

func (NullOutboxRepository) GetUnpublished(context.Context, int) ([]*domain.OutboxEvent, error) {
	return nil, nil
}

func (NullOutboxRepository) MarkPublished(context.Context, string, time.Time) error {
	return nil
}

func (NullOutboxRepository) CountUnpublished(context.Context) (int64, error) {
	return 0, nil
}

func (NullOutboxRepository) DeletePublished(context.Context, time.Time) error {
	return nil
}
