package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/usecase"
)

// ReconciliationService defines the behavior needed by ReconciliationHandler.
type ReconciliationService interface {
	ReconcileLoan(ctx context.Context, loanID string) (*usecase.ReconciliationResult, error)
	GenerateReconciliationReport(ctx context.Context, companyID string) (*usecase.ReconciliationReport, error)
}

// ReconciliationHandler serves balance reconciliation checks.
type ReconciliationHandler struct {
	reconciliationUC ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationUC ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// Company reconciles every loan of a company and its holding account.
func (h *ReconciliationHandler) Company(w http.ResponseWriter, r *http.Request) {
	report, err := h.reconciliationUC.GenerateReconciliationReport(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		writeDomainError(w, r, "failed to reconcile company", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationReportFromUseCase(report))
}

// Loan reconciles one loan.
func (h *ReconciliationHandler) Loan(w http.ResponseWriter, r *http.Request) {
	result, err := h.reconciliationUC.ReconcileLoan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to reconcile loan", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ReconciliationResultFromUseCase(result))
}
