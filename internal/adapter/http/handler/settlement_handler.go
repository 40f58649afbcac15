package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// SettlementService defines the behavior needed by SettlementHandler.
type SettlementService interface {
	Start(ctx context.Context, input usecase.StartSettlementInput) (*domain.SettlementSession, error)
	Get(ctx context.Context, id string) (*domain.SettlementSession, error)
	ComputeEffect(ctx context.Context, id string, input usecase.ComputeEffectInput) (*domain.SettlementSession, error)
	Back(ctx context.Context, id string) (*domain.SettlementSession, error)
	Override(ctx context.Context, id string, input usecase.OverrideInput) (*domain.SettlementSession, error)
	Submit(ctx context.Context, id string) (*domain.SettlementSession, error)
}

// SettlementHandler drives the settle-repayment wizard. Every response is the
// session after the step.
type SettlementHandler struct {
	settlementUC SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

// Start opens a session for a submitted payment.
func (h *SettlementHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartSettlementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.settlementUC.Start(r.Context(), req.ToUseCaseInput())
	h.respond(w, r, http.StatusCreated, "failed to start settlement", session, err)
}

// Get returns a session.
func (h *SettlementHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.settlementUC.Get(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, "failed to get settlement", session, err)
}

// Effect computes the repayment effect for the session.
func (h *SettlementHandler) Effect(w http.ResponseWriter, r *http.Request) {
	var req dto.RepaymentEffectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.settlementUC.ComputeEffect(r.Context(), chi.URLParam(r, "id"), req.ToComputeEffectInput())
	h.respond(w, r, http.StatusOK, "failed to compute effect", session, err)
}

// Back returns to loan selection.
func (h *SettlementHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.settlementUC.Back(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, "failed to go back", session, err)
}

// Override edits one transaction component of the previewed effect.
func (h *SettlementHandler) Override(w http.ResponseWriter, r *http.Request) {
	var req dto.OverrideRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.settlementUC.Override(r.Context(), chi.URLParam(r, "id"), req.ToUseCaseInput())
	h.respond(w, r, http.StatusOK, "failed to override transaction", session, err)
}

// Submit settles the payment with the previewed transactions.
func (h *SettlementHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, err := h.settlementUC.Submit(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, r, http.StatusOK, "failed to submit settlement", session, err)
}

func (h *SettlementHandler) respond(w http.ResponseWriter, r *http.Request, status int, message string, session *domain.SettlementSession, err error) {
	if err != nil {
		writeDomainError(w, r, message, err)
		return
	}
	writeJSON(w, status, dto.SettlementSessionFromDomain(session))
}
