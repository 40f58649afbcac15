package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// RepaymentService defines the behavior needed by RepaymentHandler.
type RepaymentService interface {
	CreateRepayment(ctx context.Context, input usecase.CreateRepaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	ListPaymentTransactions(ctx context.Context, paymentID string) ([]*domain.Transaction, error)
	CalculateEffect(ctx context.Context, req domain.RepaymentRequest) (*domain.EffectResponse, error)
	SettleRepayment(ctx context.Context, input usecase.SettleRepaymentInput) (*domain.StatusResponse, error)
}

// RepaymentHandler handles repayment HTTP requests.
type RepaymentHandler struct {
	repaymentUC RepaymentService
}

// NewRepaymentHandler creates a new RepaymentHandler.
func NewRepaymentHandler(repaymentUC RepaymentService) *RepaymentHandler {
	return &RepaymentHandler{repaymentUC: repaymentUC}
}

// Create submits a repayment for the company in the path.
func (h *RepaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRepaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid repayment", err.Error())
		return
	}

	payment, err := h.repaymentUC.CreateRepayment(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, "failed to create repayment", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// Get retrieves a payment by ID.
func (h *RepaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	payment, err := h.repaymentUC.GetPayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to get payment", err)
		return
	}
	if !authorizeCompany(w, r, payment.CompanyID) {
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// Transactions lists the movements written when a payment was settled.
func (h *RepaymentHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payment, err := h.repaymentUC.GetPayment(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "failed to get payment", err)
		return
	}
	if !authorizeCompany(w, r, payment.CompanyID) {
		return
	}

	txs, err := h.repaymentUC.ListPaymentTransactions(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, "failed to list transactions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(txs))
}

// Effect previews a repayment. An ERROR status is answered with 422 and the
// message.
func (h *RepaymentHandler) Effect(w http.ResponseWriter, r *http.Request) {
	var req dto.RepaymentEffectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.repaymentUC.CalculateEffect(r.Context(), req.ToDomain(chi.URLParam(r, "companyID")))
	if err != nil {
		writeDomainError(w, r, "failed to calculate repayment effect", err)
		return
	}

	writeJSON(w, statusCode(resp.StatusResponse), dto.EffectStatusFromDomain(resp))
}

// Settle applies a repayment to loans. An ERROR status is answered with 422
// and the message.
func (h *RepaymentHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req dto.SettleRepaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := req.ToUseCaseInput(chi.URLParam(r, "companyID"), chi.URLParam(r, "paymentID"))
	resp, err := h.repaymentUC.SettleRepayment(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, "failed to settle repayment", err)
		return
	}

	writeJSON(w, statusCode(*resp), dto.StatusFromDomain(*resp))
}

func statusCode(resp domain.StatusResponse) int {
	if resp.OK() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}
