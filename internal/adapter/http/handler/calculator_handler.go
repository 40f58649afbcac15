package handler

import (
	"context"
	"net/http"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/usecase"
)

// CalculatorService defines the behavior needed by CalculatorHandler.
type CalculatorService interface {
	CalculateBorrowingBase(ctx context.Context, input usecase.BorrowingBaseInput) (*usecase.BorrowingBaseResult, error)
	ResolveLateFee(ctx context.Context, input usecase.LateFeeInput) (*usecase.LateFeeResult, error)
}

// CalculatorHandler serves the stateless borrowing base and late fee
// calculators.
type CalculatorHandler struct {
	calculatorUC CalculatorService
}

// NewCalculatorHandler creates a new CalculatorHandler.
func NewCalculatorHandler(calculatorUC CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calculatorUC: calculatorUC}
}

// BorrowingBase computes a borrowing base.
func (h *CalculatorHandler) BorrowingBase(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateBorrowingBaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CompanyID != "" && !authorizeCompany(w, r, req.CompanyID) {
		return
	}

	result, err := h.calculatorUC.CalculateBorrowingBase(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, r, "failed to calculate borrowing base", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BorrowingBaseFromUseCase(result))
}

// LateFee resolves a late fee multiplier.
func (h *CalculatorHandler) LateFee(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveLateFeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.CompanyID != "" && !authorizeCompany(w, r, req.CompanyID) {
		return
	}

	result, err := h.calculatorUC.ResolveLateFee(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, r, "failed to resolve late fee", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LateFeeFromUseCase(result))
}
