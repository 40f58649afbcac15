package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// ContractService defines the behavior needed by ContractHandler.
type ContractService interface {
	GetActiveContract(ctx context.Context, companyID string) (*domain.Contract, error)
	UpsertContract(ctx context.Context, input usecase.UpsertContractInput) (*domain.Contract, error)
	ListContractVersions(ctx context.Context, companyID string) ([]*domain.Contract, error)
}

// ContractHandler handles contract HTTP requests.
type ContractHandler struct {
	contractUC ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractUC ContractService) *ContractHandler {
	return &ContractHandler{contractUC: contractUC}
}

// GetActive returns the company's active contract.
func (h *ContractHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	contract, err := h.contractUC.GetActiveContract(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		writeDomainError(w, r, "failed to get contract", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ContractFromDomain(contract))
}

// Upsert writes a new contract version.
func (h *ContractHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req dto.UpsertContractRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contract, err := h.contractUC.UpsertContract(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "companyID")))
	if err != nil {
		writeDomainError(w, r, "failed to update contract", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ContractFromDomain(contract))
}

// Versions lists every contract version, newest first.
func (h *ContractHandler) Versions(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.contractUC.ListContractVersions(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		writeDomainError(w, r, "failed to list contract versions", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ContractsFromDomain(contracts))
}
