package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// CompanyService defines the behavior needed by CompanyHandler.
type CompanyService interface {
	CreateCompany(ctx context.Context, input usecase.CreateCompanyInput) (*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	ListCompanies(ctx context.Context, limit, offset int) ([]*domain.Company, error)
}

// CompanyHandler handles company-related HTTP requests.
type CompanyHandler struct {
	companyUC CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyUC CompanyService) *CompanyHandler {
	return &CompanyHandler{companyUC: companyUC}
}

// Create registers a company.
func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCompanyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	company, err := h.companyUC.CreateCompany(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, r, "failed to create company", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CompanyFromDomain(company))
}

// Get retrieves a company by ID.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	company, err := h.companyUC.GetCompany(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		writeDomainError(w, r, "failed to get company", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CompanyFromDomain(company))
}

// List lists companies by identifier.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	companies, err := h.companyUC.ListCompanies(r.Context(), limit, offset)
	if err != nil {
		writeDomainError(w, r, "failed to list companies", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListResponse[*dto.CompanyResponse]{
		Items:  dto.CompaniesFromDomain(companies),
		Limit:  limit,
		Offset: offset,
	})
}
