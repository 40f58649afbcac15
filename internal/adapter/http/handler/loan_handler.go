package handler

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/usecase"
)

// LoanService defines the behavior needed by LoanHandler.
type LoanService interface {
	CreateLoan(ctx context.Context, input usecase.CreateLoanInput) (*domain.Loan, error)
	GetLoan(ctx context.Context, id string) (*domain.Loan, error)
	ListLoansByCompany(ctx context.Context, input usecase.ListLoansByCompanyInput) ([]*domain.Loan, error)
	GetLoanStatement(ctx context.Context, id string, asOf civil.Date) (*usecase.LoanStatement, error)
}

// LoanHandler handles loan HTTP requests.
type LoanHandler struct {
	loanUC LoanService
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanUC LoanService) *LoanHandler {
	return &LoanHandler{loanUC: loanUC}
}

// Create books a loan for the company in the path.
func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLoanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	loan, err := h.loanUC.CreateLoan(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "companyID")))
	if err != nil {
		writeDomainError(w, r, "failed to create loan", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.LoanFromDomain(loan))
}

// Get retrieves a loan by ID.
func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loanUC.GetLoan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to get loan", err)
		return
	}
	if !authorizeCompany(w, r, loan.CompanyID) {
		return
	}

	writeJSON(w, http.StatusOK, dto.LoanFromDomain(loan))
}

// ListByCompany lists the loans of the company in the path.
func (h *LoanHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	input := usecase.ListLoansByCompanyInput{
		CompanyID: chi.URLParam(r, "companyID"),
		Limit:     parseIntQuery(r, "limit", usecase.DefaultListLimit),
		Offset:    parseIntQuery(r, "offset", 0),
	}

	loans, err := h.loanUC.ListLoansByCompany(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, "failed to list loans", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListResponse[*dto.LoanResponse]{
		Items:  dto.LoansFromDomain(loans),
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// Statement projects a loan to the as_of date, today by default.
func (h *LoanHandler) Statement(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseDateQuery(r, "as_of")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}

	statement, err := h.loanUC.GetLoanStatement(r.Context(), chi.URLParam(r, "id"), asOf)
	if err != nil {
		writeDomainError(w, r, "failed to get loan statement", err)
		return
	}
	if !authorizeCompany(w, r, statement.Loan.CompanyID) {
		return
	}

	writeJSON(w, http.StatusOK, dto.LoanStatementFromUseCase(statement))
}
