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

// EbbaService defines the behavior needed by EbbaHandler.
type EbbaService interface {
	CreateEbbaApplication(ctx context.Context, input usecase.CreateEbbaInput) (*domain.EbbaApplication, error)
	GetEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error)
	ListEbbaApplications(ctx context.Context, companyID string, limit, offset int) ([]*domain.EbbaApplication, error)
	CurrentBorrowingBase(ctx context.Context, companyID string, asOf civil.Date) (*domain.EbbaApplication, error)
	SubmitEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error)
	ApproveEbbaApplication(ctx context.Context, id string) (*domain.EbbaApplication, error)
	RejectEbbaApplication(ctx context.Context, id, note string) (*domain.EbbaApplication, error)
}

// EbbaHandler handles borrowing base certification requests.
type EbbaHandler struct {
	ebbaUC EbbaService
}

// NewEbbaHandler creates a new EbbaHandler.
func NewEbbaHandler(ebbaUC EbbaService) *EbbaHandler {
	return &EbbaHandler{ebbaUC: ebbaUC}
}

// Create drafts an application for the company in the path.
func (h *EbbaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEbbaApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.ebbaUC.CreateEbbaApplication(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "companyID")))
	if err != nil {
		writeDomainError(w, r, "failed to create ebba application", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.EbbaApplicationFromDomain(app))
}

// ListByCompany lists the company's applications.
func (h *EbbaHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", usecase.DefaultListLimit)
	offset := parseIntQuery(r, "offset", 0)

	apps, err := h.ebbaUC.ListEbbaApplications(r.Context(), chi.URLParam(r, "companyID"), limit, offset)
	if err != nil {
		writeDomainError(w, r, "failed to list ebba applications", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListResponse[*dto.EbbaApplicationResponse]{
		Items:  dto.EbbaApplicationsFromDomain(apps),
		Limit:  limit,
		Offset: offset,
	})
}

// Current returns the approved, unexpired application in force on as_of.
func (h *EbbaHandler) Current(w http.ResponseWriter, r *http.Request) {
	asOf, err := parseDateQuery(r, "as_of")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid as_of date", err.Error())
		return
	}

	app, err := h.ebbaUC.CurrentBorrowingBase(r.Context(), chi.URLParam(r, "companyID"), asOf)
	if err != nil {
		writeDomainError(w, r, "failed to get borrowing base", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EbbaApplicationFromDomain(app))
}

// Get retrieves an application by ID.
func (h *EbbaHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.EbbaApplicationFromDomain(app))
}

// Submit moves a draft to submitted.
func (h *EbbaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.load(w, r); !ok {
		return
	}

	app, err := h.ebbaUC.SubmitEbbaApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to submit ebba application", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EbbaApplicationFromDomain(app))
}

// Approve approves a submitted application.
func (h *EbbaHandler) Approve(w http.ResponseWriter, r *http.Request) {
	app, err := h.ebbaUC.ApproveEbbaApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to approve ebba application", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EbbaApplicationFromDomain(app))
}

// Reject rejects a submitted application with a note.
func (h *EbbaHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req dto.RejectEbbaApplicationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	app, err := h.ebbaUC.RejectEbbaApplication(r.Context(), chi.URLParam(r, "id"), req.Note)
	if err != nil {
		writeDomainError(w, r, "failed to reject ebba application", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EbbaApplicationFromDomain(app))
}

// load fetches the application in the path and checks company access.
func (h *EbbaHandler) load(w http.ResponseWriter, r *http.Request) (*domain.EbbaApplication, bool) {
	app, err := h.ebbaUC.GetEbbaApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, "failed to get ebba application", err)
		return nil, false
	}
	if !authorizeCompany(w, r, app.CompanyID) {
		return nil, false
	}
	return app, true
}
