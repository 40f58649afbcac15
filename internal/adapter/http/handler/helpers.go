package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/iho/goloan/internal/adapter/http/dto"
	"github.com/iho/goloan/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status and writes it. Server errors are
// logged and their details withheld.
func writeDomainError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := mapDomainError(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg(message)
		writeError(w, status, message, "")
		return
	}
	writeError(w, status, message, err.Error())
}

var (
	notFoundErrors = []error{
		domain.ErrCompanyNotFound,
		domain.ErrContractNotFound,
		domain.ErrLoanNotFound,
		domain.ErrPaymentNotFound,
		domain.ErrEbbaApplicationNotFound,
		domain.ErrSettlementSessionNotFound,
	}

	conflictErrors = []error{
		domain.ErrPaymentAlreadySettled,
		domain.ErrInvalidStatusTransition,
		domain.ErrInvalidStepTransition,
		domain.ErrDuplicateIdentifier,
	}

	badRequestErrors = []error{
		domain.ErrInvalidInterestRate,
		domain.ErrInvalidProductType,
		domain.ErrInvalidMaturityDate,
		domain.ErrInvalidPaymentMethod,
		domain.ErrRequestedDateRequired,
		domain.ErrMissingRequiredInput,
		domain.ErrNegativeInput,
		domain.ErrCustomNoteRequired,
		domain.ErrInvalidWeight,
		domain.ErrInvalidLateFeeTier,
		domain.ErrRejectionNoteRequired,
		domain.ErrLoanNotInEffect,
		domain.ErrAmountTooLarge,
		domain.ErrAmountTooSmall,
		domain.ErrInvalidIDFormat,
		domain.ErrNoteTooLong,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case isAny(err, notFoundErrors):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrCustomAmountNotPermitted):
		return http.StatusForbidden
	case isAny(err, conflictErrors):
		return http.StatusConflict
	case isAny(err, badRequestErrors), domain.IsRuleViolation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseDateQuery parses a YYYY-MM-DD query parameter, defaulting to today.
func parseDateQuery(r *http.Request, key string) (civil.Date, error) {
	val := r.URL.Query().Get(key)
	if val == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(val)
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// authorizeCompany writes a 403 and returns false when the caller may not
// act for companyID. Requests without a user are allowed through; routing
// decides whether authentication is required.
func authorizeCompany(w http.ResponseWriter, r *http.Request, companyID string) bool {
	user, ok := domain.UserFromContext(r.Context())
	if !ok || user.CanAccessCompany(companyID) {
		return true
	}
	writeError(w, http.StatusForbidden, "forbidden", domain.ErrInsufficientRole.Error())
	return false
}
