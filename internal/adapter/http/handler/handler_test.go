package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/goloan/internal/domain"
)

// withURLParams attaches chi route params to req.
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// asUser attaches user to req.
func asUser(req *http.Request, user *domain.User) *http.Request {
	return req.WithContext(domain.ContextWithUser(req.Context(), user))
}
