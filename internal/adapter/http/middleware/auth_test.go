package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/auth"
	"github.com/iho/goloan/internal/infrastructure/metrics"
)

func echoUser(t *testing.T, got **domain.User) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := domain.UserFromContext(r.Context())
		if !ok {
			t.Fatalf("expected user on context")
		}
		*got = user
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	manager := auth.NewJWTManager("secret", time.Hour)
	token, err := manager.Generate(&domain.User{ID: "u-1", CompanyID: "co-1", Role: domain.RoleCompanyUser})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	m := metrics.New(prometheus.NewRegistry())
	var user *domain.User
	handler := AuthMiddleware(manager, m)(echoUser(t, &user))

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rr.Code)
		}
		if user.ID != "u-1" || user.CompanyID != "co-1" || user.Role != domain.RoleCompanyUser {
			t.Fatalf("unexpected user %+v", user)
		}
	})

	failures := []struct {
		name   string
		header string
		reason string
	}{
		{"missing header", "", "missing_header"},
		{"bad format", "Token " + token, "bad_format"},
		{"bad token", "Bearer nope", "invalid_token"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/1", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
			if got := testutil.ToFloat64(m.AuthFailures.WithLabelValues(tc.reason)); got != 1 {
				t.Fatalf("expected one %s failure, got %v", tc.reason, got)
			}
		})
	}
}

func TestRoleGuards(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name  string
		guard func(http.Handler) http.Handler
		role  domain.Role
		want  int
	}{
		{"bank admin manages", RequireManager, domain.RoleBankAdmin, http.StatusNoContent},
		{"read only cannot manage", RequireManager, domain.RoleBankReadOnly, http.StatusForbidden},
		{"read only is bank", RequireBank, domain.RoleBankReadOnly, http.StatusNoContent},
		{"company user is not bank", RequireBank, domain.RoleCompanyUser, http.StatusForbidden},
		{"company user submits", RequireSubmitter, domain.RoleCompanyUser, http.StatusNoContent},
		{"read only cannot submit", RequireSubmitter, domain.RoleBankReadOnly, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := StaticUser(&domain.User{ID: "u", CompanyID: "co-1", Role: tc.role})(tc.guard(ok))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
		})
	}

	t.Run("no user", func(t *testing.T) {
		rr := httptest.NewRecorder()
		RequireBank(ok).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})
}

func TestRequireCompanyAccess(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		path string
		want int
	}{
		{"own company", &domain.User{ID: "u", CompanyID: "co-1", Role: domain.RoleCompanyUser}, "/companies/co-1/loans", http.StatusNoContent},
		{"other company", &domain.User{ID: "u", CompanyID: "co-1", Role: domain.RoleCompanyUser}, "/companies/co-2/loans", http.StatusForbidden},
		{"bank user", &domain.User{ID: "b", Role: domain.RoleBankReadOnly}, "/companies/co-2/loans", http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Use(StaticUser(tc.user))
			r.With(RequireCompanyAccess("companyID")).Get("/companies/{companyID}/loans", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
		})
	}
}
