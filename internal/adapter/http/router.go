package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/goloan/internal/adapter/http/handler"
	"github.com/iho/goloan/internal/adapter/http/middleware"
	"github.com/iho/goloan/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	Logger zerolog.Logger

	HealthHandler         *handler.HealthHandler
	CalculatorHandler     *handler.CalculatorHandler
	CompanyHandler        *handler.CompanyHandler
	ContractHandler       *handler.ContractHandler
	LoanHandler           *handler.LoanHandler
	RepaymentHandler      *handler.RepaymentHandler
	EbbaHandler           *handler.EbbaHandler
	SettlementHandler     *handler.SettlementHandler
	ReconciliationHandler *handler.ReconciliationHandler
	AuditHandler          *handler.AuditHandler

	// Authenticate puts the caller on the request context. Either
	// middleware.AuthMiddleware or middleware.StaticUser.
	Authenticate func(http.Handler) http.Handler

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter

	// MetricsHandler serves /metrics; promhttp.Handler when nil.
	MetricsHandler http.Handler
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Handle("/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Authenticate != nil {
			r.Use(cfg.Authenticate)
		}
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		// Calculators
		r.Post("/borrowing-base/calculate", cfg.CalculatorHandler.BorrowingBase)
		r.Post("/late-fees/resolve", cfg.CalculatorHandler.LateFee)

		// Companies and everything scoped to one
		r.Route("/companies", func(r chi.Router) {
			r.With(middleware.RequireBank).Get("/", cfg.CompanyHandler.List)
			r.With(middleware.RequireManager).Post("/", cfg.CompanyHandler.Create)

			r.Route("/{companyID}", func(r chi.Router) {
				r.Use(middleware.RequireCompanyAccess("companyID"))

				r.Get("/", cfg.CompanyHandler.Get)

				r.Get("/contract", cfg.ContractHandler.GetActive)
				r.With(middleware.RequireManager).Put("/contract", cfg.ContractHandler.Upsert)
				r.With(middleware.RequireBank).Get("/contract/versions", cfg.ContractHandler.Versions)

				r.Get("/loans", cfg.LoanHandler.ListByCompany)
				r.With(middleware.RequireManager).Post("/loans", cfg.LoanHandler.Create)

				r.With(middleware.RequireSubmitter).Post("/repayments", cfg.RepaymentHandler.Create)
				r.Post("/repayments/effect", cfg.RepaymentHandler.Effect)
				r.With(middleware.RequireManager).Post("/repayments/{paymentID}/settle", cfg.RepaymentHandler.Settle)

				r.Get("/ebba-applications", cfg.EbbaHandler.ListByCompany)
				r.With(middleware.RequireSubmitter).Post("/ebba-applications", cfg.EbbaHandler.Create)
				r.Get("/borrowing-base", cfg.EbbaHandler.Current)

				r.With(middleware.RequireBank).Get("/reconciliation", cfg.ReconciliationHandler.Company)
			})
		})

		// Loans
		r.Route("/loans/{id}", func(r chi.Router) {
			r.Get("/", cfg.LoanHandler.Get)
			r.Get("/statement", cfg.LoanHandler.Statement)
			r.With(middleware.RequireBank).Get("/reconciliation", cfg.ReconciliationHandler.Loan)
		})

		// Payments
		r.Route("/payments/{id}", func(r chi.Router) {
			r.Get("/", cfg.RepaymentHandler.Get)
			r.Get("/transactions", cfg.RepaymentHandler.Transactions)
		})

		// Borrowing base certifications
		r.Route("/ebba-applications/{id}", func(r chi.Router) {
			r.Get("/", cfg.EbbaHandler.Get)
			r.With(middleware.RequireSubmitter).Post("/submit", cfg.EbbaHandler.Submit)
			r.With(middleware.RequireManager).Post("/approve", cfg.EbbaHandler.Approve)
			r.With(middleware.RequireManager).Post("/reject", cfg.EbbaHandler.Reject)
		})

		// Settle-repayment wizard
		r.Route("/settlements", func(r chi.Router) {
			r.Use(middleware.RequireBank)

			r.With(middleware.RequireManager).Post("/", cfg.SettlementHandler.Start)
			r.Get("/{id}", cfg.SettlementHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/{id}/effect", cfg.SettlementHandler.Effect)
				r.Post("/{id}/back", cfg.SettlementHandler.Back)
				r.Post("/{id}/override", cfg.SettlementHandler.Override)
				r.Post("/{id}/submit", cfg.SettlementHandler.Submit)
			})
		})

		// Audit trail
		r.With(middleware.RequireBank).Get("/audit-logs", cfg.AuditHandler.List)
	})

	return r
}
