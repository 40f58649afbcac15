package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Repayment metrics
	RepaymentsCreated  prometheus.Counter
	RepaymentsSettled  prometheus.Counter
	SettlementDuration prometheus.Histogram
	SettlementAmount   prometheus.Histogram
	SettlementErrors   *prometheus.CounterVec
	EffectCalculations *prometheus.CounterVec
	LoansClosed        prometheus.Counter

	// Calculator metrics
	BorrowingBaseCalculations prometheus.Counter
	LateFeeResolutions        prometheus.Counter

	// Certification metrics
	EbbaTransitions *prometheus.CounterVec

	// Wizard metrics
	WizardTransitions *prometheus.CounterVec

	// Outbox metrics
	OutboxPublished *prometheus.CounterVec
	OutboxErrors    prometheus.Counter
	OutboxBacklog   prometheus.Gauge

	// Database metrics
	DBRetries *prometheus.CounterVec

	// Cache metrics
	CacheLookups *prometheus.CounterVec

	// Authentication metrics
	AuthFailures *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits *prometheus.CounterVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// New creates all metrics and registers them with reg. A nil reg registers
// with the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		RepaymentsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_repayments_created_total",
			Help: "Total number of repayments submitted",
		}),
		RepaymentsSettled: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_repayments_settled_total",
			Help: "Total number of repayments settled",
		}),
		SettlementDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "goloan_settlement_duration_seconds",
			Help:    "Duration of repayment settlement",
			Buckets: prometheus.DefBuckets,
		}),
		SettlementAmount: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "goloan_settlement_amount",
			Help:    "Settled repayment amounts",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000, 10000000},
		}),
		SettlementErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_settlement_errors_total",
				Help: "Total settlement failures by type",
			},
			[]string{"error_type"},
		),
		EffectCalculations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_repayment_effect_calculations_total",
				Help: "Total repayment effect calculations by response status",
			},
			[]string{"status"},
		),
		LoansClosed: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_loans_closed_total",
			Help: "Total number of loans closed by a repayment",
		}),

		BorrowingBaseCalculations: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_borrowing_base_calculations_total",
			Help: "Total borrowing base calculations",
		}),
		LateFeeResolutions: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_late_fee_resolutions_total",
			Help: "Total late fee lookups",
		}),

		EbbaTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_ebba_transitions_total",
				Help: "Borrowing base certification status changes",
			},
			[]string{"status"},
		),

		WizardTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_settlement_wizard_transitions_total",
				Help: "Settlement wizard step changes",
			},
			[]string{"step"},
		),

		OutboxPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_outbox_published_total",
				Help: "Outbox events published by type",
			},
			[]string{"event_type"},
		),
		OutboxErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "goloan_outbox_errors_total",
			Help: "Outbox publish failures",
		}),
		OutboxBacklog: f.NewGauge(prometheus.GaugeOpts{
			Name: "goloan_outbox_backlog",
			Help: "Unpublished outbox events after the last batch",
		}),

		DBRetries: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_db_retries_total",
				Help: "Transactions retried after a transient PostgreSQL error",
			},
			[]string{"code"},
		),

		CacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_cache_lookups_total",
				Help: "Cache lookups by result",
			},
			[]string{"cache", "result"},
		),

		AuthFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_auth_failures_total",
				Help: "Total authentication failures",
			},
			[]string{"reason"},
		),

		RateLimitHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"ip"},
		),

		AuditLogsCreated: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goloan_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
