package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/goloan/internal/adapter/http"
	"github.com/iho/goloan/internal/adapter/http/handler"
	apimiddleware "github.com/iho/goloan/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/goloan/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/goloan/internal/adapter/repository/redis"
	"github.com/iho/goloan/internal/domain"
	"github.com/iho/goloan/internal/infrastructure/auth"
	"github.com/iho/goloan/internal/infrastructure/config"
	"github.com/iho/goloan/internal/infrastructure/eventpublisher"
	"github.com/iho/goloan/internal/infrastructure/logger"
	"github.com/iho/goloan/internal/infrastructure/metrics"
	"github.com/iho/goloan/internal/infrastructure/postgres"
	"github.com/iho/goloan/internal/infrastructure/redis"
	"github.com/iho/goloan/internal/usecase"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitMaxIdle         = 10 * time.Minute
	outboxRetention          = 7 * 24 * time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "goloan",
	})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:    cfg.DatabaseURL,
		MaxConns:       cfg.DatabaseMaxConns,
		MinConns:       cfg.DatabaseMinConns,
		ConnectTimeout: cfg.DatabaseTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClientWithConfig(ctx, redis.ClientConfig{
		URL:      cfg.RedisURL,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New(nil)

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	companyRepo := postgresRepo.NewCompanyRepository(pool)
	contractRepo := postgresRepo.NewContractRepository(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	ebbaRepo := postgresRepo.NewEbbaApplicationRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()

	var outboxRepo usecase.OutboxRepository = postgresRepo.NewNullOutboxRepository()
	if cfg.OutboxEnabled {
		outboxRepo = postgresRepo.NewOutboxRepository(pool)
	}

	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	sessionStore := redisRepo.NewSessionStore(redisClient, cfg.SessionTTL)
	contractCache := redisRepo.NewCache(redisClient).Namespace("contract")

	// Initialize use cases
	contractUC := usecase.NewContractUseCase(txManager, contractRepo, outboxRepo, auditRepo, contractCache, cfg.ContractCacheTTL, idGen, m)
	companyUC := usecase.NewCompanyUseCase(companyRepo, idGen)
	calculatorUC := usecase.NewCalculatorUseCase(contractUC, m)
	loanUC := usecase.NewLoanUseCase(companyRepo, loanRepo, contractUC, idGen)
	repaymentUC := usecase.NewRepaymentUseCase(
		txManager, companyRepo, contractUC, loanRepo, paymentRepo,
		transactionRepo, outboxRepo, auditRepo, idGen, m,
	).WithRetrier(postgresRepo.NewRetrier(postgresRepo.WithRetryMetrics(m)))
	ebbaUC := usecase.NewEbbaUseCase(txManager, ebbaRepo, contractUC, outboxRepo, auditRepo, idGen, m)
	settlementUC := usecase.NewSettlementUseCase(sessionStore, repaymentUC, paymentRepo, contractUC, auditRepo, idGen, m)
	reconciliationUC := usecase.NewReconciliationUseCase(companyRepo, loanRepo, transactionRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)

	authenticate, err := newAuthenticator(cfg, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure authentication")
	}

	var rateLimiter *apimiddleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = apimiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)
		go rateLimiter.RunCleanup(ctx.Done(), rateLimitCleanupInterval, rateLimitMaxIdle)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		Logger:                appLogger,
		HealthHandler:         handler.NewHealthHandler(handler.PostgresCheck(pool), handler.RedisCheck(redisClient)),
		CalculatorHandler:     handler.NewCalculatorHandler(calculatorUC),
		CompanyHandler:        handler.NewCompanyHandler(companyUC),
		ContractHandler:       handler.NewContractHandler(contractUC),
		LoanHandler:           handler.NewLoanHandler(loanUC),
		RepaymentHandler:      handler.NewRepaymentHandler(repaymentUC),
		EbbaHandler:           handler.NewEbbaHandler(ebbaUC),
		SettlementHandler:     handler.NewSettlementHandler(settlementUC),
		ReconciliationHandler: handler.NewReconciliationHandler(reconciliationUC),
		AuditHandler:          handler.NewAuditHandler(auditUC),
		Authenticate:          authenticate,
		IdempotencyStore:      idempotencyStore,
		IdempotencyTTL:        cfg.IdempotencyTTL,
		RateLimiter:           rateLimiter,
	})

	// Outbox worker
	if cfg.OutboxEnabled {
		publisher, closePublisher := newPublisher(cfg, appLogger)
		defer closePublisher()

		worker := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  publisher,
			Metrics:    m,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxInterval,
			Retention:  outboxRetention,
		})
		go func() {
			if err := worker.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("event publisher stopped")
			}
		}()
	}

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Bool("auth", cfg.AuthEnabled).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newAuthenticator returns JWT authentication when enabled, otherwise a
// middleware that acts as the configured dev user.
func newAuthenticator(cfg *config.Config, m *metrics.Metrics) (func(http.Handler) http.Handler, error) {
	if cfg.AuthEnabled {
		if cfg.JWTSecret == "" {
			return nil, errors.New("JWT_SECRET is required when AUTH_ENABLED is set")
		}
		return apimiddleware.AuthMiddleware(auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration), m), nil
	}

	user, err := devUser(cfg)
	if err != nil {
		return nil, err
	}
	log.Warn().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("authentication disabled, using dev user")
	return apimiddleware.StaticUser(user), nil
}

func devUser(cfg *config.Config) (*domain.User, error) {
	role := domain.Role(cfg.DevUserRole)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInsufficientRole, cfg.DevUserRole)
	}
	if !role.IsBank() {
		return nil, fmt.Errorf("dev user role %q needs a company", role)
	}
	return &domain.User{ID: cfg.DevUserID, Role: role}, nil
}

// newPublisher picks Kafka when enabled and the log otherwise. The returned
// func releases the publisher.
func newPublisher(cfg *config.Config, l zerolog.Logger) (eventpublisher.Publisher, func()) {
	if !cfg.KafkaEnabled {
		pl := l.With().Str("component", "event_log").Logger()
		return eventpublisher.NewLogPublisher(&pl), func() {}
	}

	kp := eventpublisher.NewKafkaPublisher(eventpublisher.KafkaConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
	})
	return kp, func() {
		if err := kp.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close kafka writer")
		}
	}
}
