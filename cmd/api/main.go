package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"settlr/config"
	httpHandler "settlr/internal/adapter/http/handler"
	pgStorage "settlr/internal/adapter/storage/postgres"
	redisStorage "settlr/internal/adapter/storage/redis"
	"settlr/internal/core/ports"
	"settlr/internal/service"
	"settlr/pkg/logger"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting settlr")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	merchantRepo := pgStorage.NewMerchantRepo(pool)
	balanceRepo := pgStorage.NewBalanceRepo(pool)
	treasuryTxRepo := pgStorage.NewTreasuryTxRepo(pool)
	recipientRepo := pgStorage.NewRecipientRepo(pool)
	recipientBalanceRepo := pgStorage.NewRecipientBalanceRepo(pool)
	balanceTxRepo := pgStorage.NewBalanceTxRepo(pool)
	payoutRepo := pgStorage.NewPayoutRepo(pool)
	batchRepo := pgStorage.NewBatchRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	claimCache := redisStorage.NewClaimCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	authSvc := service.NewAuthService(merchantRepo, hashSvc, encSvc, tokenSvc)
	treasurySvc := service.NewTreasuryService(
		balanceRepo,
		treasuryTxRepo,
		transactor,
		logger.WithComponent(log, "treasury"),
	)
	recipientSvc := service.NewRecipientService(recipientRepo, logger.WithComponent(log, "recipients"))
	ledgerSvc := service.NewRecipientLedgerService(
		recipientBalanceRepo,
		balanceTxRepo,
		transactor,
		logger.WithComponent(log, "recipient_ledger"),
	)
	webhookSvc := service.NewWebhookService(
		merchantRepo,
		encSvc,
		sigSvc,
		&http.Client{Timeout: cfg.Webhook.Timeout},
		logger.WithComponent(log, "webhooks"),
	)
	payoutSvc := service.NewPayoutService(
		payoutRepo,
		batchRepo,
		treasurySvc,
		recipientSvc,
		ledgerSvc,
		webhookSvc,
		cfg.Payout.ClaimBaseURL,
		cfg.Payout.ClaimTTL,
		cfg.Payout.Currency,
		logger.WithComponent(log, "payouts"),
	)
	authTokenSvc := service.NewAuthTokenService(
		recipientRepo,
		tokenSvc,
		cfg.AuthToken.Expiry,
		logger.WithComponent(log, "magic_link"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TreasurySvc:    treasurySvc,
		PayoutSvc:      payoutSvc,
		RecipientSvc:   recipientSvc,
		LedgerSvc:      ledgerSvc,
		AuthTokenSvc:   authTokenSvc,
		MerchantRepo:   merchantRepo,
		TokenSvc:       tokenSvc,
		ClaimCache:     claimCache,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
