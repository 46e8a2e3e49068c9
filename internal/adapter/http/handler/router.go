package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"settlr/internal/adapter/http/middleware"
	redisStore "settlr/internal/adapter/storage/redis"
	"settlr/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.MerchantAuthService
	TreasurySvc    ports.TreasuryService
	PayoutSvc      ports.PayoutService
	RecipientSvc   ports.RecipientService
	LedgerSvc      ports.RecipientLedgerService
	AuthTokenSvc   ports.AuthTokenService
	MerchantRepo   ports.MerchantRepository
	TokenSvc       ports.TokenService
	ClaimCache     ports.ClaimCache           // nil = claim replay cache disabled
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- API-key-authenticated routes (merchant API) ---
	apiKeyAuth := middleware.APIKeyAuth(deps.MerchantRepo, deps.Logger)
	treasuryHandler := NewTreasuryHandler(deps.TreasurySvc)
	treasury := v1.Group("/treasury", apiKeyAuth)
	{
		treasury.POST("/deposit", rl("deposit"), treasuryHandler.Deposit)
		treasury.GET("/balance", rl("dashboard"), treasuryHandler.GetBalance)
		treasury.GET("/transactions", rl("dashboard"), treasuryHandler.ListTransactions)
	}

	payoutHandler := NewPayoutHandler(deps.PayoutSvc, deps.ClaimCache, deps.Logger)
	payouts := v1.Group("/payouts")
	{
		payouts.POST("", apiKeyAuth, rl("payouts"), payoutHandler.Create)
		payouts.POST("/batch", apiKeyAuth, rl("payouts"), payoutHandler.CreateBatch)
		payouts.GET("", apiKeyAuth, rl("dashboard"), payoutHandler.List)
		payouts.POST("/:id/expire", apiKeyAuth, payoutHandler.Expire)
		payouts.POST("/:id/fail", apiKeyAuth, payoutHandler.Fail)

		// Claim endpoints carry their own capability token; no other auth.
		payouts.GET("/claim/:token", payoutHandler.ClaimInfo)
		payouts.POST("/claim/:token", rl("payouts_claim"), payoutHandler.Claim)
	}

	// --- Recipient routes ---
	recipientHandler := NewRecipientHandler(deps.AuthTokenSvc, deps.RecipientSvc, deps.LedgerSvc, deps.PayoutSvc, deps.Logger)
	recipients := v1.Group("/recipients")
	{
		recipients.POST("/auth-token", rl("magic_link"), recipientHandler.RequestAuthToken)
		recipients.POST("/auth-token/validate", recipientHandler.ValidateToken)

		recipientJWT := middleware.JWTAuth(deps.TokenSvc, ports.TokenKindRecipient, deps.Logger)
		me := recipients.Group("/me", recipientJWT)
		{
			me.GET("", rl("dashboard"), recipientHandler.Me)
			me.PUT("", rl("dashboard"), recipientHandler.UpdateMe)
			me.GET("/balance", rl("dashboard"), recipientHandler.MyBalance)
			me.GET("/transactions", rl("dashboard"), recipientHandler.MyTransactions)
			me.POST("/withdraw", rl("dashboard"), recipientHandler.Withdraw)
			me.GET("/payouts", rl("dashboard"), recipientHandler.MyPayouts)
		}
	}

	return r
}
