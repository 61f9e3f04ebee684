package handler

import (
	"treasure-engine/internal/adapter/http/middleware"
	redisStore "treasure-engine/internal/adapter/storage/redis"
	"treasure-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	LedgerSvc      ports.LedgerService
	GasSvc         ports.GasService
	CoinSvc        ports.CoinService
	ProgressSvc    ports.ProgressService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
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

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

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

	// --- JWT-authenticated routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.GasSvc)
	coinHandler := NewCoinHandler(deps.CoinSvc)
	progressHandler := NewProgressHandler(deps.ProgressSvc)

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("", rl("wallet"), walletHandler.GetSummary)
		wallet.POST("/topup", rl("wallet_topup"), walletHandler.Topup)
		wallet.POST("/park", rl("wallet"), walletHandler.Park)
		wallet.POST("/unpark", rl("wallet"), walletHandler.Unpark)
		wallet.POST("/settle", rl("wallet"), walletHandler.Settle)
		wallet.POST("/gas", rl("wallet"), walletHandler.RunGas)
		wallet.GET("/transactions", rl("wallet"), walletHandler.ListTransactions)
	}

	coins := v1.Group("/coins", jwtAuth)
	{
		coins.POST("", rl("coins_hide"), coinHandler.Hide)
		coins.GET("", rl("coins_collect"), coinHandler.ListVisible)
		coins.GET("/:id", rl("coins_collect"), coinHandler.Get)
		coins.POST("/:id/collect", rl("coins_collect"), coinHandler.Collect)
		coins.DELETE("/:id", rl("coins_hide"), coinHandler.Retrieve)
	}

	progress := v1.Group("/progress", jwtAuth)
	{
		progress.GET("", rl("progress"), progressHandler.GetProgress)
	}

	return r
}
