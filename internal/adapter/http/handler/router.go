package handler

import (
	"crypto-bot-api/internal/adapter/http/middleware"
	"crypto-bot-api/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	PriceSvc       ports.PriceService
	TradeSvc       ports.TradeService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	OpenAPISpec    []byte
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	r.GET("/balance", rl(middleware.GroupRead), walletHandler.GetBalance)
	r.GET("/address", rl(middleware.GroupRead), walletHandler.Address)
	r.POST("/airdrop", rl(middleware.GroupAirdrop), walletHandler.Airdrop)

	tradeHandler := NewTradeHandler(deps.TradeSvc)
	r.POST("/buy", rl(middleware.GroupTrade), tradeHandler.Buy)
	r.POST("/sell", rl(middleware.GroupTrade), tradeHandler.Sell)

	priceHandler := NewPriceHandler(deps.PriceSvc)
	r.GET("/price/:tokenMint", rl(middleware.GroupRead), priceHandler.GetPrice)

	return r
}
