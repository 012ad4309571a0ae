// Package app wires configuration, adapters and services into an HTTP handler.
package app

import (
	"context"
	"fmt"
	"net/http"

	"crypto-bot-api/api"
	"crypto-bot-api/config"
	"crypto-bot-api/internal/adapter/chain/solanarpc"
	httpHandler "crypto-bot-api/internal/adapter/http/handler"
	"crypto-bot-api/internal/adapter/oracle/jupiter"
	pgStorage "crypto-bot-api/internal/adapter/storage/postgres"
	redisStorage "crypto-bot-api/internal/adapter/storage/redis"
	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// App is a fully wired service ready to be served.
type App struct {
	Router *gin.Engine
	Wallet *domain.Wallet

	closers []func()
}

// New builds the service from cfg. Redis and PostgreSQL are only dialled when
// enabled; the caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	wallet, err := solanarpc.LoadWallet(cfg.Wallet)
	if err != nil {
		return nil, fmt.Errorf("loading wallet: %w", err)
	}

	chain, err := solanarpc.NewClient(cfg.Solana, log)
	if err != nil {
		return nil, fmt.Errorf("creating solana client: %w", err)
	}

	oracle := jupiter.NewClient(cfg.Oracle.BaseURL, &http.Client{Timeout: cfg.Oracle.Timeout}, log)

	a := &App{Wallet: wallet}
	checkers := []ports.HealthChecker{chain}

	deps := httpHandler.RouterDeps{
		WalletSvc:   service.NewWalletService(chain, wallet, log),
		PriceSvc:    service.NewPriceService(oracle, cfg.Oracle.VsToken, log),
		TradeSvc:    service.NewTradeService(wallet, log),
		OpenAPISpec: api.OpenAPI,
		Logger:      log,
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = rdb.Close() })
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			a.Close()
			return nil, err
		}
		auditRepo = pgStorage.NewAuditRepository(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}
	deps.AuditSvc = service.NewAuditService(auditRepo, log)
	deps.HealthCheckers = checkers

	a.Router = httpHandler.SetupRouter(deps)

	log.Info().
		Object("wallet", wallet).
		Bool("rate_limit", cfg.Redis.Enabled).
		Bool("audit_db", cfg.Database.Enabled).
		Msg("service wired")

	return a, nil
}

// Close releases connections in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
