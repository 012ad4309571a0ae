package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto-bot-api/internal/adapter/http/dto"
	"crypto-bot-api/internal/adapter/http/middleware"
	redisStore "crypto-bot-api/internal/adapter/storage/redis"
	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := mocks.NewMockHealthChecker(ctrl)
	rpc.EXPECT().Name().Return("solana_rpc").AnyTimes()
	rpc.EXPECT().Ping(gomock.Any()).Return(nil)
	cache := mocks.NewMockHealthChecker(ctrl)
	cache.EXPECT().Name().Return("redis").AnyTimes()
	cache.EXPECT().Ping(gomock.Any()).Return(nil)

	router := SetupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{rpc, cache}, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["solana_rpc"].Status)
	assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	rpc := mocks.NewMockHealthChecker(ctrl)
	rpc.EXPECT().Name().Return("solana_rpc").AnyTimes()
	rpc.EXPECT().Ping(gomock.Any()).Return(errors.New("node is behind"))
	db := mocks.NewMockHealthChecker(ctrl)
	db.EXPECT().Name().Return("postgresql").AnyTimes()
	db.EXPECT().Ping(gomock.Any()).Return(nil)

	router := SetupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{rpc, db}, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unhealthy", resp.Dependencies["solana_rpc"].Status)
	assert.Equal(t, "node is behind", resp.Dependencies["solana_rpc"].Error)
	assert.Equal(t, "healthy", resp.Dependencies["postgresql"].Status)
}

func TestHealthCheck_PingsConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	started := make(chan struct{}, 2)
	release := make(chan struct{})

	slow := func(name string) *mocks.MockHealthChecker {
		m := mocks.NewMockHealthChecker(ctrl)
		m.EXPECT().Name().Return(name).AnyTimes()
		m.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			started <- struct{}{}
			<-release
			return nil
		})
		return m
	}

	router := SetupRouter(RouterDeps{
		HealthCheckers: []ports.HealthChecker{slow("a"), slow("b")},
		Logger:         zerolog.Nop(),
	})

	done := make(chan int)
	go func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		done <- w.Code
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("pings did not run concurrently")
		}
	}
	close(release)
	assert.Equal(t, http.StatusOK, <-done)
}

func TestRouter_RateLimitsAirdrop(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctrl := gomock.NewController(t)
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().Address().Return(walletAddr).AnyTimes()
	wallet.EXPECT().Airdrop(gomock.Any(), gomock.Any()).Return(&ports.AirdropResult{
		Signature:  airdropTxID,
		NewBalance: decimal.NewFromInt(1),
	}, nil).Times(2)

	router := SetupRouter(RouterDeps{
		WalletSvc:      wallet,
		RateLimitStore: redisStore.NewRateLimitStore(client),
		RateLimitRules: map[string]middleware.RateLimitRule{
			middleware.GroupAirdrop: {Limit: 2, Window: time.Minute},
		},
		Logger: zerolog.Nop(),
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/airdrop", jsonBody(`{"amount": 1}`))
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRouter_AuditsSuccessfulAirdrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	wallet := mocks.NewMockWalletService(ctrl)
	wallet.EXPECT().Address().Return(walletAddr).AnyTimes()
	wallet.EXPECT().Airdrop(gomock.Any(), gomock.Any()).Return(&ports.AirdropResult{
		Signature:  airdropTxID,
		NewBalance: decimal.NewFromInt(1),
	}, nil)

	audit := mocks.NewMockAuditService(ctrl)
	logged := make(chan *domain.AuditLog, 1)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		logged <- entry
	})

	router := SetupRouter(RouterDeps{WalletSvc: wallet, AuditSvc: audit, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/airdrop", jsonBody(`{"amount": 1}`)))
	require.Equal(t, http.StatusOK, w.Code)

	entry := <-logged
	assert.Equal(t, domain.AuditActionAirdrop, entry.Action)
	assert.Equal(t, airdropTxID, entry.ResourceID)
	assert.Equal(t, walletAddr, entry.WalletAddress)
	assert.Equal(t, w.Header().Get("X-Request-ID"), entry.RequestID)
}

func TestRouter_AuditsTradeWithWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	trade := mocks.NewMockTradeService(ctrl)
	trade.EXPECT().Sell(gomock.Any(), gomock.Any()).DoAndReturn(ackTrade(domain.TradeSideSell))

	audit := mocks.NewMockAuditService(ctrl)
	logged := make(chan *domain.AuditLog, 1)
	audit.EXPECT().Log(gomock.Any(), gomock.Any()).Do(func(_ context.Context, entry *domain.AuditLog) {
		logged <- entry
	})

	router := SetupRouter(RouterDeps{TradeSvc: trade, AuditSvc: audit, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sell", jsonBody(`{"tokenMint": "`+usdcMint+`", "amount": 3}`)))
	require.Equal(t, http.StatusOK, w.Code)

	entry := <-logged
	assert.Equal(t, domain.AuditActionSell, entry.Action)
	assert.Equal(t, usdcMint, entry.ResourceID)
	assert.Equal(t, walletAddr, entry.WalletAddress)
}
