package service

import (
	"context"

	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"

	"github.com/rs/zerolog"
)

// TradeServiceImpl implements ports.TradeService. Orders are acknowledged
// on behalf of the service wallet but never routed to a swap venue.
type TradeServiceImpl struct {
	wallet *domain.Wallet
	log    zerolog.Logger
}

// NewTradeService creates a new TradeServiceImpl.
func NewTradeService(wallet *domain.Wallet, log zerolog.Logger) *TradeServiceImpl {
	return &TradeServiceImpl{wallet: wallet, log: log}
}

// Buy acknowledges spending req.Amount SOL on req.TokenMint.
func (s *TradeServiceImpl) Buy(_ context.Context, req ports.TradeRequest) (*domain.TradeAck, error) {
	return s.acknowledge(domain.TradeSideBuy, req), nil
}

// Sell acknowledges selling req.Amount of req.TokenMint for SOL.
func (s *TradeServiceImpl) Sell(_ context.Context, req ports.TradeRequest) (*domain.TradeAck, error) {
	return s.acknowledge(domain.TradeSideSell, req), nil
}

func (s *TradeServiceImpl) acknowledge(side domain.TradeSide, req ports.TradeRequest) *domain.TradeAck {
	order := domain.TradeOrder{
		Side:      side,
		Wallet:    s.wallet.Address(),
		TokenMint: req.TokenMint,
		Amount:    req.Amount,
	}

	// TODO: route orders through the Jupiter swap API once a signer flow exists.
	s.log.Warn().
		Str("side", string(side)).
		Str("token_mint", domain.EchoText(req.TokenMint)).
		Str("amount", domain.EchoText(req.Amount)).
		Msg("trade execution not implemented, acknowledging only")

	return &domain.TradeAck{
		Order:    order,
		Message:  order.AckMessage(),
		Executed: false,
	}
}
