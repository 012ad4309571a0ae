package service

import (
	"context"
	"errors"

	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/apperror"

	"github.com/rs/zerolog"
)

// PriceServiceImpl implements ports.PriceService.
type PriceServiceImpl struct {
	oracle  ports.PriceOracle
	vsToken string
	log     zerolog.Logger
}

// NewPriceService creates a PriceServiceImpl quoting every token against vsToken.
func NewPriceService(oracle ports.PriceOracle, vsToken string, log zerolog.Logger) *PriceServiceImpl {
	return &PriceServiceImpl{oracle: oracle, vsToken: vsToken, log: log}
}

// GetPrice fetches a fresh quote for tokenMint. Nothing is cached.
func (s *PriceServiceImpl) GetPrice(ctx context.Context, tokenMint string) (*domain.PriceQuote, error) {
	quote, err := s.oracle.GetPrice(ctx, tokenMint, s.vsToken)
	if err != nil {
		if errors.Is(err, domain.ErrPriceNotFound) {
			s.log.Info().Str("token_mint", tokenMint).Msg("oracle has no price for token")
			return nil, apperror.ErrPriceNotFound(tokenMint)
		}
		s.log.Error().Err(err).Str("token_mint", tokenMint).Msg("price lookup failed")
		return nil, apperror.ErrOracleUnavailable(err)
	}
	return quote, nil
}
