package service

import (
	"context"

	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/internal/core/ports"
	"crypto-bot-api/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService for the single service wallet.
type WalletServiceImpl struct {
	chain  ports.ChainClient
	wallet *domain.Wallet
	log    zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(chain ports.ChainClient, wallet *domain.Wallet, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		chain:  chain,
		wallet: wallet,
		log:    log.With().Str("wallet", wallet.Address()).Logger(),
	}
}

// Address returns the base58 public key of the service wallet.
func (s *WalletServiceImpl) Address() string {
	return s.wallet.Address()
}

// GetBalance reads the wallet balance at the client's commitment level.
func (s *WalletServiceImpl) GetBalance(ctx context.Context) (*ports.BalanceResult, error) {
	lamports, err := s.chain.GetBalance(ctx, s.wallet.PublicKey())
	if err != nil {
		s.log.Error().Err(err).Msg("balance lookup failed")
		return nil, apperror.ErrBalanceUnavailable(err)
	}
	return &ports.BalanceResult{
		Lamports: lamports,
		SOL:      domain.LamportsToSOL(lamports),
	}, nil
}

// Airdrop requests amount SOL from the faucet, waits for confirmation and
// returns the balance read after the transaction landed.
func (s *WalletServiceImpl) Airdrop(ctx context.Context, amount decimal.Decimal) (*ports.AirdropResult, error) {
	lamports, err := domain.SOLToLamports(amount)
	if err != nil {
		return nil, apperror.ErrInvalidAmount(err.Error())
	}
	if lamports == 0 {
		return nil, apperror.ErrInvalidAmount("amount must be greater than zero")
	}

	sig, err := s.chain.RequestAirdrop(ctx, s.wallet.PublicKey(), lamports)
	if err != nil {
		s.log.Error().Err(err).Uint64("lamports", lamports).Msg("airdrop request failed")
		return nil, apperror.ErrAirdropFailed(err)
	}

	log := s.log.With().Str("signature", sig.String()).Logger()
	log.Info().Uint64("lamports", lamports).Msg("airdrop requested, awaiting confirmation")

	if err := s.chain.ConfirmTransaction(ctx, sig); err != nil {
		log.Error().Err(err).Msg("airdrop confirmation failed")
		return nil, apperror.ErrConfirmationFailed(err)
	}

	balance, err := s.GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().Str("new_balance", balance.SOL.String()).Msg("airdrop confirmed")

	return &ports.AirdropResult{
		Signature:  sig.String(),
		Lamports:   lamports,
		NewBalance: balance.SOL,
	}, nil
}
