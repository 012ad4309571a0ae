package ports

import (
	"context"
	"encoding/json"

	"crypto-bot-api/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// --- Outbound Ports (External Collaborators) ---

// ChainClient is the subset of the Solana JSON-RPC API the service uses.
type ChainClient interface {
	// GetBalance returns the account balance in lamports.
	GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error)
	// RequestAirdrop asks the faucet for lamports and returns the transaction signature.
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error)
	// ConfirmTransaction blocks until the signature reaches the configured
	// commitment, the transaction fails, or the confirmation window elapses.
	ConfirmTransaction(ctx context.Context, signature solana.Signature) error
}

// PriceOracle quotes the price of one token in units of another.
type PriceOracle interface {
	// GetPrice returns domain.ErrPriceNotFound when the oracle has no price for token.
	GetPrice(ctx context.Context, token, vsToken string) (*domain.PriceQuote, error)
}

// --- Service Ports (Business Logic) ---

// WalletService covers balance and faucet operations on the service wallet.
type WalletService interface {
	GetBalance(ctx context.Context) (*BalanceResult, error)
	Airdrop(ctx context.Context, amount decimal.Decimal) (*AirdropResult, error)
	Address() string
}

// BalanceResult holds a balance in both units.
type BalanceResult struct {
	Lamports uint64
	SOL      decimal.Decimal
}

// AirdropResult holds a confirmed airdrop and the balance read after it.
type AirdropResult struct {
	Signature  string
	Lamports   uint64
	NewBalance decimal.Decimal
}

// PriceService looks up token prices against the configured vs token.
type PriceService interface {
	GetPrice(ctx context.Context, tokenMint string) (*domain.PriceQuote, error)
}

// TradeService accepts buy and sell requests.
type TradeService interface {
	Buy(ctx context.Context, req TradeRequest) (*domain.TradeAck, error)
	Sell(ctx context.Context, req TradeRequest) (*domain.TradeAck, error)
}

// TradeRequest holds the caller's trade input as received. Fields are raw
// JSON values and may be of any type, or nil when absent.
type TradeRequest struct {
	TokenMint json.RawMessage
	Amount    json.RawMessage
}
