package solanarpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crypto-bot-api/config"
	"crypto-bot-api/pkg/logger"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

const healthOK = "ok"

var (
	ErrConfirmationTimeout = errors.New("transaction not confirmed before deadline")
	ErrTransactionFailed   = errors.New("transaction failed on chain")
)

// rpcAPI is the part of *rpc.Client used here.
type rpcAPI interface {
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
	GetHealth(ctx context.Context) (string, error)
}

// Client implements ports.ChainClient and ports.HealthChecker on top of
// the Solana JSON-RPC API.
type Client struct {
	rpc            rpcAPI
	commitment     rpc.CommitmentType
	confirmTimeout time.Duration
	pollInterval   time.Duration
	log            zerolog.Logger
}

// NewClient creates a Client for the configured RPC endpoint.
func NewClient(cfg config.SolanaConfig, log zerolog.Logger) (*Client, error) {
	commitment, err := parseCommitment(cfg.Commitment)
	if err != nil {
		return nil, err
	}
	return &Client{
		rpc:            rpc.New(cfg.RPCURL),
		commitment:     commitment,
		confirmTimeout: cfg.ConfirmTimeout,
		pollInterval:   cfg.PollInterval,
		log:            logger.Component(log, "solana_rpc"),
	}, nil
}

func parseCommitment(s string) (rpc.CommitmentType, error) {
	switch rpc.CommitmentType(s) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return rpc.CommitmentType(s), nil
	case "":
		return rpc.CommitmentConfirmed, nil
	}
	return "", fmt.Errorf("unsupported commitment %q", s)
}

// GetBalance returns the account balance in lamports.
func (c *Client) GetBalance(ctx context.Context, account solana.PublicKey) (uint64, error) {
	out, err := c.rpc.GetBalance(ctx, account, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("solana getBalance: %w", err)
	}
	if out == nil {
		return 0, errors.New("solana getBalance: empty result")
	}
	return out.Value, nil
}

// RequestAirdrop asks the cluster faucet for lamports.
func (c *Client) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpc.RequestAirdrop(ctx, account, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("solana requestAirdrop: %w", err)
	}
	c.log.Debug().
		Str("signature", sig.String()).
		Uint64("lamports", lamports).
		Msg("airdrop requested")
	return sig, nil
}

// ConfirmTransaction polls the signature status until it reaches the
// client's commitment level. The wait is bounded by the confirm timeout.
func (c *Client) ConfirmTransaction(ctx context.Context, signature solana.Signature) error {
	ctx, cancel := context.WithTimeout(ctx, c.confirmTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		out, err := c.rpc.GetSignatureStatuses(ctx, false, signature)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: %s", ErrConfirmationTimeout, signature)
			}
			return fmt.Errorf("solana getSignatureStatuses: %w", err)
		}

		if out != nil && len(out.Value) > 0 && out.Value[0] != nil {
			status := out.Value[0]
			if status.Err != nil {
				return fmt.Errorf("%w: %v", ErrTransactionFailed, status.Err)
			}
			if commitmentReached(status.ConfirmationStatus, c.commitment) {
				c.log.Debug().
					Str("signature", signature.String()).
					Str("status", string(status.ConfirmationStatus)).
					Uint64("slot", status.Slot).
					Msg("transaction confirmed")
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %s", ErrConfirmationTimeout, signature)
		case <-ticker.C:
		}
	}
}

func commitmentReached(status rpc.ConfirmationStatusType, want rpc.CommitmentType) bool {
	rank := map[string]int{
		string(rpc.ConfirmationStatusProcessed): 1,
		string(rpc.ConfirmationStatusConfirmed): 2,
		string(rpc.ConfirmationStatusFinalized): 3,
	}
	got, ok := rank[string(status)]
	if !ok {
		return false
	}
	return got >= rank[string(want)]
}

// Ping checks the RPC node's health.
func (c *Client) Ping(ctx context.Context) error {
	out, err := c.rpc.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("solana getHealth: %w", err)
	}
	if out != healthOK {
		return fmt.Errorf("solana node unhealthy: %s", out)
	}
	return nil
}

// Name returns the dependency name.
func (c *Client) Name() string {
	return "solana_rpc"
}
