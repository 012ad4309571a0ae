package solanarpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"crypto-bot-api/config"
	"crypto-bot-api/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// LoadWallet builds the service wallet from configuration. wallet.secret may
// be a base58 string or a JSON byte array; wallet.keyfile is a solana-keygen
// JSON file. Errors never include key material.
func LoadWallet(cfg config.WalletConfig) (*domain.Wallet, error) {
	var (
		key solana.PrivateKey
		err error
	)
	switch {
	case cfg.Secret != "":
		key, err = ParsePrivateKey(cfg.Secret)
	case cfg.Keyfile != "":
		var raw []byte
		raw, err = os.ReadFile(cfg.Keyfile)
		if err != nil {
			return nil, fmt.Errorf("reading wallet keyfile: %w", err)
		}
		key, err = ParsePrivateKey(string(raw))
	default:
		return nil, errors.New("no wallet secret configured")
	}
	if err != nil {
		return nil, err
	}
	return domain.NewWallet(key)
}

// ParsePrivateKey decodes a 64-byte key pair from base58 or from the JSON
// byte-array format written by solana-keygen.
func ParsePrivateKey(secret string) (solana.PrivateKey, error) {
	secret = strings.TrimSpace(secret)
	if strings.HasPrefix(secret, "[") {
		var ints []int
		if err := json.Unmarshal([]byte(secret), &ints); err != nil {
			return nil, errors.New("wallet secret is not a valid JSON byte array")
		}
		key := make(solana.PrivateKey, len(ints))
		for i, v := range ints {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("wallet secret byte %d out of range", i)
			}
			key[i] = byte(v)
		}
		return checkKeyLength(key)
	}

	raw, err := base58.Decode(secret)
	if err != nil {
		return nil, errors.New("wallet secret is not valid base58")
	}
	return checkKeyLength(raw)
}

func checkKeyLength(key []byte) (solana.PrivateKey, error) {
	if len(key) != 64 {
		return nil, fmt.Errorf("wallet secret must decode to 64 bytes, got %d", len(key))
	}
	return solana.PrivateKey(key), nil
}
