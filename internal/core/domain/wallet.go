package domain

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

// Wallet is the service's signing identity. Only the public address is ever
// exposed through String, JSON or log marshalling.
type Wallet struct {
	publicKey  solana.PublicKey
	privateKey solana.PrivateKey
}

// NewWallet builds a Wallet from a 64-byte ed25519 key pair (seed || public key)
// and checks that both halves belong together.
func NewWallet(key solana.PrivateKey) (*Wallet, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("wallet key must be %d bytes, got %d", ed25519.PrivateKeySize, len(key))
	}
	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return nil, errors.New("wallet key pair is inconsistent: public half does not match seed")
	}

	priv := make(solana.PrivateKey, len(key))
	copy(priv, key)
	return &Wallet{
		publicKey:  priv.PublicKey(),
		privateKey: priv,
	}, nil
}

// PublicKey returns the wallet's on-chain account.
func (w *Wallet) PublicKey() solana.PublicKey {
	return w.publicKey
}

// Address returns the base58 public address.
func (w *Wallet) Address() string {
	return w.publicKey.String()
}

func (w *Wallet) String() string {
	return w.Address()
}

// GoString keeps %#v from dumping the key bytes.
func (w *Wallet) GoString() string {
	return fmt.Sprintf("domain.Wallet{Address: %q}", w.Address())
}

func (w *Wallet) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Address string `json:"address"`
	}{Address: w.Address()})
}

func (w *Wallet) MarshalZerologObject(e *zerolog.Event) {
	e.Str("address", w.Address())
}
