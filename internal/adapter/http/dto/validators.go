package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

// publicKeyLength is the size of an ed25519 public key, which is also the
// size of every Solana account address.
const publicKeyLength = 32

func init() {
	if err := RegisterValidators(binding.Validator.Engine()); err != nil {
		panic(err)
	}
}

// RegisterValidators adds the custom binding tags to a validator engine.
// Engines other than go-playground's are left untouched.
func RegisterValidators(engine interface{}) error {
	v, ok := engine.(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("solana_address", validateSolanaAddress); err != nil {
		return fmt.Errorf("registering solana_address validator: %w", err)
	}
	return nil
}

// ValidMint reports whether s is a base58-encoded 32-byte account address.
func ValidMint(s string) bool {
	if s == "" || len(s) > 44 {
		return false
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(raw) == publicKeyLength
}

func validateSolanaAddress(fl validator.FieldLevel) bool {
	return ValidMint(fl.Field().String())
}
