package domain

import (
	"errors"
	"math"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// SOLDecimals is the number of fractional digits between SOL and lamports.
const SOLDecimals = 9

// LamportsPerSOL is the base-unit scale factor of the native currency.
const LamportsPerSOL = solana.LAMPORTS_PER_SOL

var (
	ErrNegativeAmount  = errors.New("amount must not be negative")
	ErrAmountPrecision = errors.New("amount has more than 9 decimal places")
	ErrAmountOverflow  = errors.New("amount exceeds the maximum lamport value")
)

var maxLamports = decimal.NewFromBigInt(new(big.Int).SetUint64(math.MaxUint64), 0)

// LamportsToSOL converts a base-unit balance to display units without rounding.
func LamportsToSOL(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -SOLDecimals)
}

// SOLToLamports converts a display-unit amount to lamports. The conversion
// is exact: sub-lamport precision is rejected instead of truncated.
func SOLToLamports(sol decimal.Decimal) (uint64, error) {
	if sol.IsNegative() {
		return 0, ErrNegativeAmount
	}
	lamports := sol.Shift(SOLDecimals)
	if !lamports.IsInteger() {
		return 0, ErrAmountPrecision
	}
	if lamports.GreaterThan(maxLamports) {
		return 0, ErrAmountOverflow
	}
	return lamports.BigInt().Uint64(), nil
}
