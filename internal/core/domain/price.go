package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrPriceNotFound is returned by oracles that have no price for a token.
var ErrPriceNotFound = errors.New("price not found")

// PriceQuote is a price fetched from the oracle for one request. It is never
// cached or stored.
type PriceQuote struct {
	Token     string
	VsToken   string
	Price     decimal.Decimal
	FetchedAt time.Time
}
