package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Render decimals as JSON numbers so any magnitude survives encoding.
	decimal.MarshalJSONWithoutQuotes = true
}

// AirdropRequest is the request body for POST /airdrop. Amount accepts a
// JSON number or a decimal string.
type AirdropRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// TradeRequest is the request body for POST /buy and POST /sell. Both fields
// are kept as raw JSON so any supplied value can be echoed back.
type TradeRequest struct {
	TokenMint json.RawMessage `json:"tokenMint"`
	Amount    json.RawMessage `json:"amount"`
}

// PriceRequest binds the path of GET /price/:tokenMint.
type PriceRequest struct {
	TokenMint string `uri:"tokenMint" binding:"solana_address"`
}

// BalanceResponse is the response for GET /balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// AirdropResponse is the response for a confirmed airdrop.
type AirdropResponse struct {
	Message    string          `json:"message"`
	Tx         string          `json:"tx"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// TradeResponse acknowledges a buy or sell request. Absent input fields are
// echoed as null.
type TradeResponse struct {
	Message   string          `json:"message"`
	TokenMint json.RawMessage `json:"tokenMint"`
	Amount    json.RawMessage `json:"amount"`
	Executed  bool            `json:"executed"`
}

// PriceResponse is the response for GET /price/:tokenMint.
type PriceResponse struct {
	Token string          `json:"token"`
	Price decimal.Decimal `json:"price"`
}

// AddressResponse is the response for GET /address.
type AddressResponse struct {
	Address string `json:"address"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// DependencyStatus reports one dependency in HealthResponse.
type DependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}
