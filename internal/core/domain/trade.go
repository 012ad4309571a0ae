package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TradeSide is the direction of a trade request.
type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// TradeOrder is a caller's buy or sell request against SOL. TokenMint and
// Amount hold the JSON values exactly as supplied; nothing is validated.
type TradeOrder struct {
	Side      TradeSide
	Wallet    string
	TokenMint json.RawMessage
	Amount    json.RawMessage
}

// TradeAck acknowledges a trade request. Executed stays false until swap
// routing exists.
type TradeAck struct {
	Order    TradeOrder
	Message  string
	Executed bool
}

// AckMessage renders the acknowledgement text for the order.
func (o TradeOrder) AckMessage() string {
	if o.Side == TradeSideSell {
		return fmt.Sprintf("Sold %s of %s for SOL", EchoText(o.Amount), EchoText(o.TokenMint))
	}
	return fmt.Sprintf("Bought %s SOL worth of %s", EchoText(o.Amount), EchoText(o.TokenMint))
}

// EchoText renders a raw JSON value for display: strings lose their quotes,
// every other value keeps its compact JSON text and an absent value reads
// "null".
func EchoText(v json.RawMessage) string {
	trimmed := bytes.TrimSpace(v)
	if len(trimmed) == 0 {
		return "null"
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
