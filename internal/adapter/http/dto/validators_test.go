package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mint validation ---

func TestValidMint_Valid(t *testing.T) {
	cases := []string{
		"So11111111111111111111111111111111111111112",
		"EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
		"11111111111111111111111111111111",
	}
	for _, tc := range cases {
		assert.True(t, ValidMint(tc), "expected valid: %s", tc)
	}
}

func TestValidMint_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-mint",
		"0OIl",                 // characters outside the base58 alphabet
		"So1111111111111111111", // decodes, but too short
		"So11111111111111111111111111111111111111112So11111111111111111111111111111111111111112",
		"<script>",
	}
	for _, tc := range cases {
		assert.False(t, ValidMint(tc), "expected invalid: %s", tc)
	}
}

func TestSolanaAddressTag(t *testing.T) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	assert.NoError(t, v.Struct(PriceRequest{TokenMint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"}))
	assert.Error(t, v.Struct(PriceRequest{TokenMint: "bogus"}))
}

func TestRegisterValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidators(v))

	type req struct {
		Mint string `validate:"solana_address"`
	}
	assert.NoError(t, v.Struct(req{Mint: "So11111111111111111111111111111111111111112"}))
	assert.Error(t, v.Struct(req{Mint: "bogus"}))

	assert.NoError(t, RegisterValidators(struct{}{}), "foreign engines are ignored")
}

// --- Request decoding ---

func TestAirdropRequest_AcceptsNumberAndString(t *testing.T) {
	var fromNumber AirdropRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": 1.5}`), &fromNumber))
	assert.True(t, decimal.RequireFromString("1.5").Equal(fromNumber.Amount))

	var fromString AirdropRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amount": "0.000000001"}`), &fromString))
	assert.Equal(t, "0.000000001", fromString.Amount.String())
}

func TestAirdropRequest_RejectsNonNumeric(t *testing.T) {
	var req AirdropRequest
	assert.Error(t, json.Unmarshal([]byte(`{"amount": "lots"}`), &req))
}

func TestTradeRequest_KeepsAnyJSONValue(t *testing.T) {
	var req TradeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tokenMint": 123, "amount": true}`), &req))
	assert.JSONEq(t, `123`, string(req.TokenMint))
	assert.JSONEq(t, `true`, string(req.Amount))

	var empty TradeRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Nil(t, empty.TokenMint)
	assert.Nil(t, empty.Amount)
}

func TestTradeResponse_EchoesVerbatim(t *testing.T) {
	out, err := json.Marshal(TradeResponse{
		Message:   "Bought 1e400 SOL worth of a<b>&c",
		TokenMint: json.RawMessage(`"a<b>&c"`),
		Amount:    json.RawMessage(`1e400`),
	})
	require.NoError(t, err)

	var back map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, `1e400`, string(back["amount"]))

	var mint string
	require.NoError(t, json.Unmarshal(back["tokenMint"], &mint))
	assert.Equal(t, "a<b>&c", mint)
}

func TestTradeResponse_AbsentFieldsAreNull(t *testing.T) {
	out, err := json.Marshal(TradeResponse{Message: "Bought null SOL worth of null"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Bought null SOL worth of null","tokenMint":null,"amount":null,"executed":false}`, string(out))
}

func TestPriceResponse_LargePriceStaysNumeric(t *testing.T) {
	out, err := json.Marshal(PriceResponse{Token: "t", Price: decimal.RequireFromString("1e400")})
	require.NoError(t, err)

	var back map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, byte('1'), back["price"][0], "price must be a bare JSON number")
	assert.Len(t, back["price"], 401)
}
