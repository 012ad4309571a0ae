package jupiter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"crypto-bot-api/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMint = "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"
	solMint  = "So11111111111111111111111111111111111111112"
)

type capturedRequest struct {
	url *url.URL
}

func newOracle(t *testing.T, status int, body string) (*Client, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.url = r.URL
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/price/v2", srv.Client(), zerolog.Nop()), captured
}

func TestGetPrice_Success(t *testing.T) {
	c, req := newOracle(t, http.StatusOK, `{"data":{"`+testMint+`":{"id":"`+testMint+`","type":"derivedPrice","price":"12.34"}},"timeTaken":0.003}`)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	quote, err := c.GetPrice(context.Background(), testMint, solMint)
	require.NoError(t, err)

	assert.Equal(t, testMint, quote.Token)
	assert.Equal(t, solMint, quote.VsToken)
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, fixed, quote.FetchedAt)

	require.NotNil(t, req.url)
	assert.Equal(t, "/price/v2", req.url.Path)
	assert.Equal(t, testMint, req.url.Query().Get("ids"))
	assert.Equal(t, solMint, req.url.Query().Get("vsToken"))
}

func TestGetPrice_NumericPrice(t *testing.T) {
	c, _ := newOracle(t, http.StatusOK, `{"data":{"`+testMint+`":{"id":"`+testMint+`","price":0.000123}}}`)

	quote, err := c.GetPrice(context.Background(), testMint, solMint)
	require.NoError(t, err)
	assert.Equal(t, "0.000123", quote.Price.String())
}

func TestGetPrice_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null entry", `{"data":{"` + testMint + `":null}}`},
		{"missing entry", `{"data":{}}`},
		{"missing price field", `{"data":{"` + testMint + `":{"id":"` + testMint + `"}}}`},
		{"no data", `{}`},
		{"null price", `{"data":{"` + testMint + `":{"id":"` + testMint + `","price":null}}}`},
		{"empty price", `{"data":{"` + testMint + `":{"id":"` + testMint + `","price":""}}}`},
		{"zero string price", `{"data":{"` + testMint + `":{"id":"` + testMint + `","price":"0"}}}`},
		{"zero numeric price", `{"data":{"` + testMint + `":{"id":"` + testMint + `","price":0.000}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newOracle(t, http.StatusOK, tt.body)

			_, err := c.GetPrice(context.Background(), testMint, solMint)
			assert.True(t, errors.Is(err, domain.ErrPriceNotFound))
		})
	}
}

func TestGetPrice_BadStatus(t *testing.T) {
	c, _ := newOracle(t, http.StatusTooManyRequests, `{"error":"rate limited"}`)

	_, err := c.GetPrice(context.Background(), testMint, solMint)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrPriceNotFound))
	assert.Contains(t, err.Error(), "429")
}

func TestGetPrice_MalformedBody(t *testing.T) {
	c, _ := newOracle(t, http.StatusOK, `not json`)

	_, err := c.GetPrice(context.Background(), testMint, solMint)
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrPriceNotFound))
}

func TestGetPrice_InvalidPrice(t *testing.T) {
	for _, price := range []string{`"abc"`, `"-1.5"`, `true`} {
		t.Run(price, func(t *testing.T) {
			c, _ := newOracle(t, http.StatusOK, `{"data":{"`+testMint+`":{"id":"`+testMint+`","price":`+price+`}}}`)

			_, err := c.GetPrice(context.Background(), testMint, solMint)
			require.Error(t, err)
			assert.False(t, errors.Is(err, domain.ErrPriceNotFound))
		})
	}
}

type failingHTTPClient struct{ err error }

func (f failingHTTPClient) Do(*http.Request) (*http.Response, error) { return nil, f.err }

func TestGetPrice_TransportError(t *testing.T) {
	c := NewClient("http://oracle.invalid/price/v2", failingHTTPClient{err: errors.New("dial tcp: no such host")}, zerolog.Nop())

	_, err := c.GetPrice(context.Background(), testMint, solMint)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle request")
}
