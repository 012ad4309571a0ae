package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"crypto-bot-api/internal/core/domain"
	"crypto-bot-api/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// maxBodyBytes caps how much of an oracle response is read.
const maxBodyBytes = 1 << 20

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.PriceOracle against the Jupiter price API (v2).
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
	now        func() time.Time
}

// NewClient creates a Jupiter price client. baseURL is the full price
// endpoint, e.g. https://api.jup.ag/price/v2.
func NewClient(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        logger.Component(log, "jupiter"),
		now:        time.Now,
	}
}

type priceResponse struct {
	Data map[string]*priceEntry `json:"data"`
}

type priceEntry struct {
	ID    string          `json:"id"`
	Type  string          `json:"type"`
	Price json.RawMessage `json:"price"`
}

// GetPrice quotes token in units of vsToken.
func (c *Client) GetPrice(ctx context.Context, token, vsToken string) (*domain.PriceQuote, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing oracle url: %w", err)
	}
	q := u.Query()
	q.Set("ids", token)
	q.Set("vsToken", vsToken)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building oracle request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("oracle request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading oracle response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oracle returned status %d", resp.StatusCode)
	}

	var parsed priceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing oracle response: %w", err)
	}

	var price decimal.Decimal
	entry, ok := parsed.Data[token]
	if ok && entry != nil {
		if price, ok, err = parsePrice(entry.Price); err != nil {
			return nil, fmt.Errorf("parsing oracle price for %s: %w", token, err)
		}
	}
	if !ok {
		c.log.Debug().Str("token", token).Msg("oracle has no price for token")
		return nil, fmt.Errorf("%w: %s", domain.ErrPriceNotFound, token)
	}

	return &domain.PriceQuote{
		Token:     token,
		VsToken:   vsToken,
		Price:     price,
		FetchedAt: c.now().UTC(),
	}, nil
}

// parsePrice accepts a decimal string or JSON number. Absent, null, empty
// and zero prices report ok=false.
func parsePrice(raw json.RawMessage) (decimal.Decimal, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) || bytes.Equal(raw, []byte(`""`)) {
		return decimal.Zero, false, nil
	}
	var price decimal.Decimal
	if err := price.UnmarshalJSON(raw); err != nil {
		return decimal.Zero, false, err
	}
	if price.IsZero() {
		return decimal.Zero, false, nil
	}
	if price.IsNegative() {
		return decimal.Zero, false, fmt.Errorf("negative price %s", price)
	}
	return price, true, nil
}
