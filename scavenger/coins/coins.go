package coins

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/samgozman/orc-brief/pkg/errlvl"
)

const (
	CoingeckoURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin,ethereum&vs_currencies=usd"
	Timeout      = 10 * time.Second
)

var (
	errRequest = errors.New("coingecko request failed")
	errStatus  = errors.New("coingecko returned unexpected status")
	errDecode  = errors.New("coingecko response is malformed")
)

// Quote is the BTC/ETH pair in USD. A nil field means the price is unavailable.
type Quote struct {
	BTC *float64
	ETH *float64
}

// Complete reports whether both prices are present.
func (q Quote) Complete() bool {
	return q.BTC != nil && q.ETH != nil
}

// Coingecko fetches quotes from the public Coingecko simple price API (no key required).
type Coingecko struct {
	URL    string
	Client *http.Client
}

// NewCoingecko creates a fetcher for the public endpoint with the fixed timeout.
func NewCoingecko() *Coingecko {
	return &Coingecko{
		URL:    CoingeckoURL,
		Client: &http.Client{Timeout: Timeout},
	}
}

// Fetch performs one request. Any failure is returned as an error and the quote is empty,
// an asset missing from a valid response is just nil.
func (c *Coingecko) Fetch(ctx context.Context) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Quote{}, errlvl.Wrap(errors.Join(errRequest, err), errlvl.WARN)
	}
	req.Header.Set("accept", "application/json")

	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: Timeout}
	}

	resp, err := client.Do(req) //nolint:bodyclose
	if err != nil {
		return Quote{}, errlvl.Wrap(errors.Join(errRequest, err), errlvl.WARN)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			slog.Default().Debug("error closing coingecko response body", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Quote{}, errlvl.Wrap(fmt.Errorf("%w: %s", errStatus, resp.Status), errlvl.WARN)
	}

	var parsed simplePriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Quote{}, errlvl.Wrap(errors.Join(errDecode, err), errlvl.WARN)
	}

	return Quote{
		BTC: parsed.Bitcoin.USD,
		ETH: parsed.Ethereum.USD,
	}, nil
}

type simplePriceResponse struct {
	Bitcoin  coinPrice `json:"bitcoin"`
	Ethereum coinPrice `json:"ethereum"`
}

type coinPrice struct {
	USD *float64 `json:"usd"`
}
