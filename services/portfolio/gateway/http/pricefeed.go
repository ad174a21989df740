package gatewayhttp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	httpclient "github.com/btcfolio/btcfolio/internal/pkg/http"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
)

// PriceClient fetches spot prices from a CoinGecko-style simple price
// endpoint: GET {base}/simple/price?ids={asset}&vs_currencies={currency}
// returning {"<asset>":{"<currency>":<number>}}.
type PriceClient struct {
	client   *httpclient.Client
	asset    string
	currency string
}

// NewPriceClient creates a new spot price client
func NewPriceClient(cfg models.PriceFeedConfig) *PriceClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return &PriceClient{
		client:   httpclient.NewClient(cfg.URL, timeout),
		asset:    cfg.Asset,
		currency: cfg.Currency,
	}
}

// FetchPrice fetches the current spot price. The payload is untrusted input:
// any network, status, parse, or coercion failure maps to
// ErrPriceUnavailable.
func (c *PriceClient) FetchPrice(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("/simple/price?ids=%s&vs_currencies=%s", c.asset, c.currency)

	var raw map[string]map[string]json.Number
	if err := c.client.GetJSON(ctx, endpoint, &raw); err != nil {
		return 0, fmt.Errorf("%w: %v", apperrors.ErrPriceUnavailable, err)
	}

	quote, ok := raw[c.asset]
	if !ok {
		return 0, fmt.Errorf("%w: asset %q missing from response", apperrors.ErrPriceUnavailable, c.asset)
	}

	num, ok := quote[c.currency]
	if !ok {
		return 0, fmt.Errorf("%w: currency %q missing from response", apperrors.ErrPriceUnavailable, c.currency)
	}

	price, err := num.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric price %q", apperrors.ErrPriceUnavailable, num.String())
	}
	if price <= 0 {
		return 0, fmt.Errorf("%w: non-positive price %v", apperrors.ErrPriceUnavailable, price)
	}

	return price, nil
}
