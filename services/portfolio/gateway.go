package portfolio

import (
	"context"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/btcfolio/btcfolio/services/portfolio PortfolioGW,PriceSource

// PortfolioGW defines the portfolio service's outbound gateways
type PortfolioGW interface {
	// FetchPrice fetches the current spot price from the external quote
	// source. Failures are reported as ErrPriceUnavailable.
	FetchPrice(ctx context.Context) (float64, error)

	// PublishLedgerEvent emits the invalidation signal after a successful
	// ledger mutation.
	PublishLedgerEvent(ctx context.Context, event *models.LedgerEvent) error
}

// PriceSource exposes the latest known spot price to the valuation layer.
// The background watcher implements it; a failed feed keeps serving the last
// successful quote.
type PriceSource interface {
	Current() (models.PriceQuote, bool)
	Refresh(ctx context.Context) (models.PriceQuote, error)
}
