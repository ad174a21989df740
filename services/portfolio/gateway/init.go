package gateway

import (
	"context"

	"github.com/btcfolio/btcfolio/internal/pkg/constants"
	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	nsqpkg "github.com/btcfolio/btcfolio/internal/pkg/nsq"
	gatewayhttp "github.com/btcfolio/btcfolio/services/portfolio/gateway/http"
)

// PortfolioGW implements the outbound gateways of the portfolio service:
// the external spot price source and the ledger event stream.
type PortfolioGW struct {
	priceClient *gatewayhttp.PriceClient
	producer    *nsqpkg.Producer
}

// NewPortfolioGW creates a new portfolio gateway. The producer may be nil
// when NSQ is disabled; ledger events are then skipped.
func NewPortfolioGW(cfg *models.Config, producer *nsqpkg.Producer) *PortfolioGW {
	return &PortfolioGW{
		priceClient: gatewayhttp.NewPriceClient(cfg.PriceFeed),
		producer:    producer,
	}
}

// FetchPrice fetches the current spot price from the external quote source
func (g *PortfolioGW) FetchPrice(ctx context.Context) (float64, error) {
	return g.priceClient.FetchPrice(ctx)
}

// PublishLedgerEvent publishes the ledger invalidation signal
func (g *PortfolioGW) PublishLedgerEvent(ctx context.Context, event *models.LedgerEvent) error {
	if g.producer == nil {
		logger.Debug("NSQ disabled, skipping ledger event",
			logger.String("action", event.Action),
			logger.String("user_id", event.UserID),
		)
		return nil
	}

	return g.producer.Publish(constants.TopicLedgerChanged, event)
}
