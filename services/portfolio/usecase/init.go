package usecase

import (
	"context"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/btcfolio/btcfolio/services/portfolio"
)

// PortfolioUC implements the portfolio usecase
type PortfolioUC struct {
	repo  portfolio.TransactionRepo
	gw    portfolio.PortfolioGW
	price portfolio.PriceSource
	cfg   *models.Config
}

// NewPortfolioUC creates a new portfolio usecase instance
func NewPortfolioUC(
	repo portfolio.TransactionRepo,
	gw portfolio.PortfolioGW,
	price portfolio.PriceSource,
	cfg *models.Config,
) *PortfolioUC {
	return &PortfolioUC{
		repo:  repo,
		gw:    gw,
		price: price,
		cfg:   cfg,
	}
}

// CurrentPrice returns the last known spot price quote
func (uc *PortfolioUC) CurrentPrice() (models.PriceQuote, bool) {
	return uc.price.Current()
}

// RefreshPrice triggers an on-demand price fetch
func (uc *PortfolioUC) RefreshPrice(ctx context.Context) (models.PriceQuote, error) {
	return uc.price.Refresh(ctx)
}

// publishLedgerEvent emits the invalidation signal for a mutated row.
// Publish failures are logged, never surfaced: the mutation already
// succeeded and the ledger cache is already invalidated.
func (uc *PortfolioUC) publishLedgerEvent(ctx context.Context, action string, tx *models.Transaction) {
	event := &models.LedgerEvent{
		UserID:        tx.UserID,
		Scope:         tx.Scope,
		Action:        action,
		TransactionID: tx.ID.String(),
		OccurredAt:    time.Now(),
	}

	if err := uc.gw.PublishLedgerEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish ledger event",
			logger.ErrorField(err),
			logger.String("action", action),
			logger.String("transaction_id", event.TransactionID),
		)
	}
}
