package portfolio

import (
	"context"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/btcfolio/btcfolio/services/portfolio PortfolioUC

// PortfolioUC is the portfolio usecase interface
type PortfolioUC interface {
	// Ledger operations
	ListTransactions(ctx context.Context, userID string, scope models.Scope, sort models.SortState) ([]models.TransactionRow, error)
	CreateTransaction(ctx context.Context, userID string, scope models.Scope, req *models.TransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, userID string, req *models.TransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID, userID string) error

	// Valuation views
	GetSummary(ctx context.Context, userID string, scope models.Scope) (*models.PortfolioSummary, error)
	GetValueSeries(ctx context.Context, userID string, scope models.Scope) (*models.ValueSeries, error)

	// Report export
	Export(ctx context.Context, userID string, scope models.Scope, format models.ExportFormat) (*models.ExportFile, error)

	// Spot price
	CurrentPrice() (models.PriceQuote, bool)
	RefreshPrice(ctx context.Context) (models.PriceQuote, error)
}
