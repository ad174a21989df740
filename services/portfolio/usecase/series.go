package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

// BuildValueSeries derives the value-over-time chart in one pass over the
// ledger. Each historical point is valued at the price recorded on that
// transaction, approximating portfolio value at that moment; the final point
// revalues the running holdings at the current spot price and is labeled
// "Today". Point values are clamped at zero so a negative running balance
// never draws below the axis.
//
// An empty ledger or an unknown current price yields an empty series: the
// chart renders nothing rather than a zero point.
func BuildValueSeries(txs []models.Transaction, currentPrice float64, priced bool, now time.Time) []models.SeriesPoint {
	if len(txs) == 0 || !priced {
		return nil
	}

	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	// Stable: ties keep their original relative order
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]models.SeriesPoint, 0, len(sorted)+1)
	var holdings float64

	for _, tx := range sorted {
		if tx.Type == models.TransactionTypeBuy {
			holdings += tx.Amount
		} else {
			holdings -= tx.Amount
		}

		points = append(points, models.SeriesPoint{
			Date:  tx.Date,
			Value: math.Max(0, holdings*tx.PriceAtPurchase),
			Label: tx.Date.Format("Jan 02"),
		})
	}

	points = append(points, models.SeriesPoint{
		Date:  now,
		Value: math.Max(0, holdings*currentPrice),
		Label: "Today",
	})

	return points
}

// PercentChange summarizes a series as the relative move from its first to
// its last point, guarded to 0 when the first value is zero.
func PercentChange(points []models.SeriesPoint) float64 {
	if len(points) == 0 {
		return 0
	}

	first := points[0].Value
	last := points[len(points)-1].Value
	if first == 0 {
		return 0
	}

	return (last - first) / first * 100
}

// GetValueSeries returns the chart payload for one scope
func (uc *PortfolioUC) GetValueSeries(ctx context.Context, userID string, scope models.Scope) (*models.ValueSeries, error) {
	txs, err := uc.repo.List(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	quote, priced := uc.price.Current()
	points := BuildValueSeries(txs, quote.Price, priced, time.Now())

	return &models.ValueSeries{
		Scope:         scope,
		Points:        points,
		PercentChange: PercentChange(points),
	}, nil
}
