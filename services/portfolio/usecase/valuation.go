package usecase

import (
	"context"
	"fmt"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

// Valuation is pure computation: deterministic given (transactions,
// currentPrice), no side effects. Sums run in full float64 precision;
// 2-decimal currency and 8-decimal BTC formatting are applied only at the
// export boundary.

// DeriveRows computes per-transaction valuation fields. currentPrice is
// ignored when priced is false; rows then carry Priced=false so views can
// render a pending state. Sends never carry a profit/loss figure: the asset
// has left the portfolio and only the cost basis sent is reported.
func DeriveRows(txs []models.Transaction, currentPrice float64, priced bool) []models.TransactionRow {
	rows := make([]models.TransactionRow, 0, len(txs))
	for _, tx := range txs {
		row := models.TransactionRow{
			Transaction: tx,
			Cost:        tx.Cost(),
			Priced:      priced,
		}
		if priced {
			row.CurrentValue = tx.Amount * currentPrice
			if tx.Type == models.TransactionTypeBuy {
				row.ProfitLoss = row.CurrentValue - row.Cost
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Summarize aggregates one scope's full transaction set.
//
// Holdings are net buys minus sends and are deliberately not clamped at
// zero: sends exceeding prior buys leave a negative balance rather than
// failing. Investment counts buys only, so the cost basis of sent coins
// stays in the total.
func Summarize(txs []models.Transaction, currentPrice float64, priced bool) models.PortfolioSummary {
	var summary models.PortfolioSummary

	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeBuy:
			summary.TotalHoldings += tx.Amount
			summary.TotalInvestment += tx.Cost()
		case models.TransactionTypeSend:
			summary.TotalHoldings -= tx.Amount
		}
	}

	if priced {
		summary.CurrentValue = summary.TotalHoldings * currentPrice
	}
	summary.Profit = summary.CurrentValue - summary.TotalInvestment
	if summary.TotalInvestment > 0 {
		summary.ProfitPercent = summary.Profit / summary.TotalInvestment * 100
	}
	summary.Transactions = len(txs)

	return summary
}

// GetSummary returns the aggregate valuation of one scope, with the current
// price quote attached when one is known.
func (uc *PortfolioUC) GetSummary(ctx context.Context, userID string, scope models.Scope) (*models.PortfolioSummary, error) {
	txs, err := uc.repo.List(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	quote, priced := uc.price.Current()

	summary := Summarize(txs, quote.Price, priced)
	summary.Scope = scope
	if priced {
		q := quote
		summary.Price = &q
	}

	return &summary, nil
}
