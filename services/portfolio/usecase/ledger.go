package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
	"github.com/google/uuid"
)

// ListTransactions returns one scope's ledger with derived valuation fields,
// ordered by the requested view sort. Sorting never mutates the stored
// ledger.
func (uc *PortfolioUC) ListTransactions(ctx context.Context, userID string, scope models.Scope, sort models.SortState) ([]models.TransactionRow, error) {
	txs, err := uc.repo.List(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	quote, priced := uc.price.Current()

	return DeriveRows(SortTransactions(txs, sort), quote.Price, priced), nil
}

// CreateTransaction validates and records a new ledger entry. The date
// defaults to creation time when the client omits it.
func (uc *PortfolioUC) CreateTransaction(ctx context.Context, userID string, scope models.Scope, req *models.TransactionRequest) (*models.Transaction, error) {
	txType, date, err := validateRequest(req, false)
	if err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = time.Now()
	}

	tx := &models.Transaction{
		UserID:          userID,
		Type:            txType,
		Amount:          req.Amount,
		PriceAtPurchase: req.PriceAtPurchase,
		Date:            date,
		Scope:           scope,
	}

	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}

	uc.publishLedgerEvent(ctx, models.LedgerActionCreated, tx)

	return tx, nil
}

// UpdateTransaction replaces a ledger entry's type, amount, price, and date.
// All fields must be resupplied; there are no partial patches. Owner and
// scope are immutable.
func (uc *PortfolioUC) UpdateTransaction(ctx context.Context, id uuid.UUID, userID string, req *models.TransactionRequest) (*models.Transaction, error) {
	tx, err := uc.repo.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	txType, date, err := validateRequest(req, true)
	if err != nil {
		return nil, err
	}

	tx.Type = txType
	tx.Amount = req.Amount
	tx.PriceAtPurchase = req.PriceAtPurchase
	tx.Date = date

	if err := uc.repo.Update(ctx, tx); err != nil {
		return nil, err
	}

	uc.publishLedgerEvent(ctx, models.LedgerActionUpdated, tx)

	return tx, nil
}

// DeleteTransaction removes a ledger entry by id and owner. Deleting an
// absent id is a silent no-op so repeated deletes stay safe.
func (uc *PortfolioUC) DeleteTransaction(ctx context.Context, id uuid.UUID, userID string) error {
	tx, err := uc.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}

	if tx != nil {
		uc.publishLedgerEvent(ctx, models.LedgerActionDeleted, tx)
	}

	return nil
}

// validateRequest normalizes and validates a transaction payload. For
// updates the date is mandatory (full replace); for creates it may be empty.
func validateRequest(req *models.TransactionRequest, dateRequired bool) (models.TransactionType, time.Time, error) {
	req.Normalize()

	fields := apperrors.FieldErrors{}

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		fields["type"] = "must be \"buy\" or \"send\""
	}

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		fields["amount"] = "must be a positive number"
	}

	if req.PriceAtPurchase < 0 || math.IsNaN(req.PriceAtPurchase) || math.IsInf(req.PriceAtPurchase, 0) {
		fields["price_at_purchase"] = "must be a non-negative number"
	}

	var date time.Time
	if req.Date == "" {
		if dateRequired {
			fields["date"] = "is required"
		}
	} else {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			fields["date"] = "must be an ISO-8601 timestamp"
		} else {
			date = parsed
		}
	}

	if len(fields) > 0 {
		return "", time.Time{}, fields
	}

	return txType, date, nil
}
