package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
	"github.com/google/uuid"
)

const transactionColumns = `id, user_id, type, amount, price_at_purchase, date, scope, created_at, updated_at`

// List retrieves one scope's transactions ordered by date descending.
// A warm cache short-circuits the database; every mutation invalidates it so
// each client observes its own writes on the next read.
func (r *TransactionRepo) List(ctx context.Context, userID string, scope models.Scope) ([]models.Transaction, error) {
	if cached, ok := r.cachedList(ctx, userID, scope); ok {
		return cached, nil
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE user_id = $1 AND scope = $2
		ORDER BY date DESC
	`, transactionColumns)

	txs := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, userID, scope); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	r.storeList(ctx, userID, scope, txs)

	return txs, nil
}

// Get retrieves the transaction matching (id, userID)
func (r *TransactionRepo) Get(ctx context.Context, id uuid.UUID, userID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// Create inserts a new transaction into the ledger
func (r *TransactionRepo) Create(ctx context.Context, tx *models.Transaction) error {
	tx.ID = uuid.New()
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := `
		INSERT INTO transactions (
			id, user_id, type, amount, price_at_purchase,
			date, scope, created_at, updated_at
		) VALUES (
			:id, :user_id, :type, :amount, :price_at_purchase,
			:date, :scope, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, tx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	r.invalidate(ctx, tx.UserID, tx.Scope)

	return nil
}

// Update replaces the mutable fields of the transaction matching
// (id, user_id). Scope and owner are immutable.
func (r *TransactionRepo) Update(ctx context.Context, tx *models.Transaction) error {
	tx.UpdatedAt = time.Now()

	query := `
		UPDATE transactions
		SET type = :type, amount = :amount, price_at_purchase = :price_at_purchase,
		    date = :date, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`
	result, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	r.invalidate(ctx, tx.UserID, tx.Scope)

	return nil
}

// Delete removes the transaction matching (id, userID) and returns the
// deleted row. An absent id is a no-op, not an error.
func (r *TransactionRepo) Delete(ctx context.Context, id uuid.UUID, userID string) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		DELETE FROM transactions
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, transactionColumns)

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	r.invalidate(ctx, tx.UserID, tx.Scope)

	return &tx, nil
}
