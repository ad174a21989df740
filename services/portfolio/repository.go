package portfolio

import (
	"context"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/btcfolio/btcfolio/services/portfolio TransactionRepo

// TransactionRepo is the storage contract for the transaction ledger.
type TransactionRepo interface {
	// List returns one scope's transactions ordered by date descending.
	List(ctx context.Context, userID string, scope models.Scope) ([]models.Transaction, error)

	// Get returns the transaction matching (id, userID), or
	// ErrTransactionNotFound.
	Get(ctx context.Context, id uuid.UUID, userID string) (*models.Transaction, error)

	// Create inserts a new transaction, assigning its ID and timestamps.
	Create(ctx context.Context, tx *models.Transaction) error

	// Update replaces the mutable fields of the transaction matching
	// (id, userID), or returns ErrTransactionNotFound.
	Update(ctx context.Context, tx *models.Transaction) error

	// Delete removes the transaction matching (id, userID) and returns the
	// deleted row. Deleting an absent id is a no-op returning (nil, nil).
	Delete(ctx context.Context, id uuid.UUID, userID string) (*models.Transaction, error)
}
