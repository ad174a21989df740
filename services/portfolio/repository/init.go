package repository

import (
	"github.com/btcfolio/btcfolio/internal/pkg/database"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// TransactionRepo is the Postgres-backed ledger repository with a Redis
// read-through cache on scope listings.
type TransactionRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewTransactionRepo creates a new transaction repository instance
func NewTransactionRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *TransactionRepo {
	return &TransactionRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
