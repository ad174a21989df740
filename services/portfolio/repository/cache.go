package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/btcfolio/btcfolio/internal/pkg/constants"
	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/go-redis/redis/v8"
)

// Cache failures never surface to callers: a cold or broken cache degrades
// to direct database reads.

func ledgerCacheKey(userID string, scope models.Scope) string {
	return fmt.Sprintf(constants.KeyLedgerCache, userID, scope)
}

func (r *TransactionRepo) cachedList(ctx context.Context, userID string, scope models.Scope) ([]models.Transaction, bool) {
	if r.cache == nil {
		return nil, false
	}

	raw, err := r.cache.Get(ctx, ledgerCacheKey(userID, scope))
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Failed to read ledger cache",
				logger.ErrorField(err),
				logger.String("user_id", userID),
				logger.String("scope", string(scope)),
			)
		}
		return nil, false
	}

	var txs []models.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		logger.Warn("Failed to decode ledger cache entry",
			logger.ErrorField(err),
			logger.String("user_id", userID),
		)
		return nil, false
	}

	return txs, true
}

func (r *TransactionRepo) storeList(ctx context.Context, userID string, scope models.Scope, txs []models.Transaction) {
	if r.cache == nil {
		return
	}

	data, err := json.Marshal(txs)
	if err != nil {
		logger.Warn("Failed to encode ledger cache entry", logger.ErrorField(err))
		return
	}

	if err := r.cache.Set(ctx, ledgerCacheKey(userID, scope), data, constants.LedgerCacheTTL); err != nil {
		logger.Warn("Failed to store ledger cache entry",
			logger.ErrorField(err),
			logger.String("user_id", userID),
			logger.String("scope", string(scope)),
		)
	}
}

// invalidate drops the cached listing for one user and scope so the next
// read reflects the mutation.
func (r *TransactionRepo) invalidate(ctx context.Context, userID string, scope models.Scope) {
	if r.cache == nil {
		return
	}

	if err := r.cache.Delete(ctx, ledgerCacheKey(userID, scope)); err != nil {
		logger.Warn("Failed to invalidate ledger cache",
			logger.ErrorField(err),
			logger.String("user_id", userID),
			logger.String("scope", string(scope)),
		)
	}
}
