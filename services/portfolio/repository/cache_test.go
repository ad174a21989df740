package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcfolio/btcfolio/internal/pkg/database"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

func setupCachedRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	repo := NewTransactionRepo(&models.Config{}, sqlxDB, cache)

	return repo, mock, mr
}

func TestList_PopulatesCache(t *testing.T) {
	repo, mock, mr := setupCachedRepoTest(t)
	ctx := context.Background()

	tx := sampleTransaction("user-1", models.ScopeReal)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("user-1", models.ScopeReal).
		WillReturnRows(transactionRows(tx))

	txs, err := repo.List(ctx, "user-1", models.ScopeReal)
	require.NoError(t, err)
	require.Len(t, txs, 1)

	raw, err := mr.Get(ledgerCacheKey("user-1", models.ScopeReal))
	require.NoError(t, err)

	var cached []models.Transaction
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, tx.ID, cached[0].ID)
}

func TestList_ServesWarmCacheWithoutQuery(t *testing.T) {
	repo, mock, mr := setupCachedRepoTest(t)
	ctx := context.Background()

	tx := sampleTransaction("user-1", models.ScopeReal)
	data, err := json.Marshal([]models.Transaction{tx})
	require.NoError(t, err)
	require.NoError(t, mr.Set(ledgerCacheKey("user-1", models.ScopeReal), string(data)))

	// No query expectation set: a database hit would fail the test
	txs, err := repo.List(ctx, "user-1", models.ScopeReal)

	assert.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_CorruptCacheFallsBackToDatabase(t *testing.T) {
	repo, mock, mr := setupCachedRepoTest(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ledgerCacheKey("user-1", models.ScopeReal), "not-json"))

	tx := sampleTransaction("user-1", models.ScopeReal)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("user-1", models.ScopeReal).
		WillReturnRows(transactionRows(tx))

	txs, err := repo.List(ctx, "user-1", models.ScopeReal)

	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestCreate_InvalidatesCache(t *testing.T) {
	repo, mock, mr := setupCachedRepoTest(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ledgerCacheKey("user-1", models.ScopeReal), "[]"))

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx := sampleTransaction("user-1", models.ScopeReal)
	require.NoError(t, repo.Create(ctx, &tx))

	assert.False(t, mr.Exists(ledgerCacheKey("user-1", models.ScopeReal)))
}

func TestDelete_InvalidatesOnlyThatScope(t *testing.T) {
	repo, mock, mr := setupCachedRepoTest(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(ledgerCacheKey("user-1", models.ScopeReal), "[]"))
	require.NoError(t, mr.Set(ledgerCacheKey("user-1", models.ScopeArcade), "[]"))

	tx := sampleTransaction("user-1", models.ScopeReal)
	mock.ExpectQuery("DELETE FROM transactions").
		WithArgs(tx.ID, "user-1").
		WillReturnRows(transactionRows(tx))

	deleted, err := repo.Delete(ctx, tx.ID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, deleted)

	assert.False(t, mr.Exists(ledgerCacheKey("user-1", models.ScopeReal)))
	assert.True(t, mr.Exists(ledgerCacheKey("user-1", models.ScopeArcade)))
}
