package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	// Cacheless repo: reads and writes go straight to the database
	repo := NewTransactionRepo(&models.Config{}, sqlxDB, nil)

	return repo, mock
}

func transactionRows(txs ...models.Transaction) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "amount", "price_at_purchase",
		"date", "scope", "created_at", "updated_at",
	})
	for _, tx := range txs {
		rows.AddRow(tx.ID, tx.UserID, tx.Type, tx.Amount, tx.PriceAtPurchase,
			tx.Date, tx.Scope, tx.CreatedAt, tx.UpdatedAt)
	}
	return rows
}

func sampleTransaction(userID string, scope models.Scope) models.Transaction {
	now := time.Now()
	return models.Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		Type:            models.TransactionTypeBuy,
		Amount:          0.5,
		PriceAtPurchase: 40000,
		Date:            now.Add(-24 * time.Hour),
		Scope:           scope,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestList_Success(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	tx := sampleTransaction("user-1", models.ScopeReal)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("user-1", models.ScopeReal).
		WillReturnRows(transactionRows(tx))

	txs, err := repo.List(context.Background(), "user-1", models.ScopeReal)

	assert.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tx.ID, txs[0].ID)
	assert.Equal(t, models.TransactionTypeBuy, txs[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyScope(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("user-1", models.ScopeArcade).
		WillReturnRows(transactionRows())

	txs, err := repo.List(context.Background(), "user-1", models.ScopeArcade)

	assert.NoError(t, err)
	assert.NotNil(t, txs)
	assert.Len(t, txs, 0)
}

func TestList_QueryError(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs("user-1", models.ScopeReal).
		WillReturnError(errors.New("connection refused"))

	txs, err := repo.List(context.Background(), "user-1", models.ScopeReal)

	assert.Error(t, err)
	assert.Nil(t, txs)
	assert.Contains(t, err.Error(), "failed to list transactions")
}

func TestGet_Success(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	want := sampleTransaction("user-1", models.ScopeReal)
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(want.ID, "user-1").
		WillReturnRows(transactionRows(want))

	got, err := repo.Get(context.Background(), want.ID, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.InDelta(t, 0.5, got.Amount, 1e-9)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM transactions").
		WithArgs(id, "user-1").
		WillReturnRows(transactionRows())

	got, err := repo.Get(context.Background(), id, "user-1")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestCreate_Success(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx := &models.Transaction{
		UserID:          "user-1",
		Type:            models.TransactionTypeBuy,
		Amount:          0.5,
		PriceAtPurchase: 40000,
		Date:            time.Now(),
		Scope:           models.ScopeReal,
	}

	err := repo.Create(context.Background(), tx)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.False(t, tx.CreatedAt.IsZero())
	assert.Equal(t, tx.CreatedAt, tx.UpdatedAt)
}

func TestCreate_InsertError(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectExec("INSERT INTO transactions").
		WillReturnError(errors.New("constraint violation"))

	tx := &models.Transaction{UserID: "user-1", Type: models.TransactionTypeBuy, Amount: 1}

	err := repo.Create(context.Background(), tx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert transaction")
}

func TestUpdate_Success(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx := sampleTransaction("user-1", models.ScopeReal)
	err := repo.Update(context.Background(), &tx)

	assert.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	mock.ExpectExec("UPDATE transactions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx := sampleTransaction("user-1", models.ScopeReal)
	err := repo.Update(context.Background(), &tx)

	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestDelete_ReturnsDeletedRow(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	want := sampleTransaction("user-1", models.ScopeArcade)
	mock.ExpectQuery("DELETE FROM transactions").
		WithArgs(want.ID, "user-1").
		WillReturnRows(transactionRows(want))

	got, err := repo.Delete(context.Background(), want.ID, "user-1")

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, models.ScopeArcade, got.Scope)
}

func TestDelete_AbsentIDIsNoOp(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	id := uuid.New()
	mock.ExpectQuery("DELETE FROM transactions").
		WithArgs(id, "user-1").
		WillReturnRows(transactionRows())

	got, err := repo.Delete(context.Background(), id, "user-1")

	assert.NoError(t, err)
	assert.Nil(t, got)
}
