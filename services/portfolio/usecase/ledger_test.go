package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
	"github.com/btcfolio/btcfolio/services/portfolio/mocks"
)

func newTestUC(t *testing.T) (*PortfolioUC, *mocks.MockTransactionRepo, *mocks.MockPortfolioGW, *mocks.MockPriceSource) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPortfolioGW(ctrl)
	mockPrice := mocks.NewMockPriceSource(ctrl)

	uc := NewPortfolioUC(mockRepo, mockGW, mockPrice, &models.Config{})
	return uc, mockRepo, mockGW, mockPrice
}

func TestListTransactions_Success(t *testing.T) {
	uc, mockRepo, _, mockPrice := newTestUC(t)

	txs := []models.Transaction{
		buyTx(1.0, 40000, "2024-01-01"),
		sendTx(0.5, 45000, "2024-02-01"),
	}

	mockRepo.EXPECT().List(gomock.Any(), "user-1", models.ScopeReal).Return(txs, nil)
	mockPrice.EXPECT().Current().Return(models.PriceQuote{Price: 60000}, true)

	rows, err := uc.ListTransactions(context.Background(), "user-1", models.ScopeReal, DefaultSort())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	// Default sort is date descending
	assert.Equal(t, models.TransactionTypeSend, rows[0].Type)
	assert.True(t, rows[0].Priced)
	assert.InDelta(t, 30000, rows[0].CurrentValue, 1e-9)
}

func TestListTransactions_RepoError(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	mockRepo.EXPECT().List(gomock.Any(), "user-1", models.ScopeReal).Return(nil, errors.New("db down"))

	rows, err := uc.ListTransactions(context.Background(), "user-1", models.ScopeReal, DefaultSort())

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestCreateTransaction_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)

	req := &models.TransactionRequest{
		Type:            "buy",
		Amount:          0.5,
		PriceAtPurchase: 40000,
		Date:            "2024-01-01T10:00:00Z",
	}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLedgerEvent(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.CreateTransaction(context.Background(), "user-1", models.ScopeReal, req)

	assert.NoError(t, err)
	assert.Equal(t, "user-1", tx.UserID)
	assert.Equal(t, models.ScopeReal, tx.Scope)
	assert.Equal(t, models.TransactionTypeBuy, tx.Type)
	assert.InDelta(t, 40000, tx.PriceAtPurchase, 1e-9)
	assert.Equal(t, "2024-01-01T10:00:00Z", tx.Date.UTC().Format(time.RFC3339))
}

func TestCreateTransaction_DerivesPriceFromTotalCost(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)

	req := &models.TransactionRequest{
		Type:      "buy",
		Amount:    0.5,
		TotalCost: 25000,
	}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLedgerEvent(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.CreateTransaction(context.Background(), "user-1", models.ScopeArcade, req)

	assert.NoError(t, err)
	assert.InDelta(t, 50000, tx.PriceAtPurchase, 1e-9)
	assert.InDelta(t, 25000, tx.Cost(), 1e-9)
	// Omitted date defaults to creation time
	assert.False(t, tx.Date.IsZero())
}

func TestCreateTransaction_ValidationErrors(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	req := &models.TransactionRequest{
		Type:   "swap",
		Amount: -1,
		Date:   "not-a-date",
	}

	tx, err := uc.CreateTransaction(context.Background(), "user-1", models.ScopeReal, req)

	assert.Nil(t, tx)
	fields, ok := apperrors.AsFieldErrors(err)
	assert.True(t, ok)
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "amount")
	assert.Contains(t, fields, "date")
}

func TestCreateTransaction_PublishFailureDoesNotSurface(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)

	req := &models.TransactionRequest{Type: "buy", Amount: 1, PriceAtPurchase: 40000}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLedgerEvent(gomock.Any(), gomock.Any()).Return(errors.New("nsq down"))

	tx, err := uc.CreateTransaction(context.Background(), "user-1", models.ScopeReal, req)

	assert.NoError(t, err)
	assert.NotNil(t, tx)
}

func TestUpdateTransaction_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)

	id := uuid.New()
	existing := buyTx(0.5, 50000, "2024-01-01")
	existing.ID = id
	existing.UserID = "user-1"
	existing.Scope = models.ScopeReal

	req := &models.TransactionRequest{
		Type:            "buy",
		Amount:          0.5,
		PriceAtPurchase: 60000,
		Date:            "2024-01-15T00:00:00Z",
	}

	mockRepo.EXPECT().Get(gomock.Any(), id, "user-1").Return(&existing, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) error {
			assert.Equal(t, id, tx.ID)
			assert.InDelta(t, 60000, tx.PriceAtPurchase, 1e-9)
			return nil
		})
	mockGW.EXPECT().PublishLedgerEvent(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := uc.UpdateTransaction(context.Background(), id, "user-1", req)

	assert.NoError(t, err)
	assert.InDelta(t, 30000, tx.Cost(), 1e-9)
	// Owner and scope are immutable
	assert.Equal(t, "user-1", tx.UserID)
	assert.Equal(t, models.ScopeReal, tx.Scope)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Get(gomock.Any(), id, "user-1").Return(nil, apperrors.ErrTransactionNotFound)

	tx, err := uc.UpdateTransaction(context.Background(), id, "user-1", &models.TransactionRequest{})

	assert.Nil(t, tx)
	assert.ErrorIs(t, err, apperrors.ErrTransactionNotFound)
}

func TestUpdateTransaction_DateRequired(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	existing := buyTx(0.5, 50000, "2024-01-01")
	existing.ID = id

	mockRepo.EXPECT().Get(gomock.Any(), id, "user-1").Return(&existing, nil)

	req := &models.TransactionRequest{Type: "buy", Amount: 0.5, PriceAtPurchase: 50000}

	tx, err := uc.UpdateTransaction(context.Background(), id, "user-1", req)

	assert.Nil(t, tx)
	fields, ok := apperrors.AsFieldErrors(err)
	assert.True(t, ok)
	assert.Contains(t, fields, "date")
}

func TestDeleteTransaction_Success(t *testing.T) {
	uc, mockRepo, mockGW, _ := newTestUC(t)

	id := uuid.New()
	deleted := buyTx(1.0, 40000, "2024-01-01")
	deleted.ID = id
	deleted.UserID = "user-1"

	mockRepo.EXPECT().Delete(gomock.Any(), id, "user-1").Return(&deleted, nil)
	mockGW.EXPECT().PublishLedgerEvent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *models.LedgerEvent) error {
			assert.Equal(t, models.LedgerActionDeleted, event.Action)
			assert.Equal(t, id.String(), event.TransactionID)
			return nil
		})

	err := uc.DeleteTransaction(context.Background(), id, "user-1")

	assert.NoError(t, err)
}

func TestDeleteTransaction_AbsentIDIsNoOp(t *testing.T) {
	uc, mockRepo, _, _ := newTestUC(t)

	id := uuid.New()
	mockRepo.EXPECT().Delete(gomock.Any(), id, "user-1").Return(nil, nil)

	// No ledger event is published for a no-op delete
	err := uc.DeleteTransaction(context.Background(), id, "user-1")

	assert.NoError(t, err)
}

func TestGetSummary_AttachesPriceQuote(t *testing.T) {
	uc, mockRepo, _, mockPrice := newTestUC(t)

	txs := []models.Transaction{buyTx(1.0, 40000, "2024-01-01")}
	quote := models.PriceQuote{Asset: "bitcoin", Currency: "usd", Price: 60000, UpdatedAt: time.Now()}

	mockRepo.EXPECT().List(gomock.Any(), "user-1", models.ScopeArcade).Return(txs, nil)
	mockPrice.EXPECT().Current().Return(quote, true)

	summary, err := uc.GetSummary(context.Background(), "user-1", models.ScopeArcade)

	assert.NoError(t, err)
	assert.Equal(t, models.ScopeArcade, summary.Scope)
	assert.NotNil(t, summary.Price)
	assert.InDelta(t, 60000, summary.Price.Price, 1e-9)
}

func TestGetSummary_UnpricedOmitsQuote(t *testing.T) {
	uc, mockRepo, _, mockPrice := newTestUC(t)

	mockRepo.EXPECT().List(gomock.Any(), "user-1", models.ScopeReal).Return(nil, nil)
	mockPrice.EXPECT().Current().Return(models.PriceQuote{}, false)

	summary, err := uc.GetSummary(context.Background(), "user-1", models.ScopeReal)

	assert.NoError(t, err)
	assert.Nil(t, summary.Price)
}
