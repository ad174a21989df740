package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/btcfolio/btcfolio/internal/utils"
	"github.com/btcfolio/btcfolio/services/portfolio"
	apperrors "github.com/btcfolio/btcfolio/services/portfolio/errors"
	"github.com/btcfolio/btcfolio/services/portfolio/usecase"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PortfolioHandler handles HTTP requests for the portfolio service
type PortfolioHandler struct {
	portfolioUC portfolio.PortfolioUC
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolioUC portfolio.PortfolioUC) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUC: portfolioUC,
	}
}

// userID extracts the authenticated user from the JWT claims set by the
// route middleware.
func userID(c echo.Context) string {
	if uid := c.Get("user_id"); uid != nil {
		return fmt.Sprintf("%v", uid)
	}
	return ""
}

// scopeParam parses the scope query parameter, defaulting to the real
// ledger.
func scopeParam(c echo.Context) (models.Scope, bool) {
	return models.ParseScope(c.QueryParam("scope"))
}

// ListTransactions handles GET /transactions
func (h *PortfolioHandler) ListTransactions(c echo.Context) error {
	scope, ok := scopeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid scope")
	}

	sortState := usecase.DefaultSort()
	if field := models.SortField(c.QueryParam("sort")); field != "" {
		if !field.Valid() {
			return utils.BadRequestResponse(c, "Invalid sort field")
		}
		sortState.Field = field
	}
	if dir := c.QueryParam("dir"); dir != "" {
		switch models.SortDirection(dir) {
		case models.SortAsc, models.SortDesc:
			sortState.Direction = models.SortDirection(dir)
		default:
			return utils.BadRequestResponse(c, "Invalid sort direction")
		}
	}

	rows, err := h.portfolioUC.ListTransactions(c.Request().Context(), userID(c), scope, sortState)
	if err != nil {
		logger.Error("Failed to list transactions",
			logger.ErrorField(err),
			logger.String("user_id", userID(c)),
			logger.String("scope", string(scope)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to fetch transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", rows)
}

// CreateTransaction handles POST /transactions
func (h *PortfolioHandler) CreateTransaction(c echo.Context) error {
	scope, ok := scopeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid scope")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for transaction creation",
			logger.ErrorField(err),
			logger.String("endpoint", "CreateTransaction"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.portfolioUC.CreateTransaction(c.Request().Context(), userID(c), scope, &req)
	if err != nil {
		if fields, ok := apperrors.AsFieldErrors(err); ok {
			return utils.ValidationErrorResponse(c, fields)
		}
		logger.Error("Failed to create transaction",
			logger.ErrorField(err),
			logger.String("user_id", userID(c)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to create transaction")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", tx)
}

// UpdateTransaction handles PUT /transactions/:id (full replace)
func (h *PortfolioHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.portfolioUC.UpdateTransaction(c.Request().Context(), id, userID(c), &req)
	if err != nil {
		if fields, ok := apperrors.AsFieldErrors(err); ok {
			return utils.ValidationErrorResponse(c, fields)
		}
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		logger.Error("Failed to update transaction",
			logger.ErrorField(err),
			logger.String("transaction_id", id.String()),
			logger.String("user_id", userID(c)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", tx)
}

// DeleteTransaction handles DELETE /transactions/:id. Deleting an absent id
// still returns 204: the operation is idempotent.
func (h *PortfolioHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.portfolioUC.DeleteTransaction(c.Request().Context(), id, userID(c)); err != nil {
		logger.Error("Failed to delete transaction",
			logger.ErrorField(err),
			logger.String("transaction_id", id.String()),
			logger.String("user_id", userID(c)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to delete transaction")
	}

	return c.NoContent(http.StatusNoContent)
}
