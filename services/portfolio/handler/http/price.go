package http

import (
	"net/http"

	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/utils"
	"github.com/labstack/echo/v4"
)

// GetPrice handles GET /price. A feed that has never succeeded yields 503;
// a stale quote is still served, flagged via its Stale field.
func (h *PortfolioHandler) GetPrice(c echo.Context) error {
	quote, known := h.portfolioUC.CurrentPrice()
	if !known {
		return utils.ServiceUnavailableResponse(c, "Price not fetched yet")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Price retrieved successfully", quote)
}

// RefreshPrice handles POST /price/refresh, the manual on-demand fetch.
// On failure the previously known price is retained and reported alongside
// the warning.
func (h *PortfolioHandler) RefreshPrice(c echo.Context) error {
	quote, err := h.portfolioUC.RefreshPrice(c.Request().Context())
	if err != nil {
		logger.Warn("Manual price refresh failed", logger.ErrorField(err))
		if quote.UpdatedAt.IsZero() {
			return utils.ServiceUnavailableResponse(c, "Could not fetch current price")
		}
		return c.JSON(http.StatusServiceUnavailable, utils.Response{
			Success: false,
			Error:   "Could not fetch current price; last known quote returned",
			Data:    quote,
		})
	}

	return utils.SuccessResponse(c, http.StatusOK, "Price refreshed successfully", quote)
}
