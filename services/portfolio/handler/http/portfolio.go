package http

import (
	"fmt"
	"net/http"

	"github.com/btcfolio/btcfolio/internal/pkg/logger"
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/btcfolio/btcfolio/internal/utils"
	"github.com/labstack/echo/v4"
)

// GetSummary handles GET /portfolio/summary
func (h *PortfolioHandler) GetSummary(c echo.Context) error {
	scope, ok := scopeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid scope")
	}

	summary, err := h.portfolioUC.GetSummary(c.Request().Context(), userID(c), scope)
	if err != nil {
		logger.Error("Failed to compute portfolio summary",
			logger.ErrorField(err),
			logger.String("user_id", userID(c)),
			logger.String("scope", string(scope)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to compute summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary computed successfully", summary)
}

// GetValueSeries handles GET /portfolio/series
func (h *PortfolioHandler) GetValueSeries(c echo.Context) error {
	scope, ok := scopeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid scope")
	}

	series, err := h.portfolioUC.GetValueSeries(c.Request().Context(), userID(c), scope)
	if err != nil {
		logger.Error("Failed to build value series",
			logger.ErrorField(err),
			logger.String("user_id", userID(c)),
			logger.String("scope", string(scope)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to build chart series")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Series built successfully", series)
}

// Export handles GET /portfolio/export/:format. An empty ledger yields 204:
// there is nothing to export and that is not an error.
func (h *PortfolioHandler) Export(c echo.Context) error {
	scope, ok := scopeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid scope")
	}

	format := models.ExportFormat(c.Param("format"))
	if !format.Valid() {
		return utils.BadRequestResponse(c, "Unsupported export format")
	}

	file, err := h.portfolioUC.Export(c.Request().Context(), userID(c), scope, format)
	if err != nil {
		logger.Error("Failed to export portfolio",
			logger.ErrorField(err),
			logger.String("user_id", userID(c)),
			logger.String("format", string(format)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to export portfolio")
	}
	if file == nil {
		return c.NoContent(http.StatusNoContent)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
