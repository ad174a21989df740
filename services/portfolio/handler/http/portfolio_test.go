package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

func TestGetSummary_Success(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	summary := &models.PortfolioSummary{
		Scope:           models.ScopeReal,
		TotalHoldings:   1.25,
		TotalInvestment: 65000,
		CurrentValue:    75000,
		Profit:          10000,
		Transactions:    3,
	}
	mockUC.EXPECT().GetSummary(gomock.Any(), "user-1", models.ScopeReal).Return(summary, nil)

	c, rec := newContext(e, http.MethodGet, "/portfolio/summary", "")

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, 1.25, data["total_holdings"])
	assert.Equal(t, float64(3), data["transactions"])
}

func TestGetSummary_ArcadeScope(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	mockUC.EXPECT().
		GetSummary(gomock.Any(), "user-1", models.ScopeArcade).
		Return(&models.PortfolioSummary{Scope: models.ScopeArcade}, nil)

	c, rec := newContext(e, http.MethodGet, "/portfolio/summary?scope=arcade", "")

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetSummary_UsecaseError(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	mockUC.EXPECT().
		GetSummary(gomock.Any(), "user-1", models.ScopeReal).
		Return(nil, errors.New("db down"))

	c, rec := newContext(e, http.MethodGet, "/portfolio/summary", "")

	err := handler.GetSummary(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetValueSeries_Success(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	series := &models.ValueSeries{
		Scope: models.ScopeReal,
		Points: []models.SeriesPoint{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: 40000, Label: "Jan 01"},
			{Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Value: 120000, Label: "Today"},
		},
		PercentChange: 200,
	}
	mockUC.EXPECT().GetValueSeries(gomock.Any(), "user-1", models.ScopeReal).Return(series, nil)

	c, rec := newContext(e, http.MethodGet, "/portfolio/series", "")

	err := handler.GetValueSeries(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	points := data["points"].([]interface{})
	assert.Len(t, points, 2)
}

func TestGetValueSeries_InvalidScope(t *testing.T) {
	handler, _, e := setupHandlerTest(t)

	c, rec := newContext(e, http.MethodGet, "/portfolio/series?scope=demo", "")

	err := handler.GetValueSeries(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport_CSV(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	file := &models.ExportFile{
		Name:        "btc-portfolio-2024-03-15.csv",
		ContentType: "text/csv",
		Data:        []byte(`"Type","Date"` + "\n"),
	}
	mockUC.EXPECT().
		Export(gomock.Any(), "user-1", models.ScopeReal, models.ExportCSV).
		Return(file, nil)

	c, rec := newContext(e, http.MethodGet, "/portfolio/export/csv", "")
	c.SetParamNames("format")
	c.SetParamValues("csv")

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Equal(t, `attachment; filename="btc-portfolio-2024-03-15.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, string(file.Data), rec.Body.String())
}

func TestExport_UnsupportedFormat(t *testing.T) {
	handler, _, e := setupHandlerTest(t)

	c, rec := newContext(e, http.MethodGet, "/portfolio/export/docx", "")
	c.SetParamNames("format")
	c.SetParamValues("docx")

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport_EmptyLedger(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	mockUC.EXPECT().
		Export(gomock.Any(), "user-1", models.ScopeReal, models.ExportPDF).
		Return(nil, nil)

	c, rec := newContext(e, http.MethodGet, "/portfolio/export/pdf", "")
	c.SetParamNames("format")
	c.SetParamValues("pdf")

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestExport_UsecaseError(t *testing.T) {
	handler, mockUC, e := setupHandlerTest(t)

	mockUC.EXPECT().
		Export(gomock.Any(), "user-1", models.ScopeReal, models.ExportXLSX).
		Return(nil, errors.New("encode failed"))

	c, rec := newContext(e, http.MethodGet, "/portfolio/export/xlsx", "")
	c.SetParamNames("format")
	c.SetParamValues("xlsx")

	err := handler.Export(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
