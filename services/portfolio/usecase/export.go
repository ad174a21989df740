package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// exportColumns is the shared table layout of every report format.
var exportColumns = []string{
	"Type",
	"Date",
	"Amount (BTC)",
	"Price/BTC (USD)",
	"Total Value (USD)",
	"Current Value (USD)",
	"P/L (USD)",
}

const exportTitle = "Bitcoin Portfolio Report"

// Export encodes one scope's ledger into the requested report format.
// An empty ledger is a no-op: no file is produced and no error raised.
func (uc *PortfolioUC) Export(ctx context.Context, userID string, scope models.Scope, format models.ExportFormat) (*models.ExportFile, error) {
	txs, err := uc.repo.List(ctx, userID, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if len(txs) == 0 {
		return nil, nil
	}

	quote, priced := uc.price.Current()
	rows := DeriveRows(txs, quote.Price, priced)

	now := time.Now()
	meta := models.ExportMeta{
		Title:       exportTitle,
		GeneratedAt: now,
	}
	if priced {
		q := quote
		meta.Price = &q
	}

	var data []byte
	var contentType string

	switch format {
	case models.ExportCSV:
		data = EncodeCSV(rows)
		contentType = "text/csv"
	case models.ExportPDF:
		data, err = EncodePDF(meta, rows)
		contentType = "application/pdf"
	case models.ExportXLSX:
		data, err = EncodeXLSX(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s export: %w", format, err)
	}

	return &models.ExportFile{
		Name:        fmt.Sprintf("btc-portfolio-%s.%s", now.Format("2006-01-02"), format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// rowStrings renders one derived row into the shared column layout.
// Currency renders with 2 decimals, BTC quantities with 8; sends get a "-"
// placeholder for current value and profit/loss instead of a blank.
func rowStrings(row models.TransactionRow) []string {
	currentValue := "-"
	profitLoss := "-"
	if row.Type == models.TransactionTypeBuy && row.Priced {
		currentValue = strconv.FormatFloat(row.CurrentValue, 'f', 2, 64)
		profitLoss = strconv.FormatFloat(row.ProfitLoss, 'f', 2, 64)
	}

	return []string{
		typeLabel(row.Type),
		row.Date.Format("2006-01-02 15:04"),
		strconv.FormatFloat(row.Amount, 'f', 8, 64),
		strconv.FormatFloat(row.PriceAtPurchase, 'f', 2, 64),
		strconv.FormatFloat(row.Cost, 'f', 2, 64),
		currentValue,
		profitLoss,
	}
}

func typeLabel(t models.TransactionType) string {
	if t == models.TransactionTypeBuy {
		return "Buy"
	}
	return "Send"
}

// EncodeCSV renders rows as CSV with a header line. Every field is quoted,
// matching the export contract consumed by existing spreadsheet imports.
func EncodeCSV(rows []models.TransactionRow) []byte {
	var b strings.Builder

	writeCSVLine(&b, exportColumns)
	for _, row := range rows {
		writeCSVLine(&b, rowStrings(row))
	}

	return []byte(b.String())
}

func writeCSVLine(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// EncodePDF renders the tabular report: title, generation timestamp, the
// current price when known, then the shared table.
func EncodePDF(meta models.ExportMeta, rows []models.TransactionRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(247, 147, 26)
	pdf.CellFormat(0, 10, meta.Title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", meta.GeneratedAt.Format("January 02, 2006 15:04")), "", 1, "L", false, 0, "")
	if meta.Price != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Current BTC Price: $%.2f", meta.Price.Price), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	colWidths := []float64{22, 36, 42, 42, 42, 42, 36}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(247, 147, 26)
	pdf.SetTextColor(255, 255, 255)
	for i, column := range exportColumns {
		pdf.CellFormat(colWidths[i], 7, column, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, field := range rowStrings(row) {
			pdf.CellFormat(colWidths[i], 6, field, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeXLSX renders rows into a single "Portfolio" worksheet with the
// shared columns and fixed column widths.
func EncodeXLSX(rows []models.TransactionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Portfolio"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, column := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, column); err != nil {
			return nil, err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, field := range rowStrings(row) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, field); err != nil {
				return nil, err
			}
		}
	}

	widths := []float64{8, 18, 14, 16, 18, 18, 14}
	for i, width := range widths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, column, column, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
