package models

import (
	"time"
)

// TransactionRow is a ledger entry with its derived valuation fields.
// CurrentValue and ProfitLoss are zero-valued with Priced=false when no spot
// price is known yet. Sends never carry a profit/loss figure.
type TransactionRow struct {
	Transaction
	Cost         float64 `json:"cost"`
	CurrentValue float64 `json:"current_value"`
	ProfitLoss   float64 `json:"profit_loss"`
	Priced       bool    `json:"priced"`
}

// PortfolioSummary aggregates one scope's full transaction set.
type PortfolioSummary struct {
	Scope           Scope       `json:"scope"`
	TotalHoldings   float64     `json:"total_holdings"`
	TotalInvestment float64     `json:"total_investment"`
	CurrentValue    float64     `json:"current_value"`
	Profit          float64     `json:"profit"`
	ProfitPercent   float64     `json:"profit_percent"`
	Transactions    int         `json:"transactions"`
	Price           *PriceQuote `json:"price,omitempty"`
}

// SeriesPoint is one point of the value-over-time chart. Historical points
// are valued at the price recorded on the transaction; the final point is
// valued at the current spot price and labeled "Today".
type SeriesPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Label string    `json:"label"`
}

// ValueSeries is the chart payload for one scope.
type ValueSeries struct {
	Scope         Scope         `json:"scope"`
	Points        []SeriesPoint `json:"points"`
	PercentChange float64       `json:"percent_change"`
}

// SortField enumerates user-selectable ledger orderings
type SortField string

const (
	SortFieldDate   SortField = "date"
	SortFieldAmount SortField = "amount"
	SortFieldPrice  SortField = "price"
	SortFieldValue  SortField = "value"
	SortFieldType   SortField = "type"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortFieldDate, SortFieldAmount, SortFieldPrice, SortFieldValue, SortFieldType:
		return true
	}
	return false
}

// SortDirection is the ordering direction for a sort field
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the current view ordering. It is a pure view concern: sorting
// copies the list and never mutates the ledger, so row identity stays intact
// for edit and delete actions.
type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// ExportFormat enumerates supported report encodings
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportPDF  ExportFormat = "pdf"
	ExportXLSX ExportFormat = "xlsx"
)

// Valid reports whether f is a supported export format.
func (f ExportFormat) Valid() bool {
	switch f {
	case ExportCSV, ExportPDF, ExportXLSX:
		return true
	}
	return false
}

// ExportFile is an encoded report ready to be served as a download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportMeta carries the non-tabular header of a report.
type ExportMeta struct {
	Title       string
	GeneratedAt time.Time
	Price       *PriceQuote
}
