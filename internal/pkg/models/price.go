package models

import "time"

// PriceQuote is the last successfully fetched spot price. UpdatedAt is the
// time of that success; Stale is set when the quote has outlived two poll
// intervals, so the UI can show a last-updated indicator instead of blocking.
type PriceQuote struct {
	Asset     string    `json:"asset"`
	Currency  string    `json:"currency"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
	Stale     bool      `json:"stale"`
}
