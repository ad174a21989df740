package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes portfolio events. Buys increase holdings,
// sends decrease holdings and never carry a profit/loss figure.
type TransactionType string

const (
	TransactionTypeBuy  TransactionType = "buy"
	TransactionTypeSend TransactionType = "send"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeBuy || t == TransactionTypeSend
}

// Scope partitions a user's ledger into the live portfolio and the
// hypothetical sandbox. The two are never mixed in aggregation.
type Scope string

const (
	ScopeReal   Scope = "real"
	ScopeArcade Scope = "arcade"
)

// ParseScope normalizes a scope query value, defaulting to the real ledger.
func ParseScope(s string) (Scope, bool) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeArcade:
		return ScopeArcade, true
	case ScopeReal, "":
		return ScopeReal, true
	default:
		return ScopeReal, false
	}
}

// Transaction represents one portfolio event
type Transaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          string          `json:"user_id" db:"user_id"`
	Type            TransactionType `json:"type" db:"type"`
	Amount          float64         `json:"amount" db:"amount"`
	PriceAtPurchase float64         `json:"price_at_purchase" db:"price_at_purchase"`
	Date            time.Time       `json:"date" db:"date"`
	Scope           Scope           `json:"scope" db:"scope"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// Cost returns the total quote-currency value recorded at entry time.
func (t *Transaction) Cost() float64 {
	return t.Amount * t.PriceAtPurchase
}

// TransactionRequest is the request payload for creating or replacing a
// transaction. Older clients spell the price field priceAtPurchase, newer
// ones price_at_purchase, and the entry forms submit a total cost instead of
// a unit price; Normalize resolves all three into the canonical unit price so
// the drift never leaks past the handler boundary.
type TransactionRequest struct {
	Type            string  `json:"type"`
	Amount          float64 `json:"amount"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	PriceCamel      float64 `json:"priceAtPurchase,omitempty"`
	TotalCost       float64 `json:"total_cost"`
	TotalCostCamel  float64 `json:"totalCost,omitempty"`
	Date            string  `json:"date"`
}

// Normalize collapses the accepted field spellings into the canonical shape.
// A supplied total cost wins over a unit price: the effective unit price is
// always recomputed as totalCost / amount so cost never drifts from
// amount x price.
func (r *TransactionRequest) Normalize() {
	if r.TotalCost == 0 && r.TotalCostCamel != 0 {
		r.TotalCost = r.TotalCostCamel
	}
	if r.PriceAtPurchase == 0 && r.PriceCamel != 0 {
		r.PriceAtPurchase = r.PriceCamel
	}
	if r.TotalCost != 0 && r.Amount > 0 {
		r.PriceAtPurchase = r.TotalCost / r.Amount
	}
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
}

// LedgerEventAction enumerates ledger mutation kinds
const (
	LedgerActionCreated = "created"
	LedgerActionUpdated = "updated"
	LedgerActionDeleted = "deleted"
)

// LedgerEvent is published after every successful ledger mutation so
// dependent views can re-read their scope.
type LedgerEvent struct {
	UserID        string    `json:"user_id"`
	Scope         Scope     `json:"scope"`
	Action        string    `json:"action"`
	TransactionID string    `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
