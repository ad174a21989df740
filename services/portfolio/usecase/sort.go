package usecase

import (
	"sort"

	"github.com/btcfolio/btcfolio/internal/pkg/models"
)

// DefaultSort is the storage-boundary ordering: newest first.
func DefaultSort() models.SortState {
	return models.SortState{Field: models.SortFieldDate, Direction: models.SortDesc}
}

// NextSort computes the ordering after the user selects a field: selecting
// the current field toggles its direction, selecting a new field resets to
// descending.
func NextSort(current models.SortState, field models.SortField) models.SortState {
	if current.Field == field {
		dir := models.SortDesc
		if current.Direction == models.SortDesc {
			dir = models.SortAsc
		}
		return models.SortState{Field: field, Direction: dir}
	}
	return models.SortState{Field: field, Direction: models.SortDesc}
}

// SortTransactions returns a reordered copy of the ledger; the input slice
// is never mutated, so row identity stays bound to edit and delete actions.
// The sort is stable: ties keep the original list order.
func SortTransactions(txs []models.Transaction, state models.SortState) []models.Transaction {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)

	if !state.Field.Valid() {
		state = DefaultSort()
	}

	less := lessFunc(sorted, state.Field)
	if state.Direction == models.SortDesc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}

	sort.SliceStable(sorted, less)

	return sorted
}

func lessFunc(txs []models.Transaction, field models.SortField) func(i, j int) bool {
	switch field {
	case models.SortFieldAmount:
		return func(i, j int) bool { return txs[i].Amount < txs[j].Amount }
	case models.SortFieldPrice:
		return func(i, j int) bool { return txs[i].PriceAtPurchase < txs[j].PriceAtPurchase }
	case models.SortFieldValue:
		return func(i, j int) bool { return txs[i].Cost() < txs[j].Cost() }
	case models.SortFieldType:
		// buy orders before send ascending
		return func(i, j int) bool {
			return txs[i].Type == models.TransactionTypeBuy && txs[j].Type == models.TransactionTypeSend
		}
	default:
		return func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) }
	}
}
