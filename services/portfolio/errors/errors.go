package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrTransactionNotFound covers both a missing id and an id owned by a
	// different user, so existence of other users' rows is never leaked.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrPriceUnavailable is returned when the spot price source is
	// unreachable or its payload cannot be coerced into a price.
	ErrPriceUnavailable = errors.New("price feed unavailable")
)

// FieldErrors maps request fields to validation messages. It implements
// error so usecases can return it through the normal error path; handlers
// unpack it into a structured 400 response.
type FieldErrors map[string]string

// Error returns a deterministic summary of all field failures.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid transaction data: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e[field])
	}
	return b.String()
}

// AsFieldErrors unpacks a FieldErrors from an error chain.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
