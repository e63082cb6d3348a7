// Package tabular abstracts the external two-table spreadsheet service
// behind a whole-table read / append / position-delete contract.
//
// Row positions are not stable identities: any delete shifts every later
// row up by one. Callers must recompute positions from a fresh ReadAll
// immediately before deleting, and multi-row deletes within one logical
// operation must proceed in descending position order.
package tabular

import "context"

// Row is one data row, keyed by header-derived field names.
type Row map[string]string

// Store is a named table in the external tabular service.
//
// The store offers no transactions: each call is a single remote round
// trip, and multi-row consistency is the caller's responsibility.
type Store interface {
	// ReadAll returns every data row in table order. The header row is
	// excluded and supplies the field names.
	ReadAll(ctx context.Context) ([]Row, error)

	// Append adds a row at the end of the table.
	Append(ctx context.Context, row Row) error

	// DeleteAt removes the row at the given 1-based position among data
	// rows. Returns common.ErrInvalidPosition when out of range.
	DeleteAt(ctx context.Context, pos int) error
}
