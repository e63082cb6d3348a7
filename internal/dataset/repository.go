// Package dataset owns record submission, listing, deletion and
// contribution statistics over the dataset table of the tabular store.
//
// The correctness rule for every delete: re-read the table immediately
// before computing row positions, and process multi-row deletes in
// descending position order. Positions are never cached across a logical
// operation, because any delete shifts every later row up by one.
package dataset

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/selikem/ewehub/internal/common"
	"github.com/selikem/ewehub/internal/tabular"
)

type Repository struct {
	store tabular.Store
}

func NewRepository(store tabular.Store) *Repository {
	return &Repository{store: store}
}

// Submit appends a record row. Text fields are stored as given — the
// historical behavior performs no validation of empty sentences, and
// that gap is preserved here rather than silently fixed.
func (r *Repository) Submit(ctx context.Context, rec Record) error {
	if err := r.store.Append(ctx, rec.row()); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}

// ListAll returns every record in table order.
func (r *Repository) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := r.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	recs := make([]Record, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, recordFromRow(row))
	}
	return recs, nil
}

// ListByOwner returns the owner's records in submission order. Owner
// matching is case-insensitive, consistent with login matching.
func (r *Repository) ListByOwner(ctx context.Context, owner string) ([]Record, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var recs []Record
	for _, rec := range all {
		if strings.EqualFold(rec.Owner, owner) {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// DeleteByOwner removes every record owned by owner and returns how many
// were deleted. Positions come from a fresh read and are deleted in
// descending order so earlier deletes cannot shift the remaining targets.
func (r *Repository) DeleteByOwner(ctx context.Context, owner string) (int, error) {
	rows, err := r.store.ReadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading dataset: %w", err)
	}

	var positions []int
	for i, row := range rows {
		if strings.EqualFold(row[ColOwner], owner) {
			positions = append(positions, i+1)
		}
	}

	deleted := 0
	for i := len(positions) - 1; i >= 0; i-- {
		if err := r.store.DeleteAt(ctx, positions[i]); err != nil {
			return deleted, fmt.Errorf("deleting row %d: %w", positions[i], err)
		}
		deleted++
	}
	return deleted, nil
}

// DeleteOne removes the first record whose (date, source, target, owner)
// tuple matches the selector. Dates are compared by calendar value, not
// string formatting. Returns common.ErrNotFound when nothing matches.
func (r *Repository) DeleteOne(ctx context.Context, sel Record) error {
	rows, err := r.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	for i, row := range rows {
		rec := recordFromRow(row)
		if sameDate(rec.Date, sel.Date) &&
			rec.Source == sel.Source &&
			rec.Target == sel.Target &&
			strings.EqualFold(rec.Owner, sel.Owner) {
			if err := r.store.DeleteAt(ctx, i+1); err != nil {
				return fmt.Errorf("deleting row %d: %w", i+1, err)
			}
			return nil
		}
	}
	return fmt.Errorf("record: %w", common.ErrNotFound)
}

// OwnerCount is one line of the contribution statistics.
type OwnerCount struct {
	Owner string
	Count int
}

// ContributionCounts groups records by owner (case-folded) and counts
// them, ordered descending by count for display; ties break by folded
// owner ascending so the output is deterministic. Each group is reported
// under the owner's first-seen spelling.
func ContributionCounts(records []Record) []OwnerCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	for _, rec := range records {
		folded := strings.ToLower(rec.Owner)
		if _, seen := counts[folded]; !seen {
			display[folded] = rec.Owner
		}
		counts[folded]++
	}

	out := make([]OwnerCount, 0, len(counts))
	for folded, n := range counts {
		out = append(out, OwnerCount{Owner: display[folded], Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Owner) < strings.ToLower(out[j].Owner)
	})
	return out
}

// MonthCount is one calendar-month bucket of an owner's contributions.
type MonthCount struct {
	Month string // "2006-01"
	Count int
}

// MonthlyContributionCounts buckets the owner's records by calendar
// year-month, ordered chronologically ascending. Records whose date
// failed to parse are dropped from the tally; they never cause an error.
func MonthlyContributionCounts(records []Record, owner string) []MonthCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if !strings.EqualFold(rec.Owner, owner) || rec.Date.IsZero() {
			continue
		}
		counts[rec.Date.Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
