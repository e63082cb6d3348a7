package dataset

import (
	"time"

	"github.com/selikem/ewehub/internal/tabular"
)

// Column names of the dataset table.
const (
	ColDate   = "date"
	ColSource = "source_text"
	ColTarget = "target_text"
	ColOwner  = "owner"
)

// Columns fixes the write order of record rows.
var Columns = []string{ColDate, ColSource, ColTarget, ColOwner}

// DateLayout is how dates are stored in the table.
const DateLayout = "2006-01-02"

// Record is one dataset entry: a minority-language sentence, its
// translation, the calendar date, and the owning username. Records are
// immutable once created; the only mutation is deletion.
type Record struct {
	Date   time.Time
	Source string
	Target string
	Owner  string
}

// recordFromRow maps a table row to a Record. A date cell that fails to
// parse yields a zero Date; the record itself stays usable (listed,
// deletable) and is only excluded from monthly bucketing.
func recordFromRow(row tabular.Row) Record {
	r := Record{
		Source: row[ColSource],
		Target: row[ColTarget],
		Owner:  row[ColOwner],
	}
	if d, err := time.Parse(DateLayout, row[ColDate]); err == nil {
		r.Date = d
	}
	return r
}

func (r Record) row() tabular.Row {
	date := ""
	if !r.Date.IsZero() {
		date = r.Date.Format(DateLayout)
	}
	return tabular.Row{
		ColDate:   date,
		ColSource: r.Source,
		ColTarget: r.Target,
		ColOwner:  r.Owner,
	}
}

// sameDate compares calendar dates by value, so formatting drift in the
// stored cell cannot produce a false negative. Two unparseable (zero)
// dates compare equal.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
