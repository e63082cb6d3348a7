package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/selikem/ewehub/internal/common"
	"github.com/selikem/ewehub/internal/tabular"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func newRepo(t *testing.T) (*Repository, *tabular.MemoryTable) {
	t.Helper()
	tbl := tabular.NewMemoryTable(Columns)
	return NewRepository(tbl), tbl
}

func TestRepository_SubmitThenListByOwner_OrderAndCount(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	for i, src := range []string{"alpha", "beta", "gamma"} {
		rec := Record{
			Date:   day(t, "2024-01-05").AddDate(0, 0, i),
			Source: src,
			Target: src + "-en",
			Owner:  "ama",
		}
		require.NoError(t, r.Submit(ctx, rec))
	}
	require.NoError(t, r.Submit(ctx, Record{Date: day(t, "2024-01-09"), Source: "x", Target: "y", Owner: "kofi"}))

	recs, err := r.ListByOwner(ctx, "ama")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	require.Equal(t, "alpha", recs[0].Source)
	require.Equal(t, "beta", recs[1].Source)
	require.Equal(t, "gamma", recs[2].Source)
}

func TestRepository_ListByOwner_CaseInsensitive(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Submit(ctx, Record{Date: day(t, "2024-01-05"), Source: "a", Target: "b", Owner: "Ama"}))

	recs, err := r.ListByOwner(ctx, "AMA")
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestRepository_DeleteByOwner(t *testing.T) {
	r, tbl := newRepo(t)
	ctx := context.Background()

	for _, owner := range []string{"ama", "kofi", "ama", "ama", "kofi"} {
		require.NoError(t, r.Submit(ctx, Record{Date: day(t, "2024-02-01"), Source: "s", Target: "t", Owner: owner}))
	}

	n, err := r.DeleteByOwner(ctx, "ama")
	require.NoError(t, err)
	require.Equal(t, 3, n)

	recs, err := r.ListByOwner(ctx, "ama")
	require.NoError(t, err)
	require.Empty(t, recs)

	// survivors untouched
	require.Equal(t, 2, tbl.Len())
	kofi, err := r.ListByOwner(ctx, "kofi")
	require.NoError(t, err)
	require.Len(t, kofi, 2)

	// second call deletes nothing
	n, err = r.DeleteByOwner(ctx, "ama")
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRepository_DeleteByOwner_LeavesOtherRowValuesUnchanged(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	owners := []string{"keep", "drop", "keep", "keep", "drop", "keep", "drop", "keep"}
	for i, owner := range owners {
		require.NoError(t, r.Submit(ctx, Record{
			Date:   day(t, "2024-03-01").AddDate(0, 0, i),
			Source: "src",
			Target: "tgt",
			Owner:  owner,
		}))
	}

	before, err := r.ListAll(ctx)
	require.NoError(t, err)

	_, err = r.DeleteByOwner(ctx, "drop")
	require.NoError(t, err)

	after, err := r.ListAll(ctx)
	require.NoError(t, err)

	var want []Record
	for _, rec := range before {
		if rec.Owner != "drop" {
			want = append(want, rec)
		}
	}
	require.Equal(t, want, after)
}

func TestRepository_DeleteOne(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	recs := []Record{
		{Date: day(t, "2024-01-05"), Source: "a", Target: "b", Owner: "ama"},
		{Date: day(t, "2024-01-06"), Source: "c", Target: "d", Owner: "ama"},
	}
	for _, rec := range recs {
		require.NoError(t, r.Submit(ctx, rec))
	}

	require.NoError(t, r.DeleteOne(ctx, recs[0]))

	left, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	require.Equal(t, "c", left[0].Source)
}

func TestRepository_DeleteOne_NoMatchLeavesTableUnchanged(t *testing.T) {
	r, tbl := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Submit(ctx, Record{Date: day(t, "2024-01-05"), Source: "a", Target: "b", Owner: "ama"}))

	sel := Record{Date: day(t, "2024-01-05"), Source: "a", Target: "DIFFERENT", Owner: "ama"}
	err := r.DeleteOne(ctx, sel)
	require.ErrorIs(t, err, common.ErrNotFound)
	require.Equal(t, 1, tbl.Len())
}

func TestRepository_UnparseableDate_StillListedAndDeletable(t *testing.T) {
	ctx := context.Background()
	tbl := tabular.NewMemoryTable(Columns)
	require.NoError(t, tbl.Append(ctx, tabular.Row{
		ColDate: "05/01/2024", ColSource: "a", ColTarget: "b", ColOwner: "ama",
	}))
	r := NewRepository(tbl)

	recs, err := r.ListByOwner(ctx, "ama")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.True(t, recs[0].Date.IsZero())

	// a zero-date selector matches the zero-date record
	require.NoError(t, r.DeleteOne(ctx, recs[0]))
	require.Zero(t, tbl.Len())
}
