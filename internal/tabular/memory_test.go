package tabular

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selikem/ewehub/internal/common"
)

func newTable(t *testing.T, rows ...[]string) *MemoryTable {
	t.Helper()
	tbl := NewMemoryTable([]string{"a", "b"})
	for _, r := range rows {
		require.NoError(t, tbl.Append(context.Background(), Row{"a": r[0], "b": r[1]}))
	}
	return tbl
}

func TestMemoryTable_AppendAndReadAll_PreserveOrder(t *testing.T) {
	tbl := newTable(t, []string{"1", "x"}, []string{"2", "y"}, []string{"3", "z"})

	rows, err := tbl.ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{
		{"a": "1", "b": "x"},
		{"a": "2", "b": "y"},
		{"a": "3", "b": "z"},
	}, rows)
}

func TestMemoryTable_Append_MissingFieldBecomesEmpty(t *testing.T) {
	tbl := NewMemoryTable([]string{"a", "b"})
	require.NoError(t, tbl.Append(context.Background(), Row{"a": "only"}))

	rows, err := tbl.ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, Row{"a": "only", "b": ""}, rows[0])
}

func TestMemoryTable_DeleteAt(t *testing.T) {
	tbl := newTable(t, []string{"1", "x"}, []string{"2", "y"}, []string{"3", "z"})

	require.NoError(t, tbl.DeleteAt(context.Background(), 2))

	rows, err := tbl.ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{
		{"a": "1", "b": "x"},
		{"a": "3", "b": "z"},
	}, rows)
}

func TestMemoryTable_DeleteAt_OutOfRange(t *testing.T) {
	tbl := newTable(t, []string{"1", "x"})

	for _, pos := range []int{0, -1, 2, 100} {
		err := tbl.DeleteAt(context.Background(), pos)
		require.ErrorIs(t, err, common.ErrInvalidPosition, "pos %d", pos)
	}
	require.Equal(t, 1, tbl.Len())
}

// Deleting positions in descending order must leave every surviving row
// untouched; ascending order would shift later positions underneath the
// caller.
func TestMemoryTable_DescendingMultiDelete_LeavesOtherRowsIntact(t *testing.T) {
	ctx := context.Background()
	tbl := NewMemoryTable([]string{"a", "b"})
	for i := 1; i <= 8; i++ {
		require.NoError(t, tbl.Append(ctx, Row{"a": string(rune('0' + i)), "b": "v"}))
	}

	before, err := tbl.ReadAll(ctx)
	require.NoError(t, err)

	for _, pos := range []int{7, 5, 2} { // descending
		require.NoError(t, tbl.DeleteAt(ctx, pos))
	}

	after, err := tbl.ReadAll(ctx)
	require.NoError(t, err)

	var want []Row
	for i, row := range before {
		switch i + 1 {
		case 2, 5, 7:
			continue
		default:
			want = append(want, row)
		}
	}
	require.Equal(t, want, after)
}
