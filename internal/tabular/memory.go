package tabular

import (
	"context"
	"fmt"
	"sync"

	"github.com/selikem/ewehub/internal/common"
)

// MemoryTable is an in-memory Store with the same contract as SheetsTable,
// used by tests and local dry runs.
type MemoryTable struct {
	columns []string
	rows    [][]string

	mu sync.Mutex
}

func NewMemoryTable(columns []string) *MemoryTable {
	return &MemoryTable{columns: columns}
}

func (t *MemoryTable) ReadAll(ctx context.Context) ([]Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rows := make([]Row, 0, len(t.rows))
	for _, raw := range t.rows {
		row := make(Row, len(t.columns))
		for i, name := range t.columns {
			if i < len(raw) {
				row[name] = raw[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *MemoryTable) Append(ctx context.Context, row Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw := make([]string, len(t.columns))
	for i, name := range t.columns {
		raw[i] = row[name]
	}
	t.rows = append(t.rows, raw)
	return nil
}

func (t *MemoryTable) DeleteAt(ctx context.Context, pos int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pos < 1 || pos > len(t.rows) {
		return fmt.Errorf("position %d of %d: %w", pos, len(t.rows), common.ErrInvalidPosition)
	}
	t.rows = append(t.rows[:pos-1], t.rows[pos:]...)
	return nil
}

// Len reports the current number of data rows. Test helper.
func (t *MemoryTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}
