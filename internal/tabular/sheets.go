package tabular

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/selikem/ewehub/internal/common"
)

// SheetsTable is a Store over one worksheet of a Google Sheets document.
// Row 1 of the worksheet is the header; data rows start at row 2.
//
// Mutations are serialized through an in-process mutex, so two goroutines
// of this process cannot interleave position computation and deletion.
// The service itself has no transactions or locks, so races with other
// processes writing the same document remain possible.
type SheetsTable struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
	sheetID       int64
	columns       []string

	mu sync.Mutex
}

// NewService builds a Sheets API client. credentialsFile may be empty,
// in which case application-default credentials are used.
func NewService(ctx context.Context, credentialsFile string) (*sheets.Service, error) {
	var opts []option.ClientOption
	if strings.TrimSpace(credentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}
	return svc, nil
}

// NewSheetsTable binds a Store to the worksheet with the given title.
// columns fixes the write order of fields for Append.
func NewSheetsTable(ctx context.Context, svc *sheets.Service, spreadsheetID, title string, columns []string) (*SheetsTable, error) {
	doc, err := svc.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, storeErr(err)
	}
	for _, sh := range doc.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return &SheetsTable{
				svc:           svc,
				spreadsheetID: spreadsheetID,
				title:         title,
				sheetID:       sh.Properties.SheetId,
				columns:       columns,
			}, nil
		}
	}
	return nil, fmt.Errorf("worksheet %q: %w", title, common.ErrNotFound)
}

func (t *SheetsTable) ReadAll(ctx context.Context) ([]Row, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, t.title).Context(ctx).Do()
	if err != nil {
		return nil, storeErr(err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	header := make([]string, 0, len(resp.Values[0]))
	for _, c := range resp.Values[0] {
		header = append(header, strings.TrimSpace(fmt.Sprint(c)))
	}

	rows := make([]Row, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(raw) {
				row[name] = fmt.Sprint(raw[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *SheetsTable) Append(ctx context.Context, row Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	vals := make([]interface{}, len(t.columns))
	for i, name := range t.columns {
		vals[i] = row[name]
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{vals}}
	_, err := t.svc.Spreadsheets.Values.Append(t.spreadsheetID, t.title, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (t *SheetsTable) DeleteAt(ctx context.Context, pos int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if pos < 1 {
		return fmt.Errorf("position %d: %w", pos, common.ErrInvalidPosition)
	}

	// Data row N sits at 0-based grid index N (the header occupies index 0).
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    t.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(pos),
					EndIndex:   int64(pos) + 1,
				},
			},
		}},
	}
	_, err := t.svc.Spreadsheets.BatchUpdate(t.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusBadRequest {
			return fmt.Errorf("position %d: %w", pos, common.ErrInvalidPosition)
		}
		return storeErr(err)
	}
	return nil
}

// storeErr marks any service failure as the transient store-unavailable
// condition; it propagates up unchanged, with no retry.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
}
