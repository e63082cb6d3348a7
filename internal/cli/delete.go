package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) DeleteOne(ctx context.Context) error {
	recs, err := a.hub.ListMyRecords(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "Nothing to delete")
		return nil
	}

	for i, rec := range recs {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, formatRecord(rec))
	}
	s, err := GetSimpleText(a.reader, "Entry number to delete", a.out)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(recs) {
		fmt.Fprintln(a.out, "Invalid entry number")
		return nil
	}

	// The selector carries the record's values; the row position is
	// recomputed from a fresh read inside the delete.
	if err := a.hub.DeleteMyRecord(ctx, recs[n-1]); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Entry deleted")
	return nil
}

func (a *App) DeleteAll(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "Delete ALL your contributions? (yes/no)", a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	n, err := a.hub.DeleteAllMyRecords(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %d entries\n", n)
	return nil
}
