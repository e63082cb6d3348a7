package cli

import (
	"context"
	"fmt"

	"github.com/selikem/ewehub/internal/dataset"
)

func formatRecord(rec dataset.Record) string {
	date := "????-??-??"
	if !rec.Date.IsZero() {
		date = rec.Date.Format(dataset.DateLayout)
	}
	return fmt.Sprintf("%s | %s -> %s", date, rec.Source, rec.Target)
}

func (a *App) ListMine(ctx context.Context) error {
	recs, err := a.hub.ListMyRecords(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(a.out, "You have not contributed any entries yet")
		return nil
	}
	for i, rec := range recs {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, formatRecord(rec))
	}
	return nil
}

func (a *App) Monthly(ctx context.Context) error {
	counts, err := a.hub.MyMonthlyStats(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	if len(counts) == 0 {
		fmt.Fprintln(a.out, "No contributions yet")
		return nil
	}
	fmt.Fprintln(a.out, "Your monthly contributions:")
	for _, mc := range counts {
		fmt.Fprintf(a.out, "  %s  %d\n", mc.Month, mc.Count)
	}
	return nil
}
