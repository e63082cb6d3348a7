package cli

import (
	"context"
	"fmt"
)

func (a *App) Submit(ctx context.Context) error {
	date, err := GetDate(a.reader, "Date", a.out)
	if err != nil {
		return err
	}
	source, err := GetSimpleText(a.reader, "Enter Ewe sentence", a.out)
	if err != nil {
		return err
	}
	target, err := GetSimpleText(a.reader, "Enter English translation", a.out)
	if err != nil {
		return err
	}

	if err := a.hub.SubmitRecord(ctx, date, source, target); err != nil {
		fmt.Fprintf(a.out, "Submit failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Data submitted")
	return nil
}
