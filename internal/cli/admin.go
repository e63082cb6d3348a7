package cli

import (
	"context"
	"fmt"
)

func (a *App) ListUsers(ctx context.Context) error {
	list, err := a.hub.ListAllUsers(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	for _, u := range list {
		fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.Name)
	}
	fmt.Fprintf(a.out, "%d users\n", len(list))
	return nil
}

func (a *App) ListRecords(ctx context.Context) error {
	recs, err := a.hub.ListAllRecords(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(a.out, "%-12s %s\n", rec.Owner, formatRecord(rec))
	}
	fmt.Fprintf(a.out, "%d records\n", len(recs))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.hub.ContributionStats(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Contributions per user:")
	for _, oc := range stats {
		fmt.Fprintf(a.out, "  %-12s %d\n", oc.Owner, oc.Count)
	}
	return nil
}

func (a *App) DeleteUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username to delete", a.out)
	if err != nil {
		return err
	}

	// Records stay; user deletion does not cascade.
	if err := a.hub.DeleteUser(ctx, username); err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "User %q deleted\n", username)
	return nil
}

func (a *App) WipeUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Delete all contributions of which user?", a.out)
	if err != nil {
		return err
	}

	n, err := a.hub.DeleteAllRecordsByUser(ctx, username)
	if err != nil {
		fmt.Fprintf(a.out, "Delete failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted %d entries by %q\n", n, username)
	return nil
}
