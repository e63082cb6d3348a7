package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Enter username/nickname", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	repeat, err := GetPassword("Repeat password", a.out)
	if err != nil {
		return err
	}

	if err := a.hub.Register(ctx, username, password, repeat, name); err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Registration successful, you can log in now")
	return nil
}
