package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username/nickname", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	role, err := a.hub.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s! (%s)\n", a.hub.Username(), role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.hub.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
