// Package users owns credential lookup, registration and user deletion
// over the users table of the tabular store.
package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/selikem/ewehub/internal/common"
	"github.com/selikem/ewehub/internal/session"
	"github.com/selikem/ewehub/internal/tabular"
)

// Directory reads and mutates the users table. Every operation works on
// a fresh full read; row positions are never cached.
type Directory struct {
	store tabular.Store
}

func NewDirectory(store tabular.Store) *Directory {
	return &Directory{store: store}
}

// Register appends a new user row. Usernames are unique under case
// folding; a duplicate yields common.ErrAlreadyExists.
func (d *Directory) Register(ctx context.Context, username, password, name string) error {
	rows, err := d.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading users: %w", err)
	}

	folded := strings.ToLower(strings.TrimSpace(username))
	for _, row := range rows {
		if strings.ToLower(row[ColUsername]) == folded {
			return fmt.Errorf("username %q: %w", username, common.ErrAlreadyExists)
		}
	}

	row := tabular.Row{
		ColUsername: strings.TrimSpace(username),
		ColPassword: password,
		ColName:     name,
	}
	if err := d.store.Append(ctx, row); err != nil {
		return fmt.Errorf("appending user: %w", err)
	}
	return nil
}

// Authenticate matches the username case-insensitively and the password
// exactly against the table. A match yields RoleUser.
func (d *Directory) Authenticate(ctx context.Context, username, password string) (session.Role, error) {
	rows, err := d.store.ReadAll(ctx)
	if err != nil {
		return session.RoleAnonymous, fmt.Errorf("reading users: %w", err)
	}

	folded := strings.ToLower(strings.TrimSpace(username))
	for _, row := range rows {
		if strings.ToLower(row[ColUsername]) == folded && row[ColPassword] == password {
			return session.RoleUser, nil
		}
	}
	return session.RoleAnonymous, common.ErrInvalidCredentials
}

// List returns every user in table order.
func (d *Directory) List(ctx context.Context) ([]User, error) {
	rows, err := d.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading users: %w", err)
	}

	list := make([]User, 0, len(rows))
	for _, row := range rows {
		list = append(list, User{
			Username: row[ColUsername],
			Password: row[ColPassword],
			Name:     row[ColName],
		})
	}
	return list, nil
}

// Delete removes the first row matching the username (case-insensitive)
// and only that row, even if duplicates exist — the table's identity key
// is the folded username, so one match is the contract.
//
// The table is re-read immediately before the position is computed; a
// user's records are NOT cascade-deleted.
func (d *Directory) Delete(ctx context.Context, username string) error {
	rows, err := d.store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading users: %w", err)
	}

	folded := strings.ToLower(strings.TrimSpace(username))
	for i, row := range rows {
		if strings.ToLower(row[ColUsername]) == folded {
			if err := d.store.DeleteAt(ctx, i+1); err != nil {
				return fmt.Errorf("deleting user row: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
}
