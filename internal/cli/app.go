// Package cli is the terminal front end of the hub: a read–eval–print
// loop that maps commands onto hub operations. It holds no business
// logic of its own.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/selikem/ewehub/internal/config"
	"github.com/selikem/ewehub/internal/dataset"
	"github.com/selikem/ewehub/internal/hub"
	"github.com/selikem/ewehub/internal/logging"
	"github.com/selikem/ewehub/internal/session"
	"github.com/selikem/ewehub/internal/tabular"
	"github.com/selikem/ewehub/internal/users"
)

type App struct {
	hub    *hub.Hub
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the full stack: Sheets client, the two tables, directory,
// repository, authenticator chain, hub.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	svc, err := tabular.NewService(ctx, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	usersTable, err := tabular.NewSheetsTable(ctx, svc, cfg.SpreadsheetID, cfg.UsersSheet, users.Columns)
	if err != nil {
		return nil, err
	}
	datasetTable, err := tabular.NewSheetsTable(ctx, svc, cfg.SpreadsheetID, cfg.DatasetSheet, dataset.Columns)
	if err != nil {
		return nil, err
	}

	dir := users.NewDirectory(usersTable)
	repo := dataset.NewRepository(datasetTable)
	auth := users.Chain{
		users.BootstrapAdmin{Username: cfg.AdminUsername, Password: cfg.AdminPassword},
		dir,
	}

	return newAppWithHub(hub.New(auth, dir, repo, log)), nil
}

func newAppWithHub(h *hub.Hub) *App {
	return &App{
		hub:    h,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to the Ewe Dataset Hub (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Role() session.Role { return a.hub.Role() }

func (a *App) status() string {
	if a.hub.Role() == session.RoleAnonymous {
		return ""
	}
	return "(" + a.hub.Username() + " " + a.hub.Role().String() + ")"
}
