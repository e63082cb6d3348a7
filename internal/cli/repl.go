package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/selikem/ewehub/internal/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	Role() session.Role
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Submit(ctx context.Context) error
	ListMine(ctx context.Context) error
	Monthly(ctx context.Context) error
	DeleteOne(ctx context.Context) error
	DeleteAll(ctx context.Context) error
	ListUsers(ctx context.Context) error
	ListRecords(ctx context.Context) error
	Stats(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	WipeUser(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands by state:
//
//	Anonymous:
//	  - help | register | login | exit | quit
//	User:
//	  - submit          — add a sentence pair
//	  - (l)ist          — list own records
//	  - monthly         — own contribution counts per month
//	  - delete          — delete one own record
//	  - deleteall       — delete all own records
//	  - logout | exit
//	Admin:
//	  - users | records | stats
//	  - deluser         — delete a user (records stay)
//	  - wipeuser        — delete all records by a user
//	  - logout | exit
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
//
// The loop reads from the same *bufio.Reader the prompt helpers use, so
// buffered read-ahead cannot strand input in a second reader over the
// same descriptor.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("hub> %s ", statusFn()))
		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch a.Role() {
			case session.RoleAdmin:
				printlnFn("Available commands: users, records, stats, deluser, wipeuser, submit, logout, exit")
			case session.RoleUser:
				printlnFn("Available commands: submit, (l)ist, monthly, delete, deleteall, logout, exit")
			default:
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "l", "list":
			_ = a.ListMine(ctx)

		case "monthly":
			_ = a.Monthly(ctx)

		case "delete":
			_ = a.DeleteOne(ctx)

		case "deleteall":
			_ = a.DeleteAll(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "records":
			_ = a.ListRecords(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "wipeuser":
			_ = a.WipeUser(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}
