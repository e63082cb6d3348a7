package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/selikem/ewehub/internal/session"
)

type fakeExec struct {
	role  session.Role
	calls []string
}

func (f *fakeExec) Role() session.Role { return f.role }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.role = session.RoleUser
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.role = session.RoleAnonymous
	return nil
}
func (f *fakeExec) Submit(ctx context.Context) error {
	f.calls = append(f.calls, "submit")
	return nil
}
func (f *fakeExec) ListMine(ctx context.Context) error {
	f.calls = append(f.calls, "list")
	return nil
}
func (f *fakeExec) Monthly(ctx context.Context) error {
	f.calls = append(f.calls, "monthly")
	return nil
}
func (f *fakeExec) DeleteOne(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) DeleteAll(ctx context.Context) error {
	f.calls = append(f.calls, "deleteall")
	return nil
}
func (f *fakeExec) ListUsers(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) ListRecords(ctx context.Context) error {
	f.calls = append(f.calls, "records")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) DeleteUser(ctx context.Context) error {
	f.calls = append(f.calls, "deluser")
	return nil
}
func (f *fakeExec) WipeUser(ctx context.Context) error {
	f.calls = append(f.calls, "wipeuser")
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_ContributorFlow(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"submit",
		"l",
		"monthly",
		"delete",
		"deleteall",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{role: session.RoleAnonymous}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	want := []string{"login", "submit", "list", "monthly", "delete", "deleteall", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, exec.calls[i], c, exec.calls)
		}
	}
}

func TestRunREPL_AdminCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("users\nrecords\nstats\ndeluser\nwipeuser\nquit\n")
	exec := &fakeExec{role: session.RoleAdmin}
	runREPL(context.Background(), exec, func() string { return "(admin)" }, bufio.NewReader(input))

	want := []string{"users", "records", "stats", "deluser", "wipeuser"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_UnknownAndBlankLinesIgnored(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n\nfoobar\n   \nexit\n")
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	if len(exec.calls) != 0 {
		t.Fatalf("no handlers should run, got %v", exec.calls)
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("register\n") // no exit, reader hits EOF
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(input))

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("got %v", exec.calls)
	}
}
