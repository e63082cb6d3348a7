// Package hub exposes the callable operation surface of the application:
// every operation the UI layer may invoke, gated by the session role.
// The UI (REPL, web form, anything) holds no business logic; it calls
// into Hub and renders the results.
package hub

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/selikem/ewehub/internal/common"
	"github.com/selikem/ewehub/internal/dataset"
	"github.com/selikem/ewehub/internal/logging"
	"github.com/selikem/ewehub/internal/session"
	"github.com/selikem/ewehub/internal/users"
)

// Hub owns the Session value and dispatches operations to the user
// directory and the dataset repository. One Hub serves one operator;
// there is no cross-session state.
//
// Errors returned by operations are user-surfaceable, never fatal.
// common.ErrStoreUnavailable passes through unchanged — no retry.
type Hub struct {
	sess    *session.Session
	auth    users.Authenticator
	users   *users.Directory
	records *dataset.Repository
	log     logging.Logger
}

func New(auth users.Authenticator, dir *users.Directory, repo *dataset.Repository, log logging.Logger) *Hub {
	return &Hub{
		sess:    session.New(),
		auth:    auth,
		users:   dir,
		records: repo,
		log:     log.With("session_id", uuid.NewString()),
	}
}

func (h *Hub) Role() session.Role { return h.sess.Role() }

func (h *Hub) Username() string { return h.sess.Username() }

// Register creates a user account. It never authenticates the session:
// after a successful registration the operator still has to log in.
func (h *Hub) Register(ctx context.Context, username, password, repeat, name string) error {
	if !h.sess.IsAnonymous() {
		return common.ErrAlreadyAuthenticated
	}
	if password != repeat {
		return common.ErrPasswordMismatch
	}
	if err := h.users.Register(ctx, username, password, name); err != nil {
		return err
	}
	h.log.Info(ctx, "user registered", "username", username)
	return nil
}

// Login authenticates and transitions the session to the resolved role.
func (h *Hub) Login(ctx context.Context, username, password string) (session.Role, error) {
	if !h.sess.IsAnonymous() {
		return session.RoleAnonymous, common.ErrAlreadyAuthenticated
	}

	role, err := h.auth.Authenticate(ctx, username, password)
	if err != nil {
		h.log.Warn(ctx, "login failed", "username", username)
		return session.RoleAnonymous, err
	}
	if err := h.sess.Begin(role, username); err != nil {
		return session.RoleAnonymous, err
	}
	h.log.Info(ctx, "login", "username", h.sess.Username(), "role", role.String())
	return role, nil
}

// Logout returns the session to Anonymous. Safe in any state.
func (h *Hub) Logout(ctx context.Context) {
	if !h.sess.IsAnonymous() {
		h.log.Info(ctx, "logout", "username", h.sess.Username())
	}
	h.sess.End()
}

// --- user-scoped operations ---

// SubmitRecord appends a record owned by the session user. Admins may
// contribute too.
func (h *Hub) SubmitRecord(ctx context.Context, date time.Time, source, target string) error {
	if h.sess.IsAnonymous() {
		return common.ErrUnauthorized
	}
	rec := dataset.Record{Date: date, Source: source, Target: target, Owner: h.sess.Username()}
	if err := h.records.Submit(ctx, rec); err != nil {
		return err
	}
	h.log.Info(ctx, "record submitted", "owner", rec.Owner, "date", date.Format(dataset.DateLayout))
	return nil
}

func (h *Hub) ListMyRecords(ctx context.Context) ([]dataset.Record, error) {
	owner, err := h.requireUser()
	if err != nil {
		return nil, err
	}
	return h.records.ListByOwner(ctx, owner)
}

// MyMonthlyStats buckets the session user's contributions by calendar
// month, ascending.
func (h *Hub) MyMonthlyStats(ctx context.Context) ([]dataset.MonthCount, error) {
	owner, err := h.requireUser()
	if err != nil {
		return nil, err
	}
	all, err := h.records.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.MonthlyContributionCounts(all, owner), nil
}

// DeleteMyRecord deletes the session user's record matching the
// selector. The owner field of the selector is forced to the session
// user, so one user cannot delete another's record by crafting input.
func (h *Hub) DeleteMyRecord(ctx context.Context, sel dataset.Record) error {
	owner, err := h.requireUser()
	if err != nil {
		return err
	}
	sel.Owner = owner
	if err := h.records.DeleteOne(ctx, sel); err != nil {
		return err
	}
	h.log.Info(ctx, "record deleted", "owner", owner)
	return nil
}

func (h *Hub) DeleteAllMyRecords(ctx context.Context) (int, error) {
	owner, err := h.requireUser()
	if err != nil {
		return 0, err
	}
	n, err := h.records.DeleteByOwner(ctx, owner)
	if err != nil {
		return n, err
	}
	h.log.Info(ctx, "all records deleted", "owner", owner, "count", n)
	return n, nil
}

// --- admin operations ---

func (h *Hub) ListAllUsers(ctx context.Context) ([]users.User, error) {
	if err := h.requireAdmin(); err != nil {
		return nil, err
	}
	return h.users.List(ctx)
}

func (h *Hub) ListAllRecords(ctx context.Context) ([]dataset.Record, error) {
	if err := h.requireAdmin(); err != nil {
		return nil, err
	}
	return h.records.ListAll(ctx)
}

// ContributionStats counts records per owner, descending by count.
func (h *Hub) ContributionStats(ctx context.Context) ([]dataset.OwnerCount, error) {
	if err := h.requireAdmin(); err != nil {
		return nil, err
	}
	all, err := h.records.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return dataset.ContributionCounts(all), nil
}

// DeleteUser removes the user row. The user's records are left in place;
// deletion does not cascade.
func (h *Hub) DeleteUser(ctx context.Context, username string) error {
	if err := h.requireAdmin(); err != nil {
		return err
	}
	if err := h.users.Delete(ctx, username); err != nil {
		return err
	}
	h.log.Info(ctx, "user deleted", "username", username)
	return nil
}

func (h *Hub) DeleteAllRecordsByUser(ctx context.Context, username string) (int, error) {
	if err := h.requireAdmin(); err != nil {
		return 0, err
	}
	n, err := h.records.DeleteByOwner(ctx, username)
	if err != nil {
		return n, err
	}
	h.log.Info(ctx, "records deleted by admin", "owner", username, "count", n)
	return n, nil
}

// --- gates ---

func (h *Hub) requireUser() (string, error) {
	if !h.sess.IsUser() {
		return "", fmt.Errorf("requires user role: %w", common.ErrUnauthorized)
	}
	return h.sess.Username(), nil
}

func (h *Hub) requireAdmin() error {
	if !h.sess.IsAdmin() {
		return fmt.Errorf("requires admin role: %w", common.ErrUnauthorized)
	}
	return nil
}
