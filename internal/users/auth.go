package users

import (
	"context"
	"errors"
	"strings"

	"github.com/selikem/ewehub/internal/common"
	"github.com/selikem/ewehub/internal/session"
)

// Authenticator resolves a credential pair to a role. Implementations
// return common.ErrInvalidCredentials when the pair is not theirs to
// accept; any other error aborts the chain.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (session.Role, error)
}

// BootstrapAdmin grants RoleAdmin for the configuration-supplied admin
// credential pair. The pair lives outside the users table, so the admin
// can always log in even on an empty deployment.
type BootstrapAdmin struct {
	Username string
	Password string
}

func (b BootstrapAdmin) Authenticate(ctx context.Context, username, password string) (session.Role, error) {
	if strings.EqualFold(strings.TrimSpace(username), b.Username) && password == b.Password {
		return session.RoleAdmin, nil
	}
	return session.RoleAnonymous, common.ErrInvalidCredentials
}

// Chain tries each authenticator in order and returns the first accepted
// role. Order matters: putting BootstrapAdmin first short-circuits the
// table scan for the admin pair.
type Chain []Authenticator

func (c Chain) Authenticate(ctx context.Context, username, password string) (session.Role, error) {
	for _, a := range c {
		role, err := a.Authenticate(ctx, username, password)
		if err == nil {
			return role, nil
		}
		if !errors.Is(err, common.ErrInvalidCredentials) {
			return session.RoleAnonymous, err
		}
	}
	return session.RoleAnonymous, common.ErrInvalidCredentials
}
