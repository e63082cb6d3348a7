// Package session holds the per-operator authentication state machine.
//
// A Session is an explicit value owned by the operation dispatcher — not
// a process-wide singleton. It is single-session by design: there are no
// tokens, no expiry and no concurrent-session tracking, because exactly
// one operator drives one session at a time.
package session

import (
	"errors"
	"strings"

	"github.com/selikem/ewehub/internal/common"
)

// Role is the authorization level of a session.
type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Session tracks who is driving the current process.
//
// Transitions:
//
//	Anonymous --Begin(RoleUser|RoleAdmin)--> authenticated
//	authenticated --End--> Anonymous
//
// There is no direct transition between user and admin; switching roles
// requires End then Begin. Registration never calls Begin.
type Session struct {
	role     Role
	username string
}

func New() *Session {
	return &Session{role: RoleAnonymous}
}

// Begin moves the session from Anonymous to the given role. The username
// is folded to lower case — the identity key of a user is the lower-cased
// username. Calling Begin on an authenticated session is an error.
func (s *Session) Begin(role Role, username string) error {
	if role == RoleAnonymous {
		return errors.New("cannot begin an anonymous session")
	}
	if s.role != RoleAnonymous {
		return common.ErrAlreadyAuthenticated
	}
	s.role = role
	s.username = strings.ToLower(strings.TrimSpace(username))
	return nil
}

// End resets the session to Anonymous. Safe to call in any state.
func (s *Session) End() {
	s.role = RoleAnonymous
	s.username = ""
}

func (s *Session) Role() Role { return s.role }

// Username returns the folded username; empty iff the session is anonymous.
func (s *Session) Username() string { return s.username }

func (s *Session) IsAnonymous() bool { return s.role == RoleAnonymous }
func (s *Session) IsUser() bool      { return s.role == RoleUser }
func (s *Session) IsAdmin() bool     { return s.role == RoleAdmin }
