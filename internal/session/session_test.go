package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/selikem/ewehub/internal/common"
)

func TestSession_StartsAnonymous(t *testing.T) {
	s := New()
	require.True(t, s.IsAnonymous())
	require.Equal(t, RoleAnonymous, s.Role())
	require.Empty(t, s.Username())
}

func TestSession_BeginFoldsUsername(t *testing.T) {
	s := New()
	require.NoError(t, s.Begin(RoleUser, "  AMA "))
	require.True(t, s.IsUser())
	require.Equal(t, "ama", s.Username())
}

func TestSession_NoRoleSwitchWithoutEnd(t *testing.T) {
	s := New()
	require.NoError(t, s.Begin(RoleUser, "ama"))

	err := s.Begin(RoleAdmin, "admin")
	require.ErrorIs(t, err, common.ErrAlreadyAuthenticated)
	require.True(t, s.IsUser(), "failed Begin must not change state")

	s.End()
	require.NoError(t, s.Begin(RoleAdmin, "admin"))
	require.True(t, s.IsAdmin())
}

func TestSession_EndResetsToAnonymous(t *testing.T) {
	s := New()
	require.NoError(t, s.Begin(RoleAdmin, "admin"))

	s.End()
	require.True(t, s.IsAnonymous())
	require.Empty(t, s.Username())

	s.End() // idempotent
	require.True(t, s.IsAnonymous())
}

func TestSession_BeginAnonymousRejected(t *testing.T) {
	s := New()
	require.Error(t, s.Begin(RoleAnonymous, "x"))
	require.True(t, s.IsAnonymous())
}

func TestRole_String(t *testing.T) {
	require.Equal(t, "anonymous", RoleAnonymous.String())
	require.Equal(t, "user", RoleUser.String())
	require.Equal(t, "admin", RoleAdmin.String())
}
