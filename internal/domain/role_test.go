package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolePaneIndexIsFixed(t *testing.T) {
	tests := []struct {
		role Role
		want int
	}{
		{role: RoleManager, want: 0},
		{role: RoleLeader, want: 1},
		{role: RoleWorker, want: 2},
		{role: Role("reviewer"), want: -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.PaneIndex())
		})
	}
}

func TestPaneAddressIndependentOfSessionName(t *testing.T) {
	assert.Equal(t, "ccteam-abcde:0.0", PaneAddress("ccteam-abcde", RoleManager))
	assert.Equal(t, "ccteam-ZZ999:0.1", PaneAddress("ccteam-ZZ999", RoleLeader))
	assert.Equal(t, "other:0.2", PaneAddress("other", RoleWorker))
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" Leader ")
	require.NoError(t, err)
	assert.Equal(t, RoleLeader, role)

	_, err = ParseRole("reviewer")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), `invalid role "reviewer"`)
	assert.Equal(t, "valid roles: manager, leader, worker", Details(err))
}

func TestRoleForPane(t *testing.T) {
	role, err := RoleForPane(2)
	require.NoError(t, err)
	assert.Equal(t, RoleWorker, role)

	_, err = RoleForPane(3)
	require.Error(t, err)
}

func TestRoleTitle(t *testing.T) {
	assert.Equal(t, "Manager", RoleManager.Title())
	assert.Equal(t, "", Role("").Title())
}

func TestErrorKindMatching(t *testing.T) {
	err := NewNotFoundError("ccteam-abcde", ErrSessionNotFound)

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, ErrSessionNotFound))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "ccteam-abcde: session not found", err.Error())
}
