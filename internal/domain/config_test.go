package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOverridesApplyOnlySuppliedFields(t *testing.T) {
	model := "opus"
	base := RoleConfig{Model: "haiku", SkipPermissions: true, AllowedTools: []string{"Bash"}}

	got := RoleOverrides{Model: &model}.Apply(base)

	assert.Equal(t, RoleConfig{Model: "opus", SkipPermissions: true, AllowedTools: []string{"Bash"}}, got)
}

func TestRoleOverridesDistinguishFalseAndEmptyFromAbsent(t *testing.T) {
	skip := false
	empty := []string{}
	base := RoleConfig{SkipPermissions: true, AllowedTools: []string{"Bash"}, DisallowedTools: []string{"WebFetch"}}

	got := RoleOverrides{SkipPermissions: &skip, AllowedTools: &empty}.Apply(base)

	assert.False(t, got.SkipPermissions)
	assert.NotNil(t, got.AllowedTools)
	assert.Empty(t, got.AllowedTools)
	assert.Equal(t, []string{"WebFetch"}, got.DisallowedTools)
}

func TestConfigRoleAccessors(t *testing.T) {
	var cfg Config
	cfg.SetRole(RoleLeader, RoleConfig{Model: "sonnet"})

	assert.Equal(t, "sonnet", cfg.Role(RoleLeader).Model)
	assert.Equal(t, RoleConfig{}, cfg.Role(RoleManager))
	assert.Equal(t, RoleConfig{}, cfg.Role(Role("reviewer")))
}

func TestSplitToolListTrimsEachElement(t *testing.T) {
	assert.Equal(t, []string{"Bash(git:*)", "Edit", "Read"}, SplitToolList(" Bash(git:*) ,Edit,  Read "))
	assert.Equal(t, []string{""}, SplitToolList(""))
}
