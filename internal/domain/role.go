package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleManager Role = "manager"
	RoleLeader  Role = "leader"
	RoleWorker  Role = "worker"
)

// Roles lists every role in launch order. Pane indexes follow the same order.
var Roles = []Role{RoleManager, RoleLeader, RoleWorker}

func ParseRole(raw string) (Role, error) {
	switch role := Role(strings.ToLower(strings.TrimSpace(raw))); role {
	case RoleManager, RoleLeader, RoleWorker:
		return role, nil
	default:
		return "", NewValidationError(
			fmt.Sprintf("invalid role %q", raw),
			fmt.Sprintf("valid roles: %s", strings.Join(roleNames(), ", ")),
		)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleLeader, RoleWorker:
		return true
	default:
		return false
	}
}

func (r Role) PaneIndex() int {
	switch r {
	case RoleManager:
		return 0
	case RoleLeader:
		return 1
	case RoleWorker:
		return 2
	default:
		return -1
	}
}

// Title returns the role name with a leading capital, e.g. "Manager".
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}

func RoleForPane(index int) (Role, error) {
	for _, role := range Roles {
		if role.PaneIndex() == index {
			return role, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("pane %d is not bound to a role", index), "")
}

func roleNames() []string {
	names := make([]string, 0, len(Roles))
	for _, role := range Roles {
		names = append(names, string(role))
	}
	return names
}
