package domain

import "strings"

// RoleConfig holds the agent launch parameters for one role. A nil tool list
// means the field was absent; a non-nil empty list was given explicitly.
// Both emit no flag.
type RoleConfig struct {
	Model           string
	SkipPermissions bool
	AllowedTools    []string
	DisallowedTools []string
}

type Config struct {
	Manager RoleConfig
	Leader  RoleConfig
	Worker  RoleConfig
}

func (c Config) Role(role Role) RoleConfig {
	switch role {
	case RoleManager:
		return c.Manager
	case RoleLeader:
		return c.Leader
	case RoleWorker:
		return c.Worker
	default:
		return RoleConfig{}
	}
}

func (c *Config) SetRole(role Role, rc RoleConfig) {
	switch role {
	case RoleManager:
		c.Manager = rc
	case RoleLeader:
		c.Leader = rc
	case RoleWorker:
		c.Worker = rc
	}
}

// RoleOverrides carries explicitly supplied values; nil means not supplied.
type RoleOverrides struct {
	Model           *string
	SkipPermissions *bool
	AllowedTools    *[]string
	DisallowedTools *[]string
}

func (o RoleOverrides) Apply(rc RoleConfig) RoleConfig {
	if o.Model != nil {
		rc.Model = *o.Model
	}
	if o.SkipPermissions != nil {
		rc.SkipPermissions = *o.SkipPermissions
	}
	if o.AllowedTools != nil {
		rc.AllowedTools = append([]string{}, (*o.AllowedTools)...)
	}
	if o.DisallowedTools != nil {
		rc.DisallowedTools = append([]string{}, (*o.DisallowedTools)...)
	}
	return rc
}

type Overrides map[Role]RoleOverrides

// SplitToolList splits a comma-delimited tool list and trims each element.
func SplitToolList(raw string) []string {
	parts := strings.Split(raw, ",")
	tools := make([]string, 0, len(parts))
	for _, part := range parts {
		tools = append(tools, strings.TrimSpace(part))
	}
	return tools
}
