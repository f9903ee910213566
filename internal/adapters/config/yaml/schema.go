package yaml

import (
	"fmt"
	"strings"

	"github.com/bnema/ccteam/internal/domain"
	yaml "gopkg.in/yaml.v3"
)

type fileSchema struct {
	Roles rolesSchema `yaml:"roles"`
}

type rolesSchema struct {
	Manager *roleSchema `yaml:"manager"`
	Leader  *roleSchema `yaml:"leader"`
	Worker  *roleSchema `yaml:"worker"`
}

type roleSchema struct {
	Model           *string   `yaml:"model"`
	SkipPermissions *bool     `yaml:"skipPermissions"`
	AllowedTools    *[]string `yaml:"allowedTools"`
	DisallowedTools *[]string `yaml:"disallowedTools"`
}

// SchemaError lists every shape violation found in a configuration document.
type SchemaError struct {
	Path       string
	Violations []string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid configuration %s", e.Path)
	for _, violation := range e.Violations {
		b.WriteString("\n  ")
		b.WriteString(violation)
	}
	return b.String()
}

func (s fileSchema) toDomain() domain.Config {
	return domain.Config{
		Manager: s.Roles.Manager.toDomain(),
		Leader:  s.Roles.Leader.toDomain(),
		Worker:  s.Roles.Worker.toDomain(),
	}
}

func (s *roleSchema) toDomain() domain.RoleConfig {
	if s == nil {
		return domain.RoleConfig{}
	}

	rc := domain.RoleConfig{}
	if s.Model != nil {
		rc.Model = *s.Model
	}
	if s.SkipPermissions != nil {
		rc.SkipPermissions = *s.SkipPermissions
	}
	if s.AllowedTools != nil {
		rc.AllowedTools = append([]string{}, (*s.AllowedTools)...)
	}
	if s.DisallowedTools != nil {
		rc.DisallowedTools = append([]string{}, (*s.DisallowedTools)...)
	}
	return rc
}

// validate walks the raw document so that type mismatches are reported per
// field instead of stopping at the decoder's first complaint. Unknown keys
// are ignored and null counts as absent.
func validate(doc *yaml.Node) []string {
	root := doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || root.Kind == yaml.DocumentNode || isNull(root) {
		return []string{"roles: required"}
	}
	if root.Kind != yaml.MappingNode {
		return []string{fmt.Sprintf("(root): expected mapping, got %s", describe(root))}
	}

	roles := lookup(root, "roles")
	if roles == nil {
		return []string{"roles: required"}
	}
	if roles.Kind != yaml.MappingNode {
		return []string{fmt.Sprintf("roles: expected mapping, got %s", describe(roles))}
	}

	var violations []string
	for _, role := range domain.Roles {
		node := lookup(roles, string(role))
		if node == nil || isNull(node) {
			continue
		}
		path := "roles." + string(role)
		if node.Kind != yaml.MappingNode {
			violations = append(violations, fmt.Sprintf("%s: expected mapping, got %s", path, describe(node)))
			continue
		}
		violations = append(violations, validateRole(path, node)...)
	}

	return violations
}

func validateRole(path string, node *yaml.Node) []string {
	var violations []string

	if model := lookup(node, "model"); model != nil && !isNull(model) && !isScalar(model, "!!str") {
		violations = append(violations, fmt.Sprintf("%s.model: expected string, got %s", path, describe(model)))
	}
	if skip := lookup(node, "skipPermissions"); skip != nil && !isNull(skip) && !isScalar(skip, "!!bool") {
		violations = append(violations, fmt.Sprintf("%s.skipPermissions: expected boolean, got %s", path, describe(skip)))
	}
	for _, key := range []string{"allowedTools", "disallowedTools"} {
		list := lookup(node, key)
		if list == nil || isNull(list) {
			continue
		}
		if list.Kind != yaml.SequenceNode {
			violations = append(violations, fmt.Sprintf("%s.%s: expected list of strings, got %s", path, key, describe(list)))
			continue
		}
		for i, item := range list.Content {
			if !isScalar(item, "!!str") {
				violations = append(violations, fmt.Sprintf("%s.%s[%d]: expected string, got %s", path, key, i, describe(item)))
			}
		}
	}

	return violations
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return resolveAlias(mapping.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}

func isScalar(node *yaml.Node, tag string) bool {
	node = resolveAlias(node)
	return node != nil && node.Kind == yaml.ScalarNode && node.ShortTag() == tag
}

func describe(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!str":
			return "string"
		case "!!int", "!!float":
			return "number"
		case "!!bool":
			return "boolean"
		case "!!null":
			return "null"
		default:
			return strings.TrimPrefix(node.ShortTag(), "!!")
		}
	default:
		return "unknown"
	}
}
