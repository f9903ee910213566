package application

import (
	"fmt"
	"strings"

	"github.com/bnema/ccteam/internal/domain"
)

const skipPermissionsFlag = "--skip-permissions"

// AgentCommand builds the launch command for one role. Values are quoted so
// the joined command can be typed into a pane as a single line.
func AgentCommand(program string, rc domain.RoleConfig) []string {
	command := []string{program}

	if rc.Model != "" {
		command = append(command, "--model", Quote(rc.Model))
	}
	if rc.SkipPermissions {
		command = append(command, skipPermissionsFlag)
	}
	if len(rc.AllowedTools) > 0 {
		command = append(command, "--allowedTools", Quote(strings.Join(rc.AllowedTools, ",")))
	}
	if len(rc.DisallowedTools) > 0 {
		command = append(command, "--disallowedTools", Quote(strings.Join(rc.DisallowedTools, ",")))
	}

	return command
}

// Quote renders s as a JSON string literal without HTML escaping: quotes and
// backslashes are escaped, control characters use their short or \u00XX
// form, invalid UTF-8 becomes U+FFFD, and everything else passes through
// unchanged.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}

	b.WriteByte('"')
	return b.String()
}
