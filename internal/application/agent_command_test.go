package application

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCommand(t *testing.T) {
	tests := []struct {
		name string
		rc   domain.RoleConfig
		want []string
	}{
		{
			name: "defaults emit only the program",
			want: []string{"claude"},
		},
		{
			name: "model",
			rc:   domain.RoleConfig{Model: "sonnet"},
			want: []string{"claude", "--model", `"sonnet"`},
		},
		{
			name: "skip permissions",
			rc:   domain.RoleConfig{SkipPermissions: true},
			want: []string{"claude", "--skip-permissions"},
		},
		{
			name: "all flags in fixed order",
			rc: domain.RoleConfig{
				Model:           "opus",
				SkipPermissions: true,
				AllowedTools:    []string{"Bash", "Edit"},
				DisallowedTools: []string{"WebFetch"},
			},
			want: []string{
				"claude",
				"--model", `"opus"`,
				"--skip-permissions",
				"--allowedTools", `"Bash,Edit"`,
				"--disallowedTools", `"WebFetch"`,
			},
		},
		{
			name: "explicit empty tool lists emit nothing",
			rc:   domain.RoleConfig{AllowedTools: []string{}, DisallowedTools: []string{}},
			want: []string{"claude"},
		},
		{
			name: "tool names with shell metacharacters stay one value",
			rc:   domain.RoleConfig{AllowedTools: []string{`Bash(git "log")`, "Read"}},
			want: []string{"claude", "--allowedTools", `"Bash(git \"log\"),Read"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgentCommand("claude", tt.rc))
		})
	}
}

func TestAgentCommandUsesGivenProgram(t *testing.T) {
	got := AgentCommand("/opt/bin/claude", domain.RoleConfig{Model: "haiku"})
	assert.Equal(t, "/opt/bin/claude", got[0])
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: `""`},
		{in: "plain", want: `"plain"`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: `C:\tools`, want: `"C:\\tools"`},
		{in: "a\tb", want: `"a\tb"`},
		{in: "line\nbreak\r", want: `"line\nbreak\r"`},
		{in: "\x00", want: `"\u0000"`},
		{in: "\x1b[0m", want: `"\u001b[0m"`},
		{in: "<&>", want: `"<&>"`},
		{in: "日本語 ✓", want: `"日本語 ✓"`},
		{in: "$(rm -rf /); `id`", want: "\"$(rm -rf /); `id`\""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), "input %q", tt.in)
	}
}

func TestQuoteMatchesJSONEncoder(t *testing.T) {
	inputs := []string{
		"claude-opus-4",
		"tab\there",
		"bell\a and backspace\b and feed\f",
		`nested "quotes" and \slashes\`,
		"mixed ünïcödé 🚀 text",
		"\x01\x02\x1f\x7f",
	}

	for _, in := range inputs {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		require.NoError(t, enc.Encode(in))

		assert.Equal(t, strings.TrimSuffix(buf.String(), "\n"), Quote(in), "input %q", in)
	}
}
