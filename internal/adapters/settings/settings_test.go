package settings

import (
	"os"
	"path/filepath"
	"testing"

	tomlrepo "github.com/bnema/ccteam/internal/adapters/repo/toml"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Settings{
		SessionsPath:      filepath.Join(home, ".ccteam", "sessions"),
		AgentBinary:       "claude",
		MultiplexerBinary: "tmux",
	}, s)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ccteam"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ccteam", "config.toml"), []byte(`
[sessions]
path = "/var/lib/ccteam"

[agent]
binary = "claude-beta"
`), 0o600))

	cfg := viper.New()
	s, err := Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ccteam", s.SessionsPath)
	assert.Equal(t, "claude-beta", s.AgentBinary)
	assert.Equal(t, "tmux", s.MultiplexerBinary)

	repo, err := tomlrepo.NewSessionRepository(cfg)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ccteam", repo.Dir())
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CCTEAM_MULTIPLEXER_BINARY", "/opt/tmux")
	t.Setenv("CCTEAM_SESSIONS_PATH", filepath.Join(home, "state"))

	s, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/opt/tmux", s.MultiplexerBinary)
	assert.Equal(t, filepath.Join(home, "state"), s.SessionsPath)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".ccteam"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".ccteam", "config.toml"), []byte("[agent\nbinary ="), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
