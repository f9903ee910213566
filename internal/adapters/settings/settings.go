package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tomlrepo "github.com/bnema/ccteam/internal/adapters/repo/toml"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".ccteam"
	envPrefix  = "CCTEAM"

	AgentBinaryKey       = "agent.binary"
	MultiplexerBinaryKey = "multiplexer.binary"

	DefaultAgentBinary       = "claude"
	DefaultMultiplexerBinary = "tmux"
)

type Settings struct {
	SessionsPath      string
	AgentBinary       string
	MultiplexerBinary string
}

// Load reads ~/.ccteam/config.toml into cfg, layering CCTEAM_* environment
// variables on top. A missing file is fine; a malformed one is not.
func Load(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(tomlrepo.SessionsPathKey, filepath.Join(homeDir, configDir, "sessions"))
	cfg.SetDefault(AgentBinaryKey, DefaultAgentBinary)
	cfg.SetDefault(MultiplexerBinaryKey, DefaultMultiplexerBinary)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	s := Settings{
		SessionsPath:      cfg.GetString(tomlrepo.SessionsPathKey),
		AgentBinary:       strings.TrimSpace(cfg.GetString(AgentBinaryKey)),
		MultiplexerBinary: strings.TrimSpace(cfg.GetString(MultiplexerBinaryKey)),
	}
	if s.SessionsPath == "" {
		return Settings{}, errors.New("sessions path is empty")
	}
	if s.AgentBinary == "" {
		s.AgentBinary = DefaultAgentBinary
	}
	if s.MultiplexerBinary == "" {
		s.MultiplexerBinary = DefaultMultiplexerBinary
	}

	return s, nil
}
