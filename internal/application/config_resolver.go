package application

import (
	"context"
	"strings"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

type ConfigResolver struct {
	loader ports.ConfigLoader
}

func NewConfigResolver(loader ports.ConfigLoader) *ConfigResolver {
	return &ConfigResolver{loader: loader}
}

// Resolve loads the configuration at path, or starts from defaults when path
// is empty, then applies overrides field by field. Precedence is override,
// then file value, then default.
func (r *ConfigResolver) Resolve(ctx context.Context, path string, overrides domain.Overrides) (domain.Config, error) {
	var cfg domain.Config

	if strings.TrimSpace(path) != "" {
		loaded, err := r.loader.Load(ctx, path)
		if err != nil {
			return domain.Config{}, err
		}
		cfg = loaded
	}

	for _, role := range domain.Roles {
		override, ok := overrides[role]
		if !ok {
			continue
		}
		cfg.SetRole(role, override.Apply(cfg.Role(role)))
	}

	return cfg, nil
}
