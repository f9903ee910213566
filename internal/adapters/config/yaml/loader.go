package yaml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultFileName = "ccteam.yml"

	templateFileMode = 0o644
	templateDirMode  = 0o755
)

type Loader struct{}

var _ ports.ConfigLoader = Loader{}

func NewLoader() Loader {
	return Loader{}
}

// Load reads and validates a role configuration document. Fields missing from
// the document keep their zero value; skipPermissions defaults to false.
func (Loader) Load(ctx context.Context, path string) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	resolved, err := filepath.Abs(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("resolve configuration path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Config{}, &domain.Error{
				Kind:    domain.KindNotFound,
				Message: fmt.Sprintf("configuration file not found: %s", resolved),
				Details: "run `ccteam init` to create one",
			}
		}
		return domain.Config{}, fmt.Errorf("read configuration file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Config{}, &domain.Error{
			Kind:    domain.KindValidation,
			Message: fmt.Sprintf("parse configuration file %s", resolved),
			Err:     err,
		}
	}

	if violations := validate(&doc); len(violations) > 0 {
		return domain.Config{}, &domain.Error{
			Kind:    domain.KindValidation,
			Message: "configuration schema mismatch",
			Err:     &SchemaError{Path: resolved, Violations: violations},
		}
	}

	var file fileSchema
	if err := doc.Decode(&file); err != nil {
		return domain.Config{}, &domain.Error{
			Kind:    domain.KindValidation,
			Message: fmt.Sprintf("decode configuration file %s", resolved),
			Err:     err,
		}
	}

	return file.toDomain(), nil
}

// WriteTemplate creates a commented configuration file at path. It refuses
// to overwrite an existing file.
func WriteTemplate(path string) (string, error) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve configuration path: %w", err)
	}

	if _, err := os.Stat(resolved); err == nil {
		return "", domain.NewValidationError(fmt.Sprintf("configuration file already exists: %s", resolved), "")
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat configuration file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), templateDirMode); err != nil {
		return "", fmt.Errorf("create configuration directory: %w", err)
	}

	if err := os.WriteFile(resolved, []byte(template), templateFileMode); err != nil {
		return "", fmt.Errorf("write configuration file: %w", err)
	}

	return resolved, nil
}

const template = `# ccteam configuration file

roles:
  # Manager role configuration
  # The Manager receives user requests, decomposes tasks, and coordinates with the Leader
  manager:
    # Claude model to use for this role (optional)
    # e.g. "opus", "sonnet", "claude-sonnet-4-20250514"
    model: ""

    # Skip permission prompts when using Claude Code (default: false)
    # Set to true to automatically accept all tool usage permissions
    skipPermissions: false

    # Tools the agent may use without asking (optional)
    # allowedTools:
    #   - "Bash(git:*)"
    #   - "Edit"

    # Tools the agent must never use (optional)
    # disallowedTools:
    #   - "WebFetch"

  # Leader role configuration
  # The Leader reviews the Manager's tasks, writes implementation specs, and reviews the Worker's output
  leader:
    model: ""
    skipPermissions: false

  # Worker role configuration
  # The Worker implements code based on the Leader's specifications
  worker:
    model: ""
    skipPermissions: false
`
