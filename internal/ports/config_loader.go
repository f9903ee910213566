package ports

import (
	"context"

	"github.com/bnema/ccteam/internal/domain"
)

type ConfigLoader interface {
	Load(ctx context.Context, path string) (domain.Config, error)
}

type InstructionWriter interface {
	// Write stores the role instruction documents for a session and returns
	// each document's path relative to workingDir.
	Write(ctx context.Context, workingDir string, session domain.SessionName) (map[domain.Role]string, error)
}
