package instructions

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

const (
	stateDirName = ".ccteam"
	docsDirName  = "instructions"
	fileMode     = 0o644
	dirMode      = 0o755
)

//go:embed docs/*.md
var docs embed.FS

type Writer struct{}

var _ ports.InstructionWriter = Writer{}

func NewWriter() Writer {
	return Writer{}
}

// SessionDir is the per-session state directory inside workingDir.
func SessionDir(workingDir string, session domain.SessionName) string {
	return filepath.Join(workingDir, stateDirName, string(session))
}

// RelativePath is the instruction document path relative to the working
// directory, in the form agents reference it with "@".
func RelativePath(session domain.SessionName, role domain.Role) string {
	return filepath.ToSlash(filepath.Join(stateDirName, string(session), docsDirName, string(role)+".md"))
}

func (Writer) Write(ctx context.Context, workingDir string, session domain.SessionName) (map[domain.Role]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(SessionDir(workingDir, session), docsDirName)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create instructions directory: %w", err)
	}

	paths := make(map[domain.Role]string, len(domain.Roles))
	for _, role := range domain.Roles {
		content, err := Content(role)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(dir, string(role)+".md")
		if err := os.WriteFile(target, content, fileMode); err != nil {
			return nil, fmt.Errorf("write %s instructions: %w", role, err)
		}
		paths[role] = RelativePath(session, role)
	}

	return paths, nil
}

func Content(role domain.Role) ([]byte, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("no instructions for role %q", role)
	}

	content, err := docs.ReadFile("docs/" + string(role) + ".md")
	if err != nil {
		return nil, fmt.Errorf("read bundled %s instructions: %w", role, err)
	}
	return content, nil
}
