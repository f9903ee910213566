package instructions

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/ccteam/internal/domain"
)

const messagesDirName = "messages"

// MessagesDir is where agents exchange message files.
func MessagesDir(workingDir string) string {
	return filepath.Join(workingDir, stateDirName, messagesDirName)
}

// DeleteMessage removes one processed message file. It reports false when
// the file was already gone. Names must be plain file names.
func DeleteMessage(workingDir, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return false, domain.NewValidationError(
			fmt.Sprintf("invalid message file name %q", name),
			"pass a file name inside "+filepath.Join(stateDirName, messagesDirName),
		)
	}

	dir := MessagesDir(workingDir)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return false, fmt.Errorf("create messages directory: %w", err)
	}

	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("delete message %s: %w", name, err)
	}

	return true, nil
}
