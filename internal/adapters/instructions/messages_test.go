package instructions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteMessageRemovesFile(t *testing.T) {
	wd := t.TempDir()
	dir := MessagesDir(wd)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "task-001.md"), []byte("done"), 0o644))

	deleted, err := DeleteMessage(wd, "task-001.md")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoFileExists(t, filepath.Join(dir, "task-001.md"))
}

func TestDeleteMessageAlreadyGone(t *testing.T) {
	wd := t.TempDir()

	deleted, err := DeleteMessage(wd, "task-002.md")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.DirExists(t, MessagesDir(wd))
}

func TestDeleteMessageRejectsPaths(t *testing.T) {
	wd := t.TempDir()
	outside := filepath.Join(wd, "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	for _, name := range []string{"", "..", "../../keep.txt", "nested/file.md", `..\keep.txt`} {
		_, err := DeleteMessage(wd, name)
		require.Error(t, err, "name %q", name)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	assert.FileExists(t, outside)
}
