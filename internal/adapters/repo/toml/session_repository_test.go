package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*SessionRepository, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "sessions")
	config := viper.New()
	config.Set(SessionsPathKey, dir)

	repo, err := NewSessionRepository(config)
	require.NoError(t, err)
	return repo, dir
}

func sampleRecord(name string) domain.SessionRecord {
	return domain.SessionRecord{
		Name:             domain.SessionName(name),
		StartedAt:        time.Date(2026, 2, 14, 11, 30, 15, 123_000_000, time.UTC),
		WorkingDirectory: "/home/dev/project",
	}
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, dir := newTestRepository(t)
	first := sampleRecord("ccteam-aaaaa")
	second := sampleRecord("ccteam-bbbbb")
	second.WorkingDirectory = "/tmp/other"

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.SessionRecord{first, second}, records)

	data, err := os.ReadFile(filepath.Join(dir, "ccteam-aaaaa.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "started_at = '2026-02-14T11:30:15.123Z'")
	assert.Contains(t, string(data), "session_name = 'ccteam-aaaaa'")
}

func TestSessionRepositoryListWithoutDirectoryIsEmpty(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	names, err := repo.Names(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSessionRepositoryDeleteIsNoOpWhenAbsent(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	require.NoError(t, repo.Delete(context.Background(), "ccteam-zzzzz"))

	require.NoError(t, repo.Save(context.Background(), sampleRecord("ccteam-zzzzz")))
	require.NoError(t, repo.Delete(context.Background(), "ccteam-zzzzz"))

	names, err := repo.Names(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSessionRepositoryListDropsCorruptRecords(t *testing.T) {
	t.Parallel()

	repo, dir := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), sampleRecord("ccteam-good1")))

	corrupt := map[string]string{
		"ccteam-bad01.toml": "this is = = not toml",
		"ccteam-bad02.toml": strings.Join([]string{
			"version = 1",
			"session_name = 'ccteam-bad02'",
			"started_at = 'yesterday'",
			"working_directory = '/tmp'",
		}, "\n"),
		"ccteam-bad03.toml": "version = 1\nsession_name = 'ccteam-bad03'\nstarted_at = '2026-02-14T11:30:15.123Z'\n",
		"ccteam-bad04.toml": "version = 1\nsession_name = 'ccteam-other'\nstarted_at = '2026-02-14T11:30:15.123Z'\nworking_directory = '/tmp'\n",
		"ccteam-bad05.toml": "version = 9\nsession_name = 'ccteam-bad05'\nstarted_at = '2026-02-14T11:30:15.123Z'\nworking_directory = '/tmp'\n",
	}
	for name, content := range corrupt {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.SessionName("ccteam-good1"), records[0].Name)

	for name := range corrupt {
		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(statErr), "expected %s to be removed", name)
	}
}

func TestSessionRepositoryNamesIgnoresForeignFiles(t *testing.T) {
	t.Parallel()

	repo, dir := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), sampleRecord("ccteam-bbbbb")))
	require.NoError(t, repo.Save(context.Background(), sampleRecord("ccteam-aaaaa")))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".session-123.toml.tmp"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.toml"), 0o700))

	names, err := repo.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionName{"ccteam-aaaaa", "ccteam-bbbbb"}, names)
}

func TestSessionRepositoryRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	record := sampleRecord("../escape")

	err := repo.Save(context.Background(), record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session name")

	require.Error(t, repo.Delete(context.Background(), "a/b"))
}

func TestSessionRepositorySaveRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	record := sampleRecord("ccteam-aaaaa")
	record.WorkingDirectory = ""

	err := repo.Save(context.Background(), record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "working directory is required")
}

func TestSessionRepositoryWritesPrivateFiles(t *testing.T) {
	t.Parallel()

	repo, dir := newTestRepository(t)
	require.NoError(t, repo.Save(context.Background(), sampleRecord("ccteam-aaaaa")))

	info, err := os.Stat(filepath.Join(dir, "ccteam-aaaaa.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestNewSessionRepositoryDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewSessionRepository(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ccteam", "sessions"), repo.Dir())
}
