package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	SessionsPathKey = "sessions.path"

	sessionsConfigDir = ".ccteam"
	sessionsDirName   = "sessions"
	recordExt         = ".toml"
	recordFileMode    = 0o600
	sessionsDirMode   = 0o700
	tempFilePattern   = ".session-*.toml.tmp"
)

// SessionRepository keeps one TOML file per session, named after the
// session. There is no cross-process locking.
type SessionRepository struct {
	dir string
	mu  *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(cfg *viper.Viper) (*SessionRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir := cfg.GetString(SessionsPathKey)
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, sessionsConfigDir, sessionsDirName)
	}

	dir, err := normalizePath(dir)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{dir: dir, mu: lockForPath(dir)}, nil
}

func (r *SessionRepository) Dir() string {
	return r.dir
}

func (r *SessionRepository) Save(ctx context.Context, record domain.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validate session record: %w", err)
	}

	path, err := r.pathFor(record.Name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeRecord(path, toSessionSchema(record))
}

func (r *SessionRepository) Delete(ctx context.Context, name domain.SessionName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := r.pathFor(name)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session record %s: %w", name, err)
	}

	return nil
}

func (r *SessionRepository) Names(ctx context.Context) ([]domain.SessionName, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.names()
}

func (r *SessionRepository) List(ctx context.Context) ([]domain.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	names, err := r.names()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SessionRecord, 0, len(names))
	for _, name := range names {
		path := filepath.Join(r.dir, string(name)+recordExt)

		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read session record %s: %w", name, err)
		}

		record, err := decodeRecord(data)
		if err != nil || record.Name != name {
			// Corrupt records are dropped rather than reported.
			_ = os.Remove(path)
			continue
		}

		records = append(records, record)
	}

	return records, nil
}

func (r *SessionRepository) names() ([]domain.SessionName, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.SessionName{}, nil
		}
		return nil, fmt.Errorf("read sessions directory: %w", err)
	}

	names := make([]domain.SessionName, 0, len(entries))
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || strings.HasPrefix(fileName, ".") || !strings.HasSuffix(fileName, recordExt) {
			continue
		}
		names = append(names, domain.SessionName(strings.TrimSuffix(fileName, recordExt)))
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	return names, nil
}

func (r *SessionRepository) pathFor(name domain.SessionName) (string, error) {
	trimmed := strings.TrimSpace(string(name))
	if trimmed == "" || trimmed != string(name) || filepath.Base(trimmed) != trimmed || strings.HasPrefix(trimmed, ".") {
		return "", fmt.Errorf("invalid session name %q", name)
	}

	return filepath.Join(r.dir, trimmed+recordExt), nil
}

func decodeRecord(data []byte) (domain.SessionRecord, error) {
	var schema sessionSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("decode session record: %w", err)
	}
	schema.applyDefaults()

	return fromSessionSchema(schema)
}

func (r *SessionRepository) writeRecord(path string, schema sessionSchema) error {
	if err := os.MkdirAll(r.dir, sessionsDirMode); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	tempFile, err := os.CreateTemp(r.dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session record: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session record: %w", err)
	}

	if err := tempFile.Chmod(recordFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session record: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session record: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve sessions path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
