package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

type SessionService struct {
	repo  ports.SessionRepository
	mux   ports.Multiplexer
	clock ports.Clock
}

func NewSessionService(repo ports.SessionRepository, mux ports.Multiplexer, clock ports.Clock) *SessionService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionService{repo: repo, mux: mux, clock: clock}
}

func (s *SessionService) Register(ctx context.Context, name domain.SessionName, workingDir string) (domain.SessionRecord, error) {
	record := domain.SessionRecord{
		Name:             name,
		StartedAt:        s.clock.Now().UTC(),
		WorkingDirectory: workingDir,
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("save session record: %w", err)
	}

	return record, nil
}

func (s *SessionService) Forget(ctx context.Context, name domain.SessionName) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

// List returns the registered sessions that tmux still reports as live,
// sorted by start time. Records of sessions that are gone are pruned on the
// way; a failed prune is ignored so one bad file cannot block the listing.
func (s *SessionService) List(ctx context.Context) ([]domain.SessionRecord, error) {
	live, err := s.liveSessions(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.repo.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session records: %w", err)
	}
	for _, name := range names {
		if _, ok := live[name]; ok {
			continue
		}
		_ = s.repo.Delete(ctx, name)
	}

	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session records: %w", err)
	}

	active := make([]domain.SessionRecord, 0, len(records))
	for _, record := range records {
		if _, ok := live[record.Name]; ok {
			active = append(active, record)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].StartedAt.Before(active[j].StartedAt)
	})

	return active, nil
}

// EnsureLive fails with a not-found error unless tmux reports the session.
func (s *SessionService) EnsureLive(ctx context.Context, name domain.SessionName) error {
	live, err := s.liveSessions(ctx)
	if err != nil {
		return err
	}
	if _, ok := live[name]; !ok {
		return domain.NewNotFoundError(string(name), domain.ErrSessionNotFound)
	}
	return nil
}

func (s *SessionService) liveSessions(ctx context.Context) (map[domain.SessionName]struct{}, error) {
	names, err := s.mux.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live sessions: %w", err)
	}

	live := make(map[domain.SessionName]struct{}, len(names))
	for _, name := range names {
		if domain.HasSessionPrefix(name) {
			live[domain.SessionName(name)] = struct{}{}
		}
	}
	return live, nil
}
