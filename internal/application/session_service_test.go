package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionServiceRegisterStampsUTC(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(repo, &fakeMux{tl: &timeline{}}, clock)

	local := time.Date(2026, 2, 14, 12, 30, 15, 0, time.FixedZone("CET", 3600))
	clock.EXPECT().Now().Return(local)
	repo.EXPECT().Save(mockAnyContext(), domain.SessionRecord{
		Name:             "ccteam-ab12C",
		StartedAt:        local.UTC(),
		WorkingDirectory: "/work/project",
	}).Return(nil)

	record, err := service.Register(context.Background(), "ccteam-ab12C", "/work/project")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, record.StartedAt.Location())
}

func TestSessionServiceRegisterWrapsSaveError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	clock := mocks.NewMockClock(t)
	service := NewSessionService(repo, &fakeMux{tl: &timeline{}}, clock)

	clock.EXPECT().Now().Return(time.Unix(0, 0))
	repo.EXPECT().Save(mockAnyContext(), mockAnyContext()).Return(errors.New("disk full"))

	_, err := service.Register(context.Background(), "ccteam-ab12C", "/work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestSessionServiceListPrunesDeadSessionsAndSortsByStart(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := &fakeMux{tl: &timeline{}, live: []string{"ccteam-BBBBB", "scratch", "ccteam-AAAAA"}}
	service := NewSessionService(repo, mux, nil)

	older := domain.SessionRecord{Name: "ccteam-AAAAA", StartedAt: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC), WorkingDirectory: "/a"}
	newer := domain.SessionRecord{Name: "ccteam-BBBBB", StartedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC), WorkingDirectory: "/b"}

	repo.EXPECT().Names(mockAnyContext()).Return([]domain.SessionName{"ccteam-AAAAA", "ccteam-BBBBB", "ccteam-DEAD1"}, nil)
	repo.EXPECT().Delete(mockAnyContext(), domain.SessionName("ccteam-DEAD1")).Return(nil)
	repo.EXPECT().List(mockAnyContext()).Return([]domain.SessionRecord{newer, older}, nil)

	records, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionRecord{older, newer}, records)
}

func TestSessionServiceListIgnoresPruneFailures(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := &fakeMux{tl: &timeline{}}
	service := NewSessionService(repo, mux, nil)

	repo.EXPECT().Names(mockAnyContext()).Return([]domain.SessionName{"ccteam-DEAD1"}, nil)
	repo.EXPECT().Delete(mockAnyContext(), domain.SessionName("ccteam-DEAD1")).Return(errors.New("permission denied"))
	repo.EXPECT().List(mockAnyContext()).Return(nil, nil)

	records, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSessionServiceListOmitsLiveSessionsWithoutRecord(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := &fakeMux{tl: &timeline{}, live: []string{"ccteam-NOREC"}}
	service := NewSessionService(repo, mux, nil)

	repo.EXPECT().Names(mockAnyContext()).Return(nil, nil)
	repo.EXPECT().List(mockAnyContext()).Return(nil, nil)

	records, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSessionServiceListFailsWhenTmuxFails(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := mocks.NewMockMultiplexer(t)
	service := NewSessionService(repo, mux, nil)

	mux.EXPECT().ListSessions(mockAnyContext()).Return(nil, errors.New("tmux crashed"))

	_, err := service.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tmux crashed")
}

func TestSessionServiceEnsureLiveIgnoresForeignSessions(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := mocks.NewMockMultiplexer(t)
	service := NewSessionService(repo, mux, nil)

	mux.EXPECT().ListSessions(mockAnyContext()).Return([]string{"main", "ccteam-ab12C"}, nil)

	err := service.EnsureLive(context.Background(), "main")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionServiceEnsureLive(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	mux := &fakeMux{tl: &timeline{}, live: []string{"ccteam-ab12C"}}
	service := NewSessionService(repo, mux, nil)

	require.NoError(t, service.EnsureLive(context.Background(), "ccteam-ab12C"))

	err := service.EnsureLive(context.Background(), "ccteam-zzzzz")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionServiceForgetPropagatesError(t *testing.T) {
	repo := mocks.NewMockSessionRepository(t)
	service := NewSessionService(repo, &fakeMux{tl: &timeline{}}, nil)

	repo.EXPECT().Delete(mockAnyContext(), domain.SessionName("ccteam-ab12C")).Return(errors.New("busy"))

	err := service.Forget(context.Background(), "ccteam-ab12C")
	require.Error(t, err)
}
