package application

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

// timeline records multiplexer calls and sleeps in the order they happen.
type timeline struct {
	events []string
}

func (tl *timeline) add(format string, args ...any) {
	tl.events = append(tl.events, fmt.Sprintf(format, args...))
}

type fakeClock struct {
	tl  *timeline
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.tl.add("sleep %s", d)
}

type fakeMux struct {
	tl   *timeline
	live []string

	failOn map[string]error

	currentSession domain.SessionName
	currentPane    int
}

func (m *fakeMux) fail(op string) error {
	if m.failOn == nil {
		return nil
	}
	return m.failOn[op]
}

func (m *fakeMux) CreateLayout(_ context.Context, session domain.SessionName, workingDir string) error {
	m.tl.add("layout %s %s", session, workingDir)
	return m.fail("layout")
}

func (m *fakeMux) ListSessions(context.Context) ([]string, error) {
	if err := m.fail("list"); err != nil {
		return nil, err
	}
	return m.live, nil
}

func (m *fakeMux) KillSession(_ context.Context, session domain.SessionName) error {
	m.tl.add("kill %s", session)
	return m.fail("kill")
}

func (m *fakeMux) SendText(_ context.Context, target string, text string) error {
	m.tl.add("text %s %s", target, text)
	return m.fail("text")
}

func (m *fakeMux) SendKey(_ context.Context, target string, key string) error {
	m.tl.add("key %s %s", target, key)
	return m.fail("key " + key)
}

func (m *fakeMux) CurrentSession(context.Context) (domain.SessionName, error) {
	if err := m.fail("current"); err != nil {
		return "", err
	}
	return m.currentSession, nil
}

func (m *fakeMux) CurrentPane(context.Context) (int, error) {
	return m.currentPane, nil
}

type fakeInvoker struct {
	missing map[string]bool
}

func (f fakeInvoker) Run(context.Context, string, ...string) (string, error) {
	return "", nil
}

func (f fakeInvoker) LookPath(program string) (string, error) {
	if f.missing[program] {
		return "", &exec.Error{Name: program, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + program, nil
}
