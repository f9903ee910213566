package ports

import (
	"context"

	"github.com/bnema/ccteam/internal/domain"
)

type Multiplexer interface {
	CreateLayout(ctx context.Context, session domain.SessionName, workingDir string) error
	ListSessions(ctx context.Context) ([]string, error)
	KillSession(ctx context.Context, session domain.SessionName) error
	// SendText types text into the pane without submitting it.
	SendText(ctx context.Context, target string, text string) error
	// SendKey sends one named key such as "C-m" or "C-c".
	SendKey(ctx context.Context, target string, key string) error
	CurrentSession(ctx context.Context) (domain.SessionName, error)
	CurrentPane(ctx context.Context) (int, error)
}
