package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/ccteam/internal/adapters/process"
	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

const DefaultBinary = "tmux"

// stderr fragments tmux prints when no server is running; listing sessions
// in that state means "no sessions", not a failure.
var noServerMarkers = []string{"no server running", "error connecting to", "no sessions"}

// Client drives tmux through one process invocation per operation.
type Client struct {
	binary  string
	invoker ports.Invoker
	getenv  func(string) string
}

var _ ports.Multiplexer = (*Client)(nil)

func NewClient(binary string, invoker ports.Invoker) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultBinary
	}
	return &Client{binary: binary, invoker: invoker, getenv: os.Getenv}
}

// CreateLayout builds the three-pane layout in a single tmux invocation:
// pane 0 left, pane 1 top right, pane 2 bottom right, with pane 0 selected.
// The split order fixes which index lands where; do not reorder.
func (c *Client) CreateLayout(ctx context.Context, session domain.SessionName, workingDir string) error {
	name := string(session)
	args := []string{
		"new-session", "-s", name, "-c", workingDir, "-d",
		";",
		"split-window", "-t", name + ":0.0", "-h", "-p", "50",
		";",
		"select-pane", "-t", name + ":0.1",
		";",
		"split-window", "-t", name + ":0.1", "-v", "-p", "50",
		";",
		"select-pane", "-t", domain.PaneAddress(session, domain.RoleManager),
	}

	if _, err := c.run(ctx, args...); err != nil {
		return domain.NewExternalError("create tmux layout", err)
	}
	return nil
}

func (c *Client) ListSessions(ctx context.Context) ([]string, error) {
	output, err := c.run(ctx, "list-sessions", "-F", "#{session_name}")
	if err != nil {
		if isNoServer(err) {
			return []string{}, nil
		}
		return nil, domain.NewExternalError("list tmux sessions", err)
	}

	return splitLines(output), nil
}

func (c *Client) KillSession(ctx context.Context, session domain.SessionName) error {
	if _, err := c.run(ctx, "kill-session", "-t", string(session)); err != nil {
		return domain.NewExternalError(fmt.Sprintf("kill tmux session %s", session), err)
	}
	return nil
}

// SendText types text literally. "--" ends option parsing so text starting
// with "-" is not read as a flag.
func (c *Client) SendText(ctx context.Context, target string, text string) error {
	if _, err := c.run(ctx, "send-keys", "-t", target, "-l", "--", text); err != nil {
		return domain.NewExternalError(fmt.Sprintf("send text to %s", target), err)
	}
	return nil
}

func (c *Client) SendKey(ctx context.Context, target string, key string) error {
	if _, err := c.run(ctx, "send-keys", "-t", target, key); err != nil {
		return domain.NewExternalError(fmt.Sprintf("send %s to %s", key, target), err)
	}
	return nil
}

func (c *Client) CurrentSession(ctx context.Context) (domain.SessionName, error) {
	output, err := c.displayMessage(ctx, "#{session_name}")
	if err != nil {
		return "", err
	}
	return domain.SessionName(output), nil
}

func (c *Client) CurrentPane(ctx context.Context) (int, error) {
	output, err := c.displayMessage(ctx, "#{pane_index}")
	if err != nil {
		return 0, err
	}

	index, err := strconv.Atoi(output)
	if err != nil {
		return 0, domain.NewExternalError(fmt.Sprintf("parse pane index %q", output), err)
	}
	return index, nil
}

func (c *Client) displayMessage(ctx context.Context, format string) (string, error) {
	if c.getenv("TMUX") == "" {
		return "", domain.NewEnvironmentError(
			"not running inside a tmux session",
			"run this from one of the ccteam panes, or pass --session and --from explicitly",
		)
	}

	args := []string{"display-message", "-p"}
	if pane := c.getenv("TMUX_PANE"); pane != "" {
		args = append(args, "-t", pane)
	}
	args = append(args, format)

	output, err := c.run(ctx, args...)
	if err != nil {
		return "", domain.NewExternalError("query current tmux pane", err)
	}
	return strings.TrimSpace(output), nil
}

func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	if c == nil || c.invoker == nil {
		return "", errors.New("tmux invoker unavailable")
	}
	return c.invoker.Run(ctx, c.binary, args...)
}

func isNoServer(err error) bool {
	var procErr *process.Error
	if !errors.As(err, &procErr) {
		return false
	}
	stderr := strings.ToLower(procErr.Stderr)
	for _, marker := range noServerMarkers {
		if strings.Contains(stderr, marker) {
			return true
		}
	}
	return false
}

func splitLines(output string) []string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return []string{}
	}

	lines := strings.Split(trimmed, "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if name := strings.TrimRight(line, "\r"); name != "" {
			names = append(names, name)
		}
	}
	return names
}
