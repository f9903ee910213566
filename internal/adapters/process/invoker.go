package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/bnema/ccteam/internal/ports"
)

// Error reports a non-zero exit. Args is the exact argument vector that ran.
type Error struct {
	Program string
	Args    []string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	command := strings.TrimSpace(e.Program + " " + strings.Join(e.Args, " "))
	if e.Stderr == "" {
		return fmt.Sprintf("%s failed: %v", command, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", command, e.Stderr)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Invoker struct {
	logger *slog.Logger
}

var _ ports.Invoker = (*Invoker)(nil)

func NewInvoker(logger *slog.Logger) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{logger: logger}
}

// Run blocks until program exits. No timeout is applied beyond ctx.
func (i *Invoker) Run(ctx context.Context, program string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, program, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	i.logger.Debug("invoke", "program", program, "args", args)

	if err := cmd.Run(); err != nil {
		i.logger.Debug("invoke failed", "program", program, "err", err, "stderr", strings.TrimSpace(stderr.String()))
		return "", &Error{
			Program: program,
			Args:    append([]string(nil), args...),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}

	return stdout.String(), nil
}

func (i *Invoker) LookPath(program string) (string, error) {
	path, err := exec.LookPath(program)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", program, exec.ErrNotFound)
		}
		return "", fmt.Errorf("locate %s: %w", program, err)
	}
	return path, nil
}
