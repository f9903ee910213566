package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

const (
	// SubmitDelay separates a text paste from its Enter key. The agent drops
	// or reorders a submit that arrives in the same burst as pasted input;
	// the value is empirical.
	SubmitDelay = time.Second

	submitKey = "C-m"
)

type Dispatcher struct {
	mux   ports.Multiplexer
	clock ports.Clock
}

func NewDispatcher(mux ports.Multiplexer, clock ports.Clock) *Dispatcher {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Dispatcher{mux: mux, clock: clock}
}

// Send types the message into the recipient's pane, waits SubmitDelay, then
// submits it.
func (d *Dispatcher) Send(ctx context.Context, cmd SendCommand) error {
	if !cmd.To.Valid() {
		return domain.NewValidationError(
			fmt.Sprintf("invalid role %q", cmd.To),
			"valid roles: manager, leader, worker",
		)
	}

	text := cmd.Message
	if cmd.From != "" {
		text = fmt.Sprintf("[%s] %s", strings.ToUpper(string(cmd.From)), text)
	}

	target := domain.PaneAddress(cmd.Session, cmd.To)
	if err := d.mux.SendText(ctx, target, text); err != nil {
		return fmt.Errorf("send message to %s: %w", cmd.To, err)
	}

	d.clock.Sleep(SubmitDelay)

	if err := d.mux.SendKey(ctx, target, submitKey); err != nil {
		return fmt.Errorf("submit message to %s: %w", cmd.To, err)
	}

	return nil
}

// Ambient asks the multiplexer which session and role the calling pane
// belongs to. Callers query it once at the entry point.
func (d *Dispatcher) Ambient(ctx context.Context) (domain.SessionName, domain.Role, error) {
	session, err := d.mux.CurrentSession(ctx)
	if err != nil {
		return "", "", err
	}

	pane, err := d.mux.CurrentPane(ctx)
	if err != nil {
		return "", "", err
	}

	role, err := domain.RoleForPane(pane)
	if err != nil {
		return "", "", err
	}

	return session, role, nil
}
