package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bnema/ccteam/internal/domain"
	"github.com/bnema/ccteam/internal/ports"
)

// Pacing for agent startup. The agent exposes no readiness signal, so these
// are wall-clock waits tuned for the claude CLI.
const (
	KeystrokeDelay = time.Second
	AgentBootDelay = 3 * time.Second
	InterruptDelay = 300 * time.Millisecond

	interruptKey = "C-c"
)

const (
	tmuxInstallHint  = "Please install tmux first. See: https://github.com/tmux/tmux/wiki/Installing"
	agentInstallHint = "Please install Claude CLI first. See: https://docs.anthropic.com/en/docs/claude-code/overview"
)

type OrchestratorOptions struct {
	Multiplexer       ports.Multiplexer
	Invoker           ports.Invoker
	Sessions          *SessionService
	Instructions      ports.InstructionWriter
	Dispatcher        *Dispatcher
	Clock             ports.Clock
	AgentBinary       string
	MultiplexerBinary string
	// RemoveAll deletes a session state directory; defaults to os.RemoveAll.
	RemoveAll func(path string) error
	// SessionDir maps a working directory and session to its state directory.
	SessionDir func(workingDir string, session domain.SessionName) string
}

// Orchestrator runs the start and stop sequences. Every step is sequential;
// a failure stops the sequence and leaves what was built for the caller to
// inspect or stop.
type Orchestrator struct {
	mux          ports.Multiplexer
	invoker      ports.Invoker
	sessions     *SessionService
	instructions ports.InstructionWriter
	dispatcher   *Dispatcher
	clock        ports.Clock
	agentBinary  string
	muxBinary    string
	removeAll    func(string) error
	sessionDir   func(string, domain.SessionName) string
}

func NewOrchestrator(opts OrchestratorOptions) *Orchestrator {
	o := &Orchestrator{
		mux:          opts.Multiplexer,
		invoker:      opts.Invoker,
		sessions:     opts.Sessions,
		instructions: opts.Instructions,
		dispatcher:   opts.Dispatcher,
		clock:        opts.Clock,
		agentBinary:  opts.AgentBinary,
		muxBinary:    opts.MultiplexerBinary,
		removeAll:    opts.RemoveAll,
		sessionDir:   opts.SessionDir,
	}
	if o.clock == nil {
		o.clock = ports.SystemClock{}
	}
	if o.agentBinary == "" {
		o.agentBinary = "claude"
	}
	if o.muxBinary == "" {
		o.muxBinary = "tmux"
	}
	if o.removeAll == nil {
		o.removeAll = os.RemoveAll
	}
	if o.dispatcher == nil {
		o.dispatcher = NewDispatcher(o.mux, o.clock)
	}

	return o
}

// CheckRequirements fails when tmux or the agent binary is not on PATH.
func (o *Orchestrator) CheckRequirements() error {
	if _, err := o.invoker.LookPath(o.muxBinary); err != nil {
		return &domain.Error{
			Kind:    domain.KindEnvironment,
			Message: fmt.Sprintf("%s is not installed", o.muxBinary),
			Details: tmuxInstallHint,
			Err:     err,
		}
	}
	if _, err := o.invoker.LookPath(o.agentBinary); err != nil {
		return &domain.Error{
			Kind:    domain.KindEnvironment,
			Message: fmt.Sprintf("%s is not installed", o.agentBinary),
			Details: agentInstallHint,
			Err:     err,
		}
	}
	return nil
}

func (o *Orchestrator) Start(ctx context.Context, cmd StartCommand) (StartResult, error) {
	progress := cmd.Progress
	if progress == nil {
		progress = func(Progress) {}
	}
	if strings.TrimSpace(cmd.WorkingDir) == "" {
		return StartResult{}, domain.NewValidationError("working directory is required", "")
	}

	if err := o.CheckRequirements(); err != nil {
		return StartResult{}, err
	}

	session, err := domain.GenerateSessionName()
	if err != nil {
		return StartResult{}, err
	}
	if _, err := o.sessions.Register(ctx, session, cmd.WorkingDir); err != nil {
		return StartResult{}, err
	}
	progress(Progress{Stage: StageCreated, Session: session})

	result := StartResult{Session: session, WorkingDir: cmd.WorkingDir}

	if err := o.mux.CreateLayout(ctx, session, cmd.WorkingDir); err != nil {
		return result, err
	}
	progress(Progress{Stage: StageLaidOut, Session: session})

	paths, err := o.instructions.Write(ctx, cmd.WorkingDir, session)
	if err != nil {
		return result, fmt.Errorf("write role instructions: %w", err)
	}
	result.Instructions = paths
	progress(Progress{Stage: StageInstructed, Session: session})

	for _, role := range domain.Roles {
		if err := o.launchAgent(ctx, session, role, cmd.Config.Role(role)); err != nil {
			return result, fmt.Errorf("launch %s: %w", role, err)
		}
		if err := o.dispatcher.Send(ctx, SendCommand{
			Session: session,
			To:      role,
			Message: Briefing(session, role, paths[role]),
		}); err != nil {
			return result, fmt.Errorf("brief %s: %w", role, err)
		}
		progress(Progress{Stage: StageRoleReady, Session: session, Role: role})
	}

	return result, nil
}

// launchAgent types the agent command, submits it, then presses Enter once
// more to accept the agent's first-run prompt before waiting for it to boot.
func (o *Orchestrator) launchAgent(ctx context.Context, session domain.SessionName, role domain.Role, rc domain.RoleConfig) error {
	target := domain.PaneAddress(session, role)
	command := strings.Join(AgentCommand(o.agentBinary, rc), " ")

	if err := o.mux.SendText(ctx, target, command); err != nil {
		return err
	}
	o.clock.Sleep(KeystrokeDelay)

	if err := o.mux.SendKey(ctx, target, submitKey); err != nil {
		return err
	}
	o.clock.Sleep(KeystrokeDelay)

	if err := o.mux.SendKey(ctx, target, submitKey); err != nil {
		return err
	}
	o.clock.Sleep(AgentBootDelay)

	return nil
}

// Stop interrupts every agent, kills the tmux session, removes the session
// state directory and drops the registry record.
func (o *Orchestrator) Stop(ctx context.Context, cmd StopCommand) (domain.SessionName, error) {
	if err := o.CheckRequirements(); err != nil {
		return "", err
	}

	session, err := domain.ParseSessionName(cmd.Session)
	if err != nil {
		return "", err
	}

	if err := o.sessions.EnsureLive(ctx, session); err != nil {
		return "", err
	}

	for i, role := range domain.Roles {
		target := domain.PaneAddress(session, role)
		for press := 0; press < 2; press++ {
			if err := o.mux.SendKey(ctx, target, interruptKey); err != nil {
				return session, fmt.Errorf("interrupt %s: %w", role, err)
			}
			if i == len(domain.Roles)-1 && press == 1 {
				break
			}
			o.clock.Sleep(InterruptDelay)
		}
	}

	if err := o.mux.KillSession(ctx, session); err != nil {
		return session, err
	}

	var cleanupErr error
	if cmd.WorkingDir != "" && o.sessionDir != nil {
		if err := o.removeAll(o.sessionDir(cmd.WorkingDir, session)); err != nil {
			cleanupErr = fmt.Errorf("remove session directory: %w", err)
		}
	}
	if err := o.sessions.Forget(ctx, session); err != nil {
		cleanupErr = errors.Join(cleanupErr, err)
	}

	return session, cleanupErr
}

// Briefing is the first message each agent receives.
func Briefing(session domain.SessionName, role domain.Role, instructionPath string) string {
	return strings.Join([]string{
		fmt.Sprintf("You are the %s role.", role.Title()),
		fmt.Sprintf("Read @%s and understand your role.", instructionPath),
		"",
		fmt.Sprintf("Session name: %s", session),
		fmt.Sprintf("Wait for requests from the %s.", briefingSource(role)),
	}, "\n")
}

func briefingSource(role domain.Role) string {
	switch role {
	case domain.RoleLeader:
		return domain.RoleManager.Title()
	case domain.RoleWorker:
		return domain.RoleLeader.Title()
	default:
		return "User"
	}
}
