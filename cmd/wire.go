package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	yamlconfig "github.com/bnema/ccteam/internal/adapters/config/yaml"
	"github.com/bnema/ccteam/internal/adapters/instructions"
	"github.com/bnema/ccteam/internal/adapters/process"
	tomlrepo "github.com/bnema/ccteam/internal/adapters/repo/toml"
	"github.com/bnema/ccteam/internal/adapters/settings"
	"github.com/bnema/ccteam/internal/adapters/tmux"
	"github.com/bnema/ccteam/internal/application"
	"github.com/bnema/ccteam/internal/ports"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

type app struct {
	settings     settings.Settings
	logLevel     *slog.LevelVar
	resolver     *application.ConfigResolver
	sessions     *application.SessionService
	orchestrator *application.Orchestrator
	dispatcher   *application.Dispatcher
	getwd        func() (string, error)
	interactive  func(w io.Writer) bool
	width        func(w io.Writer) int
}

type wireOptions struct {
	clock     ports.Clock
	logOutput io.Writer
}

type wireOption func(*wireOptions)

// withClock replaces the wall clock, so CLI tests skip the pacing delays.
func withClock(clock ports.Clock) wireOption {
	return func(o *wireOptions) {
		o.clock = clock
	}
}

func wireApp(opts ...wireOption) (*app, error) {
	options := wireOptions{clock: ports.SystemClock{}, logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&options)
	}

	cfg := viper.New()
	s, err := settings.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := &slog.LevelVar{}
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(options.logOutput, &slog.HandlerOptions{Level: level}))

	repo, err := tomlrepo.NewSessionRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	invoker := process.NewInvoker(logger)
	mux := tmux.NewClient(s.MultiplexerBinary, invoker)
	sessions := application.NewSessionService(repo, mux, options.clock)
	dispatcher := application.NewDispatcher(mux, options.clock)

	return &app{
		settings: s,
		logLevel: level,
		resolver: application.NewConfigResolver(yamlconfig.NewLoader()),
		sessions: sessions,
		orchestrator: application.NewOrchestrator(application.OrchestratorOptions{
			Multiplexer:       mux,
			Invoker:           invoker,
			Sessions:          sessions,
			Instructions:      instructions.NewWriter(),
			Dispatcher:        dispatcher,
			Clock:             options.clock,
			AgentBinary:       s.AgentBinary,
			MultiplexerBinary: s.MultiplexerBinary,
			SessionDir:        instructions.SessionDir,
		}),
		dispatcher:  dispatcher,
		getwd:       os.Getwd,
		interactive: isTerminal,
		width:       terminalWidth,
	}, nil
}

func (a *app) setVerbose(verbose bool) {
	if verbose {
		a.logLevel.Set(slog.LevelDebug)
		return
	}
	a.logLevel.Set(slog.LevelWarn)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
