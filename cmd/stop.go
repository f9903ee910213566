package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/bnema/ccteam/internal/application"
	"github.com/bnema/ccteam/internal/domain"
	"github.com/spf13/cobra"
)

func newStopCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <session-id>",
		Short: "Stop the agents and kill a ccteam session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(cmd, app, args[0])
		},
	}
}

func runStop(cmd *cobra.Command, app *app, session string) error {
	out := cmd.OutOrStdout()
	console.Info(out, "Stopping ccteam session: %s", console.Session(domain.SessionName(session)))

	wd, err := app.getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	var stopped domain.SessionName
	err = runSteps(cmd.Context(), out, app.interactive(out), "Stopping Claude Code instances...", func(ctx context.Context, report stepReporter) error {
		var stopErr error
		stopped, stopErr = app.orchestrator.Stop(ctx, application.StopCommand{Session: session, WorkingDir: wd})
		if stopErr == nil {
			report("Claude Code instances stopped and tmux session terminated", "")
		}
		return stopErr
	})
	if err != nil {
		return err
	}

	console.Info(out, "Session %s has been successfully stopped.", console.Session(stopped))
	return nil
}
