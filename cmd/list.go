package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/bnema/ccteam/internal/adapters/render/sessions"
	"github.com/bnema/ccteam/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List active ccteam sessions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, app)
		},
	}
}

func runList(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	console.Info(out, "Loading ccteam sessions...")

	var records []domain.SessionRecord
	err := runSteps(cmd.Context(), out, app.interactive(out), "Checking active sessions...", func(ctx context.Context, report stepReporter) error {
		var listErr error
		records, listErr = app.sessions.List(ctx)
		if listErr == nil {
			report("Session check completed", "")
		}
		return listErr
	})
	if err != nil {
		return err
	}

	rendered, err := sessions.Render(records, sessions.RenderOptions{Width: app.width(out)})
	if err != nil {
		return fmt.Errorf("render sessions: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}
