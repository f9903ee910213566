package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/ccteam/internal/adapters/instructions"
	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/bnema/ccteam/internal/application"
	"github.com/bnema/ccteam/internal/domain"
	"github.com/spf13/cobra"
)

func newAgentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Commands used by the agents inside a ccteam session",
	}

	cmd.AddCommand(
		newAgentSendCmd(app),
		newAgentMessagesCmd(app),
	)

	return cmd
}

func newAgentSendCmd(app *app) *cobra.Command {
	var from string
	var to string
	var session string

	cmd := &cobra.Command{
		Use:   "send <message>...",
		Short: "Send a message to another role's pane",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAgentSend(cmd, app, from, to, session, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Sending role (default: role of the current pane)")
	cmd.Flags().StringVar(&to, "to", "", "Receiving role: manager, leader or worker")
	cmd.Flags().StringVar(&session, "session", "", "Session ID (default: current tmux session)")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runAgentSend(cmd *cobra.Command, app *app, from, to, session, message string) error {
	if err := app.orchestrator.CheckRequirements(); err != nil {
		return err
	}

	recipient, err := domain.ParseRole(to)
	if err != nil {
		return err
	}

	send := application.SendCommand{To: recipient, Message: message}

	if strings.TrimSpace(session) != "" {
		if send.Session, err = domain.ParseSessionName(session); err != nil {
			return err
		}
	}
	if strings.TrimSpace(from) != "" {
		if send.From, err = domain.ParseRole(from); err != nil {
			return err
		}
	}

	// Inside a pane the session and sender come from tmux. Without --from
	// outside a pane the message goes out unprefixed.
	if send.Session == "" || send.From == "" {
		ambientSession, ambientRole, ambientErr := app.dispatcher.Ambient(cmd.Context())
		switch {
		case ambientErr == nil:
			if send.Session == "" {
				// The current pane may belong to an unrelated tmux session.
				if send.Session, err = domain.ParseSessionName(string(ambientSession)); err != nil {
					return err
				}
			}
			if send.From == "" {
				send.From = ambientRole
			}
		case send.Session == "":
			return fmt.Errorf("detect current session: %w", ambientErr)
		}
	}

	if err := app.dispatcher.Send(cmd.Context(), send); err != nil {
		return err
	}

	console.Info(cmd.OutOrStdout(), "Message sent to %s", recipient)
	return nil
}

func newAgentMessagesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Manage message files exchanged between agents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <file>",
		Short: "Delete a processed message file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := app.getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}

			deleted, err := instructions.DeleteMessage(wd, args[0])
			if err != nil {
				return err
			}

			if deleted {
				console.Info(cmd.OutOrStdout(), "%q deleted successfully", args[0])
			} else {
				console.Info(cmd.OutOrStdout(), "%q not found (already deleted)", args[0])
			}
			return nil
		},
	})

	return cmd
}
