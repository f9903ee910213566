package cmd

import (
	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func Execute() error {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		console.Error(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd(opts ...wireOption) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "ccteam",
		Short:         "Orchestrate a Manager/Leader/Worker team of Claude Code agents in tmux",
		Long:          "ccteam starts three Claude Code instances in one tmux session, briefs each on its role, and relays messages between them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log external commands to stderr")

	app, err := wireApp(opts...)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		app.setVerbose(verbose)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newStopCmd(app),
		newListCmd(app),
		newInitCmd(),
		newAgentCmd(app),
	)

	return rootCmd
}
