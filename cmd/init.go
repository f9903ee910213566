package cmd

import (
	yamlconfig "github.com/bnema/ccteam/internal/adapters/config/yaml"
	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a role configuration template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			written, err := yamlconfig.WriteTemplate(configPath)
			if err != nil {
				return err
			}

			console.Info(cmd.OutOrStdout(), "Configuration file created successfully: %s", written)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", yamlconfig.DefaultFileName, "Configuration file path")

	return cmd
}
