package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	yamlconfig "github.com/bnema/ccteam/internal/adapters/config/yaml"
	"github.com/bnema/ccteam/internal/adapters/render/console"
	"github.com/bnema/ccteam/internal/application"
	"github.com/bnema/ccteam/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type roleFlags struct {
	model           string
	skipPermissions bool
	allowedTools    string
	disallowedTools string
}

func newStartCmd(app *app) *cobra.Command {
	var configPath string
	flags := make(map[domain.Role]*roleFlags, len(domain.Roles))

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a tmux session with Manager, Leader and Worker agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStart(cmd, app, configPath, roleOverrides(cmd.Flags(), flags))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Role configuration file (default: ./"+yamlconfig.DefaultFileName+" if present)")
	for _, role := range domain.Roles {
		rf := &roleFlags{}
		flags[role] = rf
		cmd.Flags().StringVar(&rf.model, string(role)+"-model", "", fmt.Sprintf("Model for the %s agent", role.Title()))
		cmd.Flags().BoolVar(&rf.skipPermissions, string(role)+"-skip-permissions", false, fmt.Sprintf("Skip permission prompts for the %s agent", role.Title()))
		cmd.Flags().StringVar(&rf.allowedTools, string(role)+"-allowed-tools", "", fmt.Sprintf("Comma-separated tools the %s agent may use", role.Title()))
		cmd.Flags().StringVar(&rf.disallowedTools, string(role)+"-disallowed-tools", "", fmt.Sprintf("Comma-separated tools the %s agent may not use", role.Title()))
	}

	return cmd
}

// roleOverrides keeps only the flags the user actually set, so an explicit
// "--worker-skip-permissions=false" still beats the file value.
func roleOverrides(fs *pflag.FlagSet, flags map[domain.Role]*roleFlags) domain.Overrides {
	overrides := domain.Overrides{}

	for _, role := range domain.Roles {
		rf := flags[role]
		var o domain.RoleOverrides
		set := false

		if fs.Changed(string(role) + "-model") {
			model := rf.model
			o.Model = &model
			set = true
		}
		if fs.Changed(string(role) + "-skip-permissions") {
			skip := rf.skipPermissions
			o.SkipPermissions = &skip
			set = true
		}
		if fs.Changed(string(role) + "-allowed-tools") {
			tools := domain.SplitToolList(rf.allowedTools)
			o.AllowedTools = &tools
			set = true
		}
		if fs.Changed(string(role) + "-disallowed-tools") {
			tools := domain.SplitToolList(rf.disallowedTools)
			o.DisallowedTools = &tools
			set = true
		}

		if set {
			overrides[role] = o
		}
	}

	return overrides
}

func runStart(cmd *cobra.Command, app *app, configPath string, overrides domain.Overrides) error {
	out := cmd.OutOrStdout()
	console.Info(out, "Starting ccteam initialization...")

	wd, err := app.getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	configPath, err = startConfigPath(wd, configPath)
	if err != nil {
		return err
	}
	if configPath != "" {
		console.Info(out, "Using config file: %s", configPath)
	}

	cfg, err := app.resolver.Resolve(cmd.Context(), configPath, overrides)
	if err != nil {
		return err
	}

	var result application.StartResult
	err = runSteps(cmd.Context(), out, app.interactive(out), "Generating session name...", func(ctx context.Context, report stepReporter) error {
		var startErr error
		result, startErr = app.orchestrator.Start(ctx, application.StartCommand{
			WorkingDir: wd,
			Config:     cfg,
			Progress: func(p application.Progress) {
				report(progressLine(p))
			},
		})
		return startErr
	})
	if err != nil {
		if result.Session != "" {
			console.Warn(cmd.ErrOrStderr(), "session %s was left running; clean it up with `ccteam stop %s`", result.Session, result.Session)
		}
		return err
	}

	fmt.Fprintln(out, console.AttachBanner(app.settings.MultiplexerBinary, result.Session))
	return nil
}

// startConfigPath returns the explicit path, or the default file when it
// exists in wd, or "" to run on defaults.
func startConfigPath(wd, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	candidate := filepath.Join(wd, yamlconfig.DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("check default config file: %w", err)
	}
	return candidate, nil
}

func progressLine(p application.Progress) (string, string) {
	switch p.Stage {
	case application.StageCreated:
		return "Generated session: " + console.Session(p.Session), "Creating tmux session..."
	case application.StageLaidOut:
		return "Tmux session created with 3 panes", "Writing role instructions..."
	case application.StageInstructed:
		return "Role instructions written", initializingLabel(domain.Roles[0])
	case application.StageRoleReady:
		next := ""
		for i, role := range domain.Roles {
			if role == p.Role && i+1 < len(domain.Roles) {
				next = initializingLabel(domain.Roles[i+1])
			}
		}
		return p.Role.Title() + " role initialized", next
	default:
		return string(p.Stage), ""
	}
}

func initializingLabel(role domain.Role) string {
	return fmt.Sprintf("Initializing %s role...", role.Title())
}
