package cli

import (
	"fmt"

	"envkeygen/internal/config"
	"envkeygen/internal/envfile"
	"envkeygen/internal/shared"

	"github.com/spf13/cobra"
)

type InitConfigOptions struct {
	Force bool // If true, replace an existing config file
}

func NewInitConfigCommand(globalOptions *GlobalOptions) *cobra.Command {

	initConfigOptions := &InitConfigOptions{}

	initConfigCommand := &cobra.Command{
		Use:   "init-config",
		Short: "Write the effective configuration to --config_path",
		Long: `Writes the configuration currently in effect (defaults, config file, env vars and flags)
as TOML to the config path, so it can be edited. Does not touch .env.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitConfig(cmd, globalOptions, initConfigOptions)
		},
	}

	initConfigOptions.registerFlags(initConfigCommand)

	return initConfigCommand
}

func (opt *InitConfigOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opt.Force, "force", false, "If true, overwrite an existing config file.")
}

func runInitConfig(cmd *cobra.Command, globalOptions *GlobalOptions, initConfigOptions *InitConfigOptions) error {
	path := globalOptions.CfgFilePath
	logger := globalOptions.Logger.WithField("config_path", path)

	exists, err := envfile.Exists(path)
	if err != nil {
		return err
	}
	if exists && !initConfigOptions.Force {
		return fmt.Errorf("%s: %w (use --force to replace it)", path, shared.ErrorFileExists)
	}

	if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
		return err
	}
	logger.Info("Configuration written")

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration written to %s\n", path)
	return nil
}
