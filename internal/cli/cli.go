package cli

import (
	"fmt"
	"os"

	"envkeygen/internal/config"
	"envkeygen/internal/logging/audit"
	"envkeygen/internal/prompt"
	"envkeygen/internal/provisioner"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type GlobalOptions struct {
	CfgFilePath  string
	LogLevel     string
	Length       int
	AuditEnabled bool

	Logger  *logrus.Logger
	Auditor audit.AuditLogger
	Conf    *config.Config
}

func NewRootCMD() *cobra.Command {
	return newRootCMD(&GlobalOptions{})
}

func newRootCMD(globalOptions *GlobalOptions) *cobra.Command {

	rootCMD := &cobra.Command{
		Use:   "envkeygen",
		Short: "Generate an API key for the Vector Storage Service",
		Long: `Generates a secure random API key and writes it to .env in the current directory,
together with commented documentation of the optional settings. Asks before
overwriting an existing .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.initializeConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, globalOptions)
		},
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewInitConfigCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, flagConfigPath, defaultConfigPath, "Path to the optional tool configuration file. (Env: ENVKEYGEN_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, flagLogLevel, "", "Logging level (trace, debug, info, warn, error). (Env: ENVKEYGEN_LOG_LEVEL)")
	cmd.PersistentFlags().IntVar(&options.Length, flagLength, 0, "Number of random bytes in the key. (Env: ENVKEYGEN_SECRET_LENGTH)")
	cmd.PersistentFlags().BoolVar(&options.AuditEnabled, flagAudit, false, "Record audit events for the env file on stderr. (Env: ENVKEYGEN_AUDIT_ENABLED=true)")
}

func runProvision(cmd *cobra.Command, options *GlobalOptions) error {
	out := cmd.OutOrStdout()
	confirmer := prompt.NewPrompter(cmd.InOrStdin(), out)

	p := provisioner.NewProvisioner(options.Conf.ProvisionerOptions(), confirmer, out, options.Logger, options.Auditor)
	_, err := p.Run()
	return err
}

func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
}
