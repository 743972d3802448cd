// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"

	"envkeygen/internal/config"
	"envkeygen/internal/logging"
	"envkeygen/internal/logging/audit"
	"envkeygen/internal/shared"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigPath = "envkeygen.toml"

	flagConfigPath = "config_path"
	flagLogLevel   = "log-level"
	flagLength     = "length"
	flagAudit      = "audit-enabled"

	keyConfigPath   = "config_path"
	keyLogLevel     = "log_level"
	keySecretLength = "secret_length"
	keyAuditEnabled = "audit_enabled"
)

// newViper binds each setting to its flag and environment variable.
// Viper resolves flag > env > flag default.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	bindings := []struct {
		key  string
		flag string
		env  string
	}{
		{keyConfigPath, flagConfigPath, "ENVKEYGEN_CONFIG_PATH"},
		{keyLogLevel, flagLogLevel, "ENVKEYGEN_LOG_LEVEL"},
		{keySecretLength, flagLength, "ENVKEYGEN_SECRET_LENGTH"},
		{keyAuditEnabled, flagAudit, "ENVKEYGEN_AUDIT_ENABLED"},
	}
	for _, b := range bindings {
		if err := v.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			return nil, fmt.Errorf("binding flag %s: %w", b.flag, err)
		}
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", b.env, err)
		}
	}
	return v, nil
}

// initializeConfig loads the config file and applies defaults and overrides.
func (options *GlobalOptions) initializeConfig(cmd *cobra.Command) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}

	// 1. Config path: flag, env or default
	options.CfgFilePath = v.GetString(keyConfigPath)

	cfg, err := config.LoadConfig(options.CfgFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// The config file is optional, rely on defaults/flags
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", options.CfgFilePath, err)
		}
	}

	// 2. Defaults for whatever the file left out
	cfg.ApplyDefaults()

	// 3. Apply Overrides (Env Vars and CLI Flags)
	if err := applyOverrides(cfg, v); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	options.Conf = cfg

	// 5. Initialize Logging
	options.Logger = logging.NewLogger(cfg.Logging.Level)
	options.Logger.SetOutput(cmd.ErrOrStderr())
	options.Logger.WithField("config_path", options.CfgFilePath).Debug("Configuration loaded")

	// 6. Auditor Initialization
	options.Auditor = audit.NewLoggerAuditor(cmd.ErrOrStderr(), cfg.Logging.AuditEnabled)

	return nil
}

// applyOverrides copies explicitly set env vars and flags over file values.
func applyOverrides(c *config.Config, v *viper.Viper) error {
	if v.IsSet(keyLogLevel) {
		c.Logging.Level = v.GetString(keyLogLevel)
	}
	if v.IsSet(keySecretLength) {
		n, err := cast.ToIntE(v.Get(keySecretLength))
		if err != nil {
			return fmt.Errorf("%w: secret length %v is not a number", shared.ErrInvalidConfig, v.Get(keySecretLength))
		}
		c.Secret.Length = n
	}
	if v.IsSet(keyAuditEnabled) {
		b, err := cast.ToBoolE(v.Get(keyAuditEnabled))
		if err != nil {
			return fmt.Errorf("%w: audit_enabled %v is not a boolean", shared.ErrInvalidConfig, v.Get(keyAuditEnabled))
		}
		c.Logging.AuditEnabled = b
	}
	return nil
}
