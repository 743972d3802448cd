// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"envkeygen/internal/envfile"
	"envkeygen/internal/keygen"
	"envkeygen/internal/logging"
	"envkeygen/internal/provisioner"
	"envkeygen/internal/shared"

	"github.com/BurntSushi/toml"
)

// MaxSecretLength caps the key size in bytes.
const MaxSecretLength = 1024

// Config holds the tool's configuration.
type Config struct {
	Service ServiceConfig `toml:"service"`
	Secret  SecretConfig  `toml:"secret"`
	Env     EnvConfig     `toml:"env"`
	Logging LoggingConfig `toml:"logging"`
}

// ServiceConfig describes the service the key is generated for.
type ServiceConfig struct {
	Name          string `toml:"name"`
	DownstreamKey string `toml:"downstream_key"` // variable name on the consuming server
}

// SecretConfig holds key generation settings.
type SecretConfig struct {
	Length int `toml:"length"` // random bytes, hex doubles it
}

// EnvConfig holds the env file location and the commented placeholder values.
type EnvConfig struct {
	Path           string   `toml:"path"`
	AllowedOrigins []string `toml:"allowed_origins"`
	Port           int      `toml:"port"`
	Host           string   `toml:"host"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"` // Toggle for audit events on stderr
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
// Used by init-config to give developers an editable starting point.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ApplyDefaults fills every unset value.
func (c *Config) ApplyDefaults() {
	tpl := envfile.DefaultTemplate()

	if c.Service.Name == "" {
		c.Service.Name = tpl.ServiceName
	}
	if c.Service.DownstreamKey == "" {
		c.Service.DownstreamKey = provisioner.DefaultDownstreamKey
	}
	if c.Secret.Length == 0 {
		c.Secret.Length = keygen.DefaultLength
	}
	if c.Env.Path == "" {
		c.Env.Path = envfile.DefaultPath
	}
	if c.Env.AllowedOrigins == nil {
		c.Env.AllowedOrigins = tpl.AllowedOrigins
	}
	if c.Env.Port == 0 {
		c.Env.Port = tpl.Port
	}
	if c.Env.Host == "" {
		c.Env.Host = tpl.Host
	}
	if c.Logging.Level == "" {
		c.Logging.Level = logging.DefaultLevel
	}
}

// ParseAndValidate checks the values a run depends on.
func (c *Config) ParseAndValidate() error {
	if c.Secret.Length < 1 || c.Secret.Length > MaxSecretLength {
		return fmt.Errorf("%w: secret length %d out of range 1..%d: %w",
			shared.ErrInvalidConfig, c.Secret.Length, MaxSecretLength, shared.ErrInvalidLength)
	}
	if c.Env.Port < 1 || c.Env.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", shared.ErrInvalidConfig, c.Env.Port)
	}
	if strings.TrimSpace(c.Env.Path) == "" {
		return fmt.Errorf("%w: empty env path", shared.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Service.Name) == "" {
		return fmt.Errorf("%w: empty service name", shared.ErrInvalidConfig)
	}
	if hasLineBreak(c.Service.Name) {
		return fmt.Errorf("%w: service name %q contains a line break", shared.ErrInvalidConfig, c.Service.Name)
	}
	if hasLineBreak(c.Env.Host) {
		return fmt.Errorf("%w: host %q contains a line break", shared.ErrInvalidConfig, c.Env.Host)
	}
	if strings.ContainsAny(c.Service.DownstreamKey, " =\r\n") {
		return fmt.Errorf("%w: invalid downstream key %q", shared.ErrInvalidConfig, c.Service.DownstreamKey)
	}
	for _, origin := range c.Env.AllowedOrigins {
		if hasLineBreak(origin) {
			return fmt.Errorf("%w: origin %q contains a line break", shared.ErrInvalidConfig, origin)
		}
		if strings.Contains(origin, ",") {
			return fmt.Errorf("%w: origin %q contains a comma", shared.ErrInvalidConfig, origin)
		}
	}
	return nil
}

// hasLineBreak reports values that would start a new line in the env file.
func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// Template converts the env section into the env file template.
func (c *Config) Template() envfile.Template {
	return envfile.Template{
		ServiceName:    c.Service.Name,
		AllowedOrigins: c.Env.AllowedOrigins,
		Port:           c.Env.Port,
		Host:           c.Env.Host,
	}
}

// ProvisionerOptions converts the config into options for a run.
func (c *Config) ProvisionerOptions() provisioner.Options {
	return provisioner.Options{
		EnvPath:       c.Env.Path,
		SecretLength:  c.Secret.Length,
		DownstreamKey: c.Service.DownstreamKey,
		Template:      c.Template(),
	}
}
