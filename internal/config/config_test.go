// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"envkeygen/internal/envfile"
	"envkeygen/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "Vector Storage Service", cfg.Service.Name)
	assert.Equal(t, "VECTOR_STORAGE_API_KEY", cfg.Service.DownstreamKey)
	assert.Equal(t, 32, cfg.Secret.Length)
	assert.Equal(t, ".env", cfg.Env.Path)
	assert.Equal(t, 8000, cfg.Env.Port)
	assert.Equal(t, "0.0.0.0", cfg.Env.Host)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, envfile.DefaultTemplate(), cfg.Template())
}

func TestApplyDefaults_KeepsSetValues(t *testing.T) {
	cfg := &Config{
		Secret: SecretConfig{Length: 48},
		Env:    EnvConfig{Port: 9000, AllowedOrigins: []string{}},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 48, cfg.Secret.Length)
	assert.Equal(t, 9000, cfg.Env.Port)
	assert.Empty(t, cfg.Env.AllowedOrigins)
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := &Config{}
		cfg.ApplyDefaults()
		assert.NoError(t, cfg.ParseAndValidate())
	})

	tests := []struct {
		name   string
		mutate func(c *Config)
		msg    string
	}{
		{"Negative Length", func(c *Config) { c.Secret.Length = -1 }, "secret length"},
		{"Huge Length", func(c *Config) { c.Secret.Length = MaxSecretLength + 1 }, "secret length"},
		{"Bad Port", func(c *Config) { c.Env.Port = 70000 }, "port"},
		{"Blank Path", func(c *Config) { c.Env.Path = "  " }, "env path"},
		{"Blank Service", func(c *Config) { c.Service.Name = " " }, "service name"},
		{"Downstream Key With Equals", func(c *Config) { c.Service.DownstreamKey = "A=B" }, "downstream key"},
		{"Origin With Comma", func(c *Config) { c.Env.AllowedOrigins = []string{"a,b"} }, "comma"},
		{"Service Name With Newline", func(c *Config) { c.Service.Name = "Svc\nALLOWED_ORIGINS=*" }, "service name"},
		{"Service Name With Carriage Return", func(c *Config) { c.Service.Name = "Svc\rX=1" }, "service name"},
		{"Host With Newline", func(c *Config) { c.Env.Host = "0.0.0.0\nPORT=1" }, "host"},
		{"Origin With Newline", func(c *Config) { c.Env.AllowedOrigins = []string{"https://a.example\nHOST=x"} }, "line break"},
		{"Downstream Key With Carriage Return", func(c *Config) { c.Service.DownstreamKey = "KEY\r" }, "downstream key"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.ApplyDefaults()
			tc.mutate(cfg)

			err := cfg.ParseAndValidate()
			assert.ErrorIs(t, err, shared.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestConfig_ParseAndValidate_LengthError(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()
	cfg.Secret.Length = -4

	assert.ErrorIs(t, cfg.ParseAndValidate(), shared.ErrInvalidLength)
}

func TestLoadConfig(t *testing.T) {
	content := []byte(`
[service]
name = "Search Gateway"
downstream_key = "SEARCH_GATEWAY_KEY"

[secret]
length = 24

[env]
allowed_origins = ["https://a.example", "https://b.example"]
port = 9090
`)
	path := filepath.Join(t.TempDir(), "envkeygen.toml")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	cfg.ApplyDefaults()

	assert.Equal(t, "Search Gateway", cfg.Service.Name)
	assert.Equal(t, 24, cfg.Secret.Length)
	assert.Equal(t, 9090, cfg.Env.Port)
	assert.Equal(t, "0.0.0.0", cfg.Env.Host) // default

	opts := cfg.ProvisionerOptions()
	assert.Equal(t, ".env", opts.EnvPath)
	assert.Equal(t, 24, opts.SecretLength)
	assert.Equal(t, "SEARCH_GATEWAY_KEY", opts.DownstreamKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, opts.Template.AllowedOrigins)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[secret\nlength = "), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	cfg := &Config{Secret: SecretConfig{Length: 40}}
	cfg.ApplyDefaults()

	path := filepath.Join(t.TempDir(), "envkeygen.toml")
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfig_Unwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "envkeygen.toml")
	err := SaveConfig(path, &Config{})
	assert.ErrorIs(t, err, shared.ErrorCreateFile)
}
