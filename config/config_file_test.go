package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigPath(t *testing.T) {
	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9000\"\n"), 0o600))
		t.Setenv(ConfigFileEnv, path)

		got, err := getConfigPath(EnvProduction)

		require.NoError(t, err)
		assert.Equal(t, path, got)
	})

	t.Run("explicit file missing", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := getConfigPath(EnvDevelopment)

		assert.Error(t, err)
	})

	t.Run("no environment file", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")
		t.Setenv("CONTAINER", "true")

		got, err := getConfigPath(EnvDevelopment)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown environment", func(t *testing.T) {
		t.Setenv(ConfigFileEnv, "")

		_, err := getConfigPath(Environment("staging"))

		assert.Error(t, err)
	})
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `server:
  port: "9000"
email:
  provider: mailgun
  mailgun_domain: mg.example.com
  send_timeout_seconds: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv(ConfigFileEnv, path)

	v := viper.New()
	SetDefaults(v)
	got, err := readConfigFile(v, EnvDevelopment)

	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, "9000", v.GetString("SERVER.PORT"))
	assert.Equal(t, "mailgun", v.GetString("EMAIL.PROVIDER"))
	assert.Equal(t, "mg.example.com", v.GetString("EMAIL.MAILGUN_DOMAIN"))
	assert.Equal(t, 3, v.GetInt("EMAIL.SEND_TIMEOUT_SECONDS"))
	// Untouched keys keep their defaults.
	assert.Equal(t, "Contact Form", v.GetString("EMAIL.FROM_NAME"))
}
