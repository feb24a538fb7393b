package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFileEnv names an explicit YAML config file. Without it an
// environment-specific file is used when one exists.
const ConfigFileEnv = "CONFIG_FILE"

// getConfigPath returns the config file to read, or "" when there is none.
func getConfigPath(env Environment) (string, error) {
	if explicit := os.Getenv(ConfigFileEnv); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("configuration file not found: %s", explicit)
		}
		return explicit, nil
	}

	configDir := "config"
	// Containers mount configuration under /app
	if os.Getenv("CONTAINER") == "true" {
		configDir = "/app/config"
	}

	var filename string
	switch env {
	case EnvDevelopment:
		filename = "config.dev.yaml"
	case EnvProduction:
		filename = "config.prod.yaml"
	default:
		return "", fmt.Errorf("unknown environment: %s", env)
	}

	path := filepath.Join(configDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}
	return path, nil
}

// readConfigFile merges the YAML file for env into v. Environment variables
// still take precedence over file values.
func readConfigFile(v *viper.Viper, env Environment) (string, error) {
	path, err := getConfigPath(env)
	if err != nil || path == "" {
		return "", err
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return path, nil
}
