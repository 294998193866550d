// Package config resolves the runtime configuration from config files
// and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	// DataDir is where the file backend keeps its slot files and the
	// sqlite backend its database.
	DataDir string
	// Backend selects the storage backend: file, sqlite or memory.
	Backend string
	// Latency is the artificial delay applied to every operation.
	Latency time.Duration
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// Format is the default CLI output format: table, json or yaml.
	Format string
}

// Load reads configuration with viper. OPSDECK_CONFIG points at an
// explicit config file; otherwise opsdeck.yaml is discovered in the
// usual places. OPSDECK_* environment variables override file values.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("backend", "file")
	v.SetDefault("latency", time.Duration(0))
	v.SetDefault("log_level", "warn")
	v.SetDefault("format", "table")

	if configFile := os.Getenv("OPSDECK_CONFIG"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("opsdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.opsdeck")
		v.AddConfigPath("/etc/opsdeck")
	}

	v.SetEnvPrefix("OPSDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if os.Getenv("OPSDECK_CONFIG") != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return &Config{
		DataDir:  v.GetString("data_dir"),
		Backend:  v.GetString("backend"),
		Latency:  v.GetDuration("latency"),
		LogLevel: v.GetString("log_level"),
		Format:   v.GetString("format"),
	}, nil
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "opsdeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "opsdeck-data"
	}
	return filepath.Join(home, ".local", "share", "opsdeck")
}
