// Package cli hosts the interactive demo console: configuration, the
// session loop, and the command router the presenter drives.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds host configuration. The engine itself is configured in
// code; this only covers what varies per machine.
type Config struct {
	Prefs   PrefsConfig
	Metrics MetricsConfig
}

// PrefsConfig selects the preference backend.
type PrefsConfig struct {
	Backend  string // memory | file | redis
	Path     string `mapstructure:"path"`
	RedisURL string `mapstructure:"redis_url"`
}

// MetricsConfig holds the optional prometheus listener.
type MetricsConfig struct {
	Addr string // empty disables the listener
}

// LoadConfig reads configuration from file and env. Env var overrides use
// prefix SHOWRUNNER_.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("prefs.backend", "file")
	v.SetDefault("prefs.path", filepath.Join(os.Getenv("HOME"), ".showrunner", "prefs.json"))
	v.SetDefault("prefs.redis_url", "redis://localhost:6379/0")
	v.SetDefault("metrics.addr", "")

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("SHOWRUNNER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "showrunner"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOWRUNNER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
