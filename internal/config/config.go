package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (BOOLQ_SUGGEST_MAX_RESULTS, ...).
const EnvPrefix = "boolq"

// ConfigOption describes one configuration key.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration options, their defaults and
// meanings. Defaults and generated config files are both derived from it.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "catalog_path", Default: "", Comment: "Job title catalog (JSON or YAML); empty uses the built-in catalog"},
		{Key: "output", Default: "plain", Comment: "Default output mode: plain|json|ndjson|pretty"},

		{Key: "suggest.max_results", Default: 10, Comment: "Maximum number of suggestions returned"},
		{Key: "clipboard.enabled", Default: true, Comment: "Allow copying queries to the system clipboard"},
		{Key: "tui.status_seconds", Default: 2, Comment: "How long status messages stay visible in the form"},
		{Key: "log.verbose", Default: false, Comment: "Write diagnostic logs to stderr"},
	}
}

// applyDefaults seeds Viper with the defaults of GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated.
func Load(ctx context.Context, v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "boolq"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "boolq"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing file in the search paths is fine; an explicit path
		// that fails to read or parse is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && v.ConfigFileUsed() != "" {
			return err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if p := strings.TrimSpace(v.GetString("catalog_path")); p != "" {
		v.Set("catalog_path", expandHome(p))
	}
	return nil
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "boolq", "config.toml")
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
