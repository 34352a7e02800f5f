package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. UNORPHAN_TARGET.
const EnvPrefix = "UNORPHAN"

// flag name -> config key
var flagKeys = map[string]string{
	"target":        "target",
	"dry-run":       "dry_run",
	"regex-timeout": "regex_timeout",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
}

// RegisterFlags adds the shared command line flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := GetDefaults()
	fs.String("config", "", "Path to a YAML configuration file")
	fs.StringP("target", "t", d.Target, "File to clean up in place")
	fs.Bool("dry-run", d.DryRun, "Show what would be removed without writing the file")
	fs.Duration("regex-timeout", d.RegexTimeout, "Upper bound for a single pattern pass")
	fs.String("log-level", d.Logging.Level, "Log level (debug, info, warn, error)")
	fs.String("log-format", d.Logging.Format, "Log format (console or json)")
}

// Load resolves the configuration from, in increasing precedence: defaults,
// the config file named by --config, UNORPHAN_* environment variables and
// flags that were set explicitly.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	d := GetDefaults()
	v.SetDefault("target", d.Target)
	v.SetDefault("dry_run", d.DryRun)
	v.SetDefault("regex_timeout", d.RegexTimeout)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}

		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Target) == "" {
		return fmt.Errorf("target path is empty")
	}

	if config.RegexTimeout <= 0 {
		return fmt.Errorf("invalid regex timeout: %s (must be positive)", config.RegexTimeout)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.Logging.Level)
	}

	if config.Logging.Format != "json" && config.Logging.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", config.Logging.Format)
	}

	return nil
}
