package config

import "time"

// DefaultTarget is the file both cleanup tools rewrite when nothing else is
// configured.
const DefaultTarget = "/Users/mbike/Documents/steen-main2/app/dashboard/toewijzingen/page.tsx"

// Config is the runtime configuration shared by the cleanup binaries.
type Config struct {
	Target       string        `mapstructure:"target"`
	DryRun       bool          `mapstructure:"dry_run"`
	RegexTimeout time.Duration `mapstructure:"regex_timeout"`
	Logging      LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls the operational log written to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDefaults returns the configuration used when no flag, environment
// variable or config file overrides a value.
func GetDefaults() *Config {
	return &Config{
		Target:       DefaultTarget,
		DryRun:       false,
		RegexTimeout: 5 * time.Second,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
