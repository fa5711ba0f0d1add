// SPDX-License-Identifier: MPL-2.0

package config

const (
	// DefaultModsDir is the default directory scanned for mods.
	DefaultModsDir = "./mods"
	// DefaultMaxParallelLoads bounds concurrent discovery work.
	DefaultMaxParallelLoads = 4
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
)

type (
	// Config is the effective modhost configuration.
	Config struct {
		// ModsDir is the directory scanned by "modhost list".
		ModsDir string `json:"mods_dir" mapstructure:"mods_dir"`
		// InstantiateAdapters makes containers create their adapter eagerly.
		InstantiateAdapters bool `json:"instantiate_adapters" mapstructure:"instantiate_adapters"`
		// MaxParallelLoads bounds concurrent descriptor reads.
		MaxParallelLoads int `json:"max_parallel_loads" mapstructure:"max_parallel_loads"`
		// LogLevel is debug, info, warn, or error.
		LogLevel string `json:"log_level" mapstructure:"log_level"`
	}

	// LoadOptions controls where configuration is read from.
	LoadOptions struct {
		// ConfigFilePath, when set, is the only config file consulted and must exist.
		ConfigFilePath string
		// ConfigDirPath overrides the platform config directory.
		ConfigDirPath string
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ModsDir:             DefaultModsDir,
		InstantiateAdapters: true,
		MaxParallelLoads:    DefaultMaxParallelLoads,
		LogLevel:            DefaultLogLevel,
	}
}
