// Package config provides configuration for sudo0. The configuration
// maps to a single YAML file and only tunes ambient behavior: which run0
// binary to exec and where operational logs go. It never adds, removes,
// or reorders translated tokens.
package config

// Config is the top-level sudo0 configuration, typically stored at
// ~/.config/sudo0/config.yaml.
type Config struct {
	Run0 Run0Config `yaml:"run0,omitempty"`
	Log  LogConfig  `yaml:"log,omitempty"`
}

// Run0Config selects the underlying privilege-elevation command.
type Run0Config struct {
	// Path is the run0 binary to exec. A bare name is resolved through
	// PATH at launch time. Empty means "run0".
	Path string `yaml:"path,omitempty"`
}

// LogConfig contains operational logging settings.
type LogConfig struct {
	// Path is the log file. Empty disables file logging.
	Path string `yaml:"path,omitempty"`
	// Debug enables debug-level records, including the parsed request
	// and the final argument vector.
	Debug bool `yaml:"debug,omitempty"`
}
