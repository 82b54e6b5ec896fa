package config

// Default returns a Config with all defaults populated: exec the run0
// found on PATH, no file logging, no debug records.
func Default() *Config {
	return &Config{
		Run0: Run0Config{Path: "run0"},
	}
}

// applyDefaults fills unset fields of cfg with their default values.
func applyDefaults(cfg *Config) {
	if cfg.Run0.Path == "" {
		cfg.Run0.Path = "run0"
	}
}
