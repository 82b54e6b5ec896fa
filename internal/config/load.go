package config

import (
	"errors"
	"fmt"
	"os"
)

// Load loads the configuration from the default config path. A missing
// file is not an error: the defaults apply, because most installs never
// need a config at all. A file that exists but cannot be read or parsed
// is an error; a privilege-elevation front-end must not silently ignore
// a config it was given.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}
