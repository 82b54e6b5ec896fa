package config

import (
	"os"

	"github.com/xdg/sudo0/internal/pathutil"
)

// Dir returns the sudo0 configuration directory path.
// By default, this is ~/.config/sudo0/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/sudo0/ instead.
// The returned path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return pathutil.ExpandHome(base) + "/sudo0/"
}

// Path returns the full path to the configuration file.
// This is Dir() + "config.yaml".
func Path() string {
	return Dir() + "config.yaml"
}
