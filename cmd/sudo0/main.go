// Package main is the entry point for the sudo0 CLI.
package main

import (
	"os"

	"github.com/xdg/sudo0/internal/cmd"
	"github.com/xdg/sudo0/internal/term"
)

func main() {
	// On success cmd.Execute never returns: the process image has been
	// replaced by the translated run0 invocation. Reaching the error
	// path means the request was rejected or the launch failed.
	if err := cmd.Execute(); err != nil {
		term.Error("%v", err)
		os.Exit(1)
	}
}
