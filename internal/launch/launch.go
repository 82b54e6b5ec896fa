// Package launch replaces the current process image with a translated
// invocation. On success control never returns here; the exec'd command
// inherits our standard streams, environment, and process identity.
package launch

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Func is the launch entry point, injectable so command-level tests can
// observe the final argument vector instead of exec'ing it.
type Func func(argv []string) error

// Exec resolves argv[0] through PATH and replaces the current process
// image. It returns only on failure; the error carries the underlying
// cause (binary not found, permission denied, ...).
func Exec(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty argument vector")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	// argv[0] stays the name the command was invoked as, by convention.
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}

	// unix.Exec only returns on error.
	panic("unreachable")
}
