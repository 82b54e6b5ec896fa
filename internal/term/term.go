// Package term provides user-facing terminal output for the sudo0 CLI.
// This is distinct from operational logging (see internal/clog).
//
// sudo0's entire user-visible output surface is a single diagnostic line
// on stderr per failed run; successful runs produce no output of their own
// because the process image is replaced before anything could be printed.
// This package centralizes that stderr write so tests can capture it.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	stderr io.Writer = os.Stderr
)

// SetErrOutput sets the writer for stderr output.
// Pass nil to use os.Stderr.
func SetErrOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		stderr = os.Stderr
	} else {
		stderr = w
	}
}

// Error writes an error message to stderr with "sudo0: " prefix.
// Every failure path of the program funnels through this exactly once.
func Error(format string, a ...any) {
	mu.Lock()
	defer mu.Unlock()
	msg := fmt.Sprintf(format, a...)
	_, _ = fmt.Fprintf(stderr, "sudo0: %s\n", msg)
}

// Stderr returns the current stderr writer.
func Stderr() io.Writer {
	mu.Lock()
	defer mu.Unlock()
	return stderr
}

// Reset resets the package to default state.
// Primarily useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	stderr = os.Stderr
}
