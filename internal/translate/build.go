package translate

import (
	"errors"

	"github.com/xdg/sudo0/internal/quote"
	"github.com/xdg/sudo0/internal/shell"
)

// DefaultRun0Path is the binary name exec'd into unless the
// configuration overrides it.
const DefaultRun0Path = "run0"

// ErrNoCommand is returned when neither a shell mode nor a trailing
// command was given, leaving nothing to execute.
var ErrNoCommand = errors.New("must specify --login, --shell, or a COMMAND")

// Build composes the run0 argument vector for a validated request.
// sh must be non-nil exactly when the request selects a shell mode.
// run0 is the binary to exec; empty means DefaultRun0Path.
//
// Token order is fixed: the program, --background= (run0 defaults to
// backgrounding, sudo never does), the translated flags in declaration
// order, the -- separator, then the command tail. Identical input always
// yields an identical vector.
func Build(r *Request, sh *shell.Resolved, run0 string) ([]string, error) {
	if run0 == "" {
		run0 = DefaultRun0Path
	}
	argv := []string{run0, "--background="}

	if r.Chdir != "" {
		argv = append(argv, "-D", r.Chdir)
	}

	for _, v := range r.PreserveEnv {
		argv = append(argv, "--setenv="+v)
	}

	// Group and user pass through as opaque strings; run0 does its own
	// numeric/name interpretation.
	if r.Group != "" {
		argv = append(argv, "-g", r.Group)
	}

	if r.User != "" {
		argv = append(argv, "-u", r.User)
	}

	if r.Host != "" {
		argv = append(argv, "--machine="+r.Host)
	}

	if r.NonInteractive {
		argv = append(argv, "--no-ask-password")
	}

	argv = append(argv, "--")

	if sh == nil {
		if len(r.Command) == 0 {
			return nil, ErrNoCommand
		}
		return append(argv, r.Command...), nil
	}

	argv = append(argv, sh.Path)
	if sh.Login {
		argv = append(argv, "--login")
	}
	if len(r.Command) > 0 {
		argv = append(argv, "-c", quote.Join(r.Command))
	}
	return argv, nil
}
