// Package shell determines which shell binary a translated invocation
// should run, and in which mode.
package shell

import (
	"fmt"
	"os"

	"github.com/xdg/sudo0/internal/account"
)

// Mode selects how the trailing command is executed.
type Mode int

const (
	// NoShell executes the trailing command directly.
	NoShell Mode = iota
	// Login runs the target user's registered login shell with a login flag.
	Login
	// Interactive runs the invoking user's shell without a login flag.
	Interactive
)

// String returns the flag-surface name of the mode.
func (m Mode) String() string {
	switch m {
	case NoShell:
		return "none"
	case Login:
		return "login"
	case Interactive:
		return "shell"
	default:
		return "unknown"
	}
}

// Resolved is a shell binary ready to be placed in the invocation.
type Resolved struct {
	// Path is the shell binary, taken from the account record or $SHELL.
	Path string
	// Login is true when the shell must be started as a login shell.
	Login bool
}

// Resolver looks up shells against the account database and the process
// environment. Getenv and Getuid exist so tests can substitute the
// invoking user's environment and identity; nil fields use the real ones.
type Resolver struct {
	DB     account.DB
	Getenv func(string) string
	Getuid func() int
}

// Resolve determines the shell for mode. For Login, user is the target
// user name from the command line; empty means the superuser. Mode
// NoShell never reaches this function.
func (r *Resolver) Resolve(mode Mode, user string) (Resolved, error) {
	switch mode {
	case Login:
		path, err := r.loginShell(user)
		if err != nil {
			return Resolved{}, fmt.Errorf("failed to determine the target user's shell: %w", err)
		}
		return Resolved{Path: path, Login: true}, nil
	case Interactive:
		path, err := r.interactiveShell()
		if err != nil {
			return Resolved{}, fmt.Errorf("failed to determine the target user's shell: %w", err)
		}
		return Resolved{Path: path}, nil
	default:
		return Resolved{}, fmt.Errorf("no shell to resolve for mode %q", mode)
	}
}

// loginShell returns the registered shell of the target user, or of the
// superuser when no target user was named. The passwd shell field is
// trusted over any default so that scripts relying on the account
// record's shell keep working.
func (r *Resolver) loginShell(user string) (string, error) {
	var (
		u   *account.User
		err error
	)
	if user != "" {
		u, err = r.DB.LookupName(user)
	} else {
		u, err = r.DB.LookupUID(0)
	}
	if err != nil {
		return "", err
	}
	if u.Shell == "" {
		return "", fmt.Errorf("account %q has no shell", u.Name)
	}
	return u.Shell, nil
}

// interactiveShell prefers $SHELL, falling back to the invoking user's
// own account record.
func (r *Resolver) interactiveShell() (string, error) {
	getenv := r.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if s := getenv("SHELL"); s != "" {
		return s, nil
	}

	getuid := r.Getuid
	if getuid == nil {
		getuid = os.Getuid
	}
	u, err := r.DB.LookupUID(getuid())
	if err != nil {
		return "", err
	}
	if u.Shell == "" {
		return "", fmt.Errorf("account %q has no shell", u.Name)
	}
	return u.Shell, nil
}
