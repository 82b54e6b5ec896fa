// Package translate turns a parsed sudo command line into an equivalent
// run0 invocation. It owns the validation policy (which legacy flags are
// supported, rejected, or merely ignored) and the construction of the
// final argument vector; it performs no I/O of its own.
package translate

import "github.com/xdg/sudo0/internal/shell"

// Request is the fully parsed legacy command line, one field per sudo
// flag plus the trailing command. It is built once per process invocation
// and is immutable after construction.
//
// Optional string flags where mere presence triggers a rejection carry a
// companion Set field, because an empty value is still a request for the
// feature (e.g. "-p ''").
type Request struct {
	Askpass        bool     // -A: use an askpass helper
	Bell           bool     // -B: accepted and ignored
	Background     bool     // -b
	CloseFrom      uint64   // -C: only the default of 3 is accepted
	PreserveAllEnv bool     // -E
	PreserveEnv    []string // --preserve-env, in command-line order
	Edit           bool     // -e
	Group          string   // -g
	SetHome        bool     // -H: accepted and ignored
	Host           string   // --host
	RemoveStamp    bool     // -K
	ResetStamp     bool     // -k
	List           bool     // -l
	NoUpdate       bool     // -N
	NonInteractive bool     // -n
	PreserveGroups bool     // -P
	Prompt         string   // -p
	PromptSet      bool
	Chroot         string // -R
	ChrootSet      bool
	Stdin          bool   // -S
	OtherUser      string // -U
	OtherUserSet   bool
	Timeout        string // -T
	TimeoutSet     bool
	User           string // -u
	Chdir          string // -D
	Validate       bool   // -v
	Login          bool   // -i: mutually exclusive with Shell, enforced by the CLI
	Shell          bool   // -s

	// Command is the trailing command: every token after the first
	// non-flag argument or the -- terminator, verbatim.
	Command []string
}

// ShellMode reports how the trailing command should be executed.
func (r *Request) ShellMode() shell.Mode {
	switch {
	case r.Login:
		return shell.Login
	case r.Shell:
		return shell.Interactive
	default:
		return shell.NoShell
	}
}
