package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xdg/sudo0/internal/account"
	"github.com/xdg/sudo0/internal/config"
)

// fakeDB is an in-memory account database for command-level tests.
type fakeDB struct {
	users []account.User
}

func (db *fakeDB) LookupName(name string) (*account.User, error) {
	for i := range db.users {
		if db.users[i].Name == name {
			return &db.users[i], nil
		}
	}
	return nil, account.ErrNotFound
}

func (db *fakeDB) LookupUID(uid int) (*account.User, error) {
	for i := range db.users {
		if db.users[i].UID == uid {
			return &db.users[i], nil
		}
	}
	return nil, account.ErrNotFound
}

// harness replaces the pipeline seams for one test and records the argv
// handed to the launcher. Environment variables default to empty.
type harness struct {
	argv []string
	env  map[string]string
	cfg  *config.Config
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{env: map[string]string{}, cfg: config.Default()}

	origExec, origLoad, origDB := execFunc, loadConfig, accountDB
	origLookup, origGetenv, origGetuid := lookupEnv, getenv, getuid
	t.Cleanup(func() {
		execFunc, loadConfig, accountDB = origExec, origLoad, origDB
		lookupEnv, getenv, getuid = origLookup, origGetenv, origGetuid
	})

	execFunc = func(argv []string) error {
		h.argv = argv
		return nil
	}
	loadConfig = func() (*config.Config, error) { return h.cfg, nil }
	accountDB = &fakeDB{users: []account.User{
		{Name: "root", UID: 0, GID: 0, Home: "/root", Shell: "/bin/bash"},
		{Name: "alice", UID: 1000, GID: 1000, Home: "/home/alice", Shell: "/bin/zsh"},
	}}
	lookupEnv = func(k string) (string, bool) {
		v, ok := h.env[k]
		return v, ok
	}
	getenv = func(k string) string { return h.env[k] }
	getuid = func() int { return 1000 }

	return h
}

func execute(args []string) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestRejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{
			name: "askpass with SUDO_ASKPASS",
			args: []string{"-A", "true"},
			env:  map[string]string{"SUDO_ASKPASS": "/usr/bin/ssh-askpass"},
			want: "custom askpass programs are unsupported",
		},
		{
			name: "close-from",
			args: []string{"-C", "10", "true"},
			want: "close-from must be exactly 3 or unspecified, was 10",
		},
		{
			name: "edit",
			args: []string{"-e", "file.txt"},
			want: "editing is not supported",
		},
		{
			name: "list",
			args: []string{"-l"},
			want: "listing privileges is unsupported",
		},
		{
			name: "other user",
			args: []string{"-U", "bob", "true"},
			want: "listing privileges of other users is unsupported",
		},
		{
			name: "no-update",
			args: []string{"-N", "true"},
			want: "cached credentials are always updated",
		},
		{
			name: "preserve groups",
			args: []string{"-P", "true"},
			want: "cannot preserve groups",
		},
		{
			name: "stdin",
			args: []string{"-S", "true"},
			want: "cannot use stdin/stderr for the password prompt",
		},
		{
			name: "prompt flag",
			args: []string{"-p", "pw:", "true"},
			want: "password prompt cannot be overridden",
		},
		{
			name: "SUDO_PROMPT env",
			args: []string{"true"},
			env:  map[string]string{"SUDO_PROMPT": "pw:"},
			want: "password prompt cannot be overridden",
		},
		{
			name: "validate",
			args: []string{"-v"},
			want: "cannot validate credentials",
		},
		{
			name: "preserve entire environment",
			args: []string{"-E", "true"},
			want: "preserving the entire environment is unsupported",
		},
		{
			name: "background",
			args: []string{"-b", "true"},
			want: "cannot run commands in the background",
		},
		{
			name: "remove timestamp",
			args: []string{"-K"},
			want: "cannot alter sudo timestamps",
		},
		{
			name: "reset timestamp",
			args: []string{"-k"},
			want: "cannot alter sudo timestamps",
		},
		{
			name: "chroot",
			args: []string{"-R", "/srv/jail", "true"},
			want: "chroot is unimplemented",
		},
		{
			name: "command timeout",
			args: []string{"-T", "30s", "true"},
			want: "command timeouts are unimplemented",
		},
		{
			name: "no shell mode and no command",
			args: []string{},
			want: "must specify --login, --shell, or a COMMAND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tt.env {
				h.env[k] = v
			}

			err := execute(tt.args)
			if err == nil {
				t.Fatalf("execute(%q) succeeded, want rejection", tt.args)
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err.Error(), tt.want)
			}
			if h.argv != nil {
				t.Errorf("launcher invoked with %q despite rejection", h.argv)
			}
		})
	}
}

func TestTranslation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want []string
	}{
		{
			name: "bare command",
			args: []string{"ls", "-la"},
			want: []string{"run0", "--background=", "--", "ls", "-la"},
		},
		{
			name: "flags after first command token are not parsed",
			args: []string{"-u", "root", "tail", "-n", "3", "/var/log/syslog"},
			want: []string{"run0", "--background=", "-u", "root", "--", "tail", "-n", "3", "/var/log/syslog"},
		},
		{
			name: "double dash terminates option parsing",
			args: []string{"-u", "root", "--", "-e", "odd-name"},
			want: []string{"run0", "--background=", "-u", "root", "--", "-e", "odd-name"},
		},
		{
			name: "working directory and preserved variables",
			args: []string{"-D", "/srv", "--preserve-env", "PATH,HOME", "env"},
			want: []string{"run0", "--background=", "-D", "/srv", "--setenv=PATH", "--setenv=HOME", "--", "env"},
		},
		{
			name: "repeated preserve-env accumulates in order",
			args: []string{"--preserve-env", "PATH", "--preserve-env", "HOME", "env"},
			want: []string{"run0", "--background=", "--setenv=PATH", "--setenv=HOME", "--", "env"},
		},
		{
			name: "group user host and non-interactive",
			args: []string{"-g", "wheel", "-u", "alice", "--host", "web1", "-n", "id"},
			want: []string{"run0", "--background=", "-g", "wheel", "-u", "alice", "--machine=web1", "--no-ask-password", "--", "id"},
		},
		{
			name: "ignored flags leave no trace",
			args: []string{"-B", "-H", "true"},
			want: []string{"run0", "--background=", "--", "true"},
		},
		{
			name: "askpass without SUDO_ASKPASS is ignored",
			args: []string{"-A", "true"},
			want: []string{"run0", "--background=", "--", "true"},
		},
		{
			name: "default close-from accepted explicitly",
			args: []string{"-C", "3", "true"},
			want: []string{"run0", "--background=", "--", "true"},
		},
		{
			name: "login shell for named target user",
			args: []string{"-i", "-u", "alice"},
			want: []string{"run0", "--background=", "-u", "alice", "--", "/bin/zsh", "--login"},
		},
		{
			name: "login shell defaults to superuser",
			args: []string{"-i"},
			want: []string{"run0", "--background=", "--", "/bin/bash", "--login"},
		},
		{
			name: "login shell with command quotes the tail",
			args: []string{"-i", "echo", "hi there"},
			want: []string{"run0", "--background=", "--", "/bin/bash", "--login", "-c", `echo hi\ there`},
		},
		{
			name: "interactive shell from SHELL",
			args: []string{"-s"},
			env:  map[string]string{"SHELL": "/bin/fish"},
			want: []string{"run0", "--background=", "--", "/bin/fish"},
		},
		{
			name: "interactive shell falls back to invoking user's record",
			args: []string{"-s"},
			want: []string{"run0", "--background=", "--", "/bin/zsh"},
		},
		{
			name: "interactive shell with command",
			args: []string{"-s", "ls", "-la"},
			env:  map[string]string{"SHELL": "/bin/fish"},
			want: []string{"run0", "--background=", "--", "/bin/fish", "-c", "ls -la"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			for k, v := range tt.env {
				h.env[k] = v
			}

			if err := execute(tt.args); err != nil {
				t.Fatalf("execute(%q) error: %v", tt.args, err)
			}
			if !reflect.DeepEqual(h.argv, tt.want) {
				t.Errorf("argv = %q, want %q", h.argv, tt.want)
			}
		})
	}
}

func TestLoginAndShellMutuallyExclusive(t *testing.T) {
	h := newHarness(t)

	err := execute([]string{"-i", "-s"})
	if err == nil {
		t.Fatal("execute(-i -s) succeeded, want mutual-exclusion error")
	}
	if h.argv != nil {
		t.Errorf("launcher invoked with %q despite flag conflict", h.argv)
	}
}

func TestUnknownFlag(t *testing.T) {
	h := newHarness(t)

	err := execute([]string{"-Z", "true"})
	if err == nil {
		t.Fatal("execute(-Z) succeeded, want parse error")
	}
	if h.argv != nil {
		t.Errorf("launcher invoked with %q despite parse error", h.argv)
	}
}

func TestShellResolutionFailure(t *testing.T) {
	h := newHarness(t)

	err := execute([]string{"-i", "-u", "ghost"})
	if err == nil {
		t.Fatal("execute succeeded, want shell resolution failure")
	}
	if !strings.Contains(err.Error(), "failed to determine the target user's shell") {
		t.Errorf("error = %q, want shell resolution message", err)
	}
	if h.argv != nil {
		t.Errorf("launcher invoked with %q despite resolution failure", h.argv)
	}
}

func TestRun0PathFromConfig(t *testing.T) {
	h := newHarness(t)
	h.cfg.Run0.Path = "/usr/local/bin/run0"

	if err := execute([]string{"true"}); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if len(h.argv) == 0 || h.argv[0] != "/usr/local/bin/run0" {
		t.Errorf("argv = %q, want configured run0 path first", h.argv)
	}
}

func TestHelpOutput(t *testing.T) {
	newHarness(t)

	var out strings.Builder
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	help := out.String()
	for _, expected := range []string{"sudo0", "run0", "--login", "--shell", "--preserve-env"} {
		if !strings.Contains(help, expected) {
			t.Errorf("help output missing %q", expected)
		}
	}
}
