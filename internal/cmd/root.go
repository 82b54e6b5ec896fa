// Package cmd implements the sudo0 CLI: the full legacy sudo flag
// surface, translated into a run0 invocation that replaces this process.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/xdg/sudo0/internal/account"
	"github.com/xdg/sudo0/internal/clog"
	"github.com/xdg/sudo0/internal/config"
	"github.com/xdg/sudo0/internal/launch"
	"github.com/xdg/sudo0/internal/shell"
	"github.com/xdg/sudo0/internal/translate"
	"github.com/xdg/sudo0/internal/version"
)

// Seams for tests: command-level tests substitute these to observe the
// final argument vector and to control the environment, account
// database, and configuration the pipeline sees.
var execFunc launch.Func = launch.Exec

var accountDB account.DB = &account.PasswdDB{}

var (
	loadConfig = config.Load
	lookupEnv  = os.LookupEnv
	getenv     = os.Getenv
	getuid     = os.Getuid
)

// newRootCmd builds the sudo0 command. A fresh command is constructed
// per call so tests never share flag state.
func newRootCmd() *cobra.Command {
	var opts translate.Request

	cmd := &cobra.Command{
		Use:   "sudo0 [options] [--] [command [arg ...]]",
		Short: "Execute a command with elevated privileges via run0",
		Long: `sudo0 accepts the traditional sudo command line and execs into an
equivalent run0 invocation. It translates the flag surface, resolves the
target shell when -i or -s is given, and replaces its own process image;
run0 owns all authentication and policy decisions.

Legacy features without a run0 equivalent are rejected with a specific
diagnostic rather than silently dropped.`,
		Version:               version.Version,
		Args:                  cobra.ArbitraryArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Command = args
			opts.PromptSet = cmd.Flags().Changed("prompt")
			opts.ChrootSet = cmd.Flags().Changed("chroot")
			opts.OtherUserSet = cmd.Flags().Changed("other-user")
			opts.TimeoutSet = cmd.Flags().Changed("command-timeout")
			return run(&opts)
		},
	}

	f := cmd.Flags()
	// sudo stops option processing at the first non-option argument;
	// everything after it belongs to the command being run.
	f.SetInterspersed(false)

	f.BoolVarP(&opts.Askpass, "askpass", "A", false, "use a helper program for password prompting")
	f.BoolVarP(&opts.Bell, "bell", "B", false, "ring bell when prompting")
	f.BoolVarP(&opts.Background, "background", "b", false, "run command in the background")
	f.Uint64VarP(&opts.CloseFrom, "close-from", "C", translate.DefaultCloseFrom, "close file descriptors >= num")
	f.BoolVarP(&opts.PreserveAllEnv, "preserve-all-env", "E", false, "preserve the entire environment when running command")
	f.StringSliceVar(&opts.PreserveEnv, "preserve-env", nil, "preserve specific environment variables")
	f.BoolVarP(&opts.Edit, "edit", "e", false, "edit files instead of running a command")
	f.StringVarP(&opts.Group, "group", "g", "", "run command as the specified group name or ID")
	f.BoolVarP(&opts.SetHome, "set-home", "H", false, "set HOME to the target user's home directory")
	f.StringVar(&opts.Host, "host", "", "run command on a remote host")
	f.BoolVarP(&opts.RemoveStamp, "remove-timestamp", "K", false, "remove the cached credentials entirely")
	f.BoolVarP(&opts.ResetStamp, "reset-timestamp", "k", false, "invalidate the cached credentials")
	f.BoolVarP(&opts.List, "list", "l", false, "list the allowed and forbidden commands")
	f.BoolVarP(&opts.NoUpdate, "no-update", "N", false, "do not update the cached credentials")
	f.BoolVarP(&opts.NonInteractive, "non-interactive", "n", false, "do not prompt for a password")
	f.BoolVarP(&opts.PreserveGroups, "preserve-groups", "P", false, "preserve the invoking user's group vector")
	f.StringVarP(&opts.Prompt, "prompt", "p", "", "use a custom password prompt")
	f.StringVarP(&opts.Chroot, "chroot", "R", "", "change the root directory before running command")
	f.BoolVarP(&opts.Stdin, "stdin", "S", false, "read the password from standard input")
	f.StringVarP(&opts.OtherUser, "other-user", "U", "", "list the privileges of the specified user")
	f.StringVarP(&opts.Timeout, "command-timeout", "T", "", "terminate the command after the specified time limit")
	f.StringVarP(&opts.User, "user", "u", "", "run command as the specified user name or ID")
	f.StringVarP(&opts.Chdir, "chdir", "D", "", "change the working directory before running command")
	f.BoolVarP(&opts.Validate, "validate", "v", false, "update the cached credentials without running a command")
	f.BoolVarP(&opts.Login, "login", "i", false, "run the target user's login shell")
	f.BoolVarP(&opts.Shell, "shell", "s", false, "run the invoking user's shell")

	cmd.MarkFlagsMutuallyExclusive("login", "shell")

	return cmd
}

// run drives the translation pipeline: validate, resolve the shell if a
// shell mode was requested, build the run0 argument vector, and replace
// the process image. It returns only on failure.
func run(req *translate.Request) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := clog.Configure(cfg.Log.Path, cfg.Log.Debug); err != nil {
		return err
	}

	clog.Debug("request: user=%q group=%q host=%q chdir=%q preserve=%v mode=%s command=%q",
		req.User, req.Group, req.Host, req.Chdir, req.PreserveEnv, req.ShellMode(), req.Command)

	if err := translate.Validate(req, lookupEnv); err != nil {
		return err
	}

	var resolved *shell.Resolved
	if mode := req.ShellMode(); mode != shell.NoShell {
		r := &shell.Resolver{DB: accountDB, Getenv: getenv, Getuid: getuid}
		sh, err := r.Resolve(mode, req.User)
		if err != nil {
			return err
		}
		resolved = &sh
		clog.Debug("resolved shell: path=%q login=%v", sh.Path, sh.Login)
	}

	argv, err := translate.Build(req, resolved, cfg.Run0.Path)
	if err != nil {
		return err
	}

	clog.Debug("exec: %q", argv)
	return execFunc(argv)
}

// Execute runs the sudo0 command and returns any error.
func Execute() error {
	return newRootCmd().Execute()
}
