//go:build e2e

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// fakeRun0 is a stand-in for run0 that prints each argument it received
// on its own line and exits 0. Translation tests point sudo0 at it via
// the run0.path configuration key.
const fakeRun0 = `#!/bin/sh
printf '%s\n' "$@"
`

// run invokes the sudo0 binary with a scratch configuration directing it
// at a fake run0, and with the sudo environment overrides cleared. It
// returns stdout, stderr, and the exit code.
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()

	dir := t.TempDir()
	fake := filepath.Join(dir, "run0")
	if err := os.WriteFile(fake, []byte(fakeRun0), 0o755); err != nil {
		t.Fatalf("write fake run0: %v", err)
	}

	confDir := filepath.Join(dir, "sudo0")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	conf := "run0:\n  path: " + fake + "\n"
	if err := os.WriteFile(filepath.Join(confDir, "config.yaml"), []byte(conf), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "XDG_CONFIG_HOME="+dir)
	cmd.Env = scrub(cmd.Env, "SUDO_ASKPASS", "SUDO_PROMPT")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("run sudo0: %v", err)
	}
	return stdout.String(), stderr.String(), code
}

// scrub removes the named variables from an environment slice.
func scrub(env []string, names ...string) []string {
	out := env[:0]
	for _, kv := range env {
		drop := false
		for _, name := range names {
			if len(kv) > len(name) && kv[:len(name)+1] == name+"=" {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kv)
		}
	}
	return out
}
