package platform

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// ProbeTimeout bounds a single version probe.
const ProbeTimeout = 5 * time.Second

// Output executes a command and returns its stdout as a trimmed string.
func Output(name string, args ...string) (string, error) {
	return OutputContext(context.Background(), name, args...)
}

// OutputContext is like Output but kills the process when ctx is done.
// Stderr is discarded.
func OutputContext(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = nil
	err := cmd.Run()
	return strings.TrimSpace(out.String()), err
}

// Exists checks if a command exists in PATH.
func Exists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Probe runs a version-style command and reports its trimmed stdout.
// A missing binary, a non-zero exit or a timeout all yield ("", false);
// the failure is logged at debug level and never returned to the caller.
func Probe(ctx context.Context, name string, args ...string) (string, bool) {
	if !Exists(name) {
		Logger.Debug("probe skipped, not on PATH", "cmd", name)
		return "", false
	}
	ctx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	start := time.Now()
	out, err := OutputContext(ctx, name, args...)
	elapsed := time.Since(start)
	cmdline := strings.TrimSpace(name + " " + strings.Join(args, " "))
	if err != nil {
		Logger.Debug("probe failed", "cmd", cmdline, "err", err, "elapsed", elapsed)
		return "", false
	}
	Logger.Debug("probe ok", "cmd", cmdline, "output", out, "elapsed", elapsed)
	return out, true
}
