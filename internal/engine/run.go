package engine

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// CommandResult holds the captured output of one external process run.
// It lives only for the duration of the call that produced it.
type CommandResult struct {
	Stdout string
	Stderr string
}

// stderrTailLimit bounds how much stderr ends up inside a ProcessError.
const stderrTailLimit = 512

// RunCommand executes an external process with an argv vector and waits for it
// to finish. Arguments are passed directly to the OS, so no shell quoting or
// escaping applies. A non-zero exit or spawn failure yields a *ProcessError;
// stderr content with a zero exit is logged as a warning and is not a failure.
func RunCommand(ctx context.Context, name string, args ...string) (CommandResult, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return res, &ProcessError{
			Command: name,
			Stderr:  stderrTail(res.Stderr),
			Err:     err,
		}
	}
	if res.Stderr != "" {
		slog.Warn("command wrote to stderr", slog.String("command", name), slog.String("stderr", stderrTail(res.Stderr)))
	}
	return res, nil
}

// stderrTail returns the trailing portion of s, trimmed, capped at
// stderrTailLimit bytes. The tail is kept because downloaders print the
// actual failure reason last.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTailLimit {
		s = s[len(s)-stderrTailLimit:]
	}
	return s
}
