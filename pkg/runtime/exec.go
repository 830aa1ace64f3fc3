package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// stderrExcerptLen caps how much stderr ends up in error messages.
const stderrExcerptLen = 512

// runCLI executes the adapter binary and returns its stdout. A non-zero
// exit code is always an error carrying the exit code and a stderr
// excerpt; a deadline hit maps to context.DeadlineExceeded.
func runCLI(ctx context.Context, inv Invocation, binary string, args []string) (string, error) {
	timeout := inv.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, binary, args...)
	cmd.Env = inv.Env
	if inv.WorkDir != "" {
		cmd.Dir = inv.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if runCtx.Err() != nil {
			return "", fmt.Errorf("%s timed out after %s: %w", binary, timeout, context.DeadlineExceeded)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%s exited with code %d: %s",
				binary, exitErr.ExitCode(), stderrExcerpt(stderr.String()))
		}
		return "", fmt.Errorf("run %s: %w", binary, err)
	}
	return stdout.String(), nil
}

func stderrExcerpt(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(no stderr)"
	}
	if len(s) > stderrExcerptLen {
		s = s[:stderrExcerptLen] + "..."
	}
	return s
}
