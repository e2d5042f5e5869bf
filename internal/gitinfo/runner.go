package gitinfo

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Runner runs an external command in a given directory and returns its
// trimmed standard output.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec. A zero Timeout means no deadline
// beyond the caller's context.
type ExecRunner struct {
	Timeout time.Duration
}

// Run executes name with args in dir. Stderr is discarded.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // fixed git invocation
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
