// Package gitinfo resolves git metadata for a working directory without
// changing the process's own working directory.
package gitinfo

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// NoGit is shown in place of a branch name when none can be resolved.
const NoGit = "no-git"

// DefaultTimeout bounds the git subprocess on the render path.
const DefaultTimeout = 2 * time.Second

// ErrNotRepository covers every way branch lookup can fail: not a
// repository, git missing from PATH, a non-zero exit, or a timeout.
var ErrNotRepository = errors.New("not a git repository")

// Resolver looks up the current branch through a Runner.
type Resolver struct {
	Runner Runner
}

// NewResolver returns a Resolver that shells out to git with DefaultTimeout.
func NewResolver() *Resolver {
	return &Resolver{Runner: ExecRunner{Timeout: DefaultTimeout}}
}

// Branch returns the abbreviated name of HEAD in dir.
func (r *Resolver) Branch(ctx context.Context, dir string) (string, error) {
	out, err := r.Runner.Run(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrNotRepository, dir, err)
	}
	if out == "" {
		return "", fmt.Errorf("%w: %s: empty rev-parse output", ErrNotRepository, dir)
	}
	return out, nil
}

// BranchOr returns the branch name for dir, or NoGit on any failure.
func (r *Resolver) BranchOr(ctx context.Context, dir string) string {
	branch, err := r.Branch(ctx, dir)
	if err != nil {
		return NoGit
	}
	return branch
}
