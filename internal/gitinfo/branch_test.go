package gitinfo

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct {
	out  string
	err  error
	dir  string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	f.dir = dir
	f.args = append([]string{name}, args...)
	return f.out, f.err
}

func TestBranch_PassesDirectory(t *testing.T) {
	fr := &fakeRunner{out: "main"}
	r := &Resolver{Runner: fr}

	got, err := r.Branch(context.Background(), "/work/proj")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "main" {
		t.Errorf("Branch = %q, want main", got)
	}
	if fr.dir != "/work/proj" {
		t.Errorf("dir = %q, want /work/proj", fr.dir)
	}
	if want := "git rev-parse --abbrev-ref HEAD"; strings.Join(fr.args, " ") != want {
		t.Errorf("args = %q, want %q", strings.Join(fr.args, " "), want)
	}
}

func TestBranchOr(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
		want string
	}{
		{"branch", "feature/gauge", nil, "feature/gauge"},
		{"detached", "HEAD", nil, "HEAD"},
		{"runner error", "", errors.New("exit status 128"), NoGit},
		{"git missing", "", exec.ErrNotFound, NoGit},
		{"empty output", "", nil, NoGit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Runner: &fakeRunner{out: tt.out, err: tt.err}}
			if got := r.BranchOr(context.Background(), "/tmp"); got != tt.want {
				t.Errorf("BranchOr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBranch_WrapsErrNotRepository(t *testing.T) {
	cause := errors.New("boom")
	r := &Resolver{Runner: &fakeRunner{err: cause}}

	_, err := r.Branch(context.Background(), "/tmp")
	if !errors.Is(err, ErrNotRepository) {
		t.Errorf("err = %v, want ErrNotRepository", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("err = %v, want wrapped cause", err)
	}
}

func TestExecRunner_NotARepository(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	before, _ := os.Getwd()
	got := NewResolver().BranchOr(context.Background(), dir)
	after, _ := os.Getwd()

	if got != NoGit {
		t.Errorf("BranchOr = %q, want %q", got, NoGit)
	}
	if before != after {
		t.Errorf("process cwd changed from %q to %q", before, after)
	}
}

func TestExecRunner_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	if got := NewResolver().BranchOr(context.Background(), dir); got != NoGit {
		t.Errorf("BranchOr = %q, want %q", got, NoGit)
	}
}

func TestExecRunner_RealRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Skipf("git %s failed: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
	git("init", "-q")
	git("symbolic-ref", "HEAD", "refs/heads/feature/status")
	git("commit", "-q", "--allow-empty", "-m", "init")

	got, err := NewResolver().Branch(context.Background(), dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "feature/status" {
		t.Errorf("Branch = %q, want feature/status", got)
	}
}
